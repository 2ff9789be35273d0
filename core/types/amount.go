package types

import (
	"encoding/binary"

	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

// AmountSize is the byte length of the serialized STAmount envelope. Every
// variant serializes to 48 bytes; shorter variants are zero padded.
const AmountSize = 48

// Flag bits of the first envelope byte.
const (
	amountTypeIOU  = 0x80 // bit 7: 1 = IOU, 0 = XRP/MPT
	amountPositive = 0x40 // bit 6: 1 = positive
	amountIsMPT    = 0x20 // bit 5: 1 = MPT (when bit 7 is 0)
)

// mask57Bit extracts the drop magnitude from an encoded XRP amount.
const mask57Bit = 0x01FFFFFFFFFFFFFF

// AmountKind discriminates the serialized variants of Amount.
type AmountKind uint8

const (
	KindXRP AmountKind = iota
	KindIOU
	KindMPT
)

// Amount is one of the three value kinds an XRPL amount field can carry.
//
// XRP amounts hold drops as a signed integer so guest math needs no
// separate sign handling; the XRP supply cap keeps any real value well
// inside int64 range. IOU amounts keep the host's opaque float as-is. MPT
// amounts carry unsigned units plus an explicit sign.
type Amount struct {
	Kind AmountKind

	// XRP
	Drops int64

	// IOU
	Value    OpaqueFloat
	Currency Currency
	Issuer   AccountID

	// MPT
	Units    uint64
	Positive bool
	MptID    MptID
}

// XRPAmount builds an XRP amount from a drop count.
func XRPAmount(drops int64) Amount {
	return Amount{Kind: KindXRP, Drops: drops}
}

// IOUAmount builds an issued-currency amount.
func IOUAmount(value OpaqueFloat, currency Currency, issuer AccountID) Amount {
	return Amount{Kind: KindIOU, Value: value, Currency: currency, Issuer: issuer}
}

// MPTAmount builds a multi-purpose token amount.
func MPTAmount(units uint64, positive bool, mptID MptID) Amount {
	return Amount{Kind: KindMPT, Units: units, Positive: positive, MptID: mptID}
}

// Encode serializes the amount into the 48-byte STAmount envelope.
func (a Amount) Encode() [AmountSize]byte {
	var out [AmountSize]byte

	switch a.Kind {
	case KindXRP:
		drops := a.Drops
		var value uint64
		if drops >= 0 {
			value = uint64(drops) | (amountPositive << 56)
		} else {
			value = uint64(-drops)
		}
		binary.BigEndian.PutUint64(out[0:8], value)

	case KindMPT:
		control := byte(amountIsMPT)
		if a.Positive {
			control |= amountPositive
		}
		out[0] = control
		binary.BigEndian.PutUint64(out[1:9], a.Units)
		copy(out[9:33], a.MptID[:])

	case KindIOU:
		copy(out[0:8], a.Value[:])
		copy(out[8:28], a.Currency[:])
		copy(out[28:48], a.Issuer[:])
	}

	return out
}

// DecodeAmount parses the 48-byte STAmount envelope. The variant is read
// from the flag bits of the first byte.
func DecodeAmount(buf []byte) (Amount, error) {
	if len(buf) != AmountSize {
		return Amount{}, host.InternalError
	}

	byte0 := buf[0]
	isIOU := byte0&amountTypeIOU != 0
	isMPT := byte0&amountIsMPT != 0
	isPositive := byte0&amountPositive != 0

	switch {
	case isIOU:
		a := Amount{Kind: KindIOU}
		copy(a.Value[:], buf[0:8])
		copy(a.Currency[:], buf[8:28])
		copy(a.Issuer[:], buf[28:48])
		return a, nil

	case isMPT:
		a := Amount{Kind: KindMPT, Positive: isPositive}
		a.Units = binary.BigEndian.Uint64(buf[1:9])
		copy(a.MptID[:], buf[9:33])
		return a, nil

	default: // XRP
		magnitude := binary.BigEndian.Uint64(buf[0:8]) & mask57Bit
		drops := int64(magnitude)
		if !isPositive {
			drops = -drops
		}
		return Amount{Kind: KindXRP, Drops: drops}, nil
	}
}

// Trace writes the amount to the xrpld trace log under msg.
func (a Amount) Trace(msg string) error {
	encoded := a.Encode()
	return host.TraceAmountBytes(msg, encoded[:])
}
