// Package fields decodes typed values out of serialized ledger fields.
// The same wire formats apply whether a field comes from the current
// transaction, the current ledger object, or a slotted ledger object, so
// every reader takes a host.FieldSource picking the origin.
//
// Integer fields arrive in guest byte order (little-endian); hashes,
// accounts and keys are copied verbatim; amounts are decoded from the
// 48-byte envelope by types.DecodeAmount.
package fields

import (
	"encoding/binary"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

// Uint8 reads a required 1-byte integer field.
func Uint8(src host.FieldSource, field int32) (uint8, error) {
	var buf [1]byte
	if err := host.GetFixedSizeField(src, field, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Uint8Optional reads an optional 1-byte integer field.
func Uint8Optional(src host.FieldSource, field int32) (uint8, bool, error) {
	var buf [1]byte
	present, err := host.GetFixedSizeFieldOptional(src, field, buf[:])
	if err != nil || !present {
		return 0, present, err
	}
	return buf[0], true, nil
}

// Uint16 reads a required 2-byte integer field.
func Uint16(src host.FieldSource, field int32) (uint16, error) {
	var buf [2]byte
	if err := host.GetFixedSizeField(src, field, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// Uint16Optional reads an optional 2-byte integer field.
func Uint16Optional(src host.FieldSource, field int32) (uint16, bool, error) {
	var buf [2]byte
	present, err := host.GetFixedSizeFieldOptional(src, field, buf[:])
	if err != nil || !present {
		return 0, present, err
	}
	return binary.LittleEndian.Uint16(buf[:]), true, nil
}

// Uint32 reads a required 4-byte integer field.
func Uint32(src host.FieldSource, field int32) (uint32, error) {
	var buf [4]byte
	if err := host.GetFixedSizeField(src, field, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Uint32Optional reads an optional 4-byte integer field.
func Uint32Optional(src host.FieldSource, field int32) (uint32, bool, error) {
	var buf [4]byte
	present, err := host.GetFixedSizeFieldOptional(src, field, buf[:])
	if err != nil || !present {
		return 0, present, err
	}
	return binary.LittleEndian.Uint32(buf[:]), true, nil
}

// Uint64 reads a required 8-byte integer field.
func Uint64(src host.FieldSource, field int32) (uint64, error) {
	var buf [8]byte
	if err := host.GetFixedSizeField(src, field, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Uint64Optional reads an optional 8-byte integer field.
func Uint64Optional(src host.FieldSource, field int32) (uint64, bool, error) {
	var buf [8]byte
	present, err := host.GetFixedSizeFieldOptional(src, field, buf[:])
	if err != nil || !present {
		return 0, present, err
	}
	return binary.LittleEndian.Uint64(buf[:]), true, nil
}

// TransactionType reads the 2-byte transaction type discriminant.
func TransactionType(src host.FieldSource, field int32) (types.TransactionType, error) {
	var buf [2]byte
	if err := host.GetFixedSizeField(src, field, buf[:]); err != nil {
		return types.TxInvalid, err
	}
	return types.TransactionTypeFromBytes(buf), nil
}

// AccountID reads a required 20-byte account field.
func AccountID(src host.FieldSource, field int32) (types.AccountID, error) {
	var id types.AccountID
	if err := host.GetFixedSizeField(src, field, id[:]); err != nil {
		return types.AccountID{}, err
	}
	return id, nil
}

// AccountIDOptional reads an optional 20-byte account field.
func AccountIDOptional(src host.FieldSource, field int32) (types.AccountID, bool, error) {
	var id types.AccountID
	present, err := host.GetFixedSizeFieldOptional(src, field, id[:])
	if err != nil || !present {
		return types.AccountID{}, present, err
	}
	return id, true, nil
}

// PublicKey reads a required 33-byte public key field.
func PublicKey(src host.FieldSource, field int32) (types.PublicKey, error) {
	var pk types.PublicKey
	if err := host.GetFixedSizeField(src, field, pk[:]); err != nil {
		return types.PublicKey{}, err
	}
	return pk, nil
}

// Hash128 reads a required 16-byte hash field.
func Hash128(src host.FieldSource, field int32) (types.Hash128, error) {
	var h types.Hash128
	if err := host.GetFixedSizeField(src, field, h[:]); err != nil {
		return types.Hash128{}, err
	}
	return h, nil
}

// Hash128Optional reads an optional 16-byte hash field.
func Hash128Optional(src host.FieldSource, field int32) (types.Hash128, bool, error) {
	var h types.Hash128
	present, err := host.GetFixedSizeFieldOptional(src, field, h[:])
	if err != nil || !present {
		return types.Hash128{}, present, err
	}
	return h, true, nil
}

// Hash160 reads a required 20-byte hash field.
func Hash160(src host.FieldSource, field int32) (types.Hash160, error) {
	var h types.Hash160
	if err := host.GetFixedSizeField(src, field, h[:]); err != nil {
		return types.Hash160{}, err
	}
	return h, nil
}

// Hash256 reads a required 32-byte hash field.
func Hash256(src host.FieldSource, field int32) (types.Hash256, error) {
	var h types.Hash256
	if err := host.GetFixedSizeField(src, field, h[:]); err != nil {
		return types.Hash256{}, err
	}
	return h, nil
}

// Hash256Optional reads an optional 32-byte hash field.
func Hash256Optional(src host.FieldSource, field int32) (types.Hash256, bool, error) {
	var h types.Hash256
	present, err := host.GetFixedSizeFieldOptional(src, field, h[:])
	if err != nil || !present {
		return types.Hash256{}, present, err
	}
	return h, true, nil
}

// Amount reads a required amount field. The host writes between 8 and 48
// bytes depending on the asset kind; the envelope decoder sorts it out.
func Amount(src host.FieldSource, field int32) (types.Amount, error) {
	var buf [types.AmountSize]byte
	if _, err := host.GetVariableSizeField(src, field, buf[:]); err != nil {
		return types.Amount{}, err
	}
	return types.DecodeAmount(buf[:])
}

// AmountOptional reads an optional amount field.
func AmountOptional(src host.FieldSource, field int32) (types.Amount, bool, error) {
	var buf [types.AmountSize]byte
	_, present, err := host.GetVariableSizeFieldOptional(src, field, buf[:])
	if err != nil || !present {
		return types.Amount{}, present, err
	}
	a, err := types.DecodeAmount(buf[:])
	if err != nil {
		return types.Amount{}, false, err
	}
	return a, true, nil
}

// Blob reads a required variable-length field of at most capacity bytes.
func Blob(src host.FieldSource, field int32, capacity int) (types.Blob, error) {
	window := make([]byte, capacity)
	n, err := host.GetVariableSizeField(src, field, window)
	if err != nil {
		return types.Blob{}, err
	}
	return types.NewBlob(window[:n]), nil
}

// BlobOptional reads an optional variable-length field of at most capacity
// bytes.
func BlobOptional(src host.FieldSource, field int32, capacity int) (types.Blob, bool, error) {
	window := make([]byte, capacity)
	n, present, err := host.GetVariableSizeFieldOptional(src, field, window)
	if err != nil || !present {
		return types.Blob{}, present, err
	}
	return types.NewBlob(window[:n]), true, nil
}
