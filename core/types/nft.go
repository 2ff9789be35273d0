package types

import (
	"encoding/binary"

	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

// NFTokenIDSize is the byte length of an NFToken identifier.
const NFTokenIDSize = 32

// NFToken flag bits, stored big-endian in the first two bytes of the ID.
const (
	NftBurnable     uint16 = 0x0001
	NftOnlyXRP      uint16 = 0x0002
	NftTrustLine    uint16 = 0x0004
	NftTransferable uint16 = 0x0008
)

// NftFlags wraps the flag bits of an NFToken.
type NftFlags uint16

func (f NftFlags) IsBurnable() bool     { return uint16(f)&NftBurnable != 0 }
func (f NftFlags) IsOnlyXRP() bool      { return uint16(f)&NftOnlyXRP != 0 }
func (f NftFlags) IsTrustLine() bool    { return uint16(f)&NftTrustLine != 0 }
func (f NftFlags) IsTransferable() bool { return uint16(f)&NftTransferable != 0 }

// NFToken is a 32-byte non-fungible token identifier. Its components
// (flags, fee, issuer, taxon, sequence) are resolved through dedicated host
// calls rather than sliced out locally: the taxon in particular is stored
// scrambled on the ledger and only the host knows the unscrambling.
type NFToken [NFTokenIDSize]byte

// Bytes returns the identifier as a slice for host calls.
func (n NFToken) Bytes() []byte {
	return n[:]
}

// Flags returns the token's flag bits.
func (n NFToken) Flags() (NftFlags, error) {
	code := host.GetNFTFlags(n[:])
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return NftFlags(code), nil
}

// TransferFee returns the token's transfer fee in 1/100,000 units
// (1000 = 1%, capped at 50,000 = 50%).
func (n NFToken) TransferFee() (uint16, error) {
	code := host.GetNFTTransferFee(n[:])
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return uint16(code), nil
}

// Issuer returns the account that minted the token.
func (n NFToken) Issuer() (AccountID, error) {
	var issuer AccountID
	code := host.GetNFTIssuer(n[:], issuer[:])
	if err := host.CheckCodeExpectedBytes(code, AccountIDSize); err != nil {
		return AccountID{}, err
	}
	return issuer, nil
}

// Taxon returns the issuer-defined grouping value.
func (n NFToken) Taxon() (uint32, error) {
	var buf [4]byte
	code := host.GetNFTTaxon(n[:], buf[:])
	if err := host.CheckCodeExpectedBytes(code, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// TokenSequence returns the mint sequence number of the token.
func (n NFToken) TokenSequence() (uint32, error) {
	var buf [4]byte
	code := host.GetNFTSerial(n[:], buf[:])
	if err := host.CheckCodeExpectedBytes(code, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// URI returns the token's URI as held on the given owner's NFToken page.
func (n NFToken) URI(owner AccountID) (Blob, error) {
	var buf [URIBlobSize]byte
	code := host.GetNFT(owner[:], n[:], buf[:])
	if code < 0 {
		return Blob{}, host.ErrorFromCode(code)
	}
	return blobFrom(buf[:], int(code)), nil
}
