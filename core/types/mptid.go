package types

import "encoding/binary"

// MptIDSize is the byte length of a multi-purpose token issuance ID.
const MptIDSize = 24

// MptID identifies an MPT issuance: the issuer's 32-bit sequence number in
// big-endian followed by the issuer's account ID.
type MptID [MptIDSize]byte

// NewMptID builds an issuance ID from the creating transaction's sequence
// number and the issuer.
func NewMptID(sequence uint32, issuer AccountID) MptID {
	var id MptID
	binary.BigEndian.PutUint32(id[0:4], sequence)
	copy(id[4:24], issuer[:])
	return id
}

// Sequence returns the issuance sequence number.
func (id MptID) Sequence() uint32 {
	return binary.BigEndian.Uint32(id[0:4])
}

// Issuer returns the issuing account.
func (id MptID) Issuer() AccountID {
	var issuer AccountID
	copy(issuer[:], id[4:24])
	return issuer
}

// Bytes returns the ID as a slice for host calls.
func (id MptID) Bytes() []byte {
	return id[:]
}
