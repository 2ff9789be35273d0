// Package types defines the typed primitives smart escrow programs exchange
// with the xrpld host: account identifiers, currencies, hashes, amounts and
// the opaque float used for IOU arithmetic. All wire layouts follow the
// XRPL STObject binary format.
package types

// AccountIDSize is the byte length of an XRPL account identifier.
const AccountIDSize = 20

// AccountID is a 20-byte account identifier, derived from a public key, used
// for senders, receivers and issuers throughout the ledger.
type AccountID [AccountIDSize]byte

// Bytes returns the identifier as a slice for host calls.
func (a AccountID) Bytes() []byte {
	return a[:]
}

// IsZero reports whether the identifier is all zeroes.
func (a AccountID) IsZero() bool {
	return a == AccountID{}
}
