// Package keylets derives ledger object keys (keylets) through the host.
// A keylet uniquely identifies a ledger entry and is the input to
// host.CacheLedgerObj when an escrow program wants to inspect other
// objects in the ledger.
package keylets

import (
	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

// KeyletSize is the length of every keylet the host produces.
const KeyletSize = 32

// Keylet is the 32-byte key of a ledger entry.
type Keylet [KeyletSize]byte

// Bytes returns the keylet as a slice.
func (k Keylet) Bytes() []byte { return k[:] }

// fromHostCall runs a keylet host function into a fresh 32-byte buffer and
// validates that the host wrote exactly KeyletSize bytes.
func fromHostCall(call func(out []byte) int32) (Keylet, error) {
	var k Keylet
	code := call(k[:])
	if err := host.CheckCodeExpectedBytes(code, KeyletSize); err != nil {
		return Keylet{}, err
	}
	return k, nil
}

// Account derives the keylet of an AccountRoot entry.
func Account(account types.AccountID) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.AccountKeylet(account.Bytes(), out)
	})
}

// Amm derives the keylet of an AMM entry for an asset pair.
func Amm(issue1, issue2 types.Issue) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.AmmKeylet(issue1.Bytes(), issue2.Bytes(), out)
	})
}

// Check derives the keylet of a Check entry.
func Check(owner types.AccountID, sequence uint32) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.CheckKeylet(owner.Bytes(), int32(sequence), out)
	})
}

// Credential derives the keylet of a Credential entry. credentialType is the
// issuer-defined type blob, at most 64 bytes.
func Credential(subject, issuer types.AccountID, credentialType []byte) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.CredentialKeylet(subject.Bytes(), issuer.Bytes(), credentialType, out)
	})
}

// Delegate derives the keylet of a Delegate entry.
func Delegate(account, authorize types.AccountID) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.DelegateKeylet(account.Bytes(), authorize.Bytes(), out)
	})
}

// DepositPreauth derives the keylet of a DepositPreauth entry.
func DepositPreauth(account, authorize types.AccountID) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.DepositPreauthKeylet(account.Bytes(), authorize.Bytes(), out)
	})
}

// Did derives the keylet of a DID entry.
func Did(account types.AccountID) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.DidKeylet(account.Bytes(), out)
	})
}

// Escrow derives the keylet of an Escrow entry created by owner with the
// given transaction sequence.
func Escrow(owner types.AccountID, sequence uint32) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.EscrowKeylet(owner.Bytes(), int32(sequence), out)
	})
}

// Line derives the keylet of a RippleState (trust line) entry between two
// accounts for the given currency.
func Line(account1, account2 types.AccountID, currency types.Currency) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.LineKeylet(account1.Bytes(), account2.Bytes(), currency.Bytes(), out)
	})
}

// MptIssuance derives the keylet of an MPTokenIssuance entry.
func MptIssuance(issuer types.AccountID, sequence uint32) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.MptIssuanceKeylet(issuer.Bytes(), int32(sequence), out)
	})
}

// Mptoken derives the keylet of an MPToken entry held by holder.
func Mptoken(mptID types.MptID, holder types.AccountID) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.MptokenKeylet(mptID.Bytes(), holder.Bytes(), out)
	})
}

// NftOffer derives the keylet of an NFTokenOffer entry.
func NftOffer(owner types.AccountID, sequence uint32) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.NftOfferKeylet(owner.Bytes(), int32(sequence), out)
	})
}

// Offer derives the keylet of an Offer entry.
func Offer(owner types.AccountID, sequence uint32) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.OfferKeylet(owner.Bytes(), int32(sequence), out)
	})
}

// Oracle derives the keylet of an Oracle entry.
func Oracle(owner types.AccountID, documentID uint32) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.OracleKeylet(owner.Bytes(), int32(documentID), out)
	})
}

// Paychan derives the keylet of a PayChannel entry.
func Paychan(account, destination types.AccountID, sequence uint32) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.PaychanKeylet(account.Bytes(), destination.Bytes(), int32(sequence), out)
	})
}

// PermissionedDomain derives the keylet of a PermissionedDomain entry.
func PermissionedDomain(account types.AccountID, sequence uint32) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.PermissionedDomainKeylet(account.Bytes(), int32(sequence), out)
	})
}

// Signers derives the keylet of a SignerList entry.
func Signers(account types.AccountID) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.SignersKeylet(account.Bytes(), out)
	})
}

// Ticket derives the keylet of a Ticket entry.
func Ticket(owner types.AccountID, sequence uint32) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.TicketKeylet(owner.Bytes(), int32(sequence), out)
	})
}

// Vault derives the keylet of a Vault entry.
func Vault(account types.AccountID, sequence uint32) (Keylet, error) {
	return fromHostCall(func(out []byte) int32 {
		return host.VaultKeylet(account.Bytes(), int32(sequence), out)
	})
}
