package emulator

import (
	"bytes"
	"encoding/binary"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/internal/crypto"
)

// Ledger namespace identifiers, matching the LedgerNameSpace enum in
// rippled.
const (
	spaceAccount    uint16 = 'a'
	spaceRippleDir  uint16 = 'r'
	spaceOffer      uint16 = 'o'
	spaceEscrow     uint16 = 'u'
	spaceTicket     uint16 = 'T'
	spaceSignerList uint16 = 'S'
	spaceCheck      uint16 = 'C'
	spaceDepPreauth uint16 = 'p'
	spacePaychan    uint16 = 'x'
	spaceNFTokenOff uint16 = 'q'
	spaceAMM        uint16 = 'A'
	spaceDID        uint16 = 'I'
	spaceOracle     uint16 = 'R'
	spaceMPTIssu    uint16 = '~'
	spaceMPToken    uint16 = 't'
	spaceCredential uint16 = 'D'
	spaceDelegate   uint16 = 'E'
	spacePermDomain uint16 = 'm'
	spaceVault      uint16 = 'V'
)

// indexHash computes a keylet key by hashing the namespace and data.
func indexHash(space uint16, data ...[]byte) [32]byte {
	spaceBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(spaceBytes, space)

	inputs := make([][]byte, 0, len(data)+1)
	inputs = append(inputs, spaceBytes)
	inputs = append(inputs, data...)

	return crypto.Sha512Half(inputs...)
}

func beUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// AccountKeyletKey derives the key of an AccountRoot entry. The exported
// derivations let fixtures place entries where the guest will look for
// them.
func AccountKeyletKey(account types.AccountID) [32]byte {
	return indexHash(spaceAccount, account[:])
}

// EscrowKeyletKey derives the key of an Escrow entry.
func EscrowKeyletKey(owner types.AccountID, sequence uint32) [32]byte {
	return indexHash(spaceEscrow, owner[:], beUint32(sequence))
}

// OfferKeyletKey derives the key of an Offer entry.
func OfferKeyletKey(owner types.AccountID, sequence uint32) [32]byte {
	return indexHash(spaceOffer, owner[:], beUint32(sequence))
}

// LineKeyletKey derives the key of a RippleState entry. The accounts are
// ordered so both ends derive the same key.
func LineKeyletKey(account1, account2 types.AccountID, currency types.Currency) [32]byte {
	low, high := account1, account2
	if bytes.Compare(account2[:], account1[:]) < 0 {
		low, high = account2, account1
	}
	return indexHash(spaceRippleDir, low[:], high[:], currency.Bytes())
}

// keylet call plumbing shared by the Backend methods.
func writeKeylet(key [32]byte, out []byte) int32 {
	if len(out) < len(key) {
		return int32(host.BufferTooSmall)
	}
	copy(out, key[:])
	return int32(len(key))
}

func accountArg(b []byte) (types.AccountID, bool) {
	var id types.AccountID
	if len(b) != types.AccountIDSize {
		return id, false
	}
	copy(id[:], b)
	return id, true
}

func (e *Emulator) AccountKeylet(account, out []byte) int32 {
	id, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(AccountKeyletKey(id), out)
}

func (e *Emulator) AmmKeylet(issue1, issue2, out []byte) int32 {
	if _, err := types.IssueFromBytes(issue1); err != nil {
		return int32(host.InvalidParams)
	}
	if _, err := types.IssueFromBytes(issue2); err != nil {
		return int32(host.InvalidParams)
	}
	return writeKeylet(indexHash(spaceAMM, issue1, issue2), out)
}

func (e *Emulator) CheckKeylet(account []byte, sequence int32, out []byte) int32 {
	id, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spaceCheck, id[:], beUint32(uint32(sequence))), out)
}

func (e *Emulator) CredentialKeylet(subject, issuer, credType, out []byte) int32 {
	subj, ok := accountArg(subject)
	if !ok {
		return int32(host.InvalidAccount)
	}
	iss, ok := accountArg(issuer)
	if !ok {
		return int32(host.InvalidAccount)
	}
	if len(credType) == 0 || len(credType) > 64 {
		return int32(host.InvalidParams)
	}
	return writeKeylet(indexHash(spaceCredential, subj[:], iss[:], credType), out)
}

func (e *Emulator) DelegateKeylet(account, authorize, out []byte) int32 {
	acct, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	auth, ok := accountArg(authorize)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spaceDelegate, acct[:], auth[:]), out)
}

func (e *Emulator) DepositPreauthKeylet(account, authorize, out []byte) int32 {
	acct, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	auth, ok := accountArg(authorize)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spaceDepPreauth, acct[:], auth[:]), out)
}

func (e *Emulator) DidKeylet(account, out []byte) int32 {
	id, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spaceDID, id[:]), out)
}

func (e *Emulator) EscrowKeylet(account []byte, sequence int32, out []byte) int32 {
	id, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(EscrowKeyletKey(id, uint32(sequence)), out)
}

func (e *Emulator) LineKeylet(account1, account2, currency, out []byte) int32 {
	a1, ok := accountArg(account1)
	if !ok {
		return int32(host.InvalidAccount)
	}
	a2, ok := accountArg(account2)
	if !ok {
		return int32(host.InvalidAccount)
	}
	if len(currency) != types.CurrencySize {
		return int32(host.InvalidParams)
	}
	var cur types.Currency
	copy(cur[:], currency)
	return writeKeylet(LineKeyletKey(a1, a2, cur), out)
}

func (e *Emulator) MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	id, ok := accountArg(issuer)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spaceMPTIssu, id[:], beUint32(uint32(sequence))), out)
}

func (e *Emulator) MptokenKeylet(mptID, holder, out []byte) int32 {
	if len(mptID) != types.MptIDSize {
		return int32(host.InvalidParams)
	}
	h, ok := accountArg(holder)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spaceMPToken, mptID, h[:]), out)
}

func (e *Emulator) NftOfferKeylet(account []byte, sequence int32, out []byte) int32 {
	id, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spaceNFTokenOff, id[:], beUint32(uint32(sequence))), out)
}

func (e *Emulator) OfferKeylet(account []byte, sequence int32, out []byte) int32 {
	id, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(OfferKeyletKey(id, uint32(sequence)), out)
}

func (e *Emulator) OracleKeylet(account []byte, documentID int32, out []byte) int32 {
	id, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spaceOracle, id[:], beUint32(uint32(documentID))), out)
}

func (e *Emulator) PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32 {
	acct, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	dst, ok := accountArg(destination)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spacePaychan, acct[:], dst[:], beUint32(uint32(sequence))), out)
}

func (e *Emulator) PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32 {
	id, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spacePermDomain, id[:], beUint32(uint32(sequence))), out)
}

func (e *Emulator) SignersKeylet(account, out []byte) int32 {
	id, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	// Signer lists hash in owner page zero.
	return writeKeylet(indexHash(spaceSignerList, id[:], beUint32(0)), out)
}

func (e *Emulator) TicketKeylet(account []byte, sequence int32, out []byte) int32 {
	id, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spaceTicket, id[:], beUint32(uint32(sequence))), out)
}

func (e *Emulator) VaultKeylet(account []byte, sequence int32, out []byte) int32 {
	id, ok := accountArg(account)
	if !ok {
		return int32(host.InvalidAccount)
	}
	return writeKeylet(indexHash(spaceVault, id[:], beUint32(uint32(sequence))), out)
}
