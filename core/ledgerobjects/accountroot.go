package ledgerobjects

import (
	"github.com/LeJamon/xrpl-wasm-stdlib/core/fields"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/keylets"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/sfield"
)

// AccountRoot is a typed view over an AccountRoot ledger entry cached in a
// slot.
type AccountRoot struct {
	view
	slot int32
}

// AccountRootAt returns the account entry cached in the given slot.
func AccountRootAt(slot int32) AccountRoot {
	return AccountRoot{view: view{src: host.LedgerObjSource(slot)}, slot: slot}
}

// Slot returns the slot the entry was read from.
func (a AccountRoot) Slot() int32 { return a.slot }

// Account returns the address the entry belongs to.
func (a AccountRoot) Account() (types.AccountID, error) {
	return fields.AccountID(a.src, sfield.Account.Code())
}

// AccountTxnID returns the hash of the account's last transaction, when
// tracked.
func (a AccountRoot) AccountTxnID() (types.Hash256, bool, error) {
	return fields.Hash256Optional(a.src, sfield.AccountTxnID.Code())
}

// AMMID returns the AMM entry this pseudo-account backs, when it is one.
func (a AccountRoot) AMMID() (types.Hash256, bool, error) {
	return fields.Hash256Optional(a.src, sfield.AMMID.Code())
}

// Balance returns the account's balance. Absent on pseudo-accounts.
func (a AccountRoot) Balance() (types.Amount, bool, error) {
	return fields.AmountOptional(a.src, sfield.Balance.Code())
}

// BurnedNFTokens returns how many NFTs the account has burned, when set.
func (a AccountRoot) BurnedNFTokens() (uint32, bool, error) {
	return fields.Uint32Optional(a.src, sfield.BurnedNFTokens.Code())
}

// Domain returns the domain associated with the account, when set.
func (a AccountRoot) Domain() (types.Blob, bool, error) {
	return fields.BlobOptional(a.src, sfield.Domain.Code(), types.DomainBlobSize)
}

// EmailHash returns the md5 hash used for avatars, when set.
func (a AccountRoot) EmailHash() (types.Hash128, bool, error) {
	return fields.Hash128Optional(a.src, sfield.EmailHash.Code())
}

// FirstNFTokenSequence returns the sequence of the account's first minted
// NFT, when set.
func (a AccountRoot) FirstNFTokenSequence() (uint32, bool, error) {
	return fields.Uint32Optional(a.src, sfield.FirstNFTokenSequence.Code())
}

// MessageKey returns the key used to send encrypted messages, when set.
func (a AccountRoot) MessageKey() (types.Blob, bool, error) {
	return fields.BlobOptional(a.src, sfield.MessageKey.Code(), types.PublicKeySize)
}

// MintedNFTokens returns how many NFTs the account has minted, when set.
func (a AccountRoot) MintedNFTokens() (uint32, bool, error) {
	return fields.Uint32Optional(a.src, sfield.MintedNFTokens.Code())
}

// NFTokenMinter returns the account authorized to mint on this account's
// behalf, when set.
func (a AccountRoot) NFTokenMinter() (types.AccountID, bool, error) {
	return fields.AccountIDOptional(a.src, sfield.NFTokenMinter.Code())
}

// OwnerCount returns the number of objects the account owns in the ledger.
func (a AccountRoot) OwnerCount() (uint32, error) {
	return fields.Uint32(a.src, sfield.OwnerCount.Code())
}

// PreviousTxnID returns the hash of the transaction that last modified the
// entry.
func (a AccountRoot) PreviousTxnID() (types.Hash256, error) {
	return fields.Hash256(a.src, sfield.PreviousTxnID.Code())
}

// PreviousTxnLgrSeq returns the ledger index that last modified the entry.
func (a AccountRoot) PreviousTxnLgrSeq() (uint32, error) {
	return fields.Uint32(a.src, sfield.PreviousTxnLgrSeq.Code())
}

// RegularKey returns the account's regular key, when set.
func (a AccountRoot) RegularKey() (types.AccountID, bool, error) {
	return fields.AccountIDOptional(a.src, sfield.RegularKey.Code())
}

// Sequence returns the next valid transaction sequence for the account.
func (a AccountRoot) Sequence() (uint32, error) {
	return fields.Uint32(a.src, sfield.Sequence.Code())
}

// TicketCount returns how many Tickets the account holds, when set.
func (a AccountRoot) TicketCount() (uint32, bool, error) {
	return fields.Uint32Optional(a.src, sfield.TicketCount.Code())
}

// TickSize returns the tick size for offers on the account's issuances,
// when set.
func (a AccountRoot) TickSize() (uint8, bool, error) {
	return fields.Uint8Optional(a.src, sfield.TickSize.Code())
}

// TransferRate returns the fee the account charges on IOU transfers, when
// set.
func (a AccountRoot) TransferRate() (uint32, bool, error) {
	return fields.Uint32Optional(a.src, sfield.TransferRate.Code())
}

// WalletLocator returns the account's wallet locator, when set.
func (a AccountRoot) WalletLocator() (types.Hash256, bool, error) {
	return fields.Hash256Optional(a.src, sfield.WalletLocator.Code())
}

// GetAccountBalance caches the AccountRoot entry for account and returns
// its balance. The boolean is false when the entry has no Balance field.
func GetAccountBalance(account types.AccountID) (types.Amount, bool, error) {
	k, err := keylets.Account(account)
	if err != nil {
		return types.Amount{}, false, err
	}
	slot, err := Cache(k)
	if err != nil {
		return types.Amount{}, false, err
	}
	return AccountRootAt(slot).Balance()
}
