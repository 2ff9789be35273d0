// Package currenttx reads typed fields from the transaction an escrow
// program is executing under. Today that transaction is always an
// EscrowFinish; the common accessors are split out so future transactor
// types can share them.
package currenttx

import (
	"github.com/LeJamon/xrpl-wasm-stdlib/core/fields"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/locator"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/sfield"
)

// ArrayLen returns the number of entries in an array field of the current
// transaction, such as Memos.
func ArrayLen(field sfield.SField) (int32, error) {
	code := host.GetTxArrayLen(field.Code())
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return code, nil
}

// NestedField reads the field addressed by loc into out and returns the
// number of bytes written.
func NestedField(loc *locator.Locator, out []byte) (int, error) {
	code := host.GetTxNestedField(loc.Bytes(), out)
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return int(code), nil
}

// NestedArrayLen returns the length of the array field addressed by loc.
func NestedArrayLen(loc *locator.Locator) (int32, error) {
	code := host.GetTxNestedArrayLen(loc.Bytes())
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return code, nil
}

// EscrowFinish is the transaction under execution. It carries no state;
// every method is a host read.
type EscrowFinish struct{}

// Account returns the address that submitted the transaction.
func (EscrowFinish) Account() (types.AccountID, error) {
	return fields.AccountID(host.CurrentTxSource, sfield.Account.Code())
}

// TransactionType returns the transaction type discriminant.
func (EscrowFinish) TransactionType() (types.TransactionType, error) {
	return fields.TransactionType(host.CurrentTxSource, sfield.TransactionType.Code())
}

// ComputationAllowance returns the compute budget granted to the finish
// function.
func (EscrowFinish) ComputationAllowance() (uint32, error) {
	return fields.Uint32(host.CurrentTxSource, sfield.ComputationAllowance.Code())
}

// Fee returns the transaction fee in drops.
func (EscrowFinish) Fee() (types.Amount, error) {
	return fields.Amount(host.CurrentTxSource, sfield.Fee.Code())
}

// Sequence returns the sending account's transaction sequence. Zero means
// the transaction consumes a Ticket instead.
func (EscrowFinish) Sequence() (uint32, error) {
	return fields.Uint32(host.CurrentTxSource, sfield.Sequence.Code())
}

// AccountTxnID returns the hash the sender's previous transaction must
// match, when the sender set one.
func (EscrowFinish) AccountTxnID() (types.Hash256, bool, error) {
	return fields.Hash256Optional(host.CurrentTxSource, sfield.AccountTxnID.Code())
}

// Flags returns the transaction flags, when set.
func (EscrowFinish) Flags() (uint32, bool, error) {
	return fields.Uint32Optional(host.CurrentTxSource, sfield.Flags.Code())
}

// LastLedgerSequence returns the highest ledger index the transaction may
// appear in, when set.
func (EscrowFinish) LastLedgerSequence() (uint32, bool, error) {
	return fields.Uint32Optional(host.CurrentTxSource, sfield.LastLedgerSequence.Code())
}

// NetworkID returns the chain the transaction is meant for, when set.
func (EscrowFinish) NetworkID() (uint32, bool, error) {
	return fields.Uint32Optional(host.CurrentTxSource, sfield.NetworkID.Code())
}

// SourceTag returns the sender's source tag, when set.
func (EscrowFinish) SourceTag() (uint32, bool, error) {
	return fields.Uint32Optional(host.CurrentTxSource, sfield.SourceTag.Code())
}

// SigningPubKey returns the public key the transaction signature
// verifies against.
func (EscrowFinish) SigningPubKey() (types.PublicKey, error) {
	return fields.PublicKey(host.CurrentTxSource, sfield.SigningPubKey.Code())
}

// TicketSequence returns the Ticket consumed instead of a sequence number,
// when the transaction uses one.
func (EscrowFinish) TicketSequence() (uint32, bool, error) {
	return fields.Uint32Optional(host.CurrentTxSource, sfield.TicketSequence.Code())
}

// TxnSignature returns the transaction signature.
func (EscrowFinish) TxnSignature() (types.Blob, error) {
	return fields.Blob(host.CurrentTxSource, sfield.TxnSignature.Code(), types.SignatureBlobSize)
}

// MemoCount returns the number of entries in the Memos array.
func (EscrowFinish) MemoCount() (int32, error) {
	return ArrayLen(sfield.Memos)
}

// Owner returns the account that funded the escrow being finished.
func (EscrowFinish) Owner() (types.AccountID, error) {
	return fields.AccountID(host.CurrentTxSource, sfield.Owner.Code())
}

// OfferSequence returns the sequence of the EscrowCreate transaction that
// created the escrow.
func (EscrowFinish) OfferSequence() (uint32, error) {
	return fields.Uint32(host.CurrentTxSource, sfield.OfferSequence.Code())
}

// Condition returns the PREIMAGE-SHA-256 crypto-condition of the escrow,
// when one was attached.
func (EscrowFinish) Condition() (types.Blob, bool, error) {
	return fields.BlobOptional(host.CurrentTxSource, sfield.Condition.Code(), types.ConditionBlobSize)
}

// Fulfillment returns the fulfillment for the escrow condition, when one
// was attached.
func (EscrowFinish) Fulfillment() (types.Blob, bool, error) {
	return fields.BlobOptional(host.CurrentTxSource, sfield.Fulfillment.Code(), types.FulfillmentBlobSize)
}
