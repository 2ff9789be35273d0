package ledgerobjects

import (
	"github.com/LeJamon/xrpl-wasm-stdlib/core/fields"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/sfield"
)

// Escrow is a typed view over an Escrow ledger entry. CurrentEscrow returns
// the entry the program runs inside; EscrowAt reads one cached in a slot.
type Escrow struct {
	view
	slot int32
}

// CurrentEscrow returns the escrow entry under execution.
func CurrentEscrow() Escrow {
	return Escrow{view: view{src: host.CurrentLedgerObjSource}, slot: -1}
}

// EscrowAt returns the escrow entry cached in the given slot.
func EscrowAt(slot int32) Escrow {
	return Escrow{view: view{src: host.LedgerObjSource(slot)}, slot: slot}
}

// Slot returns the slot the escrow was read from, or -1 for the entry
// under execution.
func (e Escrow) Slot() int32 { return e.slot }

// Account returns the address that funded the escrow.
func (e Escrow) Account() (types.AccountID, error) {
	return fields.AccountID(e.src, sfield.Account.Code())
}

// Amount returns the escrowed amount.
func (e Escrow) Amount() (types.Amount, error) {
	return fields.Amount(e.src, sfield.Amount.Code())
}

// CancelAfter returns the expiration time, when the escrow has one.
func (e Escrow) CancelAfter() (uint32, bool, error) {
	return fields.Uint32Optional(e.src, sfield.CancelAfter.Code())
}

// Condition returns the crypto-condition the escrow requires, when set.
func (e Escrow) Condition() (types.Blob, bool, error) {
	return fields.BlobOptional(e.src, sfield.Condition.Code(), types.ConditionBlobSize)
}

// Destination returns the address the funds are released to.
func (e Escrow) Destination() (types.AccountID, error) {
	return fields.AccountID(e.src, sfield.Destination.Code())
}

// DestinationNode returns a hint to the destination's owner directory
// page, when set.
func (e Escrow) DestinationNode() (uint64, bool, error) {
	return fields.Uint64Optional(e.src, sfield.DestinationNode.Code())
}

// DestinationTag returns the destination tag, when set.
func (e Escrow) DestinationTag() (uint32, bool, error) {
	return fields.Uint32Optional(e.src, sfield.DestinationTag.Code())
}

// FinishAfter returns the earliest time the escrow may be finished, when
// set.
func (e Escrow) FinishAfter() (uint32, bool, error) {
	return fields.Uint32Optional(e.src, sfield.FinishAfter.Code())
}

// OwnerNode returns a hint to the owner's directory page.
func (e Escrow) OwnerNode() (uint64, error) {
	return fields.Uint64(e.src, sfield.OwnerNode.Code())
}

// PreviousTxnID returns the hash of the transaction that last modified
// the entry.
func (e Escrow) PreviousTxnID() (types.Hash256, error) {
	return fields.Hash256(e.src, sfield.PreviousTxnID.Code())
}

// PreviousTxnLgrSeq returns the ledger index that last modified the entry.
func (e Escrow) PreviousTxnLgrSeq() (uint32, error) {
	return fields.Uint32(e.src, sfield.PreviousTxnLgrSeq.Code())
}

// SourceTag returns the sender's source tag, when set.
func (e Escrow) SourceTag() (uint32, bool, error) {
	return fields.Uint32Optional(e.src, sfield.SourceTag.Code())
}

// FinishFunction returns the compiled finish program attached to the
// escrow, when it carries one.
func (e Escrow) FinishFunction() (types.Blob, bool, error) {
	return fields.BlobOptional(e.src, sfield.FinishFunction.Code(), types.DefaultBlobSize)
}

// Data returns the guest-writable state blob of the escrow.
func (e Escrow) Data() (types.ContractData, error) {
	var d types.ContractData
	n, err := host.GetVariableSizeField(e.src, sfield.Data.Code(), d.Window())
	if err != nil {
		return types.ContractData{}, err
	}
	d.SetLen(n)
	return d, nil
}

// UpdateCurrentEscrowData replaces the Data field of the escrow under
// execution. Earlier bytes are discarded; the new length is exactly
// data.Len().
func UpdateCurrentEscrowData(data types.ContractData) error {
	return host.CheckCodeExpectedBytes(host.UpdateData(data.Bytes()), data.Len())
}
