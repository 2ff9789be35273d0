package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/emulator"
	"github.com/LeJamon/xrpl-wasm-stdlib/internal/addresscodec"
	"github.com/LeJamon/xrpl-wasm-stdlib/sfield"
)

// Fixture file structures. One fixture describes everything a finish
// invocation sees: the ledger header, the EscrowFinish transaction, the
// escrow entry under execution and any other entries the program may cache.

// Fixture is the root of a fixture file.
type Fixture struct {
	Ledger     LedgerFixture    `json:"ledger"`
	Tx         TxFixture        `json:"tx"`
	Escrow     EscrowFixture    `json:"escrow"`
	Accounts   []AccountFixture `json:"accounts"`
	Amendments []string         `json:"amendments"`
}

// LedgerFixture is the header of the ledger under construction.
type LedgerFixture struct {
	Sequence        uint32 `json:"sequence"`
	ParentCloseTime uint32 `json:"parent_close_time"`
	ParentHash      string `json:"parent_hash"`
	BaseFee         uint32 `json:"base_fee"`
}

// TxFixture is the EscrowFinish transaction.
type TxFixture struct {
	Account              string   `json:"account"`
	Owner                string   `json:"owner"`
	OfferSequence        uint32   `json:"offer_sequence"`
	Sequence             uint32   `json:"sequence"`
	FeeDrops             int64    `json:"fee_drops"`
	ComputationAllowance uint32   `json:"computation_allowance"`
	Condition            string   `json:"condition,omitempty"`
	Fulfillment          string   `json:"fulfillment,omitempty"`
	SourceTag            *uint32  `json:"source_tag,omitempty"`
	Memos                []string `json:"memos,omitempty"`
}

// EscrowFixture is the escrow entry being finished.
type EscrowFixture struct {
	Account           string  `json:"account"`
	Destination       string  `json:"destination"`
	AmountDrops       int64   `json:"amount_drops"`
	FinishAfter       *uint32 `json:"finish_after,omitempty"`
	CancelAfter       *uint32 `json:"cancel_after,omitempty"`
	Condition         string  `json:"condition,omitempty"`
	DestinationTag    *uint32 `json:"destination_tag,omitempty"`
	Data              string  `json:"data,omitempty"`
	OwnerNode         uint64  `json:"owner_node"`
	PreviousTxnID     string  `json:"previous_txn_id"`
	PreviousTxnLgrSeq uint32  `json:"previous_txn_lgr_seq"`
}

// AccountFixture seeds an AccountRoot entry.
type AccountFixture struct {
	Address      string `json:"address"`
	BalanceDrops int64  `json:"balance_drops"`
	Sequence     uint32 `json:"sequence"`
	OwnerCount   uint32 `json:"owner_count"`
	Flags        uint32 `json:"flags"`
}

// LoadFixture parses a fixture file and builds the emulator it describes.
func LoadFixture(path string) (*emulator.Emulator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f Fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f.Build()
}

// Build assembles the emulator state the fixture describes.
func (f *Fixture) Build() (*emulator.Emulator, error) {
	em := emulator.New()

	parentHash, err := hash256Field(f.Ledger.ParentHash, "ledger.parent_hash")
	if err != nil {
		return nil, err
	}
	em.SetLedgerHeader(f.Ledger.Sequence, f.Ledger.ParentCloseTime, parentHash, f.Ledger.BaseFee)

	for _, a := range f.Amendments {
		id, err := hash256Field(a, "amendments")
		if err != nil {
			return nil, err
		}
		em.EnableAmendment(id)
	}

	tx, err := f.buildTx()
	if err != nil {
		return nil, err
	}
	em.SetTx(tx)

	escrow, err := f.buildEscrow()
	if err != nil {
		return nil, err
	}
	em.SetCurrentEscrow(escrow)

	// The escrow entry is also reachable by its keylet.
	owner, err := accountField(f.Escrow.Account, "escrow.account")
	if err != nil {
		return nil, err
	}
	em.SetEntry(emulator.EscrowKeyletKey(owner, f.Tx.OfferSequence), escrow)

	for i, a := range f.Accounts {
		entry, id, err := buildAccountRoot(a)
		if err != nil {
			return nil, fmt.Errorf("accounts[%d]: %w", i, err)
		}
		em.SetEntry(emulator.AccountKeyletKey(id), entry)
	}
	return em, nil
}

func (f *Fixture) buildTx() (*emulator.Value, error) {
	account, err := accountField(f.Tx.Account, "tx.account")
	if err != nil {
		return nil, err
	}
	owner, err := accountField(f.Tx.Owner, "tx.owner")
	if err != nil {
		return nil, err
	}

	tx := emulator.Object().
		SetTransactionType(sfield.TransactionType.Code(), types.TxEscrowFinish).
		SetAccountID(sfield.Account.Code(), account).
		SetAccountID(sfield.Owner.Code(), owner).
		SetUint32(sfield.OfferSequence.Code(), f.Tx.OfferSequence).
		SetUint32(sfield.Sequence.Code(), f.Tx.Sequence).
		SetUint32(sfield.ComputationAllowance.Code(), f.Tx.ComputationAllowance).
		SetAmount(sfield.Fee.Code(), types.XRPAmount(f.Tx.FeeDrops))

	if f.Tx.SourceTag != nil {
		tx.SetUint32(sfield.SourceTag.Code(), *f.Tx.SourceTag)
	}
	if err := setOptionalBlob(tx, sfield.Condition.Code(), f.Tx.Condition, "tx.condition"); err != nil {
		return nil, err
	}
	if err := setOptionalBlob(tx, sfield.Fulfillment.Code(), f.Tx.Fulfillment, "tx.fulfillment"); err != nil {
		return nil, err
	}

	if len(f.Tx.Memos) > 0 {
		memos := make([]*emulator.Value, 0, len(f.Tx.Memos))
		for i, m := range f.Tx.Memos {
			data, err := hexField(m, fmt.Sprintf("tx.memos[%d]", i))
			if err != nil {
				return nil, err
			}
			memo := emulator.Object().SetBlob(sfield.MemoData.Code(), data)
			memos = append(memos, emulator.Object().Set(sfield.Memo.Code(), memo))
		}
		tx.Set(sfield.Memos.Code(), emulator.Array(memos...))
	}
	return tx, nil
}

func (f *Fixture) buildEscrow() (*emulator.Value, error) {
	account, err := accountField(f.Escrow.Account, "escrow.account")
	if err != nil {
		return nil, err
	}
	destination, err := accountField(f.Escrow.Destination, "escrow.destination")
	if err != nil {
		return nil, err
	}
	prevTxn, err := hash256Field(f.Escrow.PreviousTxnID, "escrow.previous_txn_id")
	if err != nil {
		return nil, err
	}

	escrow := emulator.Object().
		SetAccountID(sfield.Account.Code(), account).
		SetAccountID(sfield.Destination.Code(), destination).
		SetAmount(sfield.Amount.Code(), types.XRPAmount(f.Escrow.AmountDrops)).
		SetUint64(sfield.OwnerNode.Code(), f.Escrow.OwnerNode).
		SetHash256(sfield.PreviousTxnID.Code(), prevTxn).
		SetUint32(sfield.PreviousTxnLgrSeq.Code(), f.Escrow.PreviousTxnLgrSeq)

	if f.Escrow.FinishAfter != nil {
		escrow.SetUint32(sfield.FinishAfter.Code(), *f.Escrow.FinishAfter)
	}
	if f.Escrow.CancelAfter != nil {
		escrow.SetUint32(sfield.CancelAfter.Code(), *f.Escrow.CancelAfter)
	}
	if f.Escrow.DestinationTag != nil {
		escrow.SetUint32(sfield.DestinationTag.Code(), *f.Escrow.DestinationTag)
	}
	if err := setOptionalBlob(escrow, sfield.Condition.Code(), f.Escrow.Condition, "escrow.condition"); err != nil {
		return nil, err
	}
	if err := setOptionalBlob(escrow, sfield.Data.Code(), f.Escrow.Data, "escrow.data"); err != nil {
		return nil, err
	}
	return escrow, nil
}

func buildAccountRoot(a AccountFixture) (*emulator.Value, types.AccountID, error) {
	id, err := accountField(a.Address, "address")
	if err != nil {
		return nil, types.AccountID{}, err
	}
	entry := emulator.Object().
		SetAccountID(sfield.Account.Code(), id).
		SetAmount(sfield.Balance.Code(), types.XRPAmount(a.BalanceDrops)).
		SetUint32(sfield.Sequence.Code(), a.Sequence).
		SetUint32(sfield.OwnerCount.Code(), a.OwnerCount).
		SetUint32(sfield.Flags.Code(), a.Flags).
		SetUint16(sfield.LedgerEntryType.Code(), 0x0061).
		SetHash256(sfield.PreviousTxnID.Code(), types.Hash256{}).
		SetUint32(sfield.PreviousTxnLgrSeq.Code(), 0)
	return entry, id, nil
}

func accountField(address, name string) (types.AccountID, error) {
	if address == "" {
		return types.AccountID{}, fmt.Errorf("%s: missing account", name)
	}
	raw, err := addresscodec.DecodeClassicAddressToAccountID(address)
	if err != nil {
		return types.AccountID{}, fmt.Errorf("%s: %w", name, err)
	}
	return types.AccountID(raw), nil
}

func hexField(s, name string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return data, nil
}

func hash256Field(s, name string) (types.Hash256, error) {
	data, err := hexField(s, name)
	if err != nil {
		return types.Hash256{}, err
	}
	if len(data) != types.Hash256Size {
		return types.Hash256{}, fmt.Errorf("%s: want %d bytes, got %d", name, types.Hash256Size, len(data))
	}
	var h types.Hash256
	copy(h[:], data)
	return h, nil
}

func setOptionalBlob(v *emulator.Value, field int32, s, name string) error {
	if s == "" {
		return nil
	}
	data, err := hexField(s, name)
	if err != nil {
		return err
	}
	v.SetBlob(field, data)
	return nil
}
