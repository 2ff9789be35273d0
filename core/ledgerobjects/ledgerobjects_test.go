package ledgerobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/keylets"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/emulator"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/sfield"
)

// AccountRoot ledger entry type discriminant.
const ltAccountRoot = 0x0061

var (
	escrowOwner = types.AccountID{0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA}
	destination = types.AccountID{0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB, 0xBB}
)

func installLedger(t *testing.T) *emulator.Emulator {
	t.Helper()
	em := emulator.New()

	var prevTxn types.Hash256
	prevTxn[0] = 0x51

	em.SetCurrentEscrow(emulator.Object().
		SetAccountID(sfield.Account.Code(), escrowOwner).
		SetAccountID(sfield.Destination.Code(), destination).
		SetAmount(sfield.Amount.Code(), types.XRPAmount(5_000_000)).
		SetUint32(sfield.FinishAfter.Code(), 745_000_100).
		SetUint64(sfield.OwnerNode.Code(), 0).
		SetHash256(sfield.PreviousTxnID.Code(), prevTxn).
		SetUint32(sfield.PreviousTxnLgrSeq.Code(), 900).
		SetBlob(sfield.Data.Code(), []byte("v1")))

	em.SetEntry(emulator.AccountKeyletKey(destination), emulator.Object().
		SetUint16(sfield.LedgerEntryType.Code(), ltAccountRoot).
		SetUint32(sfield.Flags.Code(), 0).
		SetAccountID(sfield.Account.Code(), destination).
		SetAmount(sfield.Balance.Code(), types.XRPAmount(250_000_000)).
		SetUint32(sfield.Sequence.Code(), 12).
		SetUint32(sfield.OwnerCount.Code(), 2).
		SetHash256(sfield.PreviousTxnID.Code(), prevTxn).
		SetUint32(sfield.PreviousTxnLgrSeq.Code(), 800))

	prev := host.SetBackend(em)
	t.Cleanup(func() { host.SetBackend(prev) })
	return em
}

func TestCurrentEscrow(t *testing.T) {
	installLedger(t)
	escrow := CurrentEscrow()
	assert.Equal(t, int32(-1), escrow.Slot())

	account, err := escrow.Account()
	require.NoError(t, err)
	assert.Equal(t, escrowOwner, account)

	dst, err := escrow.Destination()
	require.NoError(t, err)
	assert.Equal(t, destination, dst)

	amount, err := escrow.Amount()
	require.NoError(t, err)
	assert.Equal(t, types.XRPAmount(5_000_000), amount)

	finishAfter, ok, err := escrow.FinishAfter()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(745_000_100), finishAfter)

	_, ok, err = escrow.CancelAfter()
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = escrow.Condition()
	require.NoError(t, err)
	assert.False(t, ok)

	ownerNode, err := escrow.OwnerNode()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), ownerNode)

	prevTxn, err := escrow.PreviousTxnID()
	require.NoError(t, err)
	assert.Equal(t, byte(0x51), prevTxn[0])

	lgrSeq, err := escrow.PreviousTxnLgrSeq()
	require.NoError(t, err)
	assert.Equal(t, uint32(900), lgrSeq)
}

func TestEscrowData(t *testing.T) {
	installLedger(t)

	data, err := CurrentEscrow().Data()
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data.Bytes())

	next := types.NewContractData([]byte("v2 with more state"))
	require.NoError(t, UpdateCurrentEscrowData(next))

	data, err = CurrentEscrow().Data()
	require.NoError(t, err)
	assert.Equal(t, []byte("v2 with more state"), data.Bytes())
}

func TestCacheAndReadAccountRoot(t *testing.T) {
	installLedger(t)

	k, err := keylets.Account(destination)
	require.NoError(t, err)

	slot, err := Cache(k)
	require.NoError(t, err)
	require.Positive(t, slot)

	root := AccountRootAt(slot)
	assert.Equal(t, slot, root.Slot())

	entryType, err := root.LedgerEntryType()
	require.NoError(t, err)
	assert.Equal(t, uint16(ltAccountRoot), entryType)

	account, err := root.Account()
	require.NoError(t, err)
	assert.Equal(t, destination, account)

	balance, ok, err := root.Balance()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.XRPAmount(250_000_000), balance)

	seq, err := root.Sequence()
	require.NoError(t, err)
	assert.Equal(t, uint32(12), seq)

	ownerCount, err := root.OwnerCount()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), ownerCount)

	_, ok, err = root.WalletLocator()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheInto(t *testing.T) {
	installLedger(t)

	k, err := keylets.Account(destination)
	require.NoError(t, err)

	slot, err := CacheInto(k, 17)
	require.NoError(t, err)
	assert.Equal(t, int32(17), slot)

	_, err = CacheInto(k, 500)
	assert.ErrorIs(t, err, host.SlotOutRange)
}

func TestCacheMissingEntry(t *testing.T) {
	installLedger(t)

	missing := types.AccountID{0x01}
	k, err := keylets.Account(missing)
	require.NoError(t, err)

	_, err = Cache(k)
	assert.ErrorIs(t, err, host.LedgerObjNotFound)
}

func TestGetAccountBalance(t *testing.T) {
	installLedger(t)

	balance, ok, err := GetAccountBalance(destination)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.XRPAmount(250_000_000), balance)
}

func TestEscrowAtSlot(t *testing.T) {
	em := installLedger(t)

	owner := escrowOwner
	key := emulator.EscrowKeyletKey(owner, 7)
	em.SetEntry(key, emulator.Object().
		SetAccountID(sfield.Account.Code(), owner).
		SetAmount(sfield.Amount.Code(), types.XRPAmount(99)))

	k, err := keylets.Escrow(owner, 7)
	require.NoError(t, err)
	slot, err := Cache(k)
	require.NoError(t, err)

	amount, err := EscrowAt(slot).Amount()
	require.NoError(t, err)
	assert.Equal(t, types.XRPAmount(99), amount)
}
