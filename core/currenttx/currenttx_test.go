package currenttx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/locator"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/emulator"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/sfield"
)

var (
	sender = types.AccountID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, 0x11, 0x12, 0x13, 0x14}
	owner  = types.AccountID{0x14, 0x13, 0x12, 0x11, 0x10, 0x0F, 0x0E, 0x0D, 0x0C, 0x0B, 0x0A, 0x09, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
)

func installFinishTx(t *testing.T) {
	t.Helper()
	var pubkey types.PublicKey
	pubkey[0] = 0xED

	tx := emulator.Object().
		SetTransactionType(sfield.TransactionType.Code(), types.TxEscrowFinish).
		SetAccountID(sfield.Account.Code(), sender).
		SetAccountID(sfield.Owner.Code(), owner).
		SetUint32(sfield.OfferSequence.Code(), 1023).
		SetUint32(sfield.Sequence.Code(), 88).
		SetUint32(sfield.ComputationAllowance.Code(), 500_000).
		SetAmount(sfield.Fee.Code(), types.XRPAmount(12)).
		SetBlob(sfield.SigningPubKey.Code(), pubkey[:]).
		SetBlob(sfield.TxnSignature.Code(), []byte{0x30, 0x44, 0x02, 0x20}).
		SetUint32(sfield.SourceTag.Code(), 7777).
		Set(sfield.Memos.Code(), emulator.Array(
			emulator.Object().Set(sfield.Memo.Code(),
				emulator.Object().SetBlob(sfield.MemoData.Code(), []byte("hello"))),
		))

	em := emulator.New()
	em.SetTx(tx)
	prev := host.SetBackend(em)
	t.Cleanup(func() { host.SetBackend(prev) })
}

func TestEscrowFinishRequiredFields(t *testing.T) {
	installFinishTx(t)
	var tx EscrowFinish

	account, err := tx.Account()
	require.NoError(t, err)
	assert.Equal(t, sender, account)

	txType, err := tx.TransactionType()
	require.NoError(t, err)
	assert.Equal(t, types.TxEscrowFinish, txType)

	escrowOwner, err := tx.Owner()
	require.NoError(t, err)
	assert.Equal(t, owner, escrowOwner)

	offerSeq, err := tx.OfferSequence()
	require.NoError(t, err)
	assert.Equal(t, uint32(1023), offerSeq)

	seq, err := tx.Sequence()
	require.NoError(t, err)
	assert.Equal(t, uint32(88), seq)

	allowance, err := tx.ComputationAllowance()
	require.NoError(t, err)
	assert.Equal(t, uint32(500_000), allowance)

	fee, err := tx.Fee()
	require.NoError(t, err)
	assert.Equal(t, types.XRPAmount(12), fee)

	pubkey, err := tx.SigningPubKey()
	require.NoError(t, err)
	assert.Equal(t, byte(0xED), pubkey[0])

	sig, err := tx.TxnSignature()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30, 0x44, 0x02, 0x20}, sig.Bytes())
}

func TestEscrowFinishOptionalFields(t *testing.T) {
	installFinishTx(t)
	var tx EscrowFinish

	tag, ok, err := tx.SourceTag()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(7777), tag)

	_, ok, err = tx.Condition()
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = tx.Fulfillment()
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = tx.Flags()
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = tx.TicketSequence()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoAccess(t *testing.T) {
	installFinishTx(t)
	var tx EscrowFinish

	count, err := tx.MemoCount()
	require.NoError(t, err)
	assert.Equal(t, int32(1), count)

	loc := locator.New()
	loc.PackField(sfield.Memos)
	loc.PackIndex(0)
	loc.PackField(sfield.Memo)
	loc.PackField(sfield.MemoData)

	out := make([]byte, 32)
	n, err := NestedField(loc, out)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), out[:n])
}

func TestNestedArrayLen(t *testing.T) {
	installFinishTx(t)

	loc := locator.New()
	loc.PackField(sfield.Memos)
	n, err := NestedArrayLen(loc)
	require.NoError(t, err)
	assert.Equal(t, int32(1), n)
}

func TestArrayLenMissingField(t *testing.T) {
	installFinishTx(t)

	_, err := ArrayLen(sfield.Signers)
	assert.ErrorIs(t, err, host.FieldNotFound)
}
