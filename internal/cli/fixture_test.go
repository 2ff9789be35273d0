package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/currenttx"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/ledger"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/ledgerobjects"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/internal/addresscodec"
)

const fixtureJSON = `{
  "ledger": {
    "sequence": 6100000,
    "parent_close_time": 745123456,
    "parent_hash": "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a",
    "base_fee": 10
  },
  "tx": {
    "account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
    "owner": "rrrrrrrrrrrrrrrrrrrrrhoLvTp",
    "offer_sequence": 7,
    "sequence": 88,
    "fee_drops": 12,
    "computation_allowance": 500000,
    "source_tag": 4242,
    "memos": ["cafe"]
  },
  "escrow": {
    "account": "rrrrrrrrrrrrrrrrrrrrrhoLvTp",
    "destination": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
    "amount_drops": 5000000,
    "finish_after": 745000100,
    "data": "7631",
    "owner_node": 0,
    "previous_txn_id": "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce",
    "previous_txn_lgr_seq": 6099000
  },
  "accounts": [
    {
      "address": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
      "balance_drops": 250000000,
      "sequence": 12,
      "owner_count": 2,
      "flags": 0
    }
  ]
}`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadFixture(t *testing.T) {
	em, err := LoadFixture(writeFixture(t, fixtureJSON))
	require.NoError(t, err)

	prev := host.SetBackend(em)
	t.Cleanup(func() { host.SetBackend(prev) })

	seq, err := ledger.Sequence()
	require.NoError(t, err)
	assert.Equal(t, uint32(6_100_000), seq)

	var tx currenttx.EscrowFinish

	txType, err := tx.TransactionType()
	require.NoError(t, err)
	assert.Equal(t, types.TxEscrowFinish, txType)

	sender, err := tx.Account()
	require.NoError(t, err)
	wantSender, err := addresscodec.DecodeClassicAddressToAccountID("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	require.NoError(t, err)
	assert.Equal(t, types.AccountID(wantSender), sender)

	tag, ok, err := tx.SourceTag()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(4242), tag)

	memos, err := tx.MemoCount()
	require.NoError(t, err)
	assert.Equal(t, int32(1), memos)

	escrow := ledgerobjects.CurrentEscrow()

	amount, err := escrow.Amount()
	require.NoError(t, err)
	assert.Equal(t, types.XRPAmount(5_000_000), amount)

	finishAfter, ok, err := escrow.FinishAfter()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(745_000_100), finishAfter)

	data, err := escrow.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data.Bytes())

	balance, ok, err := ledgerobjects.GetAccountBalance(sender)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.XRPAmount(250_000_000), balance)
}

func TestLoadFixtureErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "not json", contents: "{"},
		{name: "bad address", contents: `{"tx": {"account": "not-an-address", "owner": "rrrrrrrrrrrrrrrrrrrrrhoLvTp"}, "escrow": {"account": "rrrrrrrrrrrrrrrrrrrrrhoLvTp", "destination": "rrrrrrrrrrrrrrrrrrrrrhoLvTp", "previous_txn_id": "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce"}, "ledger": {"parent_hash": "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce"}}`},
		{name: "bad parent hash", contents: `{"ledger": {"parent_hash": "zz"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFixture(writeFixture(t, tt.contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
