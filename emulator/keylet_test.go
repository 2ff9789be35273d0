package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

func TestAccountKeylet(t *testing.T) {
	em := New()
	account := testAccountID(0x4B)

	out := make([]byte, 32)
	require.Equal(t, int32(32), em.AccountKeylet(account[:], out))

	want := AccountKeyletKey(account)
	assert.Equal(t, want[:], out)

	again := make([]byte, 32)
	em.AccountKeylet(account[:], again)
	assert.Equal(t, out, again, "derivation must be deterministic")

	other := testAccountID(0x4C)
	em.AccountKeylet(other[:], again)
	assert.NotEqual(t, out, again)

	assert.Equal(t, int32(host.InvalidAccount), em.AccountKeylet(account[:10], out))
	assert.Equal(t, int32(host.BufferTooSmall), em.AccountKeylet(account[:], out[:16]))
}

func TestEscrowKeylet(t *testing.T) {
	em := New()
	owner := testAccountID(0x77)

	out := make([]byte, 32)
	require.Equal(t, int32(32), em.EscrowKeylet(owner[:], 5, out))

	want := EscrowKeyletKey(owner, 5)
	assert.Equal(t, want[:], out)

	em.EscrowKeylet(owner[:], 6, out)
	assert.NotEqual(t, want[:], out, "sequence is part of the key")
}

func TestLineKeyletOrdersAccounts(t *testing.T) {
	a := testAccountID(0x01)
	b := testAccountID(0x02)
	var currency types.Currency
	copy(currency[12:15], "USD")

	assert.Equal(t, LineKeyletKey(a, b, currency), LineKeyletKey(b, a, currency))

	em := New()
	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	require.Equal(t, int32(32), em.LineKeylet(a[:], b[:], currency[:], out1))
	require.Equal(t, int32(32), em.LineKeylet(b[:], a[:], currency[:], out2))
	assert.Equal(t, out1, out2)

	assert.Equal(t, int32(host.InvalidParams), em.LineKeylet(a[:], b[:], currency[:10], out1))
}

func TestCredentialKeylet(t *testing.T) {
	em := New()
	subject := testAccountID(0x10)
	issuer := testAccountID(0x20)
	credType := []byte("kyc")

	out := make([]byte, 32)
	require.Equal(t, int32(32), em.CredentialKeylet(subject[:], issuer[:], credType, out))

	assert.Equal(t, int32(host.InvalidParams), em.CredentialKeylet(subject[:], issuer[:], nil, out))
	assert.Equal(t, int32(host.InvalidParams), em.CredentialKeylet(subject[:], issuer[:], make([]byte, 65), out))
	assert.Equal(t, int32(host.InvalidAccount), em.CredentialKeylet(subject[:5], issuer[:], credType, out))
}

func TestAmmKeylet(t *testing.T) {
	em := New()
	xrp := types.XRPIssue().Bytes()

	var currency types.Currency
	copy(currency[12:15], "USD")
	iou := types.IOUIssue(currency, testAccountID(0x33)).Bytes()

	out := make([]byte, 32)
	require.Equal(t, int32(32), em.AmmKeylet(xrp, iou, out))

	assert.Equal(t, int32(host.InvalidParams), em.AmmKeylet(xrp[:5], iou, out))
}

func TestSequencedKeyletsDiffer(t *testing.T) {
	em := New()
	account := testAccountID(0x66)

	calls := map[string]func(seq int32, out []byte) int32{
		"offer":  func(seq int32, out []byte) int32 { return em.OfferKeylet(account[:], seq, out) },
		"check":  func(seq int32, out []byte) int32 { return em.CheckKeylet(account[:], seq, out) },
		"ticket": func(seq int32, out []byte) int32 { return em.TicketKeylet(account[:], seq, out) },
		"vault":  func(seq int32, out []byte) int32 { return em.VaultKeylet(account[:], seq, out) },
	}

	seen := map[[32]byte]string{}
	for name, call := range calls {
		out := make([]byte, 32)
		require.Equal(t, int32(32), call(9, out), name)
		var key [32]byte
		copy(key[:], out)
		prev, dup := seen[key]
		require.False(t, dup, "%s and %s derive the same key", name, prev)
		seen[key] = name
	}
}
