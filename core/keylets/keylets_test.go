package keylets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/emulator"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

func withEmulator(t *testing.T) *emulator.Emulator {
	t.Helper()
	em := emulator.New()
	prev := host.SetBackend(em)
	t.Cleanup(func() { host.SetBackend(prev) })
	return em
}

func testAccountID(fill byte) types.AccountID {
	var id types.AccountID
	for i := range id {
		id[i] = fill
	}
	return id
}

func TestAccount(t *testing.T) {
	withEmulator(t)
	owner := testAccountID(0xAA)

	k, err := Account(owner)
	require.NoError(t, err)
	assert.Equal(t, emulator.AccountKeyletKey(owner), [32]byte(k))

	again, err := Account(owner)
	require.NoError(t, err)
	assert.Equal(t, k, again)
}

func TestEscrow(t *testing.T) {
	withEmulator(t)
	owner := testAccountID(0xBB)

	k, err := Escrow(owner, 42)
	require.NoError(t, err)
	assert.Equal(t, emulator.EscrowKeyletKey(owner, 42), [32]byte(k))

	other, err := Escrow(owner, 43)
	require.NoError(t, err)
	assert.NotEqual(t, k, other)
}

func TestLineIsSymmetric(t *testing.T) {
	withEmulator(t)
	a := testAccountID(0x01)
	b := testAccountID(0x02)
	var currency types.Currency
	copy(currency[12:15], "USD")

	k1, err := Line(a, b, currency)
	require.NoError(t, err)
	k2, err := Line(b, a, currency)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}

func TestCredentialRejectsOversizedType(t *testing.T) {
	withEmulator(t)
	subject := testAccountID(0x10)
	issuer := testAccountID(0x20)

	_, err := Credential(subject, issuer, make([]byte, 65))
	assert.ErrorIs(t, err, host.InvalidParams)

	k, err := Credential(subject, issuer, []byte("kyc"))
	require.NoError(t, err)
	assert.NotEqual(t, Keylet{}, k)
}

func TestDistinctNamespaces(t *testing.T) {
	withEmulator(t)
	account := testAccountID(0x5A)

	offer, err := Offer(account, 7)
	require.NoError(t, err)
	check, err := Check(account, 7)
	require.NoError(t, err)
	ticket, err := Ticket(account, 7)
	require.NoError(t, err)

	assert.NotEqual(t, offer, check)
	assert.NotEqual(t, offer, ticket)
	assert.NotEqual(t, check, ticket)
}

func TestAmm(t *testing.T) {
	withEmulator(t)
	var currency types.Currency
	copy(currency[12:15], "EUR")

	k, err := Amm(types.XRPIssue(), types.IOUIssue(currency, testAccountID(0x31)))
	require.NoError(t, err)
	assert.NotEqual(t, Keylet{}, k)
}
