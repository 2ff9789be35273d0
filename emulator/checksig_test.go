package emulator

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/internal/crypto"
)

func TestCheckSigEd25519(t *testing.T) {
	em := New()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	xrplKey := append([]byte{ed25519Prefix}, pub...)
	message := []byte("finish condition payload")
	signature := ed25519.Sign(priv, message)

	assert.Equal(t, int32(1), em.CheckSig(message, signature, xrplKey))
	assert.Equal(t, int32(0), em.CheckSig([]byte("tampered"), signature, xrplKey))

	signature[0] ^= 0x01
	assert.Equal(t, int32(0), em.CheckSig(message, signature, xrplKey))
}

func TestCheckSigSecp256k1(t *testing.T) {
	em := New()
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	pub := priv.PubKey().SerializeCompressed()
	require.Len(t, pub, 33)

	message := []byte("finish condition payload")
	digest := crypto.Sha512Half(message)
	signature := secpecdsa.Sign(priv, digest[:]).Serialize()

	assert.Equal(t, int32(1), em.CheckSig(message, signature, pub))
	assert.Equal(t, int32(0), em.CheckSig([]byte("tampered"), signature, pub))
	assert.Equal(t, int32(0), em.CheckSig(message, []byte{0x30, 0x00}, pub))
}

func TestCheckSigRejectsBadKey(t *testing.T) {
	em := New()
	assert.Equal(t, int32(host.InvalidParams), em.CheckSig(nil, nil, make([]byte, 20)))

	badSecp := make([]byte, 33) // leading 0x00 is not a valid point encoding
	assert.Equal(t, int32(host.InvalidParams), em.CheckSig(nil, nil, badSecp))
}
