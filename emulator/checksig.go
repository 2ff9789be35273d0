package emulator

import (
	"crypto/ed25519"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/internal/crypto"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// ed25519Prefix marks a 33-byte XRPL public key as Ed25519 rather than
// secp256k1.
const ed25519Prefix = 0xED

// CheckSig verifies a signature over message. Signatures are made over the
// sha512-half digest of the message, matching rippled.
func (e *Emulator) CheckSig(message, signature, pubkey []byte) int32 {
	if len(pubkey) != types.PublicKeySize {
		return int32(host.InvalidParams)
	}

	if pubkey[0] == ed25519Prefix {
		if ed25519.Verify(ed25519.PublicKey(pubkey[1:]), message, signature) {
			return 1
		}
		return 0
	}

	pk, err := secp256k1.ParsePubKey(pubkey)
	if err != nil {
		return int32(host.InvalidParams)
	}
	sig, err := secpecdsa.ParseDERSignature(signature)
	if err != nil {
		return 0
	}
	digest := crypto.Sha512Half(message)
	if sig.Verify(digest[:], pk) {
		return 1
	}
	return 0
}
