// Package crypto holds the hash primitives the ledger model is built on.
package crypto

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// AccountIDSize is the size of an XRPL account ID in bytes.
const AccountIDSize = 20

// Sha512Half returns the first 32 bytes of a sha512 hash over the
// concatenation of the inputs.
func Sha512Half(inputs ...[]byte) [32]byte {
	h := sha512.New()
	for _, in := range inputs {
		h.Write(in)
	}
	var result [32]byte
	copy(result[:], h.Sum(nil)[:32])
	return result
}

// CalcAccountID computes the account ID from a public key as
// RIPEMD160(SHA256(publicKey)), the same derivation rippled uses for both
// secp256k1 and Ed25519 keys.
func CalcAccountID(publicKey []byte) [AccountIDSize]byte {
	sha256Hash := sha256.Sum256(publicKey)

	ripemd160Hasher := ripemd160.New()
	ripemd160Hasher.Write(sha256Hash[:])
	ripemd160Hash := ripemd160Hasher.Sum(nil)

	var result [AccountIDSize]byte
	copy(result[:], ripemd160Hash)
	return result
}
