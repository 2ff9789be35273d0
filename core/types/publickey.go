package types

// PublicKeySize is the byte length of an XRPL public key: a compressed
// secp256k1 key (0x02/0x03 prefix) or an ed25519 key (0xED prefix).
const PublicKeySize = 33

// PublicKey is a 33-byte signing key as carried in SigningPubKey and
// MessageKey fields.
type PublicKey [PublicKeySize]byte

// Bytes returns the key as a slice for host calls.
func (p PublicKey) Bytes() []byte {
	return p[:]
}
