package types

// Byte lengths of the fixed-size hash families used on the ledger.
const (
	Hash128Size = 16
	Hash160Size = 20
	Hash192Size = 24
	Hash256Size = 32
)

// Hash128 is a 128-bit value, used for short identifiers such as email
// hashes.
type Hash128 [Hash128Size]byte

// Hash160 is a 160-bit value, used for currency codes and similar
// identifiers.
type Hash160 [Hash160Size]byte

// Hash192 is a 192-bit value, used for MPT issuance identifiers.
type Hash192 [Hash192Size]byte

// Hash256 is a 256-bit value, used for transaction IDs, ledger hashes and
// keylets.
type Hash256 [Hash256Size]byte

func (h Hash128) Bytes() []byte { return h[:] }
func (h Hash160) Bytes() []byte { return h[:] }
func (h Hash192) Bytes() []byte { return h[:] }
func (h Hash256) Bytes() []byte { return h[:] }
