// Package random derives deterministic pseudo-randomness for escrow
// programs. Every validator replays the same host state, so the values are
// reproducible across the network while staying unpredictable until the
// parent ledger closes.
//
// The stream is seeded from the parent ledger hash, the escrow's
// PreviousTxnID and a caller-chosen domain separator. It is not
// cryptographically secure: validators can predict it at execution time,
// so never use it for keys or secrets.
package random

import (
	"encoding/binary"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/ledgerobjects"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

// MaxDomainLen caps the domain separator length.
const MaxDomainLen = 64

// maxHashInput is parent hash (32) + PreviousTxnID (32) + domain (64) +
// counter (8).
const maxHashInput = 136

// Rng is a deterministic pseudo-random number generator. Each Next call
// advances an internal counter, producing a new value in the sequence.
type Rng struct {
	seed    types.Hash256
	counter uint64
}

// New creates an Rng seeded for the given domain separator. Distinct
// domains yield independent streams; pick one unique to your use case.
func New(domain []byte) (*Rng, error) {
	seed, err := computeSeed(domain, 0)
	if err != nil {
		return nil, err
	}
	return &Rng{seed: seed}, nil
}

// NextUint64 returns the next pseudo-random 64-bit value.
func (r *Rng) NextUint64() (uint64, error) {
	r.counter++
	h, err := rehash(r.seed, r.counter)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(h[:8]), nil
}

// NextRange returns a pseudo-random value in [0, max). A max of zero
// yields zero. Small ranges carry slight modulo bias.
func (r *Rng) NextRange(max uint64) (uint64, error) {
	if max == 0 {
		return 0, nil
	}
	v, err := r.NextUint64()
	if err != nil {
		return 0, err
	}
	return v % max, nil
}

// NextBytes returns the next 32 pseudo-random bytes.
func (r *Rng) NextBytes() (types.Hash256, error) {
	r.counter++
	return rehash(r.seed, r.counter)
}

// NextBool returns a pseudo-random boolean.
func (r *Rng) NextBool() (bool, error) {
	v, err := r.NextUint64()
	if err != nil {
		return false, err
	}
	return v&1 == 1, nil
}

// Uint64 is a one-shot convenience for a single value under a domain.
func Uint64(domain []byte) (uint64, error) {
	r, err := New(domain)
	if err != nil {
		return 0, err
	}
	return r.NextUint64()
}

// Range is a one-shot convenience for a single value in [0, max).
func Range(domain []byte, max uint64) (uint64, error) {
	r, err := New(domain)
	if err != nil {
		return 0, err
	}
	return r.NextRange(max)
}

// computeSeed hashes parent ledger hash, the escrow's PreviousTxnID, the
// domain separator and the counter into a 32-byte seed.
func computeSeed(domain []byte, counter uint64) (types.Hash256, error) {
	if len(domain) > MaxDomainLen {
		return types.Hash256{}, host.InvalidParams
	}

	var input [maxHashInput]byte
	n := 0

	code := host.GetParentLedgerHash(input[n : n+types.Hash256Size])
	if err := host.CheckCodeExpectedBytes(code, types.Hash256Size); err != nil {
		return types.Hash256{}, err
	}
	n += types.Hash256Size

	prevTxn, err := ledgerobjects.CurrentEscrow().PreviousTxnID()
	if err != nil {
		return types.Hash256{}, err
	}
	n += copy(input[n:], prevTxn[:])
	n += copy(input[n:], domain)

	binary.LittleEndian.PutUint64(input[n:n+8], counter)
	n += 8

	return sha512Half(input[:n])
}

// rehash mixes the cached seed with the sequence counter.
func rehash(seed types.Hash256, counter uint64) (types.Hash256, error) {
	var input [types.Hash256Size + 8]byte
	copy(input[:], seed[:])
	binary.LittleEndian.PutUint64(input[types.Hash256Size:], counter)
	return sha512Half(input[:])
}

func sha512Half(input []byte) (types.Hash256, error) {
	var out types.Hash256
	code := host.ComputeSha512Half(input, out[:])
	if err := host.CheckCodeExpectedBytes(code, types.Hash256Size); err != nil {
		return types.Hash256{}, err
	}
	return out, nil
}
