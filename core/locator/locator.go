// Package locator builds the binary path descriptors the host uses to
// reach nested fields, such as Memos[0].MemoData, inside the current
// transaction or a ledger entry.
package locator

import (
	"encoding/binary"

	"github.com/LeJamon/xrpl-wasm-stdlib/sfield"
)

// BufferSize is the fixed capacity of a locator. Each packed step takes 4
// bytes, so a path may be at most 16 steps deep.
const BufferSize = 64

// Locator is a depth-first field path: alternating SField codes and array
// indices, each packed as a little-endian int32. An empty locator refers to
// the root.
type Locator struct {
	buffer [BufferSize]byte
	length int
}

// New returns an empty locator.
func New() *Locator {
	return &Locator{}
}

// Pack appends one path step. It reports false, leaving the locator
// unchanged, when the buffer is full.
func (l *Locator) Pack(sfieldOrIndex int32) bool {
	if l.length+4 > BufferSize {
		return false
	}
	binary.LittleEndian.PutUint32(l.buffer[l.length:], uint32(sfieldOrIndex))
	l.length += 4
	return true
}

// PackField appends a field step.
func (l *Locator) PackField(f sfield.SField) bool {
	return l.Pack(f.Code())
}

// PackIndex appends an array-index step.
func (l *Locator) PackIndex(i int32) bool {
	return l.Pack(i)
}

// RepackLast overwrites the most recently packed step. Calling it on an
// empty locator reports false.
func (l *Locator) RepackLast(sfieldOrIndex int32) bool {
	if l.length < 4 {
		return false
	}
	binary.LittleEndian.PutUint32(l.buffer[l.length-4:], uint32(sfieldOrIndex))
	return true
}

// Bytes returns the packed path for host calls.
func (l *Locator) Bytes() []byte {
	return l.buffer[:l.length]
}

// Len returns the number of packed bytes.
func (l *Locator) Len() int {
	return l.length
}

// IsEmpty reports whether no steps have been packed.
func (l *Locator) IsEmpty() bool {
	return l.length == 0
}
