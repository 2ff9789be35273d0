package emulator

import (
	"encoding/binary"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
)

// Value is one node of a serialized transaction or ledger entry: a leaf
// holding wire bytes, an object keyed by field code, or an array.
type Value struct {
	leaf   []byte
	object map[int32]*Value
	array  []*Value
}

// Leaf wraps raw wire bytes.
func Leaf(b []byte) *Value {
	return &Value{leaf: append([]byte(nil), b...)}
}

// Object builds an inner object node.
func Object() *Value {
	return &Value{object: map[int32]*Value{}}
}

// Array builds an array node from its entries.
func Array(entries ...*Value) *Value {
	return &Value{array: entries}
}

func (v *Value) isLeaf() bool   { return v.object == nil && v.array == nil }
func (v *Value) isObject() bool { return v.object != nil }
func (v *Value) isArray() bool  { return v.array != nil }

// Set stores a child field on an object node and returns the node for
// chaining.
func (v *Value) Set(field int32, child *Value) *Value {
	v.object[field] = child
	return v
}

// SetUint8 stores a 1-byte integer field.
func (v *Value) SetUint8(field int32, value uint8) *Value {
	return v.Set(field, Leaf([]byte{value}))
}

// SetUint16 stores a 2-byte integer field in guest byte order.
func (v *Value) SetUint16(field int32, value uint16) *Value {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	return v.Set(field, Leaf(b[:]))
}

// SetUint32 stores a 4-byte integer field in guest byte order.
func (v *Value) SetUint32(field int32, value uint32) *Value {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return v.Set(field, Leaf(b[:]))
}

// SetUint64 stores an 8-byte integer field in guest byte order.
func (v *Value) SetUint64(field int32, value uint64) *Value {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return v.Set(field, Leaf(b[:]))
}

// SetAccountID stores a 20-byte account field.
func (v *Value) SetAccountID(field int32, id types.AccountID) *Value {
	return v.Set(field, Leaf(id[:]))
}

// SetHash256 stores a 32-byte hash field.
func (v *Value) SetHash256(field int32, h types.Hash256) *Value {
	return v.Set(field, Leaf(h[:]))
}

// SetAmount stores an amount field in its 48-byte envelope.
func (v *Value) SetAmount(field int32, a types.Amount) *Value {
	enc := a.Encode()
	return v.Set(field, Leaf(enc[:]))
}

// SetBlob stores a variable-length field.
func (v *Value) SetBlob(field int32, data []byte) *Value {
	return v.Set(field, Leaf(data))
}

// SetTransactionType stores the 2-byte transaction type discriminant.
func (v *Value) SetTransactionType(field int32, t types.TransactionType) *Value {
	b := t.Bytes()
	return v.Set(field, Leaf(b[:]))
}

// get returns the child for a field code on an object node.
func (v *Value) get(field int32) (*Value, bool) {
	if v.object == nil {
		return nil, false
	}
	child, ok := v.object[field]
	return child, ok
}
