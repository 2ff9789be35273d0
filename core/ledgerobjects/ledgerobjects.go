// Package ledgerobjects provides typed views over ledger entries: the
// escrow the program runs inside, and any entry cached into a slot by its
// keylet.
package ledgerobjects

import (
	"github.com/LeJamon/xrpl-wasm-stdlib/core/fields"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/keylets"
	"github.com/LeJamon/xrpl-wasm-stdlib/core/locator"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/LeJamon/xrpl-wasm-stdlib/sfield"
)

// Cache loads the ledger entry identified by k into a free slot and
// returns the slot number. Slots are limited; EmptySlot and SlotsFull
// errors surface as-is.
func Cache(k keylets.Keylet) (int32, error) {
	slot := host.CacheLedgerObj(k.Bytes(), 0)
	if slot < 0 {
		return 0, host.ErrorFromCode(slot)
	}
	return slot, nil
}

// CacheInto loads the ledger entry identified by k into a specific slot,
// replacing whatever was cached there.
func CacheInto(k keylets.Keylet, slot int32) (int32, error) {
	code := host.CacheLedgerObj(k.Bytes(), slot)
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return code, nil
}

// ArrayLen returns the number of entries in an array field of the entry
// cached in slot.
func ArrayLen(slot int32, field sfield.SField) (int32, error) {
	code := host.GetLedgerObjArrayLen(slot, field.Code())
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return code, nil
}

// NestedField reads the field addressed by loc from the entry cached in
// slot and returns the number of bytes written.
func NestedField(slot int32, loc *locator.Locator, out []byte) (int, error) {
	code := host.GetLedgerObjNestedField(slot, loc.Bytes(), out)
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return int(code), nil
}

// CurrentArrayLen returns the number of entries in an array field of the
// entry under execution.
func CurrentArrayLen(field sfield.SField) (int32, error) {
	code := host.GetCurrentLedgerObjArrayLen(field.Code())
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return code, nil
}

// CurrentNestedField reads the field addressed by loc from the entry under
// execution and returns the number of bytes written.
func CurrentNestedField(loc *locator.Locator, out []byte) (int, error) {
	code := host.GetCurrentLedgerObjNestedField(loc.Bytes(), out)
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return int(code), nil
}

// view binds field reads to one entry origin. Common fields shared by all
// entry types live here.
type view struct {
	src host.FieldSource
}

// Flags returns the entry's flags field.
func (v view) Flags() (uint32, error) {
	return fields.Uint32(v.src, sfield.Flags.Code())
}

// LedgerEntryType returns the entry's type discriminant.
func (v view) LedgerEntryType() (uint16, error) {
	return fields.Uint16(v.src, sfield.LedgerEntryType.Code())
}
