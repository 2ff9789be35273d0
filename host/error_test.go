package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		err  Error
		code int32
		text string
	}{
		{InternalError, -1, "internal error"},
		{FieldNotFound, -2, "field not found"},
		{BufferTooSmall, -3, "buffer too small"},
		{NoArray, -4, "not an array"},
		{NotLeafField, -5, "not a leaf field"},
		{LocatorMalformed, -6, "locator malformed"},
		{SlotOutRange, -7, "slot out of range"},
		{SlotsFull, -8, "no free slot"},
		{EmptySlot, -9, "empty slot"},
		{LedgerObjNotFound, -10, "ledger object not found"},
		{InvalidDecoding, -11, "invalid decoding"},
		{DataFieldTooLarge, -12, "data field too large"},
		{PointerOutOfBounds, -13, "pointer out of bounds"},
		{NoMemExported, -14, "no memory exported"},
		{InvalidParams, -15, "invalid parameters"},
		{InvalidAccount, -16, "invalid account"},
		{InvalidField, -17, "invalid field"},
		{IndexOutOfBounds, -18, "index out of bounds"},
		{InvalidFloatInput, -19, "invalid float input"},
		{InvalidFloatComputation, -20, "invalid float computation"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code())
			assert.Equal(t, tt.err, ErrorFromCode(tt.code))
			assert.Contains(t, tt.err.Error(), tt.text)
		})
	}
}

func TestErrorFromCodePreservesUnknownCodes(t *testing.T) {
	err := ErrorFromCode(40)
	require.Error(t, err)
	assert.Equal(t, int32(40), err.Code())
}
