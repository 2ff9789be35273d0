package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCode(t *testing.T) {
	assert.NoError(t, CheckCode(0))
	assert.NoError(t, CheckCode(20))
	assert.Equal(t, FieldNotFound, CheckCode(-2))
}

func TestCheckCodeExpectedBytes(t *testing.T) {
	t.Run("exact size succeeds", func(t *testing.T) {
		assert.NoError(t, CheckCodeExpectedBytes(32, 32))
	})
	t.Run("host error passes through", func(t *testing.T) {
		assert.Equal(t, BufferTooSmall, CheckCodeExpectedBytes(-3, 32))
	})
	t.Run("size mismatch is an internal error", func(t *testing.T) {
		assert.Equal(t, InternalError, CheckCodeExpectedBytes(31, 32))
	})
}

func TestCheckCodeOptional(t *testing.T) {
	present, err := CheckCodeOptional(4)
	require.NoError(t, err)
	assert.True(t, present)

	present, err = CheckCodeOptional(FieldNotFound.Code())
	require.NoError(t, err)
	assert.False(t, present)

	_, err = CheckCodeOptional(SlotOutRange.Code())
	assert.Equal(t, SlotOutRange, err)
}

func TestCheckCodeExpectedBytesOptional(t *testing.T) {
	present, err := CheckCodeExpectedBytesOptional(32, 32)
	require.NoError(t, err)
	assert.True(t, present)

	present, err = CheckCodeExpectedBytesOptional(FieldNotFound.Code(), 32)
	require.NoError(t, err)
	assert.False(t, present)

	_, err = CheckCodeExpectedBytesOptional(16, 32)
	assert.Equal(t, PointerOutOfBounds, err)
}
