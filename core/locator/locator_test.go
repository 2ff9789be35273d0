package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpl-wasm-stdlib/sfield"
)

func TestPackMemoPath(t *testing.T) {
	l := New()
	require.True(t, l.PackField(sfield.Memos))
	require.True(t, l.PackIndex(0))
	require.True(t, l.PackField(sfield.Memo))
	require.True(t, l.PackField(sfield.MemoData))

	want := []byte{
		0x09, 0x00, 0x0F, 0x00, // Memos
		0x00, 0x00, 0x00, 0x00, // [0]
		0x0A, 0x00, 0x0E, 0x00, // Memo
		0x0D, 0x00, 0x07, 0x00, // MemoData
	}
	assert.Equal(t, want, l.Bytes())
	assert.Equal(t, 16, l.Len())
	assert.False(t, l.IsEmpty())
}

func TestPackFullBuffer(t *testing.T) {
	l := New()
	for i := 0; i < BufferSize/4; i++ {
		require.True(t, l.PackIndex(int32(i)))
	}
	assert.False(t, l.Pack(99), "a full locator must reject further steps")
	assert.Equal(t, BufferSize, l.Len())
}

func TestRepackLast(t *testing.T) {
	l := New()
	assert.False(t, l.RepackLast(1), "repack on an empty locator")

	require.True(t, l.PackField(sfield.Memos))
	require.True(t, l.PackIndex(0))
	require.True(t, l.RepackLast(3))

	want := []byte{
		0x09, 0x00, 0x0F, 0x00,
		0x03, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, want, l.Bytes())
}

func TestNewIsEmpty(t *testing.T) {
	l := New()
	assert.True(t, l.IsEmpty())
	assert.Empty(t, l.Bytes())
}
