package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHex20(t *testing.T) {
	out, ok := DecodeHex20("4b4e9c06f24296074f7bc48f92a97916c6dc5ea9")
	require.True(t, ok)
	assert.Equal(t, byte(0x4B), out[0])
	assert.Equal(t, byte(0xA9), out[19])

	upper, ok := DecodeHex20("4B4E9C06F24296074F7BC48F92A97916C6DC5EA9")
	require.True(t, ok)
	assert.Equal(t, out, upper)
}

func TestDecodeHex20Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "too short", input: "4b4e"},
		{name: "too long", input: "4b4e9c06f24296074f7bc48f92a97916c6dc5ea900"},
		{name: "non hex", input: "4b4e9c06f24296074f7bc48f92a97916c6dc5eg9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := DecodeHex20(tt.input)
			assert.False(t, ok)
			assert.Equal(t, [20]byte{}, out)
		})
	}
}

func TestDecodeHex32(t *testing.T) {
	out, ok := DecodeHex32("ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a")
	require.True(t, ok)
	assert.Equal(t, byte(0xDD), out[0])
	assert.Equal(t, byte(0x9A), out[31])

	_, ok = DecodeHex32("ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d3")
	assert.False(t, ok)
}
