package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trivialFinishModule is a hand-assembled wasm module exporting one page of
// memory and a finish function returning 1.
var trivialFinishModule = []byte{
	0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00, // header
	0x01, 0x05, 0x01, 0x60, 0x00, 0x01, 0x7F, // type () -> i32
	0x03, 0x02, 0x01, 0x00, // func 0 uses type 0
	0x05, 0x03, 0x01, 0x00, 0x01, // memory, min 1 page
	0x07, 0x13, 0x02,
	0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
	0x06, 'f', 'i', 'n', 'i', 's', 'h', 0x00, 0x00,
	0x0A, 0x06, 0x01, 0x04, 0x00, 0x41, 0x01, 0x0B, // i32.const 1
}

func TestRunOne(t *testing.T) {
	fixture := writeFixture(t, fixtureJSON)

	res := runOne(context.Background(), trivialFinishModule, fixture, 5*time.Second, true)
	require.NoError(t, res.err)
	assert.Equal(t, int32(1), res.code)
	assert.Equal(t, []byte("v1"), res.data, "data survives untouched when the guest never writes")
}

func TestRunOneBadFixture(t *testing.T) {
	res := runOne(context.Background(), trivialFinishModule, writeFixture(t, "{"), 5*time.Second, false)
	assert.Error(t, res.err)
}

func TestRunOneBadModule(t *testing.T) {
	fixture := writeFixture(t, fixtureJSON)

	res := runOne(context.Background(), []byte("not wasm"), fixture, 5*time.Second, false)
	assert.Error(t, res.err)
}
