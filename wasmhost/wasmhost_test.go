package wasmhost

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpl-wasm-stdlib/core/types"
	"github.com/LeJamon/xrpl-wasm-stdlib/emulator"
	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

var wasmHeader = []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

func concat(sections ...[]byte) []byte {
	var out []byte
	for _, s := range sections {
		out = append(out, s...)
	}
	return out
}

// finishModule hand-assembles a module exporting one page of memory and a
// finish function returning the given constant.
func finishModule(result byte) []byte {
	return concat(
		wasmHeader,
		[]byte{0x01, 0x05, 0x01, 0x60, 0x00, 0x01, 0x7F}, // type () -> i32
		[]byte{0x03, 0x02, 0x01, 0x00},                   // func 0 uses type 0
		[]byte{0x05, 0x03, 0x01, 0x00, 0x01},             // memory, min 1 page
		[]byte{0x07, 0x13, 0x02,
			0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
			0x06, 'f', 'i', 'n', 'i', 's', 'h', 0x00, 0x00},
		[]byte{0x0A, 0x06, 0x01, 0x04, 0x00, 0x41, result, 0x0B}, // i32.const result
	)
}

// ledgerSqnModule hand-assembles a module whose finish function returns
// host_lib.get_ledger_sqn().
func ledgerSqnModule() []byte {
	return concat(
		wasmHeader,
		[]byte{0x01, 0x05, 0x01, 0x60, 0x00, 0x01, 0x7F},
		[]byte{0x02, 0x1B, 0x01,
			0x08, 'h', 'o', 's', 't', '_', 'l', 'i', 'b',
			0x0E, 'g', 'e', 't', '_', 'l', 'e', 'd', 'g', 'e', 'r', '_', 's', 'q', 'n',
			0x00, 0x00},
		[]byte{0x03, 0x02, 0x01, 0x00},
		[]byte{0x05, 0x03, 0x01, 0x00, 0x01},
		[]byte{0x07, 0x13, 0x02,
			0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
			0x06, 'f', 'i', 'n', 'i', 's', 'h', 0x00, 0x01},
		[]byte{0x0A, 0x06, 0x01, 0x04, 0x00, 0x10, 0x00, 0x0B}, // call 0
	)
}

// noMemoryModule exports finish but no linear memory.
func noMemoryModule() []byte {
	return concat(
		wasmHeader,
		[]byte{0x01, 0x05, 0x01, 0x60, 0x00, 0x01, 0x7F},
		[]byte{0x03, 0x02, 0x01, 0x00},
		[]byte{0x07, 0x0A, 0x01,
			0x06, 'f', 'i', 'n', 'i', 's', 'h', 0x00, 0x00},
		[]byte{0x0A, 0x06, 0x01, 0x04, 0x00, 0x41, 0x01, 0x0B},
	)
}

// noFinishModule exports memory but no finish function.
func noFinishModule() []byte {
	return concat(
		wasmHeader,
		[]byte{0x05, 0x03, 0x01, 0x00, 0x01},
		[]byte{0x07, 0x0A, 0x01,
			0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00},
	)
}

func TestRunFinish(t *testing.T) {
	runner := New(emulator.New())

	code, err := runner.RunFinish(context.Background(), finishModule(1))
	require.NoError(t, err)
	assert.Equal(t, int32(1), code, "finish")

	code, err = runner.RunFinish(context.Background(), finishModule(0))
	require.NoError(t, err)
	assert.Equal(t, int32(0), code, "reject")
}

func TestRunFinishCallsHostLib(t *testing.T) {
	em := emulator.New()
	em.SetLedgerHeader(4242, 0, types.Hash256{}, 10)
	runner := New(em)

	code, err := runner.RunFinish(context.Background(), ledgerSqnModule())
	require.NoError(t, err)
	assert.Equal(t, int32(4242), code)
}

func TestRunFinishRejectsInvalidModule(t *testing.T) {
	runner := New(emulator.New())

	_, err := runner.RunFinish(context.Background(), []byte("not wasm"))
	assert.Error(t, err)
}

func TestRunFinishRequiresMemory(t *testing.T) {
	runner := New(emulator.New())

	code, err := runner.RunFinish(context.Background(), noMemoryModule())
	assert.ErrorIs(t, err, host.NoMemExported)
	assert.Equal(t, int32(host.NoMemExported), code)
}

func TestRunFinishRequiresFinishExport(t *testing.T) {
	runner := New(emulator.New())

	_, err := runner.RunFinish(context.Background(), noFinishModule())
	assert.ErrorIs(t, err, ErrNoFinishExport)
}
