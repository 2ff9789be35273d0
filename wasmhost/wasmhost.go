// Package wasmhost executes compiled escrow finish programs under wazero,
// exposing the host_lib import module backed by a host.Backend. Pointing a
// Runner at an emulator.Emulator reproduces the on-ledger execution
// environment in-process.
package wasmhost

import (
	"context"
	"errors"
	"fmt"

	"github.com/LeJamon/xrpl-wasm-stdlib/host"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// FinishExport is the entry point every escrow program must export.
const FinishExport = "finish"

// pointerOutOfBounds is returned when a guest pointer does not land in
// linear memory.
const pointerOutOfBounds = int32(host.PointerOutOfBounds)

// ErrNoFinishExport is returned when the module lacks a finish function.
var ErrNoFinishExport = errors.New("wasmhost: module does not export finish")

// Runner instantiates escrow programs against one backend.
type Runner struct {
	backend host.Backend
}

// New creates a Runner over the given backend.
func New(backend host.Backend) *Runner {
	return &Runner{backend: backend}
}

// RunFinish instantiates wasmCode and calls its finish export. The returned
// value follows the escrow convention: positive finishes the escrow, zero
// rejects it, negative is an error code.
func (r *Runner) RunFinish(ctx context.Context, wasmCode []byte) (int32, error) {
	runtime := wazero.NewRuntime(ctx)
	defer runtime.Close(ctx)

	if err := r.instantiateHostLib(ctx, runtime); err != nil {
		return int32(host.InternalError), fmt.Errorf("wasmhost: host_lib setup: %w", err)
	}

	module, err := runtime.Instantiate(ctx, wasmCode)
	if err != nil {
		return int32(host.InternalError), fmt.Errorf("wasmhost: instantiate: %w", err)
	}
	defer module.Close(ctx)

	if module.Memory() == nil {
		return int32(host.NoMemExported), host.NoMemExported
	}
	finish := module.ExportedFunction(FinishExport)
	if finish == nil {
		return int32(host.InternalError), ErrNoFinishExport
	}

	results, err := finish.Call(ctx)
	if err != nil {
		return int32(host.InternalError), fmt.Errorf("wasmhost: finish trapped: %w", err)
	}
	if len(results) != 1 {
		return int32(host.InternalError), fmt.Errorf("wasmhost: finish returned %d values", len(results))
	}
	return int32(uint32(results[0])), nil
}

// read copies a guest buffer out of linear memory. A zero length yields an
// empty slice regardless of the pointer.
func read(m api.Module, ptr, length uint32) ([]byte, bool) {
	if length == 0 {
		return nil, true
	}
	return m.Memory().Read(ptr, length)
}

// callOut invokes fn with a scratch buffer of the guest-specified size and
// copies whatever was produced back into linear memory.
func callOut(m api.Module, outPtr, outLen uint32, fn func(out []byte) int32) int32 {
	out := make([]byte, outLen)
	code := fn(out)
	if code > 0 {
		n := uint32(code)
		if n > outLen {
			return int32(host.InternalError)
		}
		if !m.Memory().Write(outPtr, out[:n]) {
			return int32(host.PointerOutOfBounds)
		}
	}
	return code
}

// callIn reads one guest buffer and passes it to fn.
func callIn(m api.Module, ptr, length uint32, fn func(in []byte) int32) int32 {
	in, ok := read(m, ptr, length)
	if !ok {
		return int32(host.PointerOutOfBounds)
	}
	return fn(in)
}

// callInOut reads one guest buffer and gives fn a scratch output buffer.
func callInOut(m api.Module, inPtr, inLen, outPtr, outLen uint32, fn func(in, out []byte) int32) int32 {
	in, ok := read(m, inPtr, inLen)
	if !ok {
		return int32(host.PointerOutOfBounds)
	}
	return callOut(m, outPtr, outLen, func(out []byte) int32 {
		return fn(in, out)
	})
}

// callIn2Out reads two guest buffers and gives fn a scratch output buffer.
func callIn2Out(m api.Module, p1, l1, p2, l2, outPtr, outLen uint32, fn func(a, b, out []byte) int32) int32 {
	a, ok := read(m, p1, l1)
	if !ok {
		return int32(host.PointerOutOfBounds)
	}
	b, ok := read(m, p2, l2)
	if !ok {
		return int32(host.PointerOutOfBounds)
	}
	return callOut(m, outPtr, outLen, func(out []byte) int32 {
		return fn(a, b, out)
	})
}
