package emulator

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

func floatBits(t *testing.T, b []byte) float64 {
	t.Helper()
	require.Len(t, b, floatSize)
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

func mustFloat(t *testing.T, em *Emulator, v int64) []byte {
	t.Helper()
	out := make([]byte, floatSize)
	require.Equal(t, int32(floatSize), em.FloatFromInt(v, out, host.RoundToNearest))
	return out
}

func TestFloatFromInt(t *testing.T) {
	em := New()
	out := make([]byte, floatSize)

	require.Equal(t, int32(floatSize), em.FloatFromInt(-42, out, host.RoundToNearest))
	assert.Equal(t, float64(-42), floatBits(t, out))

	assert.Equal(t, int32(host.InvalidParams), em.FloatFromInt(1, out, 4))
	assert.Equal(t, int32(host.BufferTooSmall), em.FloatFromInt(1, out[:4], host.RoundToNearest))
}

func TestFloatFromUint(t *testing.T) {
	em := New()
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, 1<<40)
	out := make([]byte, floatSize)

	require.Equal(t, int32(floatSize), em.FloatFromUint(value, out, host.RoundToNearest))
	assert.Equal(t, float64(1<<40), floatBits(t, out))

	assert.Equal(t, int32(host.InvalidParams), em.FloatFromUint(value[:4], out, host.RoundToNearest))
}

func TestFloatSet(t *testing.T) {
	em := New()
	out := make([]byte, floatSize)

	require.Equal(t, int32(floatSize), em.FloatSet(-2, 314, out, host.RoundToNearest))
	assert.InDelta(t, 3.14, floatBits(t, out), 1e-12)

	assert.Equal(t, int32(host.InvalidFloatInput), em.FloatSet(309, 10, out, host.RoundToNearest))
}

func TestFloatCompare(t *testing.T) {
	em := New()
	one := mustFloat(t, em, 1)
	two := mustFloat(t, em, 2)

	assert.Equal(t, host.FloatLess, em.FloatCompare(one, two))
	assert.Equal(t, host.FloatGreater, em.FloatCompare(two, one))
	assert.Equal(t, host.FloatEqual, em.FloatCompare(one, one))

	assert.Equal(t, int32(host.InvalidParams), em.FloatCompare(one[:4], two))
}

func TestFloatArithmetic(t *testing.T) {
	em := New()
	six := mustFloat(t, em, 6)
	three := mustFloat(t, em, 3)
	out := make([]byte, floatSize)

	require.Equal(t, int32(floatSize), em.FloatAdd(six, three, out, host.RoundToNearest))
	assert.Equal(t, float64(9), floatBits(t, out))

	require.Equal(t, int32(floatSize), em.FloatSubtract(six, three, out, host.RoundToNearest))
	assert.Equal(t, float64(3), floatBits(t, out))

	require.Equal(t, int32(floatSize), em.FloatMultiply(six, three, out, host.RoundToNearest))
	assert.Equal(t, float64(18), floatBits(t, out))

	require.Equal(t, int32(floatSize), em.FloatDivide(six, three, out, host.RoundToNearest))
	assert.Equal(t, float64(2), floatBits(t, out))

	zero := mustFloat(t, em, 0)
	assert.Equal(t, int32(host.InvalidFloatComputation), em.FloatDivide(six, zero, out, host.RoundToNearest))
}

func TestFloatPowRootLog(t *testing.T) {
	em := New()
	out := make([]byte, floatSize)

	two := mustFloat(t, em, 2)
	require.Equal(t, int32(floatSize), em.FloatPow(two, 10, out, host.RoundToNearest))
	assert.Equal(t, float64(1024), floatBits(t, out))

	nine := mustFloat(t, em, 9)
	require.Equal(t, int32(floatSize), em.FloatRoot(nine, 2, out, host.RoundToNearest))
	assert.Equal(t, float64(3), floatBits(t, out))

	assert.Equal(t, int32(host.InvalidParams), em.FloatRoot(nine, 0, out, host.RoundToNearest))

	minusOne := mustFloat(t, em, -1)
	assert.Equal(t, int32(host.InvalidFloatComputation), em.FloatRoot(minusOne, 2, out, host.RoundToNearest))

	thousand := mustFloat(t, em, 1000)
	require.Equal(t, int32(floatSize), em.FloatLog(thousand, out, host.RoundToNearest))
	assert.InDelta(t, math.Log(1000), floatBits(t, out), 1e-12)

	assert.Equal(t, int32(host.InvalidFloatComputation), em.FloatLog(mustFloat(t, em, 0), out, host.RoundToNearest))
}
