package emulator

import (
	"encoding/binary"
	"math"

	"github.com/LeJamon/xrpl-wasm-stdlib/host"
)

// floatSize is the width of an opaque float value.
const floatSize = 8

// The emulator represents opaque floats as big-endian IEEE 754 doubles.
// The wasmhost uses the same Backend, so values only ever round-trip
// through these functions and the encoding stays internal.

func decodeFloat(b []byte) (float64, int32) {
	if len(b) != floatSize {
		return 0, int32(host.InvalidParams)
	}
	f := math.Float64frombits(binary.BigEndian.Uint64(b))
	if math.IsNaN(f) {
		return 0, int32(host.InvalidFloatInput)
	}
	return f, 0
}

func encodeFloat(f float64, out []byte) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return int32(host.InvalidFloatComputation)
	}
	if len(out) < floatSize {
		return int32(host.BufferTooSmall)
	}
	binary.BigEndian.PutUint64(out, math.Float64bits(f))
	return floatSize
}

func validRounding(mode int32) bool {
	return mode >= host.RoundToNearest && mode <= host.RoundUpward
}

func (e *Emulator) FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	if !validRounding(roundingMode) {
		return int32(host.InvalidParams)
	}
	return encodeFloat(float64(value), out)
}

func (e *Emulator) FloatFromUint(value, out []byte, roundingMode int32) int32 {
	if !validRounding(roundingMode) || len(value) != floatSize {
		return int32(host.InvalidParams)
	}
	return encodeFloat(float64(binary.BigEndian.Uint64(value)), out)
}

func (e *Emulator) FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	if !validRounding(roundingMode) {
		return int32(host.InvalidParams)
	}
	f := float64(mantissa) * math.Pow(10, float64(exponent))
	if math.IsInf(f, 0) {
		return int32(host.InvalidFloatInput)
	}
	return encodeFloat(f, out)
}

func (e *Emulator) FloatCompare(a, b []byte) int32 {
	fa, code := decodeFloat(a)
	if code != 0 {
		return code
	}
	fb, code := decodeFloat(b)
	if code != 0 {
		return code
	}
	switch {
	case fa < fb:
		return host.FloatLess
	case fa > fb:
		return host.FloatGreater
	default:
		return host.FloatEqual
	}
}

func (e *Emulator) floatBinary(a, b, out []byte, roundingMode int32, op func(x, y float64) float64) int32 {
	if !validRounding(roundingMode) {
		return int32(host.InvalidParams)
	}
	fa, code := decodeFloat(a)
	if code != 0 {
		return code
	}
	fb, code := decodeFloat(b)
	if code != 0 {
		return code
	}
	return encodeFloat(op(fa, fb), out)
}

func (e *Emulator) FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	return e.floatBinary(a, b, out, roundingMode, func(x, y float64) float64 { return x + y })
}

func (e *Emulator) FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	return e.floatBinary(a, b, out, roundingMode, func(x, y float64) float64 { return x - y })
}

func (e *Emulator) FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	return e.floatBinary(a, b, out, roundingMode, func(x, y float64) float64 { return x * y })
}

func (e *Emulator) FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	if !validRounding(roundingMode) {
		return int32(host.InvalidParams)
	}
	fa, code := decodeFloat(a)
	if code != 0 {
		return code
	}
	fb, code := decodeFloat(b)
	if code != 0 {
		return code
	}
	if fb == 0 {
		return int32(host.InvalidFloatComputation)
	}
	return encodeFloat(fa/fb, out)
}

func (e *Emulator) FloatPow(a []byte, n int32, out []byte, roundingMode int32) int32 {
	if !validRounding(roundingMode) {
		return int32(host.InvalidParams)
	}
	fa, code := decodeFloat(a)
	if code != 0 {
		return code
	}
	return encodeFloat(math.Pow(fa, float64(n)), out)
}

func (e *Emulator) FloatRoot(a []byte, n int32, out []byte, roundingMode int32) int32 {
	if !validRounding(roundingMode) {
		return int32(host.InvalidParams)
	}
	if n == 0 {
		return int32(host.InvalidParams)
	}
	fa, code := decodeFloat(a)
	if code != 0 {
		return code
	}
	if fa < 0 {
		return int32(host.InvalidFloatComputation)
	}
	return encodeFloat(math.Pow(fa, 1/float64(n)), out)
}

func (e *Emulator) FloatLog(a, out []byte, roundingMode int32) int32 {
	if !validRounding(roundingMode) {
		return int32(host.InvalidParams)
	}
	fa, code := decodeFloat(a)
	if code != 0 {
		return code
	}
	if fa <= 0 {
		return int32(host.InvalidFloatComputation)
	}
	return encodeFloat(math.Log(fa), out)
}
