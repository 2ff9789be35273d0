package types

import "github.com/LeJamon/xrpl-wasm-stdlib/host"

// OpaqueFloatSize is the byte length of the host's decimal float encoding.
const OpaqueFloatSize = 8

// OpaqueFloat is the host's 8-byte decimal float used for IOU values. The
// encoding is opaque to the guest: all arithmetic happens host-side, with
// an explicit rounding mode per operation.
type OpaqueFloat [OpaqueFloatSize]byte

// Bytes returns the float as a slice for host calls.
func (f OpaqueFloat) Bytes() []byte {
	return f[:]
}

// FloatFromInt converts a signed integer to an opaque float.
func FloatFromInt(value int64, roundingMode int32) (OpaqueFloat, error) {
	var out OpaqueFloat
	code := host.FloatFromInt(value, out[:], roundingMode)
	if err := host.CheckCodeExpectedBytes(code, OpaqueFloatSize); err != nil {
		return OpaqueFloat{}, err
	}
	return out, nil
}

// FloatFromUint converts an unsigned 64-bit integer, passed in big-endian
// byte form, to an opaque float.
func FloatFromUint(value [8]byte, roundingMode int32) (OpaqueFloat, error) {
	var out OpaqueFloat
	code := host.FloatFromUint(value[:], out[:], roundingMode)
	if err := host.CheckCodeExpectedBytes(code, OpaqueFloatSize); err != nil {
		return OpaqueFloat{}, err
	}
	return out, nil
}

// FloatSet builds an opaque float from an explicit decimal exponent and
// mantissa.
func FloatSet(exponent int32, mantissa int64, roundingMode int32) (OpaqueFloat, error) {
	var out OpaqueFloat
	code := host.FloatSet(exponent, mantissa, out[:], roundingMode)
	if err := host.CheckCodeExpectedBytes(code, OpaqueFloatSize); err != nil {
		return OpaqueFloat{}, err
	}
	return out, nil
}

// Compare orders two opaque floats. The result is host.FloatLess,
// host.FloatEqual or host.FloatGreater.
func (f OpaqueFloat) Compare(other OpaqueFloat) (int32, error) {
	code := host.FloatCompare(f[:], other[:])
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return code, nil
}

func (f OpaqueFloat) binaryOp(other OpaqueFloat, roundingMode int32,
	op func(a, b, out []byte, roundingMode int32) int32) (OpaqueFloat, error) {
	var out OpaqueFloat
	code := op(f[:], other[:], out[:], roundingMode)
	if err := host.CheckCodeExpectedBytes(code, OpaqueFloatSize); err != nil {
		return OpaqueFloat{}, err
	}
	return out, nil
}

// Add returns f + other.
func (f OpaqueFloat) Add(other OpaqueFloat, roundingMode int32) (OpaqueFloat, error) {
	return f.binaryOp(other, roundingMode, host.FloatAdd)
}

// Sub returns f - other.
func (f OpaqueFloat) Sub(other OpaqueFloat, roundingMode int32) (OpaqueFloat, error) {
	return f.binaryOp(other, roundingMode, host.FloatSubtract)
}

// Mul returns f * other.
func (f OpaqueFloat) Mul(other OpaqueFloat, roundingMode int32) (OpaqueFloat, error) {
	return f.binaryOp(other, roundingMode, host.FloatMultiply)
}

// Div returns f / other.
func (f OpaqueFloat) Div(other OpaqueFloat, roundingMode int32) (OpaqueFloat, error) {
	return f.binaryOp(other, roundingMode, host.FloatDivide)
}

// Pow returns f raised to the integer power n.
func (f OpaqueFloat) Pow(n int32, roundingMode int32) (OpaqueFloat, error) {
	var out OpaqueFloat
	code := host.FloatPow(f[:], n, out[:], roundingMode)
	if err := host.CheckCodeExpectedBytes(code, OpaqueFloatSize); err != nil {
		return OpaqueFloat{}, err
	}
	return out, nil
}

// Root returns the nth root of f.
func (f OpaqueFloat) Root(n int32, roundingMode int32) (OpaqueFloat, error) {
	var out OpaqueFloat
	code := host.FloatRoot(f[:], n, out[:], roundingMode)
	if err := host.CheckCodeExpectedBytes(code, OpaqueFloatSize); err != nil {
		return OpaqueFloat{}, err
	}
	return out, nil
}

// Log returns the natural logarithm of f.
func (f OpaqueFloat) Log(roundingMode int32) (OpaqueFloat, error) {
	var out OpaqueFloat
	code := host.FloatLog(f[:], out[:], roundingMode)
	if err := host.CheckCodeExpectedBytes(code, OpaqueFloatSize); err != nil {
		return OpaqueFloat{}, err
	}
	return out, nil
}

// Trace writes the float to the xrpld trace log under msg.
func (f OpaqueFloat) Trace(msg string) error {
	return host.TraceFloat(msg, f[:])
}
