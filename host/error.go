// Package host exposes the functions provided by the xrpld WASM host to
// smart escrow programs. On wasm builds the calls are routed to the
// imported "host_lib" module; on native builds they are routed to an
// installed Backend so the rest of the library can be unit tested.
package host

import "fmt"

// Error is a host result code. The host reports failures as small negative
// integers; the set of codes is fixed ABI and must not be renumbered.
type Error int32

const (
	InternalError           Error = -1
	FieldNotFound           Error = -2
	BufferTooSmall          Error = -3
	NoArray                 Error = -4
	NotLeafField            Error = -5
	LocatorMalformed        Error = -6
	SlotOutRange            Error = -7
	SlotsFull               Error = -8
	EmptySlot               Error = -9
	LedgerObjNotFound       Error = -10
	InvalidDecoding         Error = -11
	DataFieldTooLarge       Error = -12
	PointerOutOfBounds      Error = -13
	NoMemExported           Error = -14
	InvalidParams           Error = -15
	InvalidAccount          Error = -16
	InvalidField            Error = -17
	IndexOutOfBounds        Error = -18
	InvalidFloatInput       Error = -19
	InvalidFloatComputation Error = -20
)

// Code returns the raw negative host code, suitable for returning from the
// guest entry point so the host can surface it in transaction metadata.
func (e Error) Code() int32 {
	return int32(e)
}

func (e Error) Error() string {
	switch e {
	case InternalError:
		return "internal error"
	case FieldNotFound:
		return "field not found"
	case BufferTooSmall:
		return "buffer too small"
	case NoArray:
		return "not an array"
	case NotLeafField:
		return "not a leaf field"
	case LocatorMalformed:
		return "locator malformed"
	case SlotOutRange:
		return "slot out of range"
	case SlotsFull:
		return "no free slot"
	case EmptySlot:
		return "empty slot"
	case LedgerObjNotFound:
		return "ledger object not found"
	case InvalidDecoding:
		return "invalid decoding"
	case DataFieldTooLarge:
		return "data field too large"
	case PointerOutOfBounds:
		return "pointer out of bounds"
	case NoMemExported:
		return "no memory exported"
	case InvalidParams:
		return "invalid parameters"
	case InvalidAccount:
		return "invalid account"
	case InvalidField:
		return "invalid field"
	case IndexOutOfBounds:
		return "index out of bounds"
	case InvalidFloatInput:
		return "invalid float input"
	case InvalidFloatComputation:
		return "invalid float computation"
	default:
		return fmt.Sprintf("host error %d", int32(e))
	}
}

// ErrorFromCode wraps a negative host result code. Codes outside the known
// enumeration are preserved verbatim; Issue parsing, for example, reports a
// bad buffer length as its error code.
func ErrorFromCode(code int32) Error {
	return Error(code)
}
