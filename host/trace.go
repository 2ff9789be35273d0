package host

// DataRepr selects how trace data bytes are rendered in the xrpld log.
type DataRepr int32

const (
	AsUTF8 DataRepr = 0
	AsHex  DataRepr = 1
)

// Trace writes a message to the xrpld trace log.
func Trace(msg string) error {
	return CheckCode(rawTrace([]byte(msg), nil, int32(AsUTF8)))
}

// TraceData writes a message plus a data payload to the xrpld trace log,
// rendered as UTF-8 or hex.
func TraceData(msg string, data []byte, repr DataRepr) error {
	return CheckCode(rawTrace([]byte(msg), data, int32(repr)))
}

// TraceNum writes a message and a number to the xrpld trace log.
func TraceNum(msg string, number int64) error {
	return CheckCode(rawTraceNum([]byte(msg), number))
}

// TraceAccount writes a message and a 20-byte account identifier, rendered
// as a classic address, to the xrpld trace log.
func TraceAccount(msg string, account []byte) error {
	return CheckCode(rawTraceAccount([]byte(msg), account))
}

// TraceFloat writes a message and an 8-byte opaque float to the xrpld
// trace log.
func TraceFloat(msg string, f []byte) error {
	return CheckCode(rawTraceOpaqueFloat([]byte(msg), f))
}

// TraceAmountBytes writes a message and a serialized STAmount to the xrpld
// trace log. Callers with a typed Amount should use its Trace method.
func TraceAmountBytes(msg string, amount []byte) error {
	return CheckCode(rawTraceAmount([]byte(msg), amount))
}
