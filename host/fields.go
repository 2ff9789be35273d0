package host

// FieldSource is one of the three places a serialized field can be read
// from: the current transaction, the current ledger object, or a slotted
// ledger object. It writes the field into out and returns the raw host
// code.
type FieldSource func(field int32, out []byte) int32

// CurrentTxSource reads fields from the transaction under execution.
func CurrentTxSource(field int32, out []byte) int32 {
	return GetTxField(field, out)
}

// CurrentLedgerObjSource reads fields from the ledger entry under
// execution (the escrow itself).
func CurrentLedgerObjSource(field int32, out []byte) int32 {
	return GetCurrentLedgerObjField(field, out)
}

// LedgerObjSource reads fields from the ledger entry cached in the given
// slot.
func LedgerObjSource(slot int32) FieldSource {
	return func(field int32, out []byte) int32 {
		return GetLedgerObjField(slot, field, out)
	}
}

// GetFixedSizeField reads a field whose wire size must equal len(out).
// Any other byte count from the host is an InternalError.
func GetFixedSizeField(src FieldSource, field int32, out []byte) error {
	return CheckCodeExpectedBytes(src(field, out), len(out))
}

// GetFixedSizeFieldOptional reads an optional fixed-size field. An absent
// field yields present=false; a present field of the wrong size yields
// PointerOutOfBounds.
func GetFixedSizeFieldOptional(src FieldSource, field int32, out []byte) (present bool, err error) {
	return CheckCodeExpectedBytesOptional(src(field, out), len(out))
}

// GetVariableSizeField reads a field of variable length into out and
// returns the number of bytes the host wrote.
func GetVariableSizeField(src FieldSource, field int32, out []byte) (int, error) {
	code := src(field, out)
	if code < 0 {
		return 0, ErrorFromCode(code)
	}
	return int(code), nil
}

// GetVariableSizeFieldOptional reads an optional variable-length field.
func GetVariableSizeFieldOptional(src FieldSource, field int32, out []byte) (n int, present bool, err error) {
	code := src(field, out)
	if code == int32(FieldNotFound) {
		return 0, false, nil
	}
	if code < 0 {
		return 0, false, ErrorFromCode(code)
	}
	return int(code), true, nil
}
