package host

// CheckCode maps a raw host result code to an error. Codes >= 0 are
// successes and yield nil.
func CheckCode(code int32) error {
	if code < 0 {
		return ErrorFromCode(code)
	}
	return nil
}

// CheckCodeExpectedBytes maps a raw host result code to an error for
// fixed-size reads. A negative code is a host error; a non-negative code
// that differs from the expected byte count is a protocol violation and is
// reported as InternalError.
func CheckCodeExpectedBytes(code int32, expected int) error {
	if code < 0 {
		return ErrorFromCode(code)
	}
	if int(code) != expected {
		return InternalError
	}
	return nil
}

// CheckCodeOptional maps a raw host result code for an optional read.
// FieldNotFound is a success with present=false; every other negative code
// is an error.
func CheckCodeOptional(code int32) (present bool, err error) {
	if code == int32(FieldNotFound) {
		return false, nil
	}
	if code < 0 {
		return false, ErrorFromCode(code)
	}
	return true, nil
}

// CheckCodeExpectedBytesOptional maps a raw host result code for an
// optional fixed-size read. FieldNotFound is a success with present=false.
// A present field whose size differs from the expectation means the guest
// handed the host a wrongly sized window, reported as PointerOutOfBounds.
func CheckCodeExpectedBytesOptional(code int32, expected int) (present bool, err error) {
	if code == int32(FieldNotFound) {
		return false, nil
	}
	if code < 0 {
		return false, ErrorFromCode(code)
	}
	if int(code) != expected {
		return false, PointerOutOfBounds
	}
	return true, nil
}
