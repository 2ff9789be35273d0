package types

// hexNibble decodes one ASCII hex character, returning 0xFF for anything
// that is not hex.
func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0xFF
	}
}

func decodeHex(dst []byte, src string) bool {
	if len(src) != 2*len(dst) {
		return false
	}
	for i := range dst {
		hi := hexNibble(src[2*i])
		lo := hexNibble(src[2*i+1])
		if hi == 0xFF || lo == 0xFF {
			return false
		}
		dst[i] = hi<<4 | lo
	}
	return true
}

// DecodeHex20 decodes a 40-character hex string into 20 bytes, as used for
// account ID and currency literals. ok is false for any non-hex input or
// wrong length.
func DecodeHex20(s string) (out [20]byte, ok bool) {
	ok = decodeHex(out[:], s)
	if !ok {
		return [20]byte{}, false
	}
	return out, true
}

// DecodeHex32 decodes a 64-character hex string into 32 bytes, as used for
// hash and keylet literals.
func DecodeHex32(s string) (out [32]byte, ok bool) {
	ok = decodeHex(out[:], s)
	if !ok {
		return [32]byte{}, false
	}
	return out, true
}
