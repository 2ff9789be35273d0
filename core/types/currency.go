package types

// CurrencySize is the byte length of an XRPL currency code.
const CurrencySize = 20

// StandardCurrencySize is the length of a standard three-letter code such
// as "USD".
const StandardCurrencySize = 3

// Currency is a 20-byte currency code. Standard three-letter codes occupy
// bytes 12..15 with the rest zero; non-standard codes use all 20 bytes.
type Currency [CurrencySize]byte

// CurrencyFromCode places a standard three-letter code in the canonical
// position within a zeroed 20-byte buffer.
func CurrencyFromCode(code [StandardCurrencySize]byte) Currency {
	var c Currency
	copy(c[12:15], code[:])
	return c
}

// Bytes returns the code as a slice for host calls.
func (c Currency) Bytes() []byte {
	return c[:]
}
