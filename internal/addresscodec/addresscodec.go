// Package addresscodec converts between classic r-addresses and raw
// 20-byte account IDs using rippled's base58 dialect.
package addresscodec

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/LeJamon/xrpl-wasm-stdlib/internal/crypto"
)

// alphabet is rippled's base58 dictionary. It differs from Bitcoin's so
// addresses start with 'r'.
const alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// AccountAddressPrefix marks a classic account address payload.
const AccountAddressPrefix = 0x00

var (
	ErrInvalidCharacter = errors.New("addresscodec: invalid base58 character")
	ErrInvalidChecksum  = errors.New("addresscodec: checksum mismatch")
	ErrInvalidPrefix    = errors.New("addresscodec: unexpected payload prefix")
	ErrInvalidLength    = errors.New("addresscodec: unexpected payload length")
)

var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
	}
	return t
}

func checksum(payload []byte) [4]byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	var out [4]byte
	copy(out[:], second[:4])
	return out
}

// Base58CheckEncode serializes payload under the given version prefix with
// a 4-byte double-sha256 checksum.
func Base58CheckEncode(payload []byte, prefix byte) string {
	full := make([]byte, 0, 1+len(payload)+4)
	full = append(full, prefix)
	full = append(full, payload...)
	sum := checksum(full)
	full = append(full, sum[:]...)

	// Leading zero bytes map to the zero digit 'r'.
	zeros := 0
	for zeros < len(full) && full[zeros] == 0 {
		zeros++
	}

	n := new(big.Int).SetBytes(full)
	radix := big.NewInt(58)
	mod := new(big.Int)
	var digits []byte
	for n.Sign() > 0 {
		n.DivMod(n, radix, mod)
		digits = append(digits, alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		digits = append(digits, alphabet[0])
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Base58CheckDecode reverses Base58CheckEncode, returning the version
// prefix and payload.
func Base58CheckDecode(s string) (byte, []byte, error) {
	n := new(big.Int)
	radix := big.NewInt(58)
	zeros := 0
	counting := true
	for i := 0; i < len(s); i++ {
		d := decodeTable[s[i]]
		if d < 0 {
			return 0, nil, ErrInvalidCharacter
		}
		if counting && d == 0 {
			zeros++
		} else {
			counting = false
		}
		n.Mul(n, radix)
		n.Add(n, big.NewInt(int64(d)))
	}

	body := n.Bytes()
	full := make([]byte, zeros+len(body))
	copy(full[zeros:], body)

	if len(full) < 5 {
		return 0, nil, ErrInvalidLength
	}
	payload, want := full[:len(full)-4], full[len(full)-4:]
	sum := checksum(payload)
	for i := range want {
		if want[i] != sum[i] {
			return 0, nil, ErrInvalidChecksum
		}
	}
	return payload[0], payload[1:], nil
}

// EncodeClassicAddress renders a 20-byte account ID as an r-address.
func EncodeClassicAddress(accountID [20]byte) string {
	return Base58CheckEncode(accountID[:], AccountAddressPrefix)
}

// EncodeClassicAddressFromPublicKey derives the account ID from a public
// key and renders it as an r-address.
func EncodeClassicAddressFromPublicKey(publicKey []byte) string {
	return EncodeClassicAddress(crypto.CalcAccountID(publicKey))
}

// DecodeClassicAddressToAccountID parses an r-address back into its
// 20-byte account ID.
func DecodeClassicAddressToAccountID(address string) ([20]byte, error) {
	prefix, payload, err := Base58CheckDecode(address)
	if err != nil {
		return [20]byte{}, err
	}
	if prefix != AccountAddressPrefix {
		return [20]byte{}, ErrInvalidPrefix
	}
	if len(payload) != 20 {
		return [20]byte{}, ErrInvalidLength
	}
	var id [20]byte
	copy(id[:], payload)
	return id, nil
}
