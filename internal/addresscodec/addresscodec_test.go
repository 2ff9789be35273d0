package addresscodec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAccountID(t *testing.T, hexID string) [20]byte {
	t.Helper()
	raw, err := hex.DecodeString(hexID)
	require.NoError(t, err)
	require.Len(t, raw, 20)
	var id [20]byte
	copy(id[:], raw)
	return id
}

func TestEncodeClassicAddress(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		address   string
	}{
		{
			name:      "zero account",
			accountID: "0000000000000000000000000000000000000000",
			address:   "rrrrrrrrrrrrrrrrrrrrrhoLvTp",
		},
		{
			name:      "genesis account",
			accountID: "b5f762798a53d543a014caf8b297cff8f2f937e8",
			address:   "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeClassicAddress(mustAccountID(t, tt.accountID))
			assert.Equal(t, tt.address, got)
		})
	}
}

func TestDecodeClassicAddressToAccountID(t *testing.T) {
	id := mustAccountID(t, "b5f762798a53d543a014caf8b297cff8f2f937e8")

	got, err := DecodeClassicAddressToAccountID("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestDecodeClassicAddressErrors(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    error
	}{
		{name: "corrupted checksum", address: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTg", want: ErrInvalidChecksum},
		{name: "non alphabet character", address: "rHb9CJAWyB4rj91VRWn96DkukG4bwdty0h", want: ErrInvalidCharacter},
		{name: "too short", address: "rr", want: ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeClassicAddressToAccountID(tt.address)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBase58CheckRoundTrip(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03}
	encoded := Base58CheckEncode(payload, AccountAddressPrefix)

	prefix, decoded, err := Base58CheckDecode(encoded)
	require.NoError(t, err)
	assert.Equal(t, byte(AccountAddressPrefix), prefix)
	assert.Equal(t, payload, decoded)
}

func TestEncodeClassicAddressFromPublicKey(t *testing.T) {
	pub, err := hex.DecodeString("0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020")
	require.NoError(t, err)
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", EncodeClassicAddressFromPublicKey(pub))
}
