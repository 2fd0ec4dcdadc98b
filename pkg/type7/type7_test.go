package type7

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RavuAlHemio/cco7/pkg/unicodec"
)

func TestKey(t *testing.T) {
	assert.Len(t, Key, 53)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ソルト02", "02050D480809", "cisco"},
		{"ソルト07", "070C285F4D06", "cisco"},
		{"ソルト03", "030752180500", "cisco"},
		{"キー長を超えるソルト", "600C285F4D06", "cisco"},
		{"ソルトのみ", "99", ""},
		{"多バイト文字", "53A1EA84E6979BF9E0CC", "ř€🏍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecode_FormatErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantIndex int
		wantChar  rune
	}{
		{name: "奇数長", input: "123", wantErr: ErrOddLength},
		{name: "1文字", input: "1", wantErr: ErrOddLength},
		{name: "空文字列", input: "", wantErr: ErrTooShort},
		{name: "ソルトの2桁目", input: "0A41", wantErr: ErrSaltDigit, wantIndex: 1, wantChar: 'A'},
		{name: "ソルトの1桁目", input: "x1", wantErr: ErrSaltDigit, wantIndex: 0, wantChar: 'x'},
		{name: "ハッシュの範囲外の文字", input: "12G0", wantErr: ErrHashDigit, wantIndex: 2, wantChar: 'G'},
		{name: "ハッシュの小文字", input: "120a", wantErr: ErrHashDigit, wantIndex: 3, wantChar: 'a'},
		{name: "非ASCII文字", input: "12ř0", wantErr: ErrHashDigit, wantIndex: 2, wantChar: 'ř'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.ErrorIs(t, err, tt.wantErr)

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			if tt.wantChar != 0 {
				assert.Equal(t, tt.wantIndex, formatErr.Index)
				assert.Equal(t, tt.wantChar, formatErr.Char)
			}
		})
	}
}

func TestDecode_SaltDigitBeforeHashDigit(t *testing.T) {
	_, err := Decode("0A41")
	assert.ErrorIs(t, err, ErrSaltDigit)
	assert.NotErrorIs(t, err, ErrHashDigit)
}

func TestDecode_InvalidPlainText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"NULの2バイト表現", "00A4F3", unicodec.ErrOverlong},
		{"NULの4バイト表現", "0094F3E6E4", unicodec.ErrOverlong},
		{"孤立した継続バイト", "00E4", unicodec.ErrOrphanContinuation},
		{"途切れた列", "00A4", unicodec.ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			assert.ErrorIs(t, err, ErrCipherText)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		plain    string
		salt     int
		expected string
	}{
		{"cisco", "cisco", 3, "030752180500"},
		{"ソルト02", "cisco", 2, "02050D480809"},
		{"キー長を超えるソルト", "cisco", 60, "600C285F4D06"},
		{"空文字列", "", 0, "00"},
		{"多バイト文字", "ř€🏍", 53, "53A1EA84E6979BF9E0CC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.plain, tt.salt)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			back, err := Decode(got)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, back)
		})
	}
}

func TestEncode_InvalidSalt(t *testing.T) {
	_, err := Encode("cisco", -1)
	assert.ErrorIs(t, err, ErrNegativeSalt)

	_, err = Encode("cisco", 100)
	assert.ErrorIs(t, err, ErrSaltTooLarge)

	got, err := Encode("cisco", MaxSalt)
	require.NoError(t, err)
	assert.Equal(t, "99", got[:2])
}

func TestEncode_InvalidPlainText(t *testing.T) {
	_, err := Encode("\xC0\x80", 0)
	assert.ErrorIs(t, err, ErrPlainText)
	assert.ErrorIs(t, err, unicodec.ErrOverlong)
}

func TestEncodeUnits(t *testing.T) {
	got, err := EncodeUnits([]uint16{'c', 'i', 's', 'c', 'o'}, 3)
	require.NoError(t, err)
	assert.Equal(t, "030752180500", got)

	_, err = EncodeUnits([]uint16{'a', 0xD83C}, 3)
	assert.ErrorIs(t, err, ErrPlainText)
	assert.ErrorIs(t, err, unicodec.ErrDanglingLead)

	_, err = EncodeUnits([]uint16{0xDFCD, 0xD83C}, 3)
	assert.ErrorIs(t, err, unicodec.ErrTrailWithoutLead)
}

func TestDecodeUnits(t *testing.T) {
	units, err := DecodeUnits("53A1EA84E6979BF9E0CC")
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x0159, 0x20AC, 0xD83C, 0xDFCD}, units)
}

func TestParse(t *testing.T) {
	password, err := Parse("02050D480809")
	require.NoError(t, err)
	assert.Equal(t, 2, password.Salt)
	assert.Equal(t, []byte{0x05, 0x0D, 0x48, 0x08, 0x09}, password.Hash)
	assert.Equal(t, "02050D480809", password.String())

	password, err = Parse("99")
	require.NoError(t, err)
	assert.Equal(t, 99, password.Salt)
	assert.Empty(t, password.Hash)
	assert.Equal(t, "99", password.String())
}

func TestPassword_String(t *testing.T) {
	password := &Password{Salt: 5, Hash: []byte{0x00, 0x0A, 0xFF}}
	assert.Equal(t, "05000AFF", password.String())
}

func TestCipher(t *testing.T) {
	data := []byte("cisco")
	encrypted := Cipher(data, 7)
	assert.Equal(t, []byte("cisco"), data, "入力は変更されない")
	assert.Equal(t, []byte{0x0C, 0x28, 0x5F, 0x4D, 0x06}, encrypted)
	assert.Equal(t, data, Cipher(encrypted, 7))
}

func TestSuggestSalt(t *testing.T) {
	for i := 0; i < 200; i++ {
		salt := SuggestSalt()
		assert.GreaterOrEqual(t, salt, 0)
		assert.Less(t, salt, len(Key))
	}
}

func TestProperty_CipherRoundTrip(t *testing.T) {
	f := func(plain string, rawSalt uint8) bool {
		salt := int(rawSalt) % len(Key)
		encoded, err := Encode(plain, salt)
		if err != nil {
			return false
		}
		decoded, err := Decode(encoded)
		return err == nil && decoded == plain
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 300}); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}
