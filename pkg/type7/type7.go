// Package type7 は Cisco IOS の type-7 パスワードの符号化と復号を行います。
//
// type-7 パスワードは 2 桁の 10 進数 (ソルト、キー表の開始位置) と、
// それに続く大文字 16 進数のバイト列 (ハッシュ) から成ります。
// ハッシュは平文の UTF-8 表現を固定のキー表と XOR したものです。
//
// これは既知の弱い難読化方式であり、暗号学的な保護にはなりません。
package type7

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/RavuAlHemio/cco7/pkg/crypto"
	"github.com/RavuAlHemio/cco7/pkg/unicodec"
)

// Key は type-7 の XOR キー表です
const Key = "dsfd;kfoA,.iyewrkldJKDHSUBsgvca69834ncxv9873254k;fg87"

// MaxSalt は 2 桁で表せるソルトの最大値です
const MaxSalt = 99

var passwordPattern = regexp.MustCompile(`^([0-9]{2})((?:[0-9A-F]{2})*)$`)

// Password は解析済みの type-7 パスワードです
type Password struct {
	Salt int    // キー表の開始位置
	Hash []byte // XOR 済みのバイト列
}

// Parse は type-7 パスワードの文字列を解析します。
// 書式が正しくない場合は、最も具体的な原因を示す *FormatError を返します。
func Parse(s string) (*Password, error) {
	matches := passwordPattern.FindStringSubmatch(s)
	if matches == nil {
		return nil, diagnose(s)
	}

	salt, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownFormat, err)
	}
	hash, err := hex.DecodeString(matches[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownFormat, err)
	}

	return &Password{Salt: salt, Hash: hash}, nil
}

// diagnose は正規表現に一致しなかった入力の問題点を
// 長さ、ソルト桁、ハッシュ桁の順に調べます
func diagnose(s string) error {
	chars := []rune(s)

	if len(chars)%2 != 0 {
		return &FormatError{Length: len(chars), Err: ErrOddLength}
	}
	if len(chars) < 2 {
		return &FormatError{Length: len(chars), Err: ErrTooShort}
	}

	for i := 0; i < 2; i++ {
		if !isDecimalDigit(chars[i]) {
			return &FormatError{Length: len(chars), Index: i, Char: chars[i], Err: ErrSaltDigit}
		}
	}
	for i := 2; i < len(chars); i++ {
		if !isDecimalDigit(chars[i]) && (chars[i] < 'A' || chars[i] > 'F') {
			return &FormatError{Length: len(chars), Index: i, Char: chars[i], Err: ErrHashDigit}
		}
	}

	// 文字数は偶数でもバイト数が奇数の場合など
	return &FormatError{Length: len(chars), Err: ErrUnknownFormat}
}

func isDecimalDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// String はパスワードを type-7 の書式で返します
func (p *Password) String() string {
	var builder strings.Builder
	builder.Grow(2 + 2*len(p.Hash))
	builder.WriteString(fmt.Sprintf("%02d", p.Salt))
	for _, b := range p.Hash {
		builder.WriteString(fmt.Sprintf("%02X", b))
	}
	return builder.String()
}

// Cipher はキー表の offset 番目から始まるキーストリームでデータを XOR した新しいスライスを返します。
// 対称な変換なので、符号化と復号の両方に使います。
func Cipher(data []byte, offset int) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	crypto.XORKeystream(out, []byte(Key), offset)
	return out
}

// DecodeUnits は type-7 パスワードを復号し、平文を UTF-16 のコードユニット列で返します
func DecodeUnits(s string) ([]uint16, error) {
	password, err := Parse(s)
	if err != nil {
		return nil, err
	}

	plainUTF8 := Cipher(password.Hash, password.Salt)
	codePoints, err := unicodec.DecodeUTF8(plainUTF8)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCipherText, err)
	}
	units, err := unicodec.EncodeUTF16(codePoints)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCipherText, err)
	}
	return units, nil
}

// Decode は type-7 パスワードを復号して平文を返します
func Decode(s string) (string, error) {
	units, err := DecodeUnits(s)
	if err != nil {
		return "", err
	}
	return unicodec.UTF16ToString(units)
}

// EncodeUnits は UTF-16 のコードユニット列で与えられた平文を
// 指定したソルトで type-7 パスワードに符号化します
func EncodeUnits(units []uint16, salt int) (string, error) {
	if salt < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeSalt, salt)
	}
	if salt > MaxSalt {
		return "", fmt.Errorf("%w: %d", ErrSaltTooLarge, salt)
	}

	codePoints, err := unicodec.DecodeUTF16(units)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPlainText, err)
	}
	plainUTF8, err := unicodec.EncodeUTF8(codePoints)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPlainText, err)
	}

	password := &Password{
		Salt: salt,
		Hash: Cipher(plainUTF8, salt),
	}
	return password.String(), nil
}

// Encode は平文を指定したソルトで type-7 パスワードに符号化します
func Encode(plain string, salt int) (string, error) {
	units, err := unicodec.StringToUTF16(plain)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPlainText, err)
	}
	return EncodeUnits(units, salt)
}

// SuggestSalt はキー表の範囲でランダムなソルトを返します
func SuggestSalt() int {
	return rand.Intn(len(Key))
}
