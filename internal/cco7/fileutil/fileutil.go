// Package fileutil はファイル操作と文字コード変換のユーティリティ関数を提供します
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/RavuAlHemio/cco7/internal/cco7/interfaces"
)

// 対応する文字コード名
const (
	EncodingAuto        = "auto"
	EncodingUTF8        = "utf-8"
	EncodingUTF16       = "utf-16"
	EncodingUTF16LE     = "utf-16le"
	EncodingUTF16BE     = "utf-16be"
	EncodingWindows1252 = "windows-1252"
	EncodingISO88591    = "iso-8859-1"
	EncodingShiftJIS    = "shift-jis"
)

var aliases = map[string]string{
	"":          EncodingAuto,
	"utf8":      EncodingUTF8,
	"utf16":     EncodingUTF16,
	"ucs-2":     EncodingUTF16LE,
	"cp1252":    EncodingWindows1252,
	"latin1":    EncodingISO88591,
	"latin-1":   EncodingISO88591,
	"sjis":      EncodingShiftJIS,
	"shift_jis": EncodingShiftJIS,
	"shiftjis":  EncodingShiftJIS,
}

// NormalizeEncoding は文字コード名を正規化します
func NormalizeEncoding(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// LookupEncoding は文字コード名に対応するエンコーディングを返します。
// auto は書き込み時には BOM 付き UTF-8 として扱います。
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch NormalizeEncoding(name) {
	case EncodingAuto, EncodingUTF8:
		return unicode.UTF8BOM, nil
	case EncodingUTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case EncodingWindows1252:
		return charmap.Windows1252, nil
	case EncodingISO88591:
		return charmap.ISO8859_1, nil
	case EncodingShiftJIS:
		return japanese.ShiftJIS, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
}

// DecodeText は指定した文字コードのデータを UTF-8 の文字列に変換します。
// auto の場合は BOM から UTF-8 / UTF-16LE / UTF-16BE を判別し、BOM がなければ UTF-8 とみなします。
func DecodeText(data []byte, name string) (string, error) {
	var transformer transform.Transformer
	if NormalizeEncoding(name) == EncodingAuto {
		transformer = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	} else {
		enc, err := LookupEncoding(name)
		if err != nil {
			return "", err
		}
		transformer = enc.NewDecoder()
	}

	ret, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), transformer))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeText, err)
	}
	return string(ret), nil
}

// EncodeText は UTF-8 の文字列を指定した文字コードに変換します
func EncodeText(s string, name string) ([]byte, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}

	ret, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeText, err)
	}
	return ret, nil
}

// ReadText はファイルを読み込み、指定した文字コードから UTF-8 に変換します
func ReadText(fs interfaces.FileSystem, path string, name string) (string, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}
	return DecodeText(data, name)
}

// SaveText は内容を指定した文字コードでファイルに保存します。
// UTF-8 (auto を含む) と UTF-16 の場合は BOM を付けます。
func SaveText(fs interfaces.FileSystem, outputPath string, content string, name string) error {
	// 出力先ディレクトリを作成（存在しない場合）
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
		}
	}

	data, err := EncodeText(content, name)
	if err != nil {
		return err
	}

	if err := fs.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return nil
}
