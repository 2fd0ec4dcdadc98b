package type7

import (
	"errors"
	"fmt"
)

var (
	// 書式エラー
	ErrOddLength     = errors.New("type-7 パスワードの長さが 2 で割り切れません")
	ErrTooShort      = errors.New("type-7 パスワードは 2 文字以上必要です")
	ErrSaltDigit     = errors.New("type-7 のソルト桁が 10 進数字ではありません")
	ErrHashDigit     = errors.New("type-7 のハッシュ桁が大文字の 16 進数字ではありません")
	ErrUnknownFormat = errors.New("type-7 パスワードの書式を判定できませんでした")

	// ソルトのエラー
	ErrNegativeSalt = errors.New("ソルトが負の値です")
	ErrSaltTooLarge = errors.New("ソルトは 2 桁の 10 進数で表せる値でなければなりません")

	// 文字コード変換のエラー
	ErrPlainText  = errors.New("平文を UTF-8 に変換できません")
	ErrCipherText = errors.New("復号したデータが有効な UTF-8 ではありません")
)

// FormatError は type-7 パスワードの書式エラーです
type FormatError struct {
	Length int   // 入力の文字数
	Index  int   // 問題のある文字の位置 (桁エラーの場合のみ)
	Char   rune  // 問題のある文字 (桁エラーの場合のみ)
	Err    error // 元のエラー
}

// Error はエラーメッセージを返します
func (e *FormatError) Error() string {
	if errors.Is(e.Err, ErrSaltDigit) || errors.Is(e.Err, ErrHashDigit) {
		return fmt.Sprintf("%v: 位置 %d (%q)", e.Err, e.Index, e.Char)
	}
	return fmt.Sprintf("%v (長さ %d)", e.Err, e.Length)
}

// Unwrap は元のエラーを返します
func (e *FormatError) Unwrap() error {
	return e.Err
}
