package unicodec

import (
	"errors"
	"fmt"
)

var (
	// UTF-16 の構造エラー
	ErrLeadAfterLead    = errors.New("上位サロゲートの後に上位サロゲートが続いています")
	ErrTrailWithoutLead = errors.New("上位サロゲートのない下位サロゲートです")
	ErrMissingTrail     = errors.New("上位サロゲートの後に下位サロゲート以外の値が続いています")
	ErrDanglingLead     = errors.New("入力の末尾に上位サロゲートが残っています")

	// コードポイントの範囲エラー
	ErrInvalidCodePoint   = errors.New("無効なコードポイントです")
	ErrSurrogateCodePoint = errors.New("サロゲート領域のコードポイントは単独で表現できません")

	// UTF-8 の構造エラー
	ErrInvalidLeadByte    = errors.New("無効なマルチバイト列の先頭バイトです")
	ErrOrphanContinuation = errors.New("先頭バイトのない継続バイトです")
	ErrUnexpectedLowByte  = errors.New("マルチバイト列の途中に 1 バイト文字があります")
	ErrUnfinishedSequence = errors.New("前のマルチバイト列が終わる前に新しい列が始まりました")
	ErrOverlong           = errors.New("最短でないエンコーディングです")
	ErrTruncated          = errors.New("入力の末尾でマルチバイト列が途切れています")
)

// Error は変換に失敗した位置と値を保持します
type Error struct {
	Op    string // 実行していた操作
	Pos   int    // 入力列でのインデックス
	Value rune   // 問題のあったユニット、バイトまたはコードポイント
	Err   error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *Error) Error() string {
	return fmt.Sprintf("%s: 位置 %d (0x%X): %v", e.Op, e.Pos, e.Value, e.Err)
}

// Unwrap は元のエラーを返します
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, pos int, value rune, err error) *Error {
	return &Error{
		Op:    op,
		Pos:   pos,
		Value: value,
		Err:   err,
	}
}

func seqError(err error, seq utf8Sequence) error {
	return fmt.Errorf("%w (%d バイト列の継続バイトが残り %d)", err, seq.length, seq.remaining)
}

func overlongError(length, need int) error {
	return fmt.Errorf("%w (%d バイト列が %d バイトで表せる値を表現しています)", ErrOverlong, length, need)
}
