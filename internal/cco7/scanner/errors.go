package scanner

import "errors"

var (
	// ErrScanError はスキャンエラー
	ErrScanError = errors.New("スキャンエラー")
)
