package app

import "errors"

var (
	// ErrDecodeFailed は復号に失敗した入力がある場合のエラー
	ErrDecodeFailed = errors.New("復号に失敗した type-7 パスワードがあります")

	// ErrEncodeFailed は符号化に失敗した入力がある場合のエラー
	ErrEncodeFailed = errors.New("符号化に失敗した平文があります")

	// ErrVerifyFailed は符号化した結果を復号しても元に戻らない場合のエラー
	ErrVerifyFailed = errors.New("符号化の結果を復号しても元の平文に戻りません")

	// ErrScanFailed は読み込みまたは解析に失敗したファイルがある場合のエラー
	ErrScanFailed = errors.New("処理に失敗したファイルがあります")

	// ErrNoInput は入力が与えられていない場合のエラー
	ErrNoInput = errors.New("入力がありません")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")
)
