package fileutil

import "errors"

var (
	// ErrUnknownEncoding は対応していない文字コード名の場合のエラー
	ErrUnknownEncoding = errors.New("対応していない文字コードです")

	// ErrDecodeText は文字コードの変換 (読み込み側) に失敗した場合のエラー
	ErrDecodeText = errors.New("文字コードの変換に失敗しました")

	// ErrEncodeText は指定した文字コードで表せない文字がある場合のエラー
	ErrEncodeText = errors.New("指定した文字コードで表せない文字があります")

	// ErrReadFile はファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("ファイルの読み込みに失敗しました")

	// ErrCreateDirectory は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("出力先ディレクトリの作成に失敗しました")

	// ErrWriteContent は内容の書き込みに失敗した場合のエラー
	ErrWriteContent = errors.New("内容の書き込みに失敗しました")
)
