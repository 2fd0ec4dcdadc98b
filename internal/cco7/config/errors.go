package config

import "errors"

var (
	// ErrInvalidSalt はソルトが範囲外の場合のエラー
	ErrInvalidSalt = errors.New("ソルトが範囲外です")

	// ErrInvalidWorkers は並列数が正でない場合のエラー
	ErrInvalidWorkers = errors.New("並列数は 1 以上でなければなりません")

	// ErrInvalidLogLevel は不明なログレベルの場合のエラー
	ErrInvalidLogLevel = errors.New("不明なログレベルです")
)
