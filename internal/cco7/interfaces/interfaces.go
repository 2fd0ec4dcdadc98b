// Package interfaces は cco7 コマンドで使用するインターフェースを定義します
package interfaces

import (
	"github.com/RavuAlHemio/cco7/internal/cco7/models"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
}

// ConfigScanner は機器設定から type-7 パスワードを探すインターフェース
type ConfigScanner interface {
	Scan(text string) ([]*models.Finding, error)
}
