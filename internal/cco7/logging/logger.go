// Package logging は cco7 コマンドのロガーを生成します
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger は標準設定の hclog ロガーを生成します。
// output が nil の場合は標準エラー出力に書き込みます。
func NewLogger(name string, level string, jsonFormat bool, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// Discard は何も出力しないロガーを返します
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
