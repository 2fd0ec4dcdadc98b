// Package config は cco7 コマンドの設定管理を行います
package config

import (
	"fmt"
	"strings"

	"github.com/RavuAlHemio/cco7/internal/cco7/fileutil"
	"github.com/RavuAlHemio/cco7/pkg/type7"
)

const Version = "0.1.0"

// RandomSalt はソルトを自動で選ぶことを示します
const RandomSalt = -1

// 環境変数
const (
	EnvLogLevel = "CCO7_LOG_LEVEL"
	EnvJSONLog  = "CCO7_JSON_LOG"
	EnvEncoding = "CCO7_ENCODING"
)

// Config はアプリケーションの設定を保持します
type Config struct {
	Salt       int    // encode で使うソルト (RandomSalt なら自動)
	Verify     bool   // encode の結果を復号して確認する
	Encoding   string // scan の入力ファイルと出力ファイルの文字コード
	OutputPath string // 結果の保存先 (空なら保存しない)
	Workers    int    // scan の並列数
	DebugMode  bool
	JSONOutput bool
	JSONLog    bool
	Quiet      bool
	LogLevel   string
}

// Default はデフォルトの設定を返します
func Default() *Config {
	return &Config{
		Salt:     RandomSalt,
		Encoding: fileutil.EncodingAuto,
		Workers:  4,
	}
}

// ApplyEnv は環境変数の値で未指定の設定を補います
func (c *Config) ApplyEnv(getenv func(string) string) {
	if c.LogLevel == "" {
		c.LogLevel = getenv(EnvLogLevel)
	}
	if getenv(EnvJSONLog) == "1" {
		c.JSONLog = true
	}
	if v := getenv(EnvEncoding); v != "" && (c.Encoding == "" || c.Encoding == fileutil.EncodingAuto) {
		c.Encoding = v
	}
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	if c.Salt != RandomSalt && (c.Salt < 0 || c.Salt > type7.MaxSalt) {
		return fmt.Errorf("%w: %d (0〜%d)", ErrInvalidSalt, c.Salt, type7.MaxSalt)
	}
	if _, err := fileutil.LookupEncoding(c.Encoding); err != nil {
		return err
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("%w: %s", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// EffectiveLogLevel は実際に使うログレベルを返します
func (c *Config) EffectiveLogLevel() string {
	if c.DebugMode {
		return "debug"
	}
	if c.LogLevel != "" {
		return c.LogLevel
	}
	return "warn"
}
