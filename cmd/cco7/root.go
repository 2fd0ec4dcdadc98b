package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RavuAlHemio/cco7/internal/cco7/app"
	"github.com/RavuAlHemio/cco7/internal/cco7/config"
	"github.com/RavuAlHemio/cco7/internal/cco7/logging"
)

var (
	cfg         = config.Default()
	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "cco7",
	Short: "Decode and encode Cisco type-7 passwords",
	Long: `cco7 は Cisco IOS の type-7 パスワードを復号・符号化するツールです。
機器設定ファイルから type-7 パスワードを探して一覧にすることもできます。`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg.ApplyEnv(os.Getenv)
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger := logging.NewLogger("cco7", cfg.EffectiveLogLevel(), cfg.JSONLog, cmd.ErrOrStderr())
		application = app.NewWithOptions(cfg, app.Options{
			Logger: logger,
			Output: cmd.OutOrStdout(),
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&cfg.DebugMode, "debug", "d", false, "デバッグログを出力する")
	rootCmd.PersistentFlags().BoolVar(&cfg.JSONOutput, "json", false, "結果を JSON で出力する")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "結果を標準出力に表示しない")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "", "ログレベル (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&cfg.OutputPath, "output", "o", "", "結果を保存するファイル")
}

func execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		return 1
	}
	return 0
}

// readInputs は引数を入力として返します。
// "-" は標準入力の各行に置き換え、空行は無視します。
func readInputs(args []string, stdin io.Reader) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		if arg != "-" {
			inputs = append(inputs, arg)
			continue
		}

		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			line := strings.TrimSuffix(scanner.Text(), "\r")
			if line == "" {
				continue
			}
			inputs = append(inputs, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("標準入力の読み込みに失敗: %w", err)
		}
	}
	return inputs, nil
}
