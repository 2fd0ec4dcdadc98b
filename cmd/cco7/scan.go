package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := newScanCmd()
	cmd.Flags().StringVarP(&cfg.Encoding, "encoding", "e", cfg.Encoding, "入力ファイルの文字コード (auto, utf-8, utf-16, utf-16le, utf-16be, windows-1252, iso-8859-1, shift-jis)")
	cmd.Flags().IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "並列に処理するファイル数")
	rootCmd.AddCommand(cmd)
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <config>...",
		Short: "機器設定ファイルから type-7 パスワードを探す",
		Long: `scan は機器設定ファイル (running-config など) から type-7 パスワードを探し、
行番号・キーワードと復号した平文を一覧にします。

Example:
  cco7 scan running-config.txt
  cco7 scan -e utf-16 -w 8 --json configs/*.cfg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := application.Scan(cmd.Context(), args)
			return err
		},
	}
}
