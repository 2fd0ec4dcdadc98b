package main

import (
	"github.com/spf13/cobra"

	"github.com/RavuAlHemio/cco7/internal/cco7/config"
)

func init() {
	cmd := newEncodeCmd()
	cmd.Flags().IntVarP(&cfg.Salt, "salt", "s", config.RandomSalt, "ソルト (0-99, 省略時はランダム)")
	cmd.Flags().BoolVar(&cfg.Verify, "verify", false, "符号化した結果を復号して確認する")
	rootCmd.AddCommand(cmd)
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <plaintext>... | -",
		Short: "平文を type-7 パスワードに符号化する",
		Long: `encode は平文を type-7 パスワードに符号化します。
ソルトを指定しない場合は入力ごとにランダムに選びます。

Example:
  cco7 encode --salt 3 cisco
  cco7 encode --verify 'ř€🏍'
  cat plain.txt | cco7 encode -s 7 -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			_, err = application.Encode(cmd.Context(), inputs)
			return err
		},
	}
}
