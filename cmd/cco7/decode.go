package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDecodeCmd())
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <type7>... | -",
		Short: "type-7 パスワードを復号する",
		Long: `decode は type-7 パスワードを平文に復号します。
"-" を指定すると標準入力から 1 行に 1 つずつ読み込みます。

Example:
  cco7 decode 02050D480809
  cco7 decode --json 070C285F4D06 0A41
  cat passwords.txt | cco7 decode -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			_, err = application.Decode(cmd.Context(), inputs)
			return err
		},
	}
}
