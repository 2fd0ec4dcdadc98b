package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RavuAlHemio/cco7/internal/cco7/config"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "バージョンを表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "cco7 version %s\n", config.Version)
			return err
		},
	})
}
