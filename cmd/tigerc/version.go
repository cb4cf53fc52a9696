package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tiger/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tigerc version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return nil
	},
}
