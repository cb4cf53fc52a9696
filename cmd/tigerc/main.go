// Command tigerc is the CLI front end for the Tiger semantic analyzer,
// grounded on the teacher's cmd/surge: a github.com/spf13/cobra root
// command with a --color persistent flag gated by golang.org/x/term
// TTY detection, and one subcommand per file.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tiger/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tigerc",
	Short: "Semantic analyzer for the Tiger language",
	Long:  `tigerc checks Tiger source files for scope, type, and declaration errors.`,
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|always|never)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled(cmd *cobra.Command) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
