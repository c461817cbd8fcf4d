package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sglint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sglint",
	Short: "Security lints for resolved semantic trees",
	Long:  `sglint runs security-focused lint rules over semantic tree artifacts dumped by the host compiler`,
}

// main registers subcommands and global flags, then executes the root
// command. Command errors exit with status 1; deny-level findings exit with
// status 2 (handled inside the check command).
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the output terminal.
func useColor(cmd *cobra.Command) bool {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
