package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stylist/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "stylist",
	Short: "Style checker and fixer for Vern sources",
	Long:  `Stylist reports style rule violations in Vern source files and can rewrite the files to fix them`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-findings", 0, "maximum findings per file (0=config or default)")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers (0=config or one per CPU)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
