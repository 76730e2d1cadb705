package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stylist/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the on-disk findings cache",
	Long:  "Remove every cached findings entry so the next check re-evaluates all files.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	cache, err := driver.OpenFindingsCache("stylist")
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("drop cache: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, "findings cache cleared")
	return nil
}
