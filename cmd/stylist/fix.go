package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stylist/internal/driver"
	"stylist/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.vn|directory>",
	Short: "Apply available fixes to a source file or directory",
	Long:  "Run the style rules, surface available fixes, and apply them according to the chosen strategy.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply all available fixes")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("key", "", "apply only fixes with this equivalence key")
	fixCmd.Flags().Bool("dry-run", false, "report what would change without writing files")
	fixCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func runFix(cmd *cobra.Command, args []string) error {
	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnceFlag, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetKey, err := cmd.Flags().GetString("key")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	if targetKey != "" && (applyAll || applyOnceFlag) {
		return fmt.Errorf("--key cannot be combined with --all or --once")
	}
	if applyAll && applyOnceFlag {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}

	applyMode := fix.ApplyModeOnce
	if targetKey != "" {
		applyMode = fix.ApplyModeKey
	} else if applyAll {
		applyMode = fix.ApplyModeAll
	}

	// The fix pipeline always re-evaluates, so cached findings never help.
	rc, err := loadRunConfig(cmd, args[0], true)
	if err != nil {
		return err
	}
	fixOpts := driver.FixOptions{
		Options: rc.opts,
		Apply: fix.ApplyOptions{
			Mode:      applyMode,
			TargetKey: targetKey,
		},
		Indent: rc.cfg.Style.Indent,
		DryRun: dryRun,
	}

	files := []string{rc.target}
	if rc.isDir {
		files, err = driver.ListSourceFiles(rc.target)
		if err != nil {
			return err
		}
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stdout, "no source files found")
		return nil
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	var results []driver.FixFileResult
	if !quiet && shouldUseTUI(mode) {
		_, results, err = runFixWithUI(cmd.Context(), "fixing", files, fixOpts)
	} else {
		_, results, err = driver.FixFiles(cmd.Context(), files, fixOpts)
	}
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	return reportFixResults(results, dryRun)
}

func reportFixResults(results []driver.FixFileResult, dryRun bool) error {
	applied := 0
	changed := 0
	var failures []driver.FixFileResult

	for _, r := range results {
		if r.Err != nil && !errors.Is(r.Err, fix.ErrNoFixes) {
			failures = append(failures, r)
			continue
		}
		if len(r.Applied) > 0 {
			fmt.Fprintf(os.Stdout, "%s:\n", r.Path)
			for _, item := range r.Applied {
				fmt.Fprintf(os.Stdout, "  %s [%s] — %s\n", item.Title, item.Rule, item.Message)
			}
			applied += len(r.Applied)
		}
		for _, skip := range r.Skipped {
			fmt.Fprintf(os.Stdout, "  skipped %s [%s]: %s\n", skip.Title, skip.Key, skip.Reason)
		}
		if r.Changed {
			changed++
		}
	}

	for _, r := range failures {
		fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
	}

	switch {
	case applied == 0 && len(failures) == 0:
		fmt.Fprintln(os.Stdout, "No applicable fixes found.")
	case dryRun:
		fmt.Fprintf(os.Stdout, "Would apply %d fix(es) across %d file(s).\n", applied, changed)
	default:
		fmt.Fprintf(os.Stdout, "Applied %d fix(es); updated %d file(s).\n", applied, changed)
	}

	if len(failures) > 0 {
		return fmt.Errorf("fix failed for %d file(s)", len(failures))
	}
	return nil
}
