package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stylist/internal/diag"
	"stylist/internal/diagfmt"
	"stylist/internal/driver"
	"stylist/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.vn|directory>",
	Short: "Report style findings for a source file or directory",
	Long:  `Check parses Vern sources, evaluates the enabled style rules, and prints each finding with its location`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Bool("show-source", false, "print the offending source line under each finding")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("no-cache", false, "bypass the on-disk findings cache")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	showSource, err := cmd.Flags().GetBool("show-source")
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
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

	rc, err := loadRunConfig(cmd, args[0], noCache)
	if err != nil {
		return err
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
	withUI := format == "pretty" && !quiet && shouldUseTUI(mode)

	fs, results, err := checkTargets(cmd, files, rc, withUI)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	hadErrors := false
	for _, r := range results {
		if r.Err != nil {
			hadErrors = true
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
		}
	}
	findings := driver.MergeFindings(results)

	color, err := useColor(cmd)
	if err != nil {
		return err
	}
	pathMode := pathModeFromFlag(fullPath)

	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, findings, fs, diagfmt.PrettyOpts{
			Color:      color,
			PathMode:   pathMode,
			ShowSource: showSource,
		})
		if !quiet {
			fmt.Fprintf(os.Stdout, "%d finding(s) in %d file(s)\n", len(findings), len(files))
		}
	case "short":
		if out := diag.FormatShort(findings, fs); out != "" {
			fmt.Fprintln(os.Stdout, out)
		}
	case "json":
		if err := diagfmt.WriteJSON(os.Stdout, findings, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
		}); err != nil {
			return err
		}
	}

	if len(findings) > 0 || hadErrors {
		return silentExit(cmd)
	}
	return nil
}

func checkTargets(cmd *cobra.Command, files []string, rc *runConfig, withUI bool) (*source.FileSet, []driver.FileResult, error) {
	if withUI {
		return runCheckWithUI(cmd.Context(), "checking", files, rc.opts)
	}
	return driver.CheckFiles(cmd.Context(), files, rc.opts)
}
