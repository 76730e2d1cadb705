package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stylist/internal/diagfmt"
	"stylist/internal/driver"
	"stylist/internal/project"
	"stylist/internal/rules"
)

// runConfig is everything a command run needs: the merged manifest, the
// driver options built from it, and the target split into directory/file.
type runConfig struct {
	cfg     *project.Config
	opts    driver.Options
	target  string
	isDir   bool
	noCache bool
}

// loadRunConfig stats the target, finds the nearest stylist.toml above it,
// and merges flags over the manifest. Flags win where both are set.
func loadRunConfig(cmd *cobra.Command, target string, noCacheFlag bool) (*runConfig, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", target, err)
	}
	startDir := target
	if !info.IsDir() {
		startDir = filepath.Dir(target)
	}

	cfg, _, err := project.LoadFromDir(startDir)
	if err != nil {
		return nil, err
	}

	catalog := rules.Default()
	settings, err := cfg.Settings(catalog)
	if err != nil {
		return nil, err
	}

	maxFindings, err := cmd.Root().PersistentFlags().GetInt("max-findings")
	if err != nil {
		return nil, err
	}
	if maxFindings == 0 {
		maxFindings = cfg.Style.MaxFindings
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return nil, err
	}
	if jobs == 0 {
		jobs = cfg.Style.Jobs
	}

	rc := &runConfig{
		cfg: cfg,
		opts: driver.Options{
			Catalog:     catalog,
			Settings:    settings,
			MaxFindings: maxFindings,
			Jobs:        jobs,
		},
		target:  target,
		isDir:   info.IsDir(),
		noCache: noCacheFlag || cfg.Style.NoCache,
	}
	if !rc.noCache {
		cache, err := driver.OpenFindingsCache("stylist")
		if err == nil {
			rc.opts.Cache = cache
		}
		// A missing cache directory degrades to uncached runs.
	}
	return rc, nil
}

func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)), nil
}

func pathModeFromFlag(fullPath bool) diagfmt.PathMode {
	if fullPath {
		return diagfmt.PathModeAbsolute
	}
	return diagfmt.PathModeAuto
}

// silentExit suppresses cobra's usage echo when findings were already
// printed and only the exit status needs to signal failure.
func silentExit(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("")
}
