package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stylist/internal/project"
	"stylist/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the style rules and their effective settings",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type rulePayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Category string `json:"category"`
	Enabled  bool   `json:"enabled"`
}

func runRules(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, _, err := project.LoadFromDir(wd)
	if err != nil {
		return err
	}
	catalog := rules.Default()
	settings, err := cfg.Settings(catalog)
	if err != nil {
		return err
	}

	payload := make([]rulePayload, 0, catalog.Len())
	for _, r := range catalog.All() {
		payload = append(payload, rulePayload{
			ID:       string(r.ID),
			Name:     r.Name,
			Severity: settings.SeverityFor(r).String(),
			Category: string(r.Category),
			Enabled:  settings.EnabledFor(r),
		})
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		for _, p := range payload {
			state := "on"
			if !p.Enabled {
				state = "off"
			}
			fmt.Fprintf(os.Stdout, "%s  %-8s %-14s %-3s  %s\n", p.ID, p.Severity, p.Category, state, p.Name)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
