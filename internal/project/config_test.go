package project

import (
	"os"
	"path/filepath"
	"testing"

	"stylist/internal/rules"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindStylistTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindStylistToml(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	if filepath.Dir(path) != root {
		t.Fatalf("found %s, want manifest in %s", path, root)
	}
}

func TestFindStylistTomlMissing(t *testing.T) {
	_, ok, err := FindStylistToml(t.TempDir())
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if ok {
		t.Fatal("found a manifest in an empty temp dir")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[style]
indent = "  "
max_findings = 50
jobs = 2

[rules]
ST02 = "off"
ST01 = "error"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Style.Indent != "  " || cfg.Style.MaxFindings != 50 || cfg.Style.Jobs != 2 {
		t.Fatalf("style = %+v", cfg.Style)
	}

	settings, err := cfg.Settings(rules.Default())
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	catalog := rules.Default()
	if settings.EnabledFor(catalog.Get(rules.EmptyStringInit)) {
		t.Error("ST02 should be disabled")
	}
	if got := settings.SeverityFor(catalog.Get(rules.SameLineBody)); got != rules.SevError {
		t.Errorf("ST01 severity = %v, want error", got)
	}
	if !settings.EnabledFor(catalog.Get(rules.MissingDoc)) {
		t.Error("untouched rules keep their default")
	}
}

func TestSettingsRejectsUnknownRule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules["ZZ99"] = "error"
	if _, err := cfg.Settings(rules.Default()); err == nil {
		t.Fatal("expected an error for an unknown rule id")
	}
}

func TestSettingsRejectsBadValue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules["ST01"] = "loud"
	if _, err := cfg.Settings(rules.Default()); err == nil {
		t.Fatal("expected an error for a bad rule value")
	}
}

func TestLoadFromDirWithoutManifest(t *testing.T) {
	cfg, path, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if path != "" {
		t.Fatalf("path = %q, want empty", path)
	}
	if cfg == nil || cfg.Rules == nil {
		t.Fatal("defaults must be usable")
	}
}
