package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"stylist/internal/fix"
	"stylist/internal/rules"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

type recordSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordSink) OnEvent(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func TestListSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.vn", "fn f() {\n}\n")
	writeFile(t, dir, "a.vn", "fn f() {\n}\n")
	writeFile(t, dir, filepath.Join("sub", "c.vn"), "fn f() {\n}\n")
	writeFile(t, dir, "notes.txt", "not source")

	files, err := ListSourceFiles(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("files = %v, want 3 entries", files)
	}
	if filepath.Base(files[0]) != "a.vn" || filepath.Base(files[1]) != "b.vn" {
		t.Fatalf("files not sorted: %v", files)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.vn", "/// documented\npub struct S {\n}\n")
	writeFile(t, dir, "dirty.vn", "//bad\nfn f() {\n    str s = \"\";\n}\n")

	sink := &recordSink{}
	_, results, err := CheckDir(context.Background(), dir, Options{Progress: sink})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if len(results[0].Findings) != 0 {
		t.Errorf("clean file reported: %v", results[0].Findings)
	}

	var got []rules.ID
	for _, f := range results[1].Findings {
		got = append(got, f.Rule)
	}
	want := map[rules.ID]bool{rules.CommentSpace: true, rules.EmptyStringInit: true}
	for _, id := range got {
		delete(want, id)
	}
	if len(want) != 0 {
		t.Errorf("missing findings %v in %v", want, got)
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.events) == 0 {
		t.Error("no progress events emitted")
	}
}

func TestCheckDirUsesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenFindingsCache("stylist-test")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	dir := t.TempDir()
	writeFile(t, dir, "a.vn", "//bad\nfn f() {\n}\n")

	opts := Options{Cache: cache}
	_, first, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("first check: %v", err)
	}
	if first[0].FromCache {
		t.Fatal("first run must miss the cache")
	}

	_, second, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	if !second[0].FromCache {
		t.Fatal("second run must hit the cache")
	}
	if len(second[0].Findings) != len(first[0].Findings) {
		t.Fatalf("cached findings = %d, want %d", len(second[0].Findings), len(first[0].Findings))
	}
	if second[0].Findings[0].Message != first[0].Findings[0].Message {
		t.Error("cached message differs")
	}
}

func TestCheckDirCacheKeyedBySettings(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenFindingsCache("stylist-test")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	dir := t.TempDir()
	writeFile(t, dir, "a.vn", "//bad\nfn f() {\n}\n")

	if _, _, err := CheckDir(context.Background(), dir, Options{Cache: cache}); err != nil {
		t.Fatalf("first check: %v", err)
	}

	settings := rules.NewSettings()
	settings.Enabled[rules.CommentSpace] = false
	_, results, err := CheckDir(context.Background(), dir, Options{Cache: cache, Settings: settings})
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	if results[0].FromCache {
		t.Fatal("settings change must invalidate the cache")
	}
	if len(results[0].Findings) != 0 {
		t.Fatalf("disabled rule still reported: %v", results[0].Findings)
	}
}

func TestFixDirRewritesFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.vn", "//bad\nfn f() {\n    str s = \"\";\n}\n")

	_, results, err := FixDir(context.Background(), dir, FixOptions{
		Apply: fix.ApplyOptions{Mode: fix.ApplyModeAll},
	})
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if !results[0].Changed || len(results[0].Applied) != 2 {
		t.Fatalf("result = %+v, want two applied fixes", results[0])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "// bad\nfn f() {\n    str s = str.empty;\n}\n"
	if string(data) != want {
		t.Fatalf("file = %q, want %q", data, want)
	}
}

func TestFixDirDryRun(t *testing.T) {
	dir := t.TempDir()
	original := "//bad\nfn f() {\n}\n"
	path := writeFile(t, dir, "a.vn", original)

	_, results, err := FixDir(context.Background(), dir, FixOptions{
		Apply:  fix.ApplyOptions{Mode: fix.ApplyModeAll},
		DryRun: true,
	})
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if !results[0].Changed {
		t.Fatal("dry run should still compute the rewrite")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Fatal("dry run must not write the file")
	}
}

func TestFixDirNothingToFix(t *testing.T) {
	dir := t.TempDir()
	original := "// fine\nfn f() {\n}\n"
	path := writeFile(t, dir, "a.vn", original)

	_, results, err := FixDir(context.Background(), dir, FixOptions{
		Apply: fix.ApplyOptions{Mode: fix.ApplyModeAll},
	})
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if results[0].Changed || results[0].Err != nil {
		t.Fatalf("result = %+v, want untouched", results[0])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Fatal("clean file must not change")
	}
}

func TestMergeFindingsSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.vn", "//bad\nfn f() {\n}\n")
	writeFile(t, dir, "b.vn", "//worse\nfn g() {\n}\n")

	_, results, err := CheckDir(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	merged := MergeFindings(results)
	if len(merged) != 2 {
		t.Fatalf("merged = %d, want 2", len(merged))
	}
	if merged[0].Primary.File > merged[1].Primary.File {
		t.Fatal("merged findings not sorted by file")
	}
}
