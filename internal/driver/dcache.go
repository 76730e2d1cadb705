package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"stylist/internal/diag"
	"stylist/internal/project"
	"stylist/internal/rules"
	"stylist/internal/source"
)

// Current schema version - increment when cachedFile format changes.
const findingsCacheSchemaVersion uint16 = 1

// FindingsCache stores evaluated findings per file on disk, keyed by the
// file's content hash combined with the rule catalog fingerprint and the
// effective settings, so any rule or configuration change misses cleanly.
// Thread-safe for concurrent access.
type FindingsCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedFinding is one finding with file-local coordinates; the FileID is
// re-bound on load since IDs are per-process.
type cachedFinding struct {
	Rule     string
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
	Args     []string
}

// cachedFile is the on-disk payload for one source file.
type cachedFile struct {
	Schema   uint16
	Findings []cachedFinding
}

// OpenFindingsCache initializes a cache at the standard location.
func OpenFindingsCache(app string) (*FindingsCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FindingsCache{dir: dir}, nil
}

// Key derives the cache key for a file under the given catalog fingerprint
// and settings digest.
func (c *FindingsCache) Key(file *source.File, fingerprint project.Digest) project.Digest {
	return project.Combine(project.Digest(file.Hash), fingerprint)
}

func (c *FindingsCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "findings", hexKey+".mp")
}

// Put serializes the findings for one file.
func (c *FindingsCache) Put(key project.Digest, findings []diag.Finding) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachedFile{
		Schema:   findingsCacheSchemaVersion,
		Findings: make([]cachedFinding, 0, len(findings)),
	}
	for _, f := range findings {
		payload.Findings = append(payload.Findings, cachedFinding{
			Rule:     string(f.Rule),
			Severity: uint8(f.Severity),
			Start:    f.Primary.Start,
			End:      f.Primary.End,
			Message:  f.Message,
			Args:     f.Args,
		})
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(f.Name()) }()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), p)
}

// Get loads cached findings for a key, re-bound to the given FileID.
// The boolean reports a hit; a schema mismatch is a miss, not an error.
func (c *FindingsCache) Get(key project.Digest, fileID source.FileID) ([]diag.Finding, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() { _ = f.Close() }()

	var payload cachedFile
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != findingsCacheSchemaVersion {
		return nil, false, nil
	}

	findings := make([]diag.Finding, 0, len(payload.Findings))
	for _, cf := range payload.Findings {
		findings = append(findings, diag.Finding{
			Rule:     rules.ID(cf.Rule),
			Severity: rules.Severity(cf.Severity),
			Primary:  source.Span{File: fileID, Start: cf.Start, End: cf.End},
			Message:  cf.Message,
			Args:     cf.Args,
		})
	}
	return findings, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *FindingsCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
