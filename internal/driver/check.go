// Package driver runs the check and fix pipelines over files and
// directories: it discovers sources, parses them, evaluates the rule
// catalog in parallel, consults the on-disk findings cache, and writes
// fixed files back.
package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"stylist/internal/check"
	"stylist/internal/diag"
	"stylist/internal/parser"
	"stylist/internal/project"
	"stylist/internal/rules"
	"stylist/internal/source"
	"stylist/internal/types"
)

// SourceExt is the extension of the files the driver picks up.
const SourceExt = ".vn"

// Options configures a driver run.
type Options struct {
	// Catalog defaults to rules.Default().
	Catalog *rules.Catalog
	// Settings may be nil for catalog defaults.
	Settings *rules.Settings
	// Resolver defaults to types.Syntactic{}.
	Resolver types.Resolver
	// MaxFindings caps findings per file. Zero means the engine default.
	MaxFindings int
	// Jobs bounds parallelism. Zero means one per CPU.
	Jobs int
	// Cache is the findings cache; nil disables caching.
	Cache *FindingsCache
	// Progress receives per-file events; nil means no reporting.
	Progress EventSink
}

func (o *Options) catalog() *rules.Catalog {
	if o.Catalog == nil {
		return rules.Default()
	}
	return o.Catalog
}

func (o *Options) resolver() types.Resolver {
	if o.Resolver == nil {
		return types.Syntactic{}
	}
	return o.Resolver
}

func (o *Options) jobs(n int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > n {
		jobs = n
	}
	return jobs
}

func (o *Options) engine() *check.Engine {
	e := check.New(o.catalog(), o.Settings, o.resolver())
	if o.MaxFindings > 0 {
		e.SetMaxFindings(o.MaxFindings)
	}
	return e
}

// fingerprint digests the catalog and the effective settings, so a rule or
// configuration change invalidates every cached entry.
func (o *Options) fingerprint() project.Digest {
	var b strings.Builder
	b.WriteString(o.catalog().Fingerprint())
	if s := o.Settings; s != nil {
		ids := make([]string, 0, len(s.Enabled)+len(s.Severity))
		for id := range s.Enabled {
			ids = append(ids, "e:"+string(id))
		}
		for id := range s.Severity {
			ids = append(ids, "s:"+string(id))
		}
		sort.Strings(ids)
		for _, key := range ids {
			b.WriteString(";")
			b.WriteString(key)
			b.WriteString("=")
			id := rules.ID(key[2:])
			if key[0] == 'e' {
				if s.Enabled[id] {
					b.WriteString("on")
				} else {
					b.WriteString("off")
				}
			} else {
				b.WriteString(s.Severity[id].String())
			}
		}
	}
	return project.HashString(b.String())
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	Path      string
	FileID    source.FileID
	Findings  []diag.Finding
	FromCache bool
	Err       error // load or parse failure; Findings is empty then
}

// ListSourceFiles returns the sorted *.vn files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every *.vn file under dir in parallel. Results come back
// in file order regardless of completion order.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	results, err := checkFiles(ctx, fileSet, files, opts)
	return fileSet, results, err
}

// CheckFiles checks an explicit list of paths in parallel.
func CheckFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []FileResult, error) {
	fileSet := source.NewFileSet()
	if len(paths) == 0 {
		return fileSet, nil, nil
	}
	results, err := checkFiles(ctx, fileSet, paths, opts)
	return fileSet, results, err
}

func checkFiles(ctx context.Context, fileSet *source.FileSet, files []string, opts Options) ([]FileResult, error) {
	// Loading is serialized: the FileSet appends under the hood.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusQueued})
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	fingerprint := opts.fingerprint()
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				results[i] = FileResult{Path: path, Err: loadErr}
				emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusError})
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			// results[i] is owned by this goroutine; no mutex needed.
			results[i] = checkOne(gctx, file, fingerprint, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func checkOne(ctx context.Context, file *source.File, fingerprint project.Digest, opts Options) FileResult {
	res := FileResult{Path: file.Path, FileID: file.ID}

	if opts.Cache != nil {
		key := opts.Cache.Key(file, fingerprint)
		if cached, hit, err := opts.Cache.Get(key, file.ID); err == nil && hit {
			res.Findings = cached
			res.FromCache = true
			emit(opts.Progress, Event{File: file.Path, Stage: StageCheck, Status: StatusDone})
			return res
		}
	}

	emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusWorking})
	tree, err := parser.Parse(file, nil)
	if err != nil {
		res.Err = err
		emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusError})
		return res
	}

	emit(opts.Progress, Event{File: file.Path, Stage: StageCheck, Status: StatusWorking})
	findings, err := opts.engine().Evaluate(ctx, tree)
	if err != nil {
		res.Err = err
		emit(opts.Progress, Event{File: file.Path, Stage: StageCheck, Status: StatusError})
		return res
	}
	res.Findings = findings

	if opts.Cache != nil {
		key := opts.Cache.Key(file, fingerprint)
		// Best effort; a full disk never fails the check.
		_ = opts.Cache.Put(key, findings)
	}
	emit(opts.Progress, Event{File: file.Path, Stage: StageCheck, Status: StatusDone})
	return res
}

// MergeFindings flattens per-file results into one sorted list.
func MergeFindings(results []FileResult) []diag.Finding {
	total := 0
	for _, res := range results {
		total += len(res.Findings)
	}
	bag := diag.NewBag(total)
	for _, res := range results {
		for _, f := range res.Findings {
			bag.Add(f)
		}
	}
	bag.Sort()
	return bag.Items()
}
