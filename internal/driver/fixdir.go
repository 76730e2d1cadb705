package driver

import (
	"context"
	"errors"
	"os"

	"golang.org/x/sync/errgroup"

	"stylist/internal/fix"
	"stylist/internal/parser"
	"stylist/internal/printer"
	"stylist/internal/source"
)

// FixOptions configures a fix run on top of the shared driver options.
type FixOptions struct {
	Options
	// Apply selects which of the offered fixes run.
	Apply fix.ApplyOptions
	// Registry defaults to fix.Default().
	Registry *fix.Registry
	// Indent is the re-flow indentation unit. Empty means four spaces.
	Indent string
	// DryRun computes rewrites without writing files back.
	DryRun bool
}

func (o *FixOptions) registry() *fix.Registry {
	if o.Registry == nil {
		return fix.Default()
	}
	return o.Registry
}

// FixFileResult is the outcome of fixing one file.
type FixFileResult struct {
	Path    string
	FileID  source.FileID
	Applied []fix.Applied
	Skipped []fix.Skipped
	Changed bool
	Output  string // rewritten text when Changed
	Err     error
}

// FixDir applies fixes to every *.vn file under dir. Each file is parsed,
// evaluated, rewritten, re-flowed, and written back; files with nothing to
// fix are left untouched.
func FixDir(ctx context.Context, dir string, opts FixOptions) (*source.FileSet, []FixFileResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	results, err := fixFiles(ctx, fileSet, files, opts)
	return fileSet, results, err
}

// FixFiles applies fixes to an explicit list of paths.
func FixFiles(ctx context.Context, paths []string, opts FixOptions) (*source.FileSet, []FixFileResult, error) {
	fileSet := source.NewFileSet()
	if len(paths) == 0 {
		return fileSet, nil, nil
	}
	results, err := fixFiles(ctx, fileSet, paths, opts)
	return fileSet, results, err
}

func fixFiles(ctx context.Context, fileSet *source.FileSet, files []string, opts FixOptions) ([]FixFileResult, error) {
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

	results := make([]FixFileResult, len(files))

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
				results[i] = FixFileResult{Path: path, Err: loadErr}
				emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusError})
				return nil
			}
			results[i] = fixOne(gctx, fileSet.Get(fileIDs[path]), opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func fixOne(ctx context.Context, file *source.File, opts FixOptions) FixFileResult {
	res := FixFileResult{Path: file.Path, FileID: file.ID}

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

	emit(opts.Progress, Event{File: file.Path, Stage: StageFix, Status: StatusWorking})
	run, err := fix.Run(ctx, opts.registry(), tree, findings, opts.Apply)
	if err != nil {
		if errors.Is(err, fix.ErrNoFixes) {
			if run != nil {
				res.Skipped = run.Skipped
			}
			emit(opts.Progress, Event{File: file.Path, Stage: StageFix, Status: StatusDone})
			return res
		}
		res.Err = err
		emit(opts.Progress, Event{File: file.Path, Stage: StageFix, Status: StatusError})
		return res
	}
	res.Applied = run.Applied
	res.Skipped = run.Skipped
	res.Changed = true
	res.Output = printer.PrintWith(run.Tree, run.Hints, printer.Options{Indent: opts.Indent})

	if opts.DryRun || file.Flags&source.FileVirtual != 0 {
		emit(opts.Progress, Event{File: file.Path, Stage: StageFix, Status: StatusDone})
		return res
	}

	emit(opts.Progress, Event{File: file.Path, Stage: StageWrite, Status: StatusWorking})
	mode := os.FileMode(0o644)
	if info, err := os.Stat(file.Path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(file.Path, []byte(res.Output), mode); err != nil {
		res.Err = err
		emit(opts.Progress, Event{File: file.Path, Stage: StageWrite, Status: StatusError})
		return res
	}
	emit(opts.Progress, Event{File: file.Path, Stage: StageWrite, Status: StatusDone})
	return res
}
