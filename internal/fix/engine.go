package fix

import (
	"context"
	"fmt"
	"sort"

	"stylist/internal/diag"
	"stylist/internal/reformat"
	"stylist/internal/rules"
	"stylist/internal/source"
	"stylist/internal/syntax"
)

// ApplyMode determines the selection strategy for a batch run.
type ApplyMode uint8

const (
	// ApplyModeOnce applies the first candidate in order.
	ApplyModeOnce ApplyMode = iota
	// ApplyModeAll applies every candidate.
	ApplyModeAll
	// ApplyModeKey applies every candidate whose fix has the target key.
	ApplyModeKey
)

// ApplyOptions configures a batch run.
type ApplyOptions struct {
	Mode      ApplyMode
	TargetKey string
}

// Applied records one successfully applied fix.
type Applied struct {
	Key     string
	Title   string
	Rule    rules.ID
	Message string
	Anchor  source.Span
}

// Skipped records one fix that was not applied, with the reason.
type Skipped struct {
	Key    string
	Title  string
	Reason string
}

// Result is the outcome of a batch run over one tree.
type Result struct {
	Tree    *syntax.Tree
	Hints   reformat.Set
	Applied []Applied
	Skipped []Skipped
}

type candidate struct {
	finding diag.Finding
	fix     Fix
	order   int
}

// Run applies fixes for the findings to the tree, one at a time, threading
// each application's output revision into the next. Anchors always resolve
// against the current revision, so a fix whose target an earlier fix
// rewrote is skipped rather than misapplied. ErrNoFixes when nothing was
// applied.
func Run(ctx context.Context, reg *Registry, tree *syntax.Tree, findings []diag.Finding, opts ApplyOptions) (*Result, error) {
	result := &Result{
		Tree:  tree,
		Hints: reformat.NewSet(),
	}

	candidates := gather(reg, findings)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	selected, skips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, skips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	for i, cand := range selected {
		if i > 0 {
			if err := ctx.Err(); err != nil {
				return result, err
			}
		}
		next, hints, err := Apply(cand.fix, result.Tree, cand.finding.Primary)
		if err != nil {
			result.Skipped = append(result.Skipped, Skipped{
				Key:    cand.fix.EquivKey,
				Title:  cand.fix.Title,
				Reason: err.Error(),
			})
			continue
		}
		result.Tree = next
		result.Hints.Merge(hints)
		result.Applied = append(result.Applied, Applied{
			Key:     cand.fix.EquivKey,
			Title:   cand.fix.Title,
			Rule:    cand.finding.Rule,
			Message: cand.finding.Message,
			Anchor:  cand.finding.Primary,
		})
	}

	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

func gather(reg *Registry, findings []diag.Finding) []candidate {
	var cands []candidate
	order := 0
	for _, f := range findings {
		for _, fx := range reg.For(f.Rule) {
			cands = append(cands, candidate{finding: f, fix: fx, order: order})
			order++
		}
	}
	return cands
}

// sortCandidates fixes the application order: by file, span, insertion
// order, rule, and key, so batch runs are reproducible.
func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		fi, fj := cands[i].finding, cands[j].finding
		if fi.Primary.File != fj.Primary.File {
			return fi.Primary.File < fj.Primary.File
		}
		if fi.Primary.Start != fj.Primary.Start {
			return fi.Primary.Start < fj.Primary.Start
		}
		if fi.Primary.End != fj.Primary.End {
			return fi.Primary.End < fj.Primary.End
		}
		if cands[i].order != cands[j].order {
			return cands[i].order < cands[j].order
		}
		if fi.Rule != fj.Rule {
			return fi.Rule < fj.Rule
		}
		return cands[i].fix.EquivKey < cands[j].fix.EquivKey
	})
}

func selectCandidates(cands []candidate, opts ApplyOptions) ([]candidate, []Skipped) {
	switch opts.Mode {
	case ApplyModeOnce:
		return cands[:1], nil
	case ApplyModeAll:
		return cands, nil
	case ApplyModeKey:
		var selected []candidate
		for _, cand := range cands {
			if cand.fix.EquivKey == opts.TargetKey {
				selected = append(selected, cand)
			}
		}
		if len(selected) == 0 {
			return nil, []Skipped{{
				Key:    opts.TargetKey,
				Reason: fmt.Sprintf("no fix with key %q among the findings", opts.TargetKey),
			}}
		}
		return selected, nil
	default:
		return nil, nil
	}
}
