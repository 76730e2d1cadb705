package diag

import (
	"stylist/internal/rules"
	"stylist/internal/source"
)

// Reporter is the minimal contract for receiving findings from the engine.
// Implementations: BagReporter (stores into a Bag), DedupReporter (filters
// duplicates), NopReporter.
type Reporter interface {
	Report(f Finding)
}

// BagReporter stores findings into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(f Finding) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(f)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Finding) {}

type dedupKey struct {
	rule  rules.ID
	file  source.FileID
	start uint32
	end   uint32
}

// DedupReporter suppresses findings that repeat a rule at an anchor already
// reported in this pass, then forwards the rest.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter wraps next with per-anchor deduplication.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(f Finding) {
	if r == nil {
		return
	}
	key := dedupKey{
		rule:  f.Rule,
		file:  f.Primary.File,
		start: f.Primary.Start,
		end:   f.Primary.End,
	}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(f)
	}
}
