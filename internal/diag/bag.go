package diag

import (
	"sort"
)

// Bag collects findings up to a cap.
type Bag struct {
	items []Finding
	max   int
}

// NewBag creates a bag that holds at most max findings.
func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Finding, 0, max),
		max:   max,
	}
}

// Add appends a finding, honoring the cap. Reports whether it was stored.
func (b *Bag) Add(f Finding) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, f)
	return true
}

func (b *Bag) Len() int { return len(b.items) }

// Items returns a read-only view of the collected findings.
func (b *Bag) Items() []Finding { return b.items }

// HasSeverity reports whether any finding is at or above the severity.
func (b *Bag) HasSeverity(min uint8) bool {
	for i := range b.items {
		if uint8(b.items[i].Severity) >= min {
			return true
		}
	}
	return false
}

// Merge appends the other bag's findings, growing the cap if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if total := len(b.items) + len(other.items); total > b.max {
		b.max = total
	}
	b.items = append(b.items, other.items...)
}

// Sort orders findings by file, start, end, severity (desc), then rule.
// Stable and deterministic, for output and golden comparisons.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		fi, fj := b.items[i], b.items[j]
		if fi.Primary.File != fj.Primary.File {
			return fi.Primary.File < fj.Primary.File
		}
		if fi.Primary.Start != fj.Primary.Start {
			return fi.Primary.Start < fj.Primary.Start
		}
		if fi.Primary.End != fj.Primary.End {
			return fi.Primary.End < fj.Primary.End
		}
		if fi.Severity != fj.Severity {
			return fi.Severity > fj.Severity
		}
		return fi.Rule < fj.Rule
	})
}
