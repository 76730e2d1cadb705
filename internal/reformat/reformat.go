// Package reformat carries the side-channel annotation a rewrite attaches to
// freshly built nodes so the host's printer re-flows whitespace around them.
// The annotation travels alongside the tree; the tree itself is never
// mutated.
package reformat

import "stylist/internal/syntax"

// Set is the collection of node IDs whose subtrees need re-flow.
type Set map[syntax.NodeID]struct{}

// NewSet builds a set from the given node IDs.
func NewSet(ids ...syntax.NodeID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add marks a node for re-flow.
func (s Set) Add(id syntax.NodeID) {
	if id.IsValid() {
		s[id] = struct{}{}
	}
}

// Has reports whether the node is marked.
func (s Set) Has(id syntax.NodeID) bool {
	_, ok := s[id]
	return ok
}

// Merge folds other into s.
func (s Set) Merge(other Set) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Hinter is what the printer consumes: anything that can answer whether a
// node requires re-flow.
type Hinter interface {
	Has(id syntax.NodeID) bool
}

var _ Hinter = Set(nil)
