// Package testkit holds shared helpers for tests that need a parsed tree
// with its structural invariants verified.
package testkit

import (
	"fmt"
	"testing"

	"fortio.org/safecast"

	"stylist/internal/parser"
	"stylist/internal/source"
	"stylist/internal/syntax"
)

// MustParse parses src as a virtual file and fails the test on any error,
// including span invariant violations.
func MustParse(t *testing.T, src string) (*syntax.Tree, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vn", []byte(src))
	file := fs.Get(id)
	tree, err := parser.Parse(file, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := CheckSpanInvariants(tree, file); err != nil {
		t.Fatalf("span invariants: %v", err)
	}
	return tree, fs
}

// CheckSpanInvariants walks a parsed tree and verifies:
// 1) every non-empty span stays within content bounds and names the right file
// 2) every interior node's span covers its children's non-empty spans
// 3) leaf spans appear in nondecreasing source order
//
// Empty spans are positionless markers (empty node lists, the EOF leaf,
// synthesized tokens); node spans never widen over them, so they are exempt
// from the file and containment checks, mirroring Tree.AllocNode.
func CheckSpanInvariants(t *syntax.Tree, sf *source.File) error {
	if t == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevLeafStart uint32
	var sawLeaf bool
	var walk func(id syntax.NodeID) error
	walk = func(id syntax.NodeID) error {
		sp := t.Span(id)
		if sp.End < sp.Start {
			return fmt.Errorf("node %d span inverted: %v", id, sp)
		}
		if !sp.Empty() {
			if sp.File != sf.ID {
				return fmt.Errorf("node %d span names file %d, want %d", id, sp.File, sf.ID)
			}
			if sp.End > lenContent {
				return fmt.Errorf("node %d span end beyond content: %d > %d", id, sp.End, lenContent)
			}
		}
		n := t.Node(id)
		if n.IsLeaf() {
			if !sp.Empty() {
				if sawLeaf && sp.Start < prevLeafStart {
					return fmt.Errorf("leaf %d starts at %d before previous leaf at %d", id, sp.Start, prevLeafStart)
				}
				prevLeafStart = sp.Start
				sawLeaf = true
			}
			return nil
		}
		for _, child := range t.Children(id) {
			cs := t.Span(child)
			if !cs.Empty() && (cs.Start < sp.Start || cs.End > sp.End) {
				return fmt.Errorf("child %d span %v escapes parent %d span %v", child, cs, id, sp)
			}
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(t.Root())
}
