// Package fix turns findings into tree rewrites. A Fix is a pure function
// from (tree, anchor) to a replacement tree plus reformat hints; the registry
// maps rule IDs to the fixes offered for them, and the batch runner applies a
// selected subset in deterministic order.
//
// Anchors are spans from the finding, not node references: before every
// application the target node is re-located by walking up from the leaf at
// the anchor, because earlier fixes in the same batch may have produced a
// revision where the old node no longer exists.
package fix

import (
	"stylist/internal/reformat"
	"stylist/internal/rules"
	"stylist/internal/source"
	"stylist/internal/syntax"
)

// RewriteFunc rewrites the resolved node and returns the new revision with
// the nodes that need re-flow. It must not mutate the input tree.
type RewriteFunc func(t *syntax.Tree, node syntax.NodeID, anchor source.Span) (*syntax.Tree, reformat.Set, error)

// Fix is one named rewrite offered for a rule.
type Fix struct {
	Title    string
	EquivKey string // deduplication key for batch selection
	Rule     rules.ID

	// Expects admits the node kinds the anchor may resolve to. TriviaFix
	// fixes resolve the anchor to the leaf holding the trivia instead.
	Expects   func(syntax.Kind) bool
	TriviaFix bool

	Rewrite RewriteFunc
}

func expects(kinds ...syntax.Kind) func(syntax.Kind) bool {
	return func(k syntax.Kind) bool {
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}
}

// Registry maps rule IDs to their fixes.
type Registry struct {
	byRule map[rules.ID][]Fix
}

func NewRegistry() *Registry {
	return &Registry{byRule: make(map[rules.ID][]Fix)}
}

// Register adds a fix for its rule. Registration order is preserved.
func (r *Registry) Register(f Fix) {
	r.byRule[f.Rule] = append(r.byRule[f.Rule], f)
}

// For returns the fixes registered for the rule. Callers must not modify
// the slice.
func (r *Registry) For(id rules.ID) []Fix {
	if r == nil {
		return nil
	}
	return r.byRule[id]
}

// Default returns the registry for the builtin rule catalog.
func Default() *Registry {
	r := NewRegistry()
	r.Register(Fix{
		Title:    "move statement to its own line",
		EquivKey: "move-to-new-line",
		Rule:     rules.SameLineBody,
		Expects:  func(k syntax.Kind) bool { return k.IsStmt() },
		Rewrite:  rewriteMoveToNewLine,
	})
	r.Register(Fix{
		Title:    "replace \"\" with str.empty",
		EquivKey: "canonicalize-empty-string",
		Rule:     rules.EmptyStringInit,
		Expects:  expects(syntax.KindLiteralExpr),
		Rewrite:  rewriteCanonicalEmptyString,
	})
	r.Register(Fix{
		Title:     "insert a space after the slashes",
		EquivKey:  "insert-comment-space",
		Rule:      rules.CommentSpace,
		TriviaFix: true,
		Rewrite:   rewriteInsertCommentSpace,
	})
	r.Register(Fix{
		Title:    "use var",
		EquivKey: "make-implicit",
		Rule:     rules.PreferVar,
		Expects:  expects(syntax.KindTypeName),
		Rewrite:  rewriteMakeImplicit,
	})
	r.Register(Fix{
		Title:    "rewrite chain as switch",
		EquivKey: "chain-to-switch",
		Rule:     rules.ChainToSwitch,
		Expects:  expects(syntax.KindIfStmt),
		Rewrite:  rewriteChainToSwitch,
	})
	return r
}

// Apply resolves the anchor on the current revision and runs the fix there.
// ErrAnchorNotFound when no node of the expected kind covers the anchor.
func Apply(f Fix, t *syntax.Tree, anchor source.Span) (*syntax.Tree, reformat.Set, error) {
	var node syntax.NodeID
	if f.TriviaFix {
		node = t.LeafHoldingTrivia(anchor.Start)
	} else {
		node = t.CoveringWhere(anchor, f.Expects)
	}
	if !node.IsValid() {
		return nil, nil, ErrAnchorNotFound
	}
	return f.Rewrite(t, node, anchor)
}
