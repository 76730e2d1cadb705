package syntax

import (
	"errors"
	"strings"

	"stylist/internal/source"
	"stylist/internal/token"
)

// ErrNotInTree is returned when a node ID is not reachable from a tree's root.
var ErrNotInTree = errors.New("node is not reachable from the tree root")

// Tree is one revision of a parsed file. Revisions produced by ReplaceNode
// share the node and token arenas; unaffected subtrees keep their IDs across
// revisions. Reading is safe from any number of goroutines; producing new
// revisions must be serialized by the caller, since it appends to the shared
// arenas.
type Tree struct {
	File   source.FileID
	nodes  *Arena[Node]
	tokens *Arena[token.Token]
	root   NodeID
}

// NewTree creates an empty tree for a file. The root is set by the builder.
func NewTree(file source.FileID, capHint uint) *Tree {
	return &Tree{
		File:   file,
		nodes:  NewArena[Node](capHint),
		tokens: NewArena[token.Token](capHint),
	}
}

// Root returns the root node ID.
func (t *Tree) Root() NodeID { return t.root }

// Node returns the node for the ID. The result is read-only.
func (t *Tree) Node(id NodeID) *Node { return t.nodes.Get(uint32(id)) }

// Kind returns the node's kind, or KindInvalid for an invalid ID.
func (t *Tree) Kind(id NodeID) Kind {
	n := t.Node(id)
	if n == nil {
		return KindInvalid
	}
	return n.Kind
}

// Span returns the node's span in the original text.
func (t *Tree) Span(id NodeID) source.Span {
	n := t.Node(id)
	if n == nil {
		return source.Span{}
	}
	return n.Span
}

// Children returns the node's children. Callers must not modify the slice.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	return n.children
}

// Token returns the token for the ID. The result is read-only.
func (t *Tree) Token(id TokenID) *token.Token { return t.tokens.Get(uint32(id)) }

// LeafToken returns the token wrapped by a KindToken leaf, or nil.
func (t *Tree) LeafToken(id NodeID) *token.Token {
	n := t.Node(id)
	if n == nil || n.Kind != KindToken {
		return nil
	}
	return t.Token(n.Token)
}

// AllocToken appends a token to the shared arena and returns its ID.
func (t *Tree) AllocToken(tok token.Token) TokenID {
	return TokenID(t.tokens.Allocate(tok))
}

// AllocLeaf appends a KindToken leaf wrapping tok.
func (t *Tree) AllocLeaf(tok token.Token) NodeID {
	tokID := t.AllocToken(tok)
	return NodeID(t.nodes.Allocate(Node{
		Kind:  KindToken,
		Span:  tok.Span,
		Token: tokID,
	}))
}

// AllocNode appends an interior node. Its span covers the children's spans;
// synthesized children with empty spans do not widen it.
func (t *Tree) AllocNode(kind Kind, children ...NodeID) NodeID {
	var span source.Span
	first := true
	for _, child := range children {
		cs := t.Span(child)
		if cs.Empty() && !first {
			continue
		}
		if first {
			span = cs
			first = false
			continue
		}
		span = span.Cover(cs)
	}
	kids := append([]NodeID(nil), children...)
	return NodeID(t.nodes.Allocate(Node{
		Kind:     kind,
		Span:     span,
		children: kids,
	}))
}

// WithRoot returns a tree value sharing this tree's arenas under a new root.
func (t *Tree) WithRoot(root NodeID) *Tree {
	return &Tree{
		File:   t.File,
		nodes:  t.nodes,
		tokens: t.tokens,
		root:   root,
	}
}

// SetRoot fixes the root during initial construction.
func (t *Tree) SetRoot(root NodeID) { t.root = root }

// PathTo returns the node IDs from the root down to target, inclusive.
// Returns nil when target is not reachable from the current root.
func (t *Tree) PathTo(target NodeID) []NodeID {
	var path []NodeID
	var walk func(id NodeID) bool
	walk = func(id NodeID) bool {
		path = append(path, id)
		if id == target {
			return true
		}
		for _, child := range t.Children(id) {
			if walk(child) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if !t.root.IsValid() || !walk(t.root) {
		return nil
	}
	return path
}

// ReplaceNode produces a new revision in which old is replaced by repl.
// The spine from the root to old is re-allocated; every other subtree is
// shared with the receiver.
func (t *Tree) ReplaceNode(old, repl NodeID) (*Tree, error) {
	if old == t.root {
		return t.WithRoot(repl), nil
	}
	path := t.PathTo(old)
	if path == nil {
		return nil, ErrNotInTree
	}
	// Rebuild bottom-up: path[len-1] == old.
	current := repl
	for i := len(path) - 2; i >= 0; i-- {
		parent := t.Node(path[i])
		kids := make([]NodeID, len(parent.children))
		copy(kids, parent.children)
		for j, child := range kids {
			if child == path[i+1] {
				kids[j] = current
			}
		}
		fresh := Node{
			Kind:     parent.Kind,
			Span:     parent.Span,
			Token:    parent.Token,
			children: kids,
		}
		current = NodeID(t.nodes.Allocate(fresh))
	}
	return t.WithRoot(current), nil
}

// FirstToken returns the first token leaf under id, or NoTokenID.
func (t *Tree) FirstToken(id NodeID) TokenID {
	n := t.Node(id)
	if n == nil {
		return NoTokenID
	}
	if n.Kind == KindToken {
		return n.Token
	}
	for _, child := range n.children {
		if tok := t.FirstToken(child); tok.IsValid() {
			return tok
		}
	}
	return NoTokenID
}

// LastToken returns the last token leaf under id, or NoTokenID.
func (t *Tree) LastToken(id NodeID) TokenID {
	n := t.Node(id)
	if n == nil {
		return NoTokenID
	}
	if n.Kind == KindToken {
		return n.Token
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if tok := t.LastToken(n.children[i]); tok.IsValid() {
			return tok
		}
	}
	return NoTokenID
}

// FirstLeaf returns the first KindToken leaf node under id, or NoNodeID.
func (t *Tree) FirstLeaf(id NodeID) NodeID {
	n := t.Node(id)
	if n == nil {
		return NoNodeID
	}
	if n.Kind == KindToken {
		return id
	}
	for _, child := range n.children {
		if leaf := t.FirstLeaf(child); leaf.IsValid() {
			return leaf
		}
	}
	return NoNodeID
}

// LeafAt returns the leaf whose token span contains the byte offset, or the
// leaf starting exactly at it. NoNodeID when no leaf matches.
func (t *Tree) LeafAt(off uint32) NodeID {
	var find func(id NodeID) NodeID
	find = func(id NodeID) NodeID {
		n := t.Node(id)
		if n == nil {
			return NoNodeID
		}
		if n.Kind == KindToken {
			if n.Span.Contains(off) || n.Span.Start == off {
				return id
			}
			return NoNodeID
		}
		for _, child := range n.children {
			cs := t.Span(child)
			if !cs.Empty() && !cs.Contains(off) && cs.Start != off {
				continue
			}
			if leaf := find(child); leaf.IsValid() {
				return leaf
			}
		}
		return NoNodeID
	}
	return find(t.root)
}

// CoveringOfKind walks up from the leaf at anchor.Start and returns the
// nearest enclosing node of the wanted kind whose span covers the anchor.
func (t *Tree) CoveringOfKind(anchor source.Span, kind Kind) NodeID {
	return t.CoveringWhere(anchor, func(k Kind) bool { return k == kind })
}

// CoveringWhere walks up from the leaf at anchor.Start and returns the
// nearest enclosing node whose kind satisfies pred and whose span covers
// the anchor.
func (t *Tree) CoveringWhere(anchor source.Span, pred func(Kind) bool) NodeID {
	leaf := t.LeafAt(anchor.Start)
	if !leaf.IsValid() {
		return NoNodeID
	}
	path := t.PathTo(leaf)
	for i := len(path) - 1; i >= 0; i-- {
		n := t.Node(path[i])
		if pred(n.Kind) && (n.Span.Covers(anchor) || n.Span == anchor) {
			return path[i]
		}
	}
	return NoNodeID
}

// LeafHoldingTrivia returns the leaf whose token's leading trivia contains
// the byte offset, or NoNodeID. Trivia offsets sit outside every token span,
// so LeafAt cannot find them.
func (t *Tree) LeafHoldingTrivia(off uint32) NodeID {
	var find func(id NodeID) NodeID
	find = func(id NodeID) NodeID {
		n := t.Node(id)
		if n == nil {
			return NoNodeID
		}
		if n.Kind == KindToken {
			for _, tr := range t.Token(n.Token).Leading {
				if tr.Span.Contains(off) || tr.Span.Start == off {
					return id
				}
			}
			return NoNodeID
		}
		for _, child := range n.children {
			if leaf := find(child); leaf.IsValid() {
				return leaf
			}
		}
		return NoNodeID
	}
	return find(t.root)
}

// Text concatenates the token text under id, without trivia. Used for
// comparing expressions by their source shape.
func (t *Tree) Text(id NodeID) string {
	var b strings.Builder
	var walk func(id NodeID)
	walk = func(id NodeID) {
		n := t.Node(id)
		if n == nil {
			return
		}
		if n.Kind == KindToken {
			b.WriteString(t.Token(n.Token).Text)
			return
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(id)
	return b.String()
}
