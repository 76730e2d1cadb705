package syntax

import (
	"stylist/internal/source"
)

// Node is an immutable unit of parsed structure. Every token of the file is
// reachable as a KindToken leaf, so serializing a tree is an in-order walk
// over its leaves. Children are fixed at construction; "editing" means
// allocating a replacement node and a new spine up to a new root.
type Node struct {
	Kind     Kind
	Span     source.Span
	Token    TokenID // set only for KindToken leaves
	children []NodeID
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// IsLeaf reports whether the node wraps a single token.
func (n *Node) IsLeaf() bool { return n.Kind == KindToken }
