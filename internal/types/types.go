// Package types is the read-only type lookup the host supplies to semantic
// predicates. The engine never does data-flow analysis; everything here is a
// local, syntactic judgement.
package types

import (
	"stylist/internal/syntax"
	"stylist/internal/token"
)

// Kind is the coarse type classification predicates ask about.
type Kind uint8

const (
	Unknown Kind = iota
	String
	Int
	Float
	Bool
	Named
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Named:
		return "named"
	}
	return "unknown"
}

// Resolver answers type questions about expressions and type names.
type Resolver interface {
	// ResolveType classifies an expression node.
	ResolveType(tree *syntax.Tree, expr syntax.NodeID) Kind
	// ResolveTypeName classifies a KindTypeName node.
	ResolveTypeName(tree *syntax.Tree, typeName syntax.NodeID) Kind
}

// wellKnown maps builtin type names to their kind.
var wellKnown = map[string]Kind{
	"str":    String,
	"string": String,
	"int":    Int,
	"uint":   Int,
	"float":  Float,
	"bool":   Bool,
}

// Syntactic resolves types from the tree alone: builtin type names and
// literal shapes. Anything else is Named or Unknown.
type Syntactic struct{}

var _ Resolver = Syntactic{}

func (Syntactic) ResolveTypeName(tree *syntax.Tree, typeName syntax.NodeID) Kind {
	if tree.Kind(typeName) != syntax.KindTypeName {
		return Unknown
	}
	name := tree.Text(typeName)
	if kind, ok := wellKnown[name]; ok {
		return kind
	}
	if name != "" {
		return Named
	}
	return Unknown
}

func (Syntactic) ResolveType(tree *syntax.Tree, expr syntax.NodeID) Kind {
	switch tree.Kind(expr) {
	case syntax.KindLiteralExpr:
		tok := tree.Token(tree.FirstToken(expr))
		if tok == nil {
			return Unknown
		}
		switch tok.Kind {
		case token.StringLit:
			return String
		case token.IntLit:
			return Int
		case token.KwTrue, token.KwFalse:
			return Bool
		}
		return Unknown
	case syntax.KindMemberExpr:
		// str.empty and friends: classify by the receiver's type name
		if kind, ok := wellKnown[tree.Text(tree.Children(expr)[0])]; ok {
			return kind
		}
		return Unknown
	default:
		return Unknown
	}
}
