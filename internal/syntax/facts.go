package syntax

import (
	"stylist/internal/token"
)

// Accessors over the fixed child layouts the parser produces. All of them
// scan by kind rather than by position, so nodes synthesized by rewrites
// stay navigable as long as they keep the same child kinds.

// childLeafOfKind returns the first KindToken child whose token has the kind.
func (t *Tree) childLeafOfKind(id NodeID, want token.Kind) NodeID {
	for _, child := range t.Children(id) {
		if tok := t.LeafToken(child); tok != nil && tok.Kind == want {
			return child
		}
	}
	return NoNodeID
}

// HasChildToken reports whether id has a direct KindToken child of the kind.
func (t *Tree) HasChildToken(id NodeID, want token.Kind) bool {
	return t.childLeafOfKind(id, want).IsValid()
}

// IfCond returns the condition expression of an if statement.
func (t *Tree) IfCond(id NodeID) NodeID {
	for _, child := range t.Children(id) {
		if t.Kind(child).IsExpr() {
			return child
		}
	}
	return NoNodeID
}

// IfThen returns the controlled statement of an if statement.
func (t *Tree) IfThen(id NodeID) NodeID {
	seenElse := false
	for _, child := range t.Children(id) {
		if tok := t.LeafToken(child); tok != nil && tok.Kind == token.KwElse {
			seenElse = true
			continue
		}
		if !seenElse && t.Kind(child).IsStmt() {
			return child
		}
	}
	return NoNodeID
}

// IfElse returns the else branch of an if statement, or NoNodeID.
// The branch may itself be a KindIfStmt (else-if chain).
func (t *Tree) IfElse(id NodeID) NodeID {
	seenElse := false
	for _, child := range t.Children(id) {
		if tok := t.LeafToken(child); tok != nil && tok.Kind == token.KwElse {
			seenElse = true
			continue
		}
		if seenElse && (t.Kind(child).IsStmt() || t.Kind(child) == KindIfStmt) {
			return child
		}
	}
	return NoNodeID
}

// WhileCond returns the condition of a while statement.
func (t *Tree) WhileCond(id NodeID) NodeID { return t.IfCond(id) }

// WhileBody returns the controlled statement of a while statement.
func (t *Tree) WhileBody(id NodeID) NodeID {
	for _, child := range t.Children(id) {
		if t.Kind(child).IsStmt() {
			return child
		}
	}
	return NoNodeID
}

// BlockStmts returns the statement children of a block.
func (t *Tree) BlockStmts(id NodeID) []NodeID {
	var out []NodeID
	for _, child := range t.Children(id) {
		if t.Kind(child).IsStmt() {
			out = append(out, child)
		}
	}
	return out
}

// IsTerminating reports whether the statement is, or ends with, a return.
func (t *Tree) IsTerminating(id NodeID) bool {
	switch t.Kind(id) {
	case KindReturnStmt:
		return true
	case KindBlock:
		stmts := t.BlockStmts(id)
		if len(stmts) == 0 {
			return false
		}
		return t.IsTerminating(stmts[len(stmts)-1])
	default:
		return false
	}
}

// BinaryOp returns the operator token kind of a binary expression.
func (t *Tree) BinaryOp(id NodeID) token.Kind {
	for _, child := range t.Children(id) {
		if tok := t.LeafToken(child); tok != nil && !tok.IsLiteral() && !tok.IsIdent() {
			return tok.Kind
		}
	}
	return token.Invalid
}

// BinaryLHS returns the left operand of a binary expression.
func (t *Tree) BinaryLHS(id NodeID) NodeID {
	for _, child := range t.Children(id) {
		if t.Kind(child).IsExpr() {
			return child
		}
	}
	return NoNodeID
}

// BinaryRHS returns the right operand of a binary expression.
func (t *Tree) BinaryRHS(id NodeID) NodeID {
	var last NodeID
	for _, child := range t.Children(id) {
		if t.Kind(child).IsExpr() {
			last = child
		}
	}
	if last == t.BinaryLHS(id) {
		return NoNodeID
	}
	return last
}

// Declarators returns the KindDeclarator children of a field or local decl.
func (t *Tree) Declarators(id NodeID) []NodeID {
	var out []NodeID
	for _, child := range t.Children(id) {
		if t.Kind(child) == KindDeclarator {
			out = append(out, child)
		}
	}
	return out
}

// DeclaratorName returns the declared identifier text, or "".
func (t *Tree) DeclaratorName(id NodeID) string {
	for _, child := range t.Children(id) {
		if tok := t.LeafToken(child); tok != nil && tok.Kind == token.Ident {
			return tok.Text
		}
	}
	return ""
}

// DeclaratorInit returns the initializer expression, or NoNodeID.
func (t *Tree) DeclaratorInit(id NodeID) NodeID {
	for _, child := range t.Children(id) {
		if t.Kind(child).IsExpr() {
			return child
		}
	}
	return NoNodeID
}

// DeclType returns the KindTypeName child of a declaration, or NoNodeID.
// A 'var' declaration has no type name node.
func (t *Tree) DeclType(id NodeID) NodeID {
	for _, child := range t.Children(id) {
		if t.Kind(child) == KindTypeName {
			return child
		}
	}
	return NoNodeID
}

// DeclIsInferred reports whether a local declaration uses 'var'.
func (t *Tree) DeclIsInferred(id NodeID) bool {
	return t.HasChildToken(id, token.KwVar)
}

// DeclIsPublic reports whether a declaration carries the 'pub' modifier.
func (t *Tree) DeclIsPublic(id NodeID) bool {
	return t.HasChildToken(id, token.KwPub)
}

// DeclName returns the declared name of a struct, enum, method, or prop.
func (t *Tree) DeclName(id NodeID) string {
	if leaf := t.DeclNameNode(id); leaf.IsValid() {
		return t.LeafToken(leaf).Text
	}
	return ""
}

// DeclNameNode returns the leaf holding the declared name, or NoNodeID.
func (t *Tree) DeclNameNode(id NodeID) NodeID {
	return t.childLeafOfKind(id, token.Ident)
}

// HasMarkerToken reports whether any token leaf under id is a Marker.
func (t *Tree) HasMarkerToken(id NodeID) bool {
	n := t.Node(id)
	if n == nil {
		return false
	}
	if n.Kind == KindToken {
		return t.Token(n.Token).Kind == token.Marker
	}
	for _, child := range n.children {
		if t.HasMarkerToken(child) {
			return true
		}
	}
	return false
}

// LeadingTrivia returns the leading trivia of the first token under id.
func (t *Tree) LeadingTrivia(id NodeID) []token.Trivia {
	tok := t.FirstToken(id)
	if !tok.IsValid() {
		return nil
	}
	return t.Token(tok).Leading
}

// HasDocComment reports whether the first token under id carries doc trivia.
func (t *Tree) HasDocComment(id NodeID) bool {
	for _, tr := range t.LeadingTrivia(id) {
		if tr.Kind == token.TriviaDocComment {
			return true
		}
	}
	return false
}

// SwitchSubject returns the discriminator expression of a switch statement.
func (t *Tree) SwitchSubject(id NodeID) NodeID {
	for _, child := range t.Children(id) {
		if t.Kind(child).IsExpr() {
			return child
		}
	}
	return NoNodeID
}

// SwitchCases returns the KindSwitchCase children in source order.
func (t *Tree) SwitchCases(id NodeID) []NodeID {
	var out []NodeID
	for _, child := range t.Children(id) {
		if t.Kind(child) == KindSwitchCase {
			out = append(out, child)
		}
	}
	return out
}

// CaseIsDefault reports whether the switch case is the default case.
func (t *Tree) CaseIsDefault(id NodeID) bool {
	return t.HasChildToken(id, token.KwDefault)
}

// CaseValue returns the match expression of a non-default case.
func (t *Tree) CaseValue(id NodeID) NodeID {
	for _, child := range t.Children(id) {
		if t.Kind(child).IsExpr() {
			return child
		}
	}
	return NoNodeID
}

// CaseStmts returns the body statements of a switch case.
func (t *Tree) CaseStmts(id NodeID) []NodeID {
	var out []NodeID
	for _, child := range t.Children(id) {
		if t.Kind(child).IsStmt() {
			out = append(out, child)
		}
	}
	return out
}
