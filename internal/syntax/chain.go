package syntax

import (
	"errors"

	"stylist/internal/token"
)

// ErrUnsupportedChainShape means a conditional chain does not test one
// discriminator against distinct constants, so no dispatch rewrite applies.
// This is decided when the chain is admitted, never during the rewrite.
var ErrUnsupportedChainShape = errors.New("conditional chain shape not supported")

// ChainLink is one (condition, body) pair of an if/else-if chain.
type ChainLink struct {
	If    NodeID // the KindIfStmt node
	Cond  NodeID // the equality condition
	Match NodeID // the constant operand of the condition
	Body  NodeID // the controlled statement
}

// Chain is the transient view of an if/else-if chain rooted at one if
// statement. It exists only while deciding on and performing the dispatch
// rewrite; nothing persists it.
type Chain struct {
	Root    NodeID
	Disc    NodeID      // discriminator expression of the root condition
	Links   []ChainLink // in source order
	Default NodeID      // trailing plain else body, or NoNodeID
}

// AnalyzeChain reconstructs the chain rooted at an if statement and verifies
// the dispatch precondition: every condition is `disc == constant` (or the
// uniformly swapped `constant == disc`) over one discriminator with distinct
// constants. The discriminator side is fixed by the root condition; a later
// branch with the operands on the other side is ErrUnsupportedChainShape.
func AnalyzeChain(t *Tree, root NodeID) (*Chain, error) {
	if t.Kind(root) != KindIfStmt {
		return nil, ErrUnsupportedChainShape
	}

	discOnLeft, disc, err := chainOrientation(t, t.IfCond(root))
	if err != nil {
		return nil, err
	}
	discText := t.Text(disc)

	chain := &Chain{Root: root, Disc: disc}
	seen := make(map[string]struct{})

	current := root
	for {
		cond := t.IfCond(current)
		match, err := chainMatch(t, cond, discOnLeft, discText)
		if err != nil {
			return nil, err
		}
		matchText := t.Text(match)
		if _, dup := seen[matchText]; dup {
			return nil, ErrUnsupportedChainShape
		}
		seen[matchText] = struct{}{}

		chain.Links = append(chain.Links, ChainLink{
			If:    current,
			Cond:  cond,
			Match: match,
			Body:  t.IfThen(current),
		})

		next := t.IfElse(current)
		if !next.IsValid() {
			return chain, nil
		}
		if t.Kind(next) == KindIfStmt {
			current = next
			continue
		}
		chain.Default = next
		return chain, nil
	}
}

// chainOrientation fixes which operand of the root condition is the
// discriminator: the non-constant side, defaulting to the left.
func chainOrientation(t *Tree, cond NodeID) (discOnLeft bool, disc NodeID, err error) {
	lhs, rhs, err := equalityOperands(t, cond)
	if err != nil {
		return false, NoNodeID, err
	}
	if t.Kind(rhs) == KindLiteralExpr {
		return true, lhs, nil
	}
	if t.Kind(lhs) == KindLiteralExpr {
		return false, rhs, nil
	}
	return false, NoNodeID, ErrUnsupportedChainShape
}

// chainMatch validates one condition against the root's orientation and
// returns its constant operand.
func chainMatch(t *Tree, cond NodeID, discOnLeft bool, discText string) (NodeID, error) {
	lhs, rhs, err := equalityOperands(t, cond)
	if err != nil {
		return NoNodeID, err
	}
	discSide, matchSide := lhs, rhs
	if !discOnLeft {
		discSide, matchSide = rhs, lhs
	}
	if t.Text(discSide) != discText {
		return NoNodeID, ErrUnsupportedChainShape
	}
	if t.Kind(matchSide) != KindLiteralExpr {
		return NoNodeID, ErrUnsupportedChainShape
	}
	return matchSide, nil
}

func equalityOperands(t *Tree, cond NodeID) (lhs, rhs NodeID, err error) {
	if t.Kind(cond) != KindBinaryExpr || t.BinaryOp(cond) != token.EqEq {
		return NoNodeID, NoNodeID, ErrUnsupportedChainShape
	}
	lhs = t.BinaryLHS(cond)
	rhs = t.BinaryRHS(cond)
	if !lhs.IsValid() || !rhs.IsValid() {
		return NoNodeID, NoNodeID, ErrUnsupportedChainShape
	}
	return lhs, rhs, nil
}
