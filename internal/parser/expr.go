package parser

import (
	"stylist/internal/syntax"
	"stylist/internal/token"
)

// parseExpr parses an equality expression; equality does not chain.
func (p *Parser) parseExpr() (syntax.NodeID, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return syntax.NoNodeID, err
	}
	if p.at(token.EqEq) || p.at(token.BangEq) || p.at(token.Lt) || p.at(token.Gt) {
		op := p.bump()
		rhs, err := p.parseAdditive()
		if err != nil {
			return syntax.NoNodeID, err
		}
		return p.tree.AllocNode(syntax.KindBinaryExpr, lhs, op, rhs), nil
	}
	return lhs, nil
}

func (p *Parser) parseAdditive() (syntax.NodeID, error) {
	lhs, err := p.parsePostfix()
	if err != nil {
		return syntax.NoNodeID, err
	}
	for p.at(token.Plus) || p.at(token.Minus) {
		op := p.bump()
		rhs, err := p.parsePostfix()
		if err != nil {
			return syntax.NoNodeID, err
		}
		lhs = p.tree.AllocNode(syntax.KindBinaryExpr, lhs, op, rhs)
	}
	return lhs, nil
}

func (p *Parser) parsePostfix() (syntax.NodeID, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return syntax.NoNodeID, err
	}
	for {
		switch p.cur().Kind {
		case token.Dot:
			dot := p.bump()
			member, err := p.expect(token.Ident)
			if err != nil {
				return syntax.NoNodeID, err
			}
			expr = p.tree.AllocNode(syntax.KindMemberExpr, expr, dot, member)
		case token.LParen:
			lparen := p.bump()
			var args []syntax.NodeID
			for !p.at(token.RParen) && !p.at(token.EOF) {
				arg, err := p.parseExpr()
				if err != nil {
					return syntax.NoNodeID, err
				}
				args = append(args, arg)
				if p.at(token.Comma) {
					args = append(args, p.bump())
					continue
				}
				break
			}
			rparen, err := p.expect(token.RParen)
			if err != nil {
				return syntax.NoNodeID, err
			}
			argList := p.tree.AllocNode(syntax.KindArgList, args...)
			expr = p.tree.AllocNode(syntax.KindCallExpr, expr, lparen, argList, rparen)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (syntax.NodeID, error) {
	switch p.cur().Kind {
	case token.Ident:
		return p.tree.AllocNode(syntax.KindIdentExpr, p.bump()), nil
	case token.IntLit, token.StringLit, token.KwTrue, token.KwFalse:
		return p.tree.AllocNode(syntax.KindLiteralExpr, p.bump()), nil
	default:
		return syntax.NoNodeID, p.errf("expected expression, found %s", p.cur().Kind)
	}
}
