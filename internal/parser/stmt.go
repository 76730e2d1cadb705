package parser

import (
	"stylist/internal/syntax"
	"stylist/internal/token"
)

func (p *Parser) parseStmt() (syntax.NodeID, error) {
	switch p.cur().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwVar:
		return p.parseLocalDecl()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwBreak:
		return p.parseBreak()
	case token.Semicolon:
		return p.tree.AllocNode(syntax.KindEmptyStmt, p.bump()), nil
	case token.Ident:
		// `TypeName name ...` is a local declaration; anything else is an
		// expression statement. Markers may sit between type and name.
		if p.peekKind(1) == token.Ident || (p.peekKind(1) == token.Marker && p.peekKind(2) == token.Ident) {
			return p.parseLocalDecl()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlock() (syntax.NodeID, error) {
	lbrace, err := p.expect(token.LBrace)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children := []syntax.NodeID{lbrace}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, err := p.parseStmt()
		if err != nil {
			return syntax.NoNodeID, err
		}
		children = append(children, stmt)
	}
	rbrace, err := p.expect(token.RBrace)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, rbrace)
	return p.tree.AllocNode(syntax.KindBlock, children...), nil
}

func (p *Parser) parseIf() (syntax.NodeID, error) {
	children := []syntax.NodeID{p.bump()} // if
	lparen, err := p.expect(token.LParen)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, lparen)
	cond, err := p.parseExpr()
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, cond)
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, rparen)

	then, err := p.parseStmt()
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, then)

	if p.at(token.KwElse) {
		children = append(children, p.bump())
		var alt syntax.NodeID
		if p.at(token.KwIf) {
			alt, err = p.parseIf()
		} else {
			alt, err = p.parseStmt()
		}
		if err != nil {
			return syntax.NoNodeID, err
		}
		children = append(children, alt)
	}
	return p.tree.AllocNode(syntax.KindIfStmt, children...), nil
}

func (p *Parser) parseWhile() (syntax.NodeID, error) {
	children := []syntax.NodeID{p.bump()} // while
	lparen, err := p.expect(token.LParen)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, lparen)
	cond, err := p.parseExpr()
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, cond)
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, rparen)
	body, err := p.parseStmt()
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, body)
	return p.tree.AllocNode(syntax.KindWhileStmt, children...), nil
}

func (p *Parser) parseSwitch() (syntax.NodeID, error) {
	children := []syntax.NodeID{p.bump()} // switch
	lparen, err := p.expect(token.LParen)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, lparen)
	subject, err := p.parseExpr()
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, subject)
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, rparen)
	lbrace, err := p.expect(token.LBrace)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, lbrace)

	for p.at(token.KwCase) || p.at(token.KwDefault) {
		c, err := p.parseSwitchCase()
		if err != nil {
			return syntax.NoNodeID, err
		}
		children = append(children, c)
	}

	rbrace, err := p.expect(token.RBrace)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, rbrace)
	return p.tree.AllocNode(syntax.KindSwitchStmt, children...), nil
}

func (p *Parser) parseSwitchCase() (syntax.NodeID, error) {
	isDefault := p.at(token.KwDefault)
	children := []syntax.NodeID{p.bump()} // case | default
	if !isDefault {
		value, err := p.parseExpr()
		if err != nil {
			return syntax.NoNodeID, err
		}
		children = append(children, value)
	}
	colon, err := p.expect(token.Colon)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, colon)
	for !p.at(token.KwCase) && !p.at(token.KwDefault) && !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, err := p.parseStmt()
		if err != nil {
			return syntax.NoNodeID, err
		}
		children = append(children, stmt)
	}
	return p.tree.AllocNode(syntax.KindSwitchCase, children...), nil
}

func (p *Parser) parseLocalDecl() (syntax.NodeID, error) {
	var children []syntax.NodeID
	if p.at(token.KwVar) {
		children = append(children, p.bump())
	} else {
		children = append(children, p.parseTypeName())
	}
	for {
		decl, err := p.parseDeclarator()
		if err != nil {
			return syntax.NoNodeID, err
		}
		children = append(children, decl)
		if p.at(token.Comma) {
			children = append(children, p.bump())
			continue
		}
		break
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, semi)
	return p.tree.AllocNode(syntax.KindLocalDecl, children...), nil
}

func (p *Parser) parseReturn() (syntax.NodeID, error) {
	children := []syntax.NodeID{p.bump()} // return
	if !p.at(token.Semicolon) {
		value, err := p.parseExpr()
		if err != nil {
			return syntax.NoNodeID, err
		}
		children = append(children, value)
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, semi)
	return p.tree.AllocNode(syntax.KindReturnStmt, children...), nil
}

func (p *Parser) parseBreak() (syntax.NodeID, error) {
	kw := p.bump()
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return syntax.NoNodeID, err
	}
	return p.tree.AllocNode(syntax.KindBreakStmt, kw, semi), nil
}

func (p *Parser) parseExprStmt() (syntax.NodeID, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return syntax.NoNodeID, err
	}
	children := []syntax.NodeID{expr}
	if p.at(token.Assign) {
		children = append(children, p.bump())
		rhs, err := p.parseExpr()
		if err != nil {
			return syntax.NoNodeID, err
		}
		children = append(children, rhs)
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, semi)
	return p.tree.AllocNode(syntax.KindExprStmt, children...), nil
}
