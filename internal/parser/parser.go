// Package parser builds the full-fidelity syntax tree the style engine
// reads. Every token, including markers and attached trivia, ends up as a
// leaf of the tree so the printer can reproduce the file byte for byte.
package parser

import (
	"fmt"

	"stylist/internal/lexer"
	"stylist/internal/source"
	"stylist/internal/syntax"
	"stylist/internal/token"
)

type Parser struct {
	file *source.File
	toks []token.Token
	pos  int
	tree *syntax.Tree
}

// Parse lexes and parses one file into a tree. The interner may be nil.
func Parse(file *source.File, interner *source.Interner) (*syntax.Tree, error) {
	toks := lexer.New(file, interner).Tokens()
	p := &Parser{
		file: file,
		toks: toks,
		tree: syntax.NewTree(file.ID, uint(len(toks))*2),
	}
	root, err := p.parseFile()
	if err != nil {
		return nil, err
	}
	p.tree.SetRoot(root)
	return p.tree, nil
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos]
}

func (p *Parser) at(kind token.Kind) bool { return p.cur().Kind == kind }

func (p *Parser) peekKind(delta int) token.Kind {
	idx := p.pos + delta
	if idx >= len(p.toks) {
		return token.EOF
	}
	return p.toks[idx].Kind
}

// bump consumes the current token as a leaf node.
func (p *Parser) bump() syntax.NodeID {
	leaf := p.tree.AllocLeaf(p.cur())
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return leaf
}

func (p *Parser) expect(kind token.Kind) (syntax.NodeID, error) {
	if !p.at(kind) {
		return syntax.NoNodeID, p.errf("expected %s, found %s", kind, p.cur().Kind)
	}
	return p.bump(), nil
}

func (p *Parser) errf(format string, args ...any) error {
	lc := p.file.LineColAt(p.cur().Span.Start)
	return fmt.Errorf("%s:%d:%d: %s", p.file.Path, lc.Line, lc.Col, fmt.Sprintf(format, args...))
}

func (p *Parser) parseFile() (syntax.NodeID, error) {
	var children []syntax.NodeID
	for !p.at(token.EOF) {
		decl, err := p.parseDecl()
		if err != nil {
			return syntax.NoNodeID, err
		}
		children = append(children, decl)
	}
	// EOF leaf keeps trailing trivia in the tree
	children = append(children, p.tree.AllocLeaf(p.cur()))
	return p.tree.AllocNode(syntax.KindFile, children...), nil
}

func (p *Parser) parseDecl() (syntax.NodeID, error) {
	var mods []syntax.NodeID
	if p.at(token.KwPub) {
		mods = append(mods, p.bump())
	}
	switch p.cur().Kind {
	case token.KwStruct:
		return p.parseStructDecl(mods)
	case token.KwEnum:
		return p.parseEnumDecl(mods)
	case token.KwFn:
		return p.parseMethodDecl(mods)
	case token.KwProp:
		return p.parsePropDecl(mods)
	case token.Ident:
		return p.parseFieldDecl(mods)
	default:
		return syntax.NoNodeID, p.errf("expected declaration, found %s", p.cur().Kind)
	}
}

func (p *Parser) parseStructDecl(mods []syntax.NodeID) (syntax.NodeID, error) {
	children := mods
	children = append(children, p.bump()) // struct
	name, err := p.expect(token.Ident)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, name)
	lbrace, err := p.expect(token.LBrace)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, lbrace)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		decl, err := p.parseDecl()
		if err != nil {
			return syntax.NoNodeID, err
		}
		children = append(children, decl)
	}
	rbrace, err := p.expect(token.RBrace)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, rbrace)
	return p.tree.AllocNode(syntax.KindStructDecl, children...), nil
}

func (p *Parser) parseEnumDecl(mods []syntax.NodeID) (syntax.NodeID, error) {
	children := mods
	children = append(children, p.bump()) // enum
	name, err := p.expect(token.Ident)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, name)
	lbrace, err := p.expect(token.LBrace)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, lbrace)
	for p.at(token.Ident) {
		children = append(children, p.bump())
		if p.at(token.Comma) {
			children = append(children, p.bump())
			continue
		}
		break
	}
	rbrace, err := p.expect(token.RBrace)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, rbrace)
	return p.tree.AllocNode(syntax.KindEnumDecl, children...), nil
}

func (p *Parser) parseMethodDecl(mods []syntax.NodeID) (syntax.NodeID, error) {
	children := mods
	children = append(children, p.bump()) // fn
	name, err := p.expect(token.Ident)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, name)
	lparen, err := p.expect(token.LParen)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, lparen)

	var params []syntax.NodeID
	for p.at(token.Ident) {
		typeName := p.parseTypeName()
		pname, err := p.expect(token.Ident)
		if err != nil {
			return syntax.NoNodeID, err
		}
		params = append(params, p.tree.AllocNode(syntax.KindParam, typeName, pname))
		if p.at(token.Comma) {
			params = append(params, p.bump())
			continue
		}
		break
	}
	children = append(children, p.tree.AllocNode(syntax.KindParamList, params...))

	rparen, err := p.expect(token.RParen)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, rparen)

	if p.at(token.Colon) {
		children = append(children, p.bump())
		children = append(children, p.parseTypeName())
	}

	body, err := p.parseBlock()
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, body)
	return p.tree.AllocNode(syntax.KindMethodDecl, children...), nil
}

func (p *Parser) parsePropDecl(mods []syntax.NodeID) (syntax.NodeID, error) {
	children := mods
	children = append(children, p.bump()) // prop
	name, err := p.expect(token.Ident)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, name)
	colon, err := p.expect(token.Colon)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, colon, p.parseTypeName())
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, semi)
	return p.tree.AllocNode(syntax.KindPropDecl, children...), nil
}

func (p *Parser) parseFieldDecl(mods []syntax.NodeID) (syntax.NodeID, error) {
	children := mods
	children = append(children, p.parseTypeName())
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
	return p.tree.AllocNode(syntax.KindFieldDecl, children...), nil
}

// parseTypeName wraps the current Ident in a KindTypeName node.
// Callers check p.at(token.Ident) beforehand.
func (p *Parser) parseTypeName() syntax.NodeID {
	return p.tree.AllocNode(syntax.KindTypeName, p.bump())
}

// parseDeclarator parses `name [= expr]`, tolerating marker tokens that
// stray input methods leave around the name.
func (p *Parser) parseDeclarator() (syntax.NodeID, error) {
	var children []syntax.NodeID
	for p.at(token.Marker) {
		children = append(children, p.bump())
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return syntax.NoNodeID, err
	}
	children = append(children, name)
	for p.at(token.Marker) {
		children = append(children, p.bump())
	}
	if p.at(token.Assign) {
		children = append(children, p.bump())
		init, err := p.parseExpr()
		if err != nil {
			return syntax.NoNodeID, err
		}
		children = append(children, init)
		for p.at(token.Marker) {
			children = append(children, p.bump())
		}
	}
	return p.tree.AllocNode(syntax.KindDeclarator, children...), nil
}
