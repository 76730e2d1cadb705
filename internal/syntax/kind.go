package syntax

// Kind is the closed enumeration of node shapes.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindToken is a leaf node wrapping a single token.
	KindToken

	// Declarations.
	KindFile
	KindStructDecl
	KindEnumDecl
	KindMethodDecl
	KindPropDecl
	KindFieldDecl
	KindDeclarator
	KindParamList
	KindParam
	KindTypeName

	// Statements.
	KindBlock
	KindIfStmt
	KindWhileStmt
	KindSwitchStmt
	KindSwitchCase
	KindLocalDecl
	KindReturnStmt
	KindBreakStmt
	KindExprStmt
	KindEmptyStmt

	// Expressions.
	KindBinaryExpr
	KindCallExpr
	KindMemberExpr
	KindIdentExpr
	KindLiteralExpr
	KindArgList
)

var kindNames = [...]string{
	KindInvalid:     "invalid",
	KindToken:       "token",
	KindFile:        "file",
	KindStructDecl:  "struct-decl",
	KindEnumDecl:    "enum-decl",
	KindMethodDecl:  "method-decl",
	KindPropDecl:    "prop-decl",
	KindFieldDecl:   "field-decl",
	KindDeclarator:  "declarator",
	KindParamList:   "param-list",
	KindParam:       "param",
	KindTypeName:    "type-name",
	KindBlock:       "block",
	KindIfStmt:      "if-stmt",
	KindWhileStmt:   "while-stmt",
	KindSwitchStmt:  "switch-stmt",
	KindSwitchCase:  "switch-case",
	KindLocalDecl:   "local-decl",
	KindReturnStmt:  "return-stmt",
	KindBreakStmt:   "break-stmt",
	KindExprStmt:    "expr-stmt",
	KindEmptyStmt:   "empty-stmt",
	KindBinaryExpr:  "binary-expr",
	KindCallExpr:    "call-expr",
	KindMemberExpr:  "member-expr",
	KindIdentExpr:   "ident-expr",
	KindLiteralExpr: "literal-expr",
	KindArgList:     "arg-list",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsDecl reports whether the kind is a declaration.
func (k Kind) IsDecl() bool {
	switch k {
	case KindStructDecl, KindEnumDecl, KindMethodDecl, KindPropDecl, KindFieldDecl:
		return true
	default:
		return false
	}
}

// IsStmt reports whether the kind is a statement.
func (k Kind) IsStmt() bool {
	switch k {
	case KindBlock, KindIfStmt, KindWhileStmt, KindSwitchStmt, KindLocalDecl,
		KindReturnStmt, KindBreakStmt, KindExprStmt, KindEmptyStmt:
		return true
	default:
		return false
	}
}

// IsExpr reports whether the kind is an expression.
func (k Kind) IsExpr() bool {
	switch k {
	case KindBinaryExpr, KindCallExpr, KindMemberExpr, KindIdentExpr, KindLiteralExpr:
		return true
	default:
		return false
	}
}
