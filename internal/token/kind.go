package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// StringLit represents a double-quoted string literal.
	StringLit
	// Marker represents an interpunct or zero-width marker character that
	// some input methods leave behind (U+00B7, U+200B). Kept as a real
	// token so checks can see it.
	Marker

	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwProp represents the 'prop' keyword.
	KwProp // prop
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false

	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// Semicolon represents ';'.
	Semicolon
	// Colon represents ':'.
	Colon
	// Comma represents ','.
	Comma
	// Dot represents '.'.
	Dot
	// Assign represents '='.
	Assign
	// EqEq represents '=='.
	EqEq
	// BangEq represents '!='.
	BangEq
	// Lt represents '<'.
	Lt
	// Gt represents '>'.
	Gt
	// Plus represents '+'.
	Plus
	// Minus represents '-'.
	Minus
	// Star represents '*'.
	Star
	// Slash represents '/'.
	Slash
	// Bang represents '!'.
	Bang
)

var kindNames = map[Kind]string{
	Invalid:   "invalid",
	EOF:       "eof",
	Ident:     "ident",
	IntLit:    "int",
	StringLit: "string",
	Marker:    "marker",
	KwStruct:  "struct",
	KwEnum:    "enum",
	KwFn:      "fn",
	KwProp:    "prop",
	KwPub:     "pub",
	KwVar:     "var",
	KwIf:      "if",
	KwElse:    "else",
	KwWhile:   "while",
	KwSwitch:  "switch",
	KwCase:    "case",
	KwDefault: "default",
	KwBreak:   "break",
	KwReturn:  "return",
	KwTrue:    "true",
	KwFalse:   "false",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	Semicolon: ";",
	Colon:     ":",
	Comma:     ",",
	Dot:       ".",
	Assign:    "=",
	EqEq:      "==",
	BangEq:    "!=",
	Lt:        "<",
	Gt:        ">",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Bang:      "!",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
