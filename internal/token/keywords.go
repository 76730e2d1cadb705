package token

var keywords = map[string]Kind{
	"struct":  KwStruct,
	"enum":    KwEnum,
	"fn":      KwFn,
	"prop":    KwProp,
	"pub":     KwPub,
	"var":     KwVar,
	"if":      KwIf,
	"else":    KwElse,
	"while":   KwWhile,
	"switch":  KwSwitch,
	"case":    KwCase,
	"default": KwDefault,
	"break":   KwBreak,
	"return":  KwReturn,
	"true":    KwTrue,
	"false":   KwFalse,
}

// LookupKeyword maps identifier text to its keyword kind, or Ident.
func LookupKeyword(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}
