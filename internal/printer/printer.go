// Package printer serializes syntax trees back to text. An unedited tree
// round-trips byte for byte; nodes named by a reformat hint get their
// indentation re-flowed to the surrounding nesting depth.
package printer

import (
	"strings"

	"stylist/internal/reformat"
	"stylist/internal/syntax"
	"stylist/internal/token"
)

// Options controls re-flow behavior.
type Options struct {
	// Indent is the unit of indentation. Empty means four spaces.
	Indent string
}

func (o Options) indent() string {
	if o.Indent == "" {
		return "    "
	}
	return o.Indent
}

// Print serializes the tree exactly: every token's leading trivia followed
// by its text, in leaf order.
func Print(t *syntax.Tree) string {
	return PrintWith(t, nil, Options{})
}

// PrintWith serializes the tree, re-flowing indentation inside subtrees the
// hinter marks. Outside marked subtrees output is byte-identical to Print.
func PrintWith(t *syntax.Tree, hints reformat.Hinter, opts Options) string {
	var b strings.Builder
	depth := 0

	var walk func(id syntax.NodeID, hinted bool)
	walk = func(id syntax.NodeID, hinted bool) {
		if hints != nil && hints.Has(id) {
			hinted = true
		}
		n := t.Node(id)
		if n == nil {
			return
		}
		if !n.IsLeaf() {
			for _, child := range t.Children(id) {
				walk(child, hinted)
			}
			return
		}

		tok := t.Token(n.Token)
		if tok.Kind == token.RBrace {
			depth--
		}
		// Case and default labels sit one level shallower than the
		// statements under them, level with the switch keyword.
		d := depth
		if tok.Kind == token.KwCase || tok.Kind == token.KwDefault {
			d--
		}
		writeLeading(&b, tok, hinted, d, opts)
		b.WriteString(tok.Text)
		if tok.Kind == token.LBrace {
			depth++
		}
	}
	walk(t.Root(), false)
	return b.String()
}

// writeLeading emits a token's leading trivia. In re-flowed regions the
// whitespace after the last newline is replaced with depth-based
// indentation; everything else, comments included, passes through.
func writeLeading(b *strings.Builder, tok *token.Token, hinted bool, depth int, opts Options) {
	if !hinted {
		b.WriteString(tok.LeadingText())
		return
	}

	lastNewline := -1
	for i, tr := range tok.Leading {
		if tr.Kind == token.TriviaNewline {
			lastNewline = i
		}
	}
	if lastNewline == -1 {
		b.WriteString(tok.LeadingText())
		return
	}

	for i, tr := range tok.Leading {
		switch {
		case i <= lastNewline:
			b.WriteString(tr.Text)
		case tr.Kind == token.TriviaSpace:
			// swallowed; replaced by computed indentation below
		default:
			b.WriteString(tr.Text)
		}
	}
	for i := 0; i < depth; i++ {
		b.WriteString(opts.indent())
	}
}
