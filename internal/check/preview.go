package check

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"stylist/internal/syntax"
)

// previewWidth caps statement previews embedded in messages.
const previewWidth = 30

// preview renders a statement as a single collapsed-whitespace line,
// truncated to previewWidth with a trailing ellipsis when it does not fit.
func preview(t *syntax.Tree, id syntax.NodeID) string {
	var b strings.Builder
	var walk func(id syntax.NodeID)
	walk = func(id syntax.NodeID) {
		n := t.Node(id)
		if n == nil {
			return
		}
		if n.IsLeaf() {
			tok := t.Token(n.Token)
			if b.Len() > 0 && len(tok.Leading) > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tok.Text)
			return
		}
		for _, child := range t.Children(id) {
			walk(child)
		}
	}
	walk(id)
	return runewidth.Truncate(b.String(), previewWidth, "...")
}
