package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"stylist/internal/diag"
	"stylist/internal/rules"
	"stylist/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	pathColor    = color.New(color.Bold)
	caretColor   = color.New(color.FgGreen)
)

// Pretty renders findings one per block:
//
//	<path>:<line>:<col>: <SEVERITY> <RULE>: <message>
//	    <source line>
//	    ^~~~ underline over the span
//
// Findings are expected pre-sorted (diag.Bag.Sort order).
func Pretty(w io.Writer, findings []diag.Finding, fs *source.FileSet, opts PrettyOpts) {
	for _, f := range findings {
		file := fs.Get(f.Primary.File)
		if file == nil {
			continue
		}
		lc := file.LineColAt(f.Primary.Start)
		path := file.FormatPath(opts.PathMode.format(), fs.BaseDir())

		head := fmt.Sprintf("%s:%d:%d", path, lc.Line, lc.Col)
		sev := f.Severity.String()
		if opts.Color {
			head = pathColor.Sprint(head)
			sev = severityColor(f.Severity).Sprint(sev)
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", head, sev, f.Rule, f.Message)

		if opts.ShowSource {
			writeContext(w, file, f.Primary, lc, opts)
		}
	}
}

func severityColor(sev rules.Severity) *color.Color {
	switch sev {
	case rules.SevError:
		return errorColor
	case rules.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// writeContext prints the first line the span touches, underlined.
func writeContext(w io.Writer, file *source.File, span source.Span, lc source.LineCol, opts PrettyOpts) {
	line := lineText(file, span.Start)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	col := int(lc.Col) - 1
	if col < 0 || col > len(line) {
		return
	}
	width := int(span.Len())
	if rest := len(line) - col; width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", col), underline)
}

// lineText returns the text of the line containing the offset, without the
// line break.
func lineText(file *source.File, off uint32) string {
	content := file.Content
	if int(off) > len(content) {
		return ""
	}
	start := int(off)
	for start > 0 && content[start-1] != '\n' {
		start--
	}
	end := int(off)
	for end < len(content) && content[end] != '\n' {
		end++
	}
	return string(content[start:end])
}
