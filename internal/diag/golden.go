package diag

import (
	"fmt"
	"sort"
	"strings"

	"stylist/internal/source"
)

// FormatShort renders findings one line each in a stable order:
//
//	path:line:col: SEVERITY CODE: message
//
// Used for CLI short output and golden comparisons in tests.
func FormatShort(findings []Finding, fs *source.FileSet) string {
	if fs == nil || len(findings) == 0 {
		return ""
	}

	lines := make([]string, 0, len(findings))
	for _, f := range findings {
		file := fs.Get(f.Primary.File)
		if file == nil {
			continue
		}
		lc := file.LineColAt(f.Primary.Start)
		lines = append(lines, fmt.Sprintf("%s:%d:%d: %s %s: %s",
			file.FormatPath("auto", fs.BaseDir()), lc.Line, lc.Col,
			f.Severity, f.Rule, f.Message))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}
