package diagfmt

import (
	"encoding/json"
	"io"

	"stylist/internal/diag"
	"stylist/internal/source"
)

// LocationJSON pinpoints a finding in a file. Byte offsets are always
// present; line/column pairs are added when IncludePositions is set.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// FindingJSON is the wire form of a single finding.
type FindingJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Args     []string     `json:"args,omitempty"`
	Location LocationJSON `json:"location"`
}

// FindingsOutput is the top-level JSON document.
type FindingsOutput struct {
	Findings  []FindingJSON `json:"findings"`
	Count     int           `json:"count"`
	Truncated bool          `json:"truncated,omitempty"`
}

// BuildFindingsOutput converts findings into the JSON document. Count always
// reflects the full input; Findings is cut at opts.Max when Max > 0.
func BuildFindingsOutput(findings []diag.Finding, fs *source.FileSet, opts JSONOpts) FindingsOutput {
	out := FindingsOutput{
		Findings: make([]FindingJSON, 0, len(findings)),
		Count:    len(findings),
	}
	for _, f := range findings {
		if opts.Max > 0 && len(out.Findings) >= opts.Max {
			out.Truncated = true
			break
		}
		out.Findings = append(out.Findings, FindingJSON{
			Severity: f.Severity.String(),
			Code:     string(f.Rule),
			Message:  f.Message,
			Args:     f.Args,
			Location: makeLocation(f.Primary, fs, opts),
		})
	}
	return out
}

func makeLocation(sp source.Span, fs *source.FileSet, opts JSONOpts) LocationJSON {
	loc := LocationJSON{
		StartByte: sp.Start,
		EndByte:   sp.End,
	}
	file := fs.Get(sp.File)
	if file == nil {
		return loc
	}
	loc.File = file.FormatPath(opts.PathMode.format(), fs.BaseDir())
	if opts.IncludePositions {
		start := file.LineColAt(sp.Start)
		end := file.LineColAt(sp.End)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// WriteJSON renders the findings document with two-space indentation.
func WriteJSON(w io.Writer, findings []diag.Finding, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildFindingsOutput(findings, fs, opts))
}
