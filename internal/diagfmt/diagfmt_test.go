package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"stylist/internal/diag"
	"stylist/internal/rules"
	"stylist/internal/source"
)

func fixture(t *testing.T) (*source.FileSet, []diag.Finding) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.vn", []byte("fn f() {\n    str s = \"\";\n}\n"))
	return fs, []diag.Finding{
		{
			Rule:     rules.EmptyStringInit,
			Severity: rules.SevInfo,
			Primary:  source.Span{File: id, Start: 21, End: 23},
			Message:  `initialize "s" with str.empty instead of ""`,
			Args:     []string{"s", `""`},
		},
	}
}

func TestPrettyPlain(t *testing.T) {
	fs, findings := fixture(t)

	var buf bytes.Buffer
	Pretty(&buf, findings, fs, PrettyOpts{})

	want := "main.vn:2:13: INFO ST02: initialize \"s\" with str.empty instead of \"\"\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrettyShowSource(t *testing.T) {
	fs, findings := fixture(t)

	var buf bytes.Buffer
	Pretty(&buf, findings, fs, PrettyOpts{ShowSource: true})

	out := buf.String()
	if !strings.Contains(out, "    str s = \"\";\n") {
		t.Fatalf("missing source line in %q", out)
	}
	// Span covers two bytes: caret plus one tilde, indented under the literal.
	if !strings.Contains(out, "\n                ^~\n") {
		t.Errorf("missing underline in %q", out)
	}
}

func TestPrettyBasenameMode(t *testing.T) {
	fs := source.NewFileSetWithBase("/work")
	id := fs.AddVirtual("/work/sub/a.vn", []byte("x\n"))
	findings := []diag.Finding{{
		Rule:     rules.SameLineBody,
		Severity: rules.SevWarning,
		Primary:  source.Span{File: id, Start: 0, End: 1},
		Message:  "body must start on its own line",
	}}

	var buf bytes.Buffer
	Pretty(&buf, findings, fs, PrettyOpts{PathMode: PathModeBasename})

	if !strings.HasPrefix(buf.String(), "a.vn:1:1: WARNING ST01:") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestBuildFindingsOutput(t *testing.T) {
	fs, findings := fixture(t)

	out := BuildFindingsOutput(findings, fs, JSONOpts{IncludePositions: true})
	if out.Count != 1 || len(out.Findings) != 1 {
		t.Fatalf("count = %d, findings = %d", out.Count, len(out.Findings))
	}
	f := out.Findings[0]
	if f.Code != "ST02" || f.Severity != "INFO" {
		t.Errorf("code/severity = %s/%s", f.Code, f.Severity)
	}
	if f.Location.File != "main.vn" {
		t.Errorf("file = %q", f.Location.File)
	}
	if f.Location.StartByte != 21 || f.Location.EndByte != 23 {
		t.Errorf("bytes = %d..%d", f.Location.StartByte, f.Location.EndByte)
	}
	if f.Location.StartLine != 2 || f.Location.StartCol != 13 {
		t.Errorf("pos = %d:%d", f.Location.StartLine, f.Location.StartCol)
	}
}

func TestBuildFindingsOutputMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.vn", []byte("abc\n"))
	var findings []diag.Finding
	for i := uint32(0); i < 3; i++ {
		findings = append(findings, diag.Finding{
			Rule:     rules.CommentSpace,
			Severity: rules.SevInfo,
			Primary:  source.Span{File: id, Start: i, End: i + 1},
			Message:  "m",
		})
	}

	out := BuildFindingsOutput(findings, fs, JSONOpts{Max: 2})
	if len(out.Findings) != 2 || out.Count != 3 || !out.Truncated {
		t.Errorf("findings = %d, count = %d, truncated = %v",
			len(out.Findings), out.Count, out.Truncated)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	fs, findings := fixture(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, findings, fs, JSONOpts{}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got FindingsOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Count != 1 || got.Findings[0].Code != "ST02" {
		t.Errorf("round trip got %+v", got)
	}
	if got.Findings[0].Location.StartLine != 0 {
		t.Errorf("positions included without IncludePositions")
	}
}
