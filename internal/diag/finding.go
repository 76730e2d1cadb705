// Package diag defines the finding model shared by the check engine, the
// fix registry, and the CLI.
//
// Finding is the central record: a located, identified rule violation plus
// the arguments its message template was instantiated with. Findings are
// ephemeral: they are recomputed whenever the tree changes, and anchors from
// an older revision must be re-resolved rather than trusted.
//
// The package performs no IO and no formatting beyond the deterministic
// short form used by tests and the CLI; rendering lives in internal/diagfmt.
package diag

import (
	"stylist/internal/rules"
	"stylist/internal/source"
)

// Finding is one located rule violation.
type Finding struct {
	Rule     rules.ID
	Severity rules.Severity
	Primary  source.Span
	Message  string
	Args     []string
}

// New constructs a finding with its message already instantiated.
func New(rule *rules.Rule, sev rules.Severity, primary source.Span, args ...string) Finding {
	anyArgs := make([]any, len(args))
	for i, a := range args {
		anyArgs[i] = a
	}
	return Finding{
		Rule:     rule.ID,
		Severity: sev,
		Primary:  primary,
		Message:  rule.Message(anyArgs...),
		Args:     args,
	}
}
