// Package rules is the static catalog of style rules: identifiers,
// severities, message templates, and the node or trivia kinds each rule
// subscribes to. Pure data; evaluation lives in internal/check.
package rules

import (
	"fmt"

	"stylist/internal/syntax"
	"stylist/internal/token"
)

// ID is the stable 4-character rule code, e.g. "ST01".
type ID string

// Rule describes one style rule. The catalog owns instances; they never
// change after registration.
type Rule struct {
	ID             ID
	Name           string
	Severity       Severity
	Category       Category
	Template       string // positional %s/%q placeholders
	DefaultEnabled bool

	// Nodes and Trivia are the kinds whose visits trigger this rule.
	Nodes  []syntax.Kind
	Trivia []token.TriviaKind
}

// Message instantiates the rule's template with the finding's arguments.
func (r *Rule) Message(args ...any) string {
	if len(args) == 0 {
		return r.Template
	}
	return fmt.Sprintf(r.Template, args...)
}
