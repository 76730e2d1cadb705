package fix

import "errors"

var (
	// ErrAnchorNotFound means the anchor no longer resolves to a node of the
	// kind the fix expects. The tree may have changed since the finding was
	// computed; batch application skips the fix, interactive callers report.
	ErrAnchorNotFound = errors.New("fix anchor does not resolve to the expected node")

	// ErrMalformedTrivia means comment text does not have the lexical shape
	// the insert-space fix requires, so it declines rather than producing
	// invalid text.
	ErrMalformedTrivia = errors.New("comment text has an unexpected shape")

	// ErrNoFixes is returned when a batch run applies nothing.
	ErrNoFixes = errors.New("no applicable fixes found")
)
