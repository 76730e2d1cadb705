package rules

// Severity defines the importance of a finding.
type Severity uint8

const (
	// SevInfo is for informational findings.
	SevInfo Severity = iota
	// SevWarning is for warning findings.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseSeverity maps a config string to a severity.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "info", "INFO":
		return SevInfo, true
	case "warning", "warn", "WARNING":
		return SevWarning, true
	case "error", "ERROR":
		return SevError, true
	}
	return SevInfo, false
}

// Category groups rules for listing and filtering.
type Category string

const (
	CategoryLayout        Category = "layout"
	CategoryReadability   Category = "readability"
	CategoryDocumentation Category = "documentation"
	CategoryRefactor      Category = "refactor"
)
