package rules

// Settings overlays per-project configuration on top of the catalog's
// defaults without touching the catalog itself.
type Settings struct {
	Enabled  map[ID]bool
	Severity map[ID]Severity
}

// NewSettings creates an empty overlay.
func NewSettings() *Settings {
	return &Settings{
		Enabled:  make(map[ID]bool),
		Severity: make(map[ID]Severity),
	}
}

// EnabledFor reports whether the rule runs, honoring overrides first and the
// rule's DefaultEnabled flag otherwise. A nil receiver means defaults.
func (s *Settings) EnabledFor(r *Rule) bool {
	if s != nil {
		if on, ok := s.Enabled[r.ID]; ok {
			return on
		}
	}
	return r.DefaultEnabled
}

// SeverityFor returns the effective severity for the rule.
func (s *Settings) SeverityFor(r *Rule) Severity {
	if s != nil {
		if sev, ok := s.Severity[r.ID]; ok {
			return sev
		}
	}
	return r.Severity
}
