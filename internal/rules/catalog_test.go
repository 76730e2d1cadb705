package rules

import (
	"testing"

	"stylist/internal/syntax"
	"stylist/internal/token"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 6 {
		t.Fatalf("builtin rules = %d, want 6", c.Len())
	}

	for _, r := range c.All() {
		if len(r.ID) != 4 {
			t.Errorf("rule %s: id must be 4 chars", r.ID)
		}
		if !r.DefaultEnabled {
			t.Errorf("rule %s: builtins are enabled by default", r.ID)
		}
		if len(r.Nodes) == 0 && len(r.Trivia) == 0 {
			t.Errorf("rule %s: no trigger kinds", r.ID)
		}
	}
}

func TestTriggersIndex(t *testing.T) {
	c := Default()

	ifRules := c.ForNode(syntax.KindIfStmt)
	var sawSameLine, sawChain bool
	for _, id := range ifRules {
		switch id {
		case SameLineBody:
			sawSameLine = true
		case ChainToSwitch:
			sawChain = true
		}
	}
	if !sawSameLine || !sawChain {
		t.Errorf("if-stmt triggers = %v", ifRules)
	}

	if got := c.ForTrivia(token.TriviaLineComment); len(got) != 1 || got[0] != CommentSpace {
		t.Errorf("line-comment triggers = %v", got)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	c := NewCatalog()
	c.Register(Rule{ID: "XX01"})
	c.Register(Rule{ID: "XX01"})
}

func TestMessageTemplate(t *testing.T) {
	c := Default()
	r := c.Get(EmptyStringInit)
	got := r.Message("name", `""`)
	want := `initialize name with str.empty instead of ""`
	if got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
}

func TestSettingsOverride(t *testing.T) {
	c := Default()
	r := c.Get(MissingDoc)

	var s *Settings
	if !s.EnabledFor(r) {
		t.Error("nil settings fall back to DefaultEnabled")
	}

	s = NewSettings()
	s.Enabled[MissingDoc] = false
	s.Severity[MissingDoc] = SevError
	if s.EnabledFor(r) {
		t.Error("override must disable the rule")
	}
	if s.SeverityFor(r) != SevError {
		t.Error("override must raise severity")
	}
}
