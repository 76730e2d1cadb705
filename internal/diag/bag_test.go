package diag

import (
	"testing"

	"stylist/internal/rules"
	"stylist/internal/source"
)

func finding(rule rules.ID, sev rules.Severity, start, end uint32) Finding {
	return Finding{
		Rule:     rule,
		Severity: sev,
		Primary:  source.Span{File: 0, Start: start, End: end},
		Message:  "msg",
	}
}

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(finding("ST01", rules.SevWarning, 0, 1)) {
		t.Error("first add must succeed")
	}
	if !b.Add(finding("ST02", rules.SevInfo, 1, 2)) {
		t.Error("second add must succeed")
	}
	if b.Add(finding("ST03", rules.SevInfo, 2, 3)) {
		t.Error("cap reached, add must fail")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d", b.Len())
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(10)
	b.Add(finding("ST05", rules.SevInfo, 20, 30))
	b.Add(finding("ST01", rules.SevWarning, 5, 10))
	b.Add(finding("ST02", rules.SevInfo, 5, 10))
	b.Sort()

	items := b.Items()
	if items[0].Primary.Start != 5 {
		t.Errorf("first start = %d", items[0].Primary.Start)
	}
	// same span: higher severity first
	if items[0].Rule != "ST01" || items[1].Rule != "ST02" {
		t.Errorf("order = %s, %s", items[0].Rule, items[1].Rule)
	}
	if items[2].Rule != "ST05" {
		t.Errorf("last = %s", items[2].Rule)
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: b})

	f := finding("ST04", rules.SevWarning, 3, 9)
	r.Report(f)
	r.Report(f)
	other := finding("ST04", rules.SevWarning, 9, 12)
	r.Report(other)

	if b.Len() != 2 {
		t.Errorf("dedup kept %d findings, want 2", b.Len())
	}
}

func TestHasSeverity(t *testing.T) {
	b := NewBag(5)
	b.Add(finding("ST02", rules.SevInfo, 0, 1))
	if b.HasSeverity(uint8(rules.SevWarning)) {
		t.Error("no warnings yet")
	}
	b.Add(finding("ST01", rules.SevWarning, 1, 2))
	if !b.HasSeverity(uint8(rules.SevWarning)) {
		t.Error("warning present")
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSetWithBase("/tmp")
	id := fs.AddVirtual("a.vn", []byte("int x;\n"))

	got := FormatShort([]Finding{{
		Rule:     "ST04",
		Severity: rules.SevWarning,
		Primary:  source.Span{File: id, Start: 4, End: 5},
		Message:  "missing documentation for public symbol x",
	}}, fs)
	want := "a.vn:1:5: WARNING ST04: missing documentation for public symbol x"
	if got != want {
		t.Errorf("FormatShort = %q, want %q", got, want)
	}
}
