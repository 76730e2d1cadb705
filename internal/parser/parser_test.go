package parser

import (
	"testing"

	"stylist/internal/source"
	"stylist/internal/syntax"
)

func parse(t *testing.T, src string) *syntax.Tree {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vn", []byte(src))
	tree, err := Parse(fs.Get(id), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return tree
}

func findKind(t *syntax.Tree, kind syntax.Kind) syntax.NodeID {
	var found syntax.NodeID
	var walk func(id syntax.NodeID)
	walk = func(id syntax.NodeID) {
		if found.IsValid() {
			return
		}
		if t.Kind(id) == kind {
			found = id
			return
		}
		for _, child := range t.Children(id) {
			walk(child)
		}
	}
	walk(t.Root())
	return found
}

func TestParseStructWithFields(t *testing.T) {
	tree := parse(t, "pub struct Point {\n    int x, y;\n    str label;\n}\n")

	st := findKind(tree, syntax.KindStructDecl)
	if !st.IsValid() {
		t.Fatal("no struct decl")
	}
	if !tree.DeclIsPublic(st) {
		t.Error("struct must be public")
	}
	if got := tree.DeclName(st); got != "Point" {
		t.Errorf("struct name = %q", got)
	}

	field := findKind(tree, syntax.KindFieldDecl)
	decls := tree.Declarators(field)
	if len(decls) != 2 {
		t.Fatalf("declarators = %d, want 2", len(decls))
	}
	if tree.DeclaratorName(decls[0]) != "x" || tree.DeclaratorName(decls[1]) != "y" {
		t.Errorf("declarator names = %q, %q", tree.DeclaratorName(decls[0]), tree.DeclaratorName(decls[1]))
	}
}

func TestParseIfElseChain(t *testing.T) {
	tree := parse(t, `
pub struct S {
    fn pick(int x): str {
        if (x == 1) { return "a"; } else if (x == 2) { return "b"; } else { return "c"; }
    }
}
`)
	root := findKind(tree, syntax.KindIfStmt)
	if !root.IsValid() {
		t.Fatal("no if stmt")
	}

	cond := tree.IfCond(root)
	if tree.Kind(cond) != syntax.KindBinaryExpr {
		t.Fatalf("cond kind = %v", tree.Kind(cond))
	}
	if got := tree.Text(tree.BinaryLHS(cond)); got != "x" {
		t.Errorf("lhs = %q", got)
	}
	if got := tree.Text(tree.BinaryRHS(cond)); got != "1" {
		t.Errorf("rhs = %q", got)
	}

	second := tree.IfElse(root)
	if tree.Kind(second) != syntax.KindIfStmt {
		t.Fatalf("else branch kind = %v", tree.Kind(second))
	}
	tail := tree.IfElse(second)
	if tree.Kind(tail) != syntax.KindBlock {
		t.Errorf("trailing else kind = %v", tree.Kind(tail))
	}
	if !tree.IsTerminating(tree.IfThen(root)) {
		t.Error("then branch ends with return")
	}
}

func TestParseSwitch(t *testing.T) {
	tree := parse(t, `
pub struct S {
    fn go(int x) {
        switch (x) {
        case 1:
            return;
        default:
            break;
        }
    }
}
`)
	sw := findKind(tree, syntax.KindSwitchStmt)
	if !sw.IsValid() {
		t.Fatal("no switch stmt")
	}
	if got := tree.Text(tree.SwitchSubject(sw)); got != "x" {
		t.Errorf("subject = %q", got)
	}
	cases := tree.SwitchCases(sw)
	if len(cases) != 2 {
		t.Fatalf("cases = %d, want 2", len(cases))
	}
	if tree.CaseIsDefault(cases[0]) {
		t.Error("first case is not default")
	}
	if !tree.CaseIsDefault(cases[1]) {
		t.Error("second case is default")
	}
	if got := tree.Text(tree.CaseValue(cases[0])); got != "1" {
		t.Errorf("case value = %q", got)
	}
}

func TestParseLocalDeclWithMarker(t *testing.T) {
	tree := parse(t, `
pub struct S {
    fn go() {
        int count` + "·" + ` = 1;
        var fine = 2;
    }
}
`)
	local := findKind(tree, syntax.KindLocalDecl)
	if !local.IsValid() {
		t.Fatal("no local decl")
	}
	if tree.DeclIsInferred(local) {
		t.Error("first decl has an explicit type")
	}
	if !tree.HasMarkerToken(local) {
		t.Error("marker token must survive parsing")
	}
	if !tree.DeclType(local).IsValid() {
		t.Error("explicit type node missing")
	}
}

func TestParseMemberAndCall(t *testing.T) {
	tree := parse(t, `
pub struct S {
    fn go() {
        str s = str.empty;
        log(s);
    }
}
`)
	member := findKind(tree, syntax.KindMemberExpr)
	if !member.IsValid() {
		t.Fatal("no member expr")
	}
	if got := tree.Text(member); got != "str.empty" {
		t.Errorf("member text = %q", got)
	}
	if !findKind(tree, syntax.KindCallExpr).IsValid() {
		t.Error("no call expr")
	}
}

func TestParseErrorPosition(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.vn", []byte("pub struct {"))
	_, err := Parse(fs.Get(id), nil)
	if err == nil {
		t.Fatal("expected parse error")
	}
}
