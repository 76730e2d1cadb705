package testkit

import (
	"testing"

	"stylist/internal/syntax"
)

// A parameterless fn allocates an empty KindParamList whose span is the zero
// value. The invariant checker must accept it rather than flag the file span
// for not containing it.
func TestEmptyParamListSatisfiesInvariants(t *testing.T) {
	tree, _ := MustParse(t, "fn f() {\n    return;\n}\n")

	var params syntax.NodeID
	var walk func(id syntax.NodeID)
	walk = func(id syntax.NodeID) {
		if tree.Kind(id) == syntax.KindParamList {
			params = id
			return
		}
		for _, child := range tree.Children(id) {
			walk(child)
		}
	}
	walk(tree.Root())
	if !params.IsValid() {
		t.Fatal("no param list node")
	}
	if !tree.Span(params).Empty() {
		t.Fatalf("param list span = %v, want empty", tree.Span(params))
	}
}
