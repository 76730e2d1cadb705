package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

// corpusSeeds covers every construct the grammar knows plus the shapes the
// style rules care about.
var corpusSeeds = []string{
	"",
	"\n",
	"// comment\n",
	"///doc\npub struct S {\n}\n",
	"pub struct Point {\n    int x, y;\n    str label = \"\";\n}\n",
	"pub struct S {\n    pub prop name: str;\n}\n",
	"fn f() {\n    if (a == b) stop();\n}\n",
	"fn f() {\n    while (true) { spin(); }\n}\n",
	"fn f() {\n    int ·n = count();\n}\n",
	"fn f() {\n    if (x == 1) { a(); } else if (x == 2) { b(); } else { c(); }\n}\n",
	"fn f() {\n    switch (x) {\n    case 1:\n        break;\n    default:\n        break;\n    }\n}\n",
	"fn f() {\n    return;\n}\n",
	"struct S { fn m(int a, str b) { b = \"\"; } }",
	"//slammed\nfn f() {}\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range corpusSeeds {
		f.Add([]byte(seed))
	}
}
