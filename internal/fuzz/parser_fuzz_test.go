package fuzztests

import (
	"testing"

	"stylist/internal/parser"
	"stylist/internal/printer"
	"stylist/internal/source"
)

// FuzzParserRoundTrip checks that every tree the parser accepts prints back
// to the exact file content. Inputs the parser rejects are skipped; the
// interesting property is full fidelity on accepted trees.
func FuzzParserRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.vn", input)
		file := fs.Get(fileID)

		tree, err := parser.Parse(file, nil)
		if err != nil {
			return
		}
		if got := printer.Print(tree); got != string(file.Content) {
			t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, file.Content)
		}
	})
}
