package fuzztests

import (
	"reflect"
	"testing"

	"todoc/internal/driver"
)

// FuzzExtract runs the whole per-file pipeline on arbitrary bytes. The
// pipeline must never panic and must be deterministic: the same input
// yields the same model and the same diagnostics twice in a row.
func FuzzExtract(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		first := driver.ExtractSource("fuzz.lua", input, driver.Options{})
		second := driver.ExtractSource("fuzz.lua", input, driver.Options{})

		if first.Fatal() != second.Fatal() {
			t.Fatal("fatality differs between identical runs")
		}
		if !reflect.DeepEqual(first.Doc, second.Doc) {
			t.Fatal("models differ between identical runs")
		}
		if first.Bag.Len() != second.Bag.Len() {
			t.Fatal("diagnostic counts differ between identical runs")
		}

		if first.Fatal() && !first.Bag.HasErrors() {
			t.Fatal("fatal result without an error diagnostic")
		}
	})
}
