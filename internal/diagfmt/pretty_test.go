package diagfmt_test

import (
	"strings"
	"testing"

	"todoc/internal/diag"
	"todoc/internal/diagfmt"
	"todoc/internal/source"
)

func makeBag(t *testing.T) (*source.FileSet, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("lib/t.lua", []byte("local ok = 1\nlocal s = \"broken\n"))

	bag := diag.NewBag(10)
	// The string literal starts at line 2, column 11.
	bag.Add(diag.NewError(diag.LexUnterminatedString,
		source.Span{File: id, Start: 23, End: 30},
		"unterminated string literal").
		WithNote(source.Span{File: id, Start: 0, End: 5}, "file starts here"))
	return fs, bag
}

func TestWritePretty_HeaderLine(t *testing.T) {
	fs, bag := makeBag(t)
	var sb strings.Builder
	err := diagfmt.WritePretty(&sb, fs, bag, diagfmt.PrettyOpts{})
	if err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "lib/t.lua:2:11: ERROR [LEX1002]: unterminated string literal") {
		t.Errorf("output = %q", out)
	}
}

func TestWritePretty_ContextAndCaret(t *testing.T) {
	fs, bag := makeBag(t)
	var sb strings.Builder
	if err := diagfmt.WritePretty(&sb, fs, bag, diagfmt.PrettyOpts{Context: true}); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, `| local s = "broken`) {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "^^^^^^^") {
		t.Errorf("missing caret underline:\n%s", out)
	}
}

func TestWritePretty_Notes(t *testing.T) {
	fs, bag := makeBag(t)
	var sb strings.Builder
	if err := diagfmt.WritePretty(&sb, fs, bag, diagfmt.PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "note: lib/t.lua:1:1: file starts here") {
		t.Errorf("output = %q", sb.String())
	}
}

func TestWriteJSON_Shape(t *testing.T) {
	fs, bag := makeBag(t)
	var sb strings.Builder
	opts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}
	if err := diagfmt.WriteJSON(&sb, fs, bag, opts); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		`"severity": "ERROR"`,
		`"code": "LEX1002"`,
		`"file": "lib/t.lua"`,
		`"line": 2`,
		`"message": "file starts here"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("json missing %q\n%s", want, out)
		}
	}
}
