package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"todoc/internal/source"
)

func TestFileSet_Resolve(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.lua", []byte("ab\ncd\n\nxyz"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},  // 'a'
		{1, 1, 2},  // 'b'
		{2, 1, 3},  // the newline still belongs to line 1
		{3, 2, 1},  // 'c'
		{5, 2, 3},  // newline after "cd"
		{6, 3, 1},  // empty line
		{7, 4, 1},  // 'x'
		{9, 4, 3},  // 'z'
		{10, 4, 4}, // one past EOF
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(source.Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("off %d: got %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
		}
	}
}

func TestFileSet_ResolveNoNewlines(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.lua", []byte("abc"))
	start, _ := fs.Resolve(source.Span{File: id, Start: 2, End: 3})
	if start.Line != 1 || start.Col != 3 {
		t.Errorf("got %d:%d, want 1:3", start.Line, start.Col)
	}
}

func TestFile_GetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.lua", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestFileSet_LoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.lua")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("local a\r\nlocal b\r\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)

	if string(f.Content) != "local a\nlocal b\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("FileHadBOM not set")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF not set")
	}
}

func TestFileSet_GetByPath(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("dir/./t.lua", []byte("x"))
	if _, ok := fs.GetByPath("dir/t.lua"); !ok {
		t.Error("normalized path lookup failed")
	}
	if _, ok := fs.GetByPath("missing.lua"); ok {
		t.Error("unexpected hit for missing path")
	}
}

func TestFileSet_HashDiffersByContent(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.AddVirtual("a.lua", []byte("one"))
	b := fs.AddVirtual("b.lua", []byte("two"))
	c := fs.AddVirtual("c.lua", []byte("one"))
	if fs.Get(a).Hash == fs.Get(b).Hash {
		t.Error("different content must hash differently")
	}
	if fs.Get(a).Hash != fs.Get(c).Hash {
		t.Error("same content must hash equally")
	}
}

func TestInterner_Dedup(t *testing.T) {
	in := source.NewInterner()
	a := in.Intern("segment")
	b := in.Intern("segment")
	c := in.Intern("other")
	if a != b {
		t.Error("same string must intern to the same ID")
	}
	if a == c {
		t.Error("different strings must get different IDs")
	}
	if got := in.MustLookup(a); got != "segment" {
		t.Errorf("lookup = %q", got)
	}
	if _, ok := in.Lookup(source.StringID(99)); ok {
		t.Error("lookup of unknown ID must fail")
	}
	if in.Len() != 3 { // "", "segment", "other"
		t.Errorf("len = %d", in.Len())
	}
}

func TestSpan_Cover(t *testing.T) {
	a := source.Span{File: 1, Start: 5, End: 10}
	b := source.Span{File: 1, Start: 2, End: 7}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Errorf("cover = %+v", got)
	}

	other := source.Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Error("spans from different files must not merge")
	}
}
