package doc

import (
	"testing"

	"todoc/internal/source"
)

func TestArena_OneBasedIDs(t *testing.T) {
	a := NewArena[string](4)
	first := a.Allocate("one")
	second := a.Allocate("two")

	if first != 1 || second != 2 {
		t.Fatalf("ids = %d, %d", first, second)
	}
	if a.Get(0) != nil {
		t.Error("index 0 is the null ID")
	}
	if got := *a.Get(first); got != "one" {
		t.Errorf("Get(1) = %q", got)
	}
	if a.Len() != 2 {
		t.Errorf("len = %d", a.Len())
	}
}

func TestDecls_InternSharesSegments(t *testing.T) {
	d := NewDecls(4)
	a := d.Intern("M")
	b := d.Intern("M")
	if a != b {
		t.Error("equal segments must share an ID")
	}
	if d.Segment(a) != "M" {
		t.Errorf("segment = %q", d.Segment(a))
	}
}

func TestDecls_PathString(t *testing.T) {
	d := NewDecls(4)
	tests := []struct {
		kind DeclKind
		segs []string
		want string
	}{
		{DeclGlobalNamed, []string{"run"}, "run"},
		{DeclTableField, []string{"M", "utils", "trim"}, "M.utils.trim"},
		{DeclTableMethod, []string{"Account", "deposit"}, "Account:deposit"},
		{DeclAnonymousAssigned, []string{"M", "handler"}, "M.handler"},
	}
	for _, tt := range tests {
		name := make([]source.StringID, len(tt.segs))
		for i, s := range tt.segs {
			name[i] = d.Intern(s)
		}
		decl := &FunctionDeclaration{Kind: tt.kind, Name: name}
		if got := d.PathString(decl); got != tt.want {
			t.Errorf("%v: path = %q, want %q", tt.segs, got, tt.want)
		}
	}
}

func TestNewDocEntry_ExportedByDefault(t *testing.T) {
	if !NewDocEntry().Exported {
		t.Error("entries must default to exported")
	}
}

func TestDocumentModel_SortByPath(t *testing.T) {
	m := &DocumentModel{}
	m.Add(FileDoc{Path: "z.lua"})
	m.Add(FileDoc{Path: "a.lua", Functions: []DocumentedFunction{{NamePath: "f"}}})
	m.SortByPath()
	if m.Files[0].Path != "a.lua" || m.Files[1].Path != "z.lua" {
		t.Errorf("files = %+v", m.Files)
	}
	if m.FunctionCount() != 1 {
		t.Errorf("count = %d", m.FunctionCount())
	}
}
