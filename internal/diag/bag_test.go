package diag

import (
	"testing"

	"todoc/internal/source"
)

func TestCode_ID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnterminatedString, "LEX1002"},
		{ParseUnbalancedBlock, "SYN2001"},
		{DocUnknownTag, "DOC3001"},
		{IOReadFile, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestBag_CapacityLimit(t *testing.T) {
	bag := NewBag(2)
	sp := source.Span{}
	if !bag.Add(NewWarning(DocUnknownTag, sp, "one")) {
		t.Fatal("first add rejected")
	}
	if !bag.Add(NewWarning(DocUnknownTag, sp, "two")) {
		t.Fatal("second add rejected")
	}
	if bag.Add(NewWarning(DocUnknownTag, sp, "three")) {
		t.Error("capacity limit ignored")
	}
	if bag.Len() != 2 {
		t.Errorf("len = %d", bag.Len())
	}
}

func TestBag_Severities(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevInfo, DocInfo, source.Span{}, "info"))
	if bag.HasWarnings() || bag.HasErrors() {
		t.Error("info alone must not count as warning or error")
	}
	bag.Add(NewWarning(DocUnknownTag, source.Span{}, "warn"))
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Error("warning state wrong")
	}
	bag.Add(NewError(LexUnknownChar, source.Span{}, "err"))
	if !bag.HasErrors() {
		t.Error("error not detected")
	}
}

func TestBag_SortStableOrder(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewWarning(DocUnknownTag, source.Span{File: 1, Start: 50, End: 51}, "later"))
	bag.Add(NewError(LexUnknownChar, source.Span{File: 0, Start: 10, End: 11}, "earlier"))
	bag.Sort()
	items := bag.Items()
	if items[0].Message != "earlier" || items[1].Message != "later" {
		t.Errorf("order = %v", items)
	}
}

func TestBag_MergeGrows(t *testing.T) {
	a := NewBag(1)
	a.Add(NewWarning(DocUnknownTag, source.Span{}, "a"))
	b := NewBag(1)
	b.Add(NewWarning(DocUnknownTag, source.Span{}, "b"))
	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("len = %d", a.Len())
	}
}

func TestBag_Dedup(t *testing.T) {
	bag := NewBag(10)
	sp := source.Span{File: 0, Start: 5, End: 6}
	bag.Add(NewWarning(DocUnknownTag, sp, "dup"))
	bag.Add(NewWarning(DocUnknownTag, sp, "dup again"))
	bag.Add(NewWarning(DocUnknownTag, source.Span{File: 0, Start: 9, End: 10}, "other"))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("len = %d, items %v", bag.Len(), bag.Items())
	}
}
