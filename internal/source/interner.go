package source

import (
	"slices"
)

// StringID is a handle to an interned string.
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates strings so name-path segments can be compared and
// stored by index. byID[0] is "" for NoStringID.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern inserts the string and returns its ID, reusing an existing entry
// when present.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}

	// Own copy, detached from the caller's backing buffer.
	cpy := string([]byte(s))
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// InternBytes inserts bytes and returns the ID of the resulting string.
func (i *Interner) InternBytes(b []byte) StringID {
	return i.Intern(string(b))
}

// Lookup returns the string for the ID, or "" and false for invalid IDs.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup returns the string for the ID, panicking on invalid IDs.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

// Has reports whether the ID is valid for this interner.
func (i *Interner) Has(id StringID) bool {
	return int(id) >= 0 && int(id) < len(i.byID)
}

// Len counts interned strings, NoStringID included. Never below 1.
func (i *Interner) Len() int {
	return len(i.byID)
}

// Snapshot returns a copy of every interned string.
func (i *Interner) Snapshot() []string {
	return slices.Clone(i.byID)
}
