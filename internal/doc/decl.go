package doc

import (
	"strings"

	"todoc/internal/source"
)

// DeclKind classifies the syntactic form of a function declaration.
type DeclKind uint8

const (
	// DeclGlobalNamed is `function name(...)`.
	DeclGlobalNamed DeclKind = iota
	// DeclLocalNamed is `local function name(...)`.
	DeclLocalNamed
	// DeclTableField is `function tbl.field(...)` (dot path).
	DeclTableField
	// DeclTableMethod is `function tbl:method(...)`; the receiver `self` is
	// implicit and prepended to Params.
	DeclTableMethod
	// DeclAnonymousAssigned is `name = function(...)` or
	// `local name = function(...)`.
	DeclAnonymousAssigned
)

func (k DeclKind) String() string {
	switch k {
	case DeclGlobalNamed:
		return "global"
	case DeclLocalNamed:
		return "local"
	case DeclTableField:
		return "field"
	case DeclTableMethod:
		return "method"
	case DeclAnonymousAssigned:
		return "assigned"
	}
	return "unknown"
}

// FunctionDeclaration is one recognized function definition.
// Name segments are interned; resolve them through the owning Decls table.
type FunctionDeclaration struct {
	Kind DeclKind
	// Name is the qualified path (container segments plus the final
	// field/method segment). Empty only for unbound anonymous forms, which
	// are never emitted.
	Name []source.StringID
	// Params in source order. For DeclTableMethod, Params[0] is the
	// implicit receiver "self".
	Params []string
	// Local is set for declarations introduced with the `local` qualifier
	// (DeclLocalNamed and local anonymous assignments).
	Local bool
	// Span covers the declaration from its first token through the closing
	// parenthesis of the parameter list.
	Span source.Span
}

// Decls is the per-file arena of recognized declarations plus the interner
// backing their name segments.
type Decls struct {
	arena *Arena[FunctionDeclaration]
	names *source.Interner
}

func NewDecls(capHint uint) *Decls {
	return &Decls{
		arena: NewArena[FunctionDeclaration](capHint),
		names: source.NewInterner(),
	}
}

// Intern interns one name segment.
func (d *Decls) Intern(seg string) source.StringID {
	return d.names.Intern(seg)
}

// Allocate stores the declaration and returns its ID.
func (d *Decls) Allocate(decl FunctionDeclaration) DeclID {
	return DeclID(d.arena.Allocate(decl))
}

func (d *Decls) Get(id DeclID) *FunctionDeclaration {
	return d.arena.Get(uint32(id))
}

func (d *Decls) Len() uint32 {
	return d.arena.Len()
}

// Slice returns the declarations in allocation (source) order. READONLY.
func (d *Decls) Slice() []FunctionDeclaration {
	return d.arena.Slice()
}

// Segment resolves a single interned name segment.
func (d *Decls) Segment(id source.StringID) string {
	return d.names.MustLookup(id)
}

// PathString renders the qualified name: dot separators everywhere except
// before the final segment of a method, which uses a colon.
func (d *Decls) PathString(decl *FunctionDeclaration) string {
	if len(decl.Name) == 0 {
		return ""
	}
	segs := make([]string, len(decl.Name))
	for i, id := range decl.Name {
		segs[i] = d.names.MustLookup(id)
	}
	if decl.Kind == DeclTableMethod && len(segs) > 1 {
		return strings.Join(segs[:len(segs)-1], ".") + ":" + segs[len(segs)-1]
	}
	return strings.Join(segs, ".")
}

// Signature reconstructs a canonical one-line signature for rendering.
// The implicit method receiver is not repeated in the parameter list.
func (d *Decls) Signature(decl *FunctionDeclaration) string {
	params := decl.Params
	if decl.Kind == DeclTableMethod && len(params) > 0 {
		params = params[1:]
	}

	var b strings.Builder
	if decl.Local {
		b.WriteString("local ")
	}
	if decl.Kind == DeclAnonymousAssigned {
		b.WriteString(d.PathString(decl))
		b.WriteString(" = function(")
	} else {
		b.WriteString("function ")
		b.WriteString(d.PathString(decl))
		b.WriteString("(")
	}
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(")")
	return b.String()
}
