package doc

type (
	// DeclID references a FunctionDeclaration inside a Decls arena.
	DeclID uint32
)

const (
	NoDeclID DeclID = 0
)

func (id DeclID) IsValid() bool { return id != NoDeclID }
