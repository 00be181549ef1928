package doc

// Param is one documented parameter or return value. Returns are
// positional: their Name stays empty.
type Param struct {
	Name        string `msgpack:"name,omitempty" json:"name,omitempty"`
	TypeName    string `msgpack:"type" json:"type"`
	Description string `msgpack:"description,omitempty" json:"description,omitempty"`
}

// DocEntry is the parsed documentation block for one declaration.
type DocEntry struct {
	Brief       string            `msgpack:"brief,omitempty" json:"brief,omitempty"`
	Note        string            `msgpack:"note,omitempty" json:"note,omitempty"`
	Includes    []string          `msgpack:"includes,omitempty" json:"includes,omitempty"`
	Params      []Param           `msgpack:"params,omitempty" json:"params,omitempty"`
	Returns     []Param           `msgpack:"returns,omitempty" json:"returns,omitempty"`
	Description []DescriptionNode `msgpack:"description,omitempty" json:"description,omitempty"`
	// Exported defaults to true; the @!all directive flips it and the model
	// builder drops the entry.
	Exported bool `msgpack:"exported" json:"exported"`
}

// NewDocEntry returns an empty entry with the export default applied.
func NewDocEntry() *DocEntry {
	return &DocEntry{Exported: true}
}
