package ir

// ImportDecl is a name reference to another module, extracted from a parsed
// module. Immutable once parsed.
type ImportDecl struct {
	Name string
}

// Module is the parsed intermediate representation consumed by downstream
// compiler phases. Only the pieces the import resolver reads are modeled;
// the rest of the IR is opaque to this layer.
type Module struct {
	Imports []ImportDecl
}
