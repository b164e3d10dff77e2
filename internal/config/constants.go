package config

const SourceFileExt = ".mira"

// ManifestFileName is the project manifest read by the module registry.
const ManifestFileName = "mira.yaml"

// BuiltinsModuleName is the implicit prelude module. It is injected first
// into every module's resolved-import list.
const BuiltinsModuleName = "Builtins"

// Built-in type names
const (
	IntTypeName     = "Int"
	FloatTypeName   = "Float"
	BoolTypeName    = "Bool"
	TextTypeName    = "Text"
	NilTypeName     = "Nil"
	HostTypeName    = "Host"
	ErrorTypeName   = "Error"
	PanicTypeName   = "Panic"
	WarningTypeName = "Warning"
)
