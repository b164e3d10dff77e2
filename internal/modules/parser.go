package modules

import (
	"strings"

	"github.com/miralang/mira/internal/ir"
)

// Parser is the parsing collaborator invoked by EnsureParsed. It produces the
// IR the import resolver reads declarations from.
type Parser interface {
	Parse(source string) (*ir.Module, error)
}

// ImportScanner is the default parser. It extracts `import Name` declarations
// and leaves the rest of the program to later phases.
type ImportScanner struct{}

func NewImportScanner() *ImportScanner {
	return &ImportScanner{}
}

func (s *ImportScanner) Parse(source string) (*ir.Module, error) {
	mod := &ir.Module{}
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, ok := strings.CutPrefix(line, "import "); ok {
			name = strings.TrimSpace(name)
			if name != "" {
				mod.Imports = append(mod.Imports, ir.ImportDecl{Name: name})
			}
		}
	}
	return mod, nil
}
