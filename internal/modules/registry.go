package modules

import (
	"fmt"
	"os"

	"github.com/miralang/mira/internal/config"
	"github.com/miralang/mira/internal/ir"
)

// Registry stores modules by qualified name and tracks their compilation
// stages. Modules are never removed during a compilation run.
type Registry struct {
	modules  map[string]*Module
	builtins *Module
	parser   Parser
}

func NewRegistry() *Registry {
	return NewRegistryWithParser(NewImportScanner())
}

func NewRegistryWithParser(parser Parser) *Registry {
	r := &Registry{
		modules: make(map[string]*Module),
		parser:  parser,
	}

	// The implicit prelude is created once at registry construction and is
	// already past import resolution: it imports nothing and must never be
	// re-resolved.
	builtins := &Module{Name: config.BuiltinsModuleName}
	builtins.SetIR(&ir.Module{})
	builtins.SetResolvedImports([]*Module{builtins})
	if err := builtins.AdvanceStage(StageAfterImportResolution); err != nil {
		panic(err) // unreachable: fresh module, forward move
	}
	r.builtins = builtins
	r.modules[builtins.Name] = builtins
	return r
}

// Builtins returns the implicit prelude module.
func (r *Registry) Builtins() *Module {
	return r.builtins
}

func (r *Registry) Add(m *Module) error {
	if _, exists := r.modules[m.Name]; exists {
		return fmt.Errorf("module already registered: %s", m.Name)
	}
	r.modules[m.Name] = m
	return nil
}

// AddSource registers a module with inline source, replacing nothing.
// Convenience for tests and embedded programs.
func (r *Registry) AddSource(name, source string) (*Module, error) {
	m := &Module{Name: name, Source: source}
	if err := r.Add(m); err != nil {
		return nil, err
	}
	return m, nil
}

// AddFile registers a module whose source is read lazily from path.
func (r *Registry) AddFile(name, path string) (*Module, error) {
	m := &Module{Name: name, Path: path}
	if err := r.Add(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Lookup resolves a module by name. The registry is the source of truth for
// module existence.
func (r *Registry) Lookup(name string) (*Module, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// EnsureParsed parses the module's source if it has not been parsed yet.
// Idempotent: calling it on an already-parsed module is a no-op.
func (r *Registry) EnsureParsed(m *Module) error {
	if m.Stage() >= StageParsed && m.IR() != nil {
		return nil
	}

	source := m.Source
	if source == "" && m.Path != "" {
		content, err := os.ReadFile(m.Path)
		if err != nil {
			return fmt.Errorf("module %s: %v", m.Name, err)
		}
		source = string(content)
		m.Source = source
	}

	irMod, err := r.parser.Parse(source)
	if err != nil {
		return fmt.Errorf("module %s: %v", m.Name, err)
	}
	m.SetIR(irMod)
	return m.AdvanceStage(StageParsed)
}
