package modules

import (
	"fmt"

	"github.com/miralang/mira/internal/diagnostics"
	"github.com/miralang/mira/internal/ir"
)

// Stage marks how far through the compilation pipeline a module has
// progressed. Stages only ever advance.
type Stage int

const (
	StageInitial Stage = iota
	StageParsed
	StageAfterImportResolution
	StageAfterStaticPasses
	StageCompiled
)

func (s Stage) String() string {
	switch s {
	case StageInitial:
		return "Initial"
	case StageParsed:
		return "Parsed"
	case StageAfterImportResolution:
		return "AfterImportResolution"
	case StageAfterStaticPasses:
		return "AfterStaticPasses"
	case StageCompiled:
		return "Compiled"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Module is a compilation unit identified by its qualified name. It is owned
// by the Registry and mutated only by the phase responsible for its current
// stage transition.
type Module struct {
	Name   string
	Path   string // source file on disk, empty when Source is inline
	Source string

	irMod           *ir.Module
	stage           Stage
	resolvedImports []*Module
}

func (m *Module) Stage() Stage {
	return m.stage
}

// AdvanceStage moves the module forward. Moving backward signals a broken
// pipeline and is rejected as an internal error.
func (m *Module) AdvanceStage(s Stage) error {
	if s < m.stage {
		return diagnostics.Internalf("module %s: stage cannot move backward (%s -> %s)", m.Name, m.stage, s)
	}
	m.stage = s
	return nil
}

func (m *Module) IR() *ir.Module {
	return m.irMod
}

func (m *Module) SetIR(irMod *ir.Module) {
	m.irMod = irMod
}

// ResolvedImports is the module's resolved import list. After import
// resolution it always starts with the builtins module.
func (m *Module) ResolvedImports() []*Module {
	return m.resolvedImports
}

func (m *Module) SetResolvedImports(imports []*Module) {
	m.resolvedImports = imports
}
