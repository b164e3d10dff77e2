package pipeline

import (
	"github.com/miralang/mira/internal/diagnostics"
	"github.com/miralang/mira/internal/modules"
)

// Context carries one compilation run through its phases.
type Context struct {
	Registry *modules.Registry
	Entry    *modules.Module

	// Resolved is the entry module's import closure in visitation order,
	// populated by the import resolution phase.
	Resolved []*modules.Module

	Diags *diagnostics.Collector
	Err   error
}

func NewContext(registry *modules.Registry, entry *modules.Module) *Context {
	return &Context{
		Registry: registry,
		Entry:    entry,
		Diags:    diagnostics.NewCollector(),
	}
}

// Processor is a single compiler phase.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Phases keep running after recoverable
// diagnostics so later stages can still report; a fatal error stops the run.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if ctx.Err != nil {
			return ctx
		}
	}
	return ctx
}

// ImportResolutionProcessor advances every module reachable from the entry
// to AfterImportResolution.
type ImportResolutionProcessor struct{}

func (ImportResolutionProcessor) Process(ctx *Context) *Context {
	resolver := modules.NewResolver(ctx.Registry, ctx.Diags)
	resolved, err := resolver.ResolveImports(ctx.Entry)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Resolved = resolved
	return ctx
}
