package modules

import (
	"github.com/miralang/mira/internal/diagnostics"
)

// Resolver computes the transitive import closure of an entry module and
// advances every reachable module to AfterImportResolution exactly once.
type Resolver struct {
	registry *Registry
	builtins *Module
	diags    *diagnostics.Collector
}

func NewResolver(registry *Registry, diags *diagnostics.Collector) *Resolver {
	if diags == nil {
		diags = diagnostics.NewCollector()
	}
	return &Resolver{
		registry: registry,
		builtins: registry.Builtins(),
		diags:    diags,
	}
}

// Diagnostics returns the collector that receives recoverable notes, such as
// import names that did not resolve to a known module.
func (r *Resolver) Diagnostics() *diagnostics.Collector {
	return r.diags
}

// ResolveImports walks the import graph from entry and returns every module
// it advanced, in visitation order. Modules already resolved are skipped, so
// the traversal is cycle-safe and a second run over the same entry is a
// no-op for stages and import lists.
//
// Declared imports that the registry does not know are dropped from the
// resolved list; a warning diagnostic records each dropped name so a later
// pass can still report typo'd imports.
func (r *Resolver) ResolveImports(entry *Module) ([]*Module, error) {
	var seen []*Module
	seenSet := make(map[*Module]bool)
	stack := []*Module{entry}

	for len(stack) > 0 {
		m := stack[0]
		stack = stack[1:]

		if seenSet[m] || m.Stage() >= StageAfterImportResolution {
			continue
		}

		if err := r.registry.EnsureParsed(m); err != nil {
			return nil, err
		}
		irMod := m.IR()
		if irMod == nil {
			// EnsureParsed succeeded but left no IR: the pipeline ran phases
			// out of order.
			return nil, diagnostics.Internalf("module %s: import declarations read before parsing", m.Name)
		}

		var resolved []*Module
		for _, imp := range irMod.Imports {
			dep, ok := r.registry.Lookup(imp.Name)
			if !ok {
				r.diags.Warnf("module %s: import %q does not resolve to a known module", m.Name, imp.Name)
				continue
			}
			resolved = append(resolved, dep)
		}

		imports := make([]*Module, 0, len(resolved)+1)
		imports = append(imports, r.builtins)
		imports = append(imports, resolved...)
		m.SetResolvedImports(imports)

		if err := m.AdvanceStage(StageAfterImportResolution); err != nil {
			return nil, err
		}
		seenSet[m] = true
		seen = append(seen, m)

		// Depth-first: chase this module's dependencies before siblings that
		// were queued earlier.
		stack = append(append([]*Module{}, resolved...), stack...)
	}

	return seen, nil
}
