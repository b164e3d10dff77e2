package modules

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest is the mira.yaml project description: a module name to source
// path mapping plus the entry module for resolution.
type Manifest struct {
	Name    string            `yaml:"name"`
	Entry   string            `yaml:"entry"`
	Modules map[string]string `yaml:"modules"`

	dir string // directory of the manifest file, base for relative paths
}

// LoadManifest reads and validates a mira.yaml file.
func LoadManifest(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("manifest %s: %v", path, err)
	}
	if m.Entry == "" {
		return nil, fmt.Errorf("manifest %s: missing entry module", path)
	}
	if _, ok := m.Modules[m.Entry]; !ok {
		return nil, fmt.Errorf("manifest %s: entry module %q is not declared", path, m.Entry)
	}
	m.dir = filepath.Dir(path)
	return &m, nil
}

// BuildRegistry registers every declared module. Sources are read lazily by
// EnsureParsed, so declaring a module with a missing file only fails once
// the resolver actually reaches it.
func (m *Manifest) BuildRegistry() (*Registry, error) {
	registry := NewRegistry()
	for name, path := range m.Modules {
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.dir, path)
		}
		if _, err := registry.AddFile(name, path); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// EntryModule returns the entry module from a registry built from this
// manifest.
func (m *Manifest) EntryModule(registry *Registry) (*Module, error) {
	entry, ok := registry.Lookup(m.Entry)
	if !ok {
		return nil, fmt.Errorf("entry module %q not registered", m.Entry)
	}
	return entry, nil
}
