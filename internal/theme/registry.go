// Package theme holds the cover-theme packs: visual styling, AI prompt
// guidance, and the deterministic fallback texts used when generation
// degrades. Packs are immutable after construction and passed explicitly to
// the components that need them.
package theme

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/visioncraft/workbook/internal/domain"
)

// Pack bundles a cover theme with its AI guidance text and the
// hand-authored fallback templates keyed to it.
type Pack struct {
	Cover domain.CoverTheme `yaml:"cover"`

	// Guidance is injected into every generation prompt for documents
	// using this theme.
	Guidance string `yaml:"guidance"`

	// Fallback templates. Placeholders: {userName}, {themeName},
	// {goalList}, {financialTarget}.
	FallbackForeword    string   `yaml:"fallbackForeword"`
	FallbackCoachLetter string   `yaml:"fallbackCoachLetter"`
	FallbackReflections []string `yaml:"fallbackReflections"`
}

// Registry is the process-wide, read-only set of theme packs.
type Registry struct {
	packs map[string]Pack
}

// NewRegistry builds a registry from the given packs. Duplicate IDs are an
// error.
func NewRegistry(packs []Pack) (*Registry, error) {
	r := &Registry{packs: make(map[string]Pack, len(packs))}
	for _, p := range packs {
		if p.Cover.ID == "" {
			return nil, fmt.Errorf("theme pack with empty id")
		}
		if _, dup := r.packs[p.Cover.ID]; dup {
			return nil, fmt.Errorf("duplicate theme pack %q", p.Cover.ID)
		}
		r.packs[p.Cover.ID] = p
	}
	return r, nil
}

// DefaultRegistry returns the built-in theme packs.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultPacks)
	if err != nil {
		// defaultPacks is a compile-time table; an error here is a bug.
		panic(err)
	}
	return r
}

// LoadRegistry reads additional packs from a YAML file and merges them over
// the defaults. A file pack with a default pack's ID replaces it.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var filePacks []Pack
	if err := yaml.Unmarshal(data, &filePacks); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	merged := map[string]Pack{}
	for _, p := range defaultPacks {
		merged[p.Cover.ID] = p
	}
	for _, p := range filePacks {
		if p.Cover.ID == "" {
			return nil, fmt.Errorf("theme file contains a pack with empty id")
		}
		merged[p.Cover.ID] = p
	}

	all := make([]Pack, 0, len(merged))
	for _, p := range merged {
		all = append(all, p)
	}
	return NewRegistry(all)
}

// Get looks up a pack by cover theme ID.
func (r *Registry) Get(id string) (Pack, error) {
	p, ok := r.packs[id]
	if !ok {
		return Pack{}, fmt.Errorf("unknown theme pack %q", id)
	}
	return p, nil
}

// List returns all packs sorted by ID.
func (r *Registry) List() []Pack {
	out := make([]Pack, 0, len(r.packs))
	for _, p := range r.packs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cover.ID < out[j].Cover.ID })
	return out
}
