// Package generator serializes an extracted option catalog into literal
// tables. The java format reproduces the reference String[][] output; go,
// json and yaml render the same rows for other consumers.
package generator

import (
	"fmt"
	"io"

	"github.com/example/optgen/internal/extractor"
)

// Generator emits catalogs through a format registry.
type Generator struct {
	formats *Registry
}

// New creates a generator. A nil registry means DefaultRegistry().
func New(formats *Registry) *Generator {
	if formats == nil {
		formats = DefaultRegistry()
	}
	return &Generator{formats: formats}
}

// Formats returns the registry in use.
func (g *Generator) Formats() *Registry {
	return g.formats
}

// Generate writes cat to w in the format identified by formatID.
func (g *Generator) Generate(w io.Writer, formatID string, cat *extractor.Catalog, opts Options) error {
	spec, err := g.formats.Get(formatID)
	if err != nil {
		return fmt.Errorf("format %q: %w", formatID, err)
	}
	if err := spec.Emit(w, BuildTables(cat), opts); err != nil {
		return fmt.Errorf("emit %s: %w", spec.ID, err)
	}
	return nil
}
