package generator

import (
	"io"
	"sort"
	"sync"
)

// Options carries per-run settings that some emitters need.
type Options struct {
	// Package is the package clause for the go format.
	Package string
}

// Emitter writes tables in one output syntax.
type Emitter func(w io.Writer, tables []Table, opts Options) error

// FormatSpec describes an output format.
type FormatSpec struct {
	ID          string // "java", "go", "json", "yaml"
	Name        string
	Description string
	Extension   string // suggested file extension, with dot
	Emit        Emitter
}

// Validate checks if the format spec is usable
func (f *FormatSpec) Validate() error {
	if f.ID == "" {
		return ErrInvalidFormatID
	}
	if f.Emit == nil {
		return ErrInvalidEmitter
	}
	return nil
}

// Registry manages available output formats
type Registry struct {
	mu      sync.RWMutex
	formats map[string]*FormatSpec
}

// NewRegistry creates an empty format registry
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]*FormatSpec),
	}
}

// DefaultRegistry returns a registry holding the built-in formats.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, spec := range builtinFormats() {
		// built-ins are valid and unique
		_ = r.Register(spec)
	}
	return r
}

func builtinFormats() []*FormatSpec {
	return []*FormatSpec{
		{ID: "java", Name: "Java", Description: "String[][] array declarations", Extension: ".java", Emit: EmitJava},
		{ID: "go", Name: "Go", Description: "gofmt-formatted [][3]string variables", Extension: ".go", Emit: EmitGo},
		{ID: "json", Name: "JSON", Description: "tables as a JSON document", Extension: ".json", Emit: EmitJSON},
		{ID: "yaml", Name: "YAML", Description: "tables as a YAML document", Extension: ".yaml", Emit: EmitYAML},
	}
}

// Register adds a format to the registry
func (r *Registry) Register(spec *FormatSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formats[spec.ID]; exists {
		return ErrFormatAlreadyExists
	}

	r.formats[spec.ID] = spec
	return nil
}

// Get retrieves a format by ID
func (r *Registry) Get(id string) (*FormatSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, exists := r.formats[id]
	if !exists {
		return nil, ErrFormatNotFound
	}

	return spec, nil
}

// List returns all registered formats ordered by ID
func (r *Registry) List() []*FormatSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specs := make([]*FormatSpec, 0, len(r.formats))
	for _, spec := range r.formats {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].ID < specs[j].ID })

	return specs
}

// IDs returns the registered format IDs ordered alphabetically
func (r *Registry) IDs() []string {
	specs := r.List()
	ids := make([]string, len(specs))
	for i, s := range specs {
		ids[i] = s.ID
	}
	return ids
}

// Count returns the number of registered formats
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.formats)
}
