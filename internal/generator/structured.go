package generator

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type tableDoc struct {
	Section string   `json:"section" yaml:"section"`
	Table   string   `json:"table" yaml:"table"`
	Rows    []rowDoc `json:"rows" yaml:"rows"`
}

type rowDoc struct {
	Name        string `json:"name" yaml:"name"`
	Heading     string `json:"heading" yaml:"heading"`
	Description string `json:"description" yaml:"description"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
}

func toDocs(tables []Table) []tableDoc {
	docs := make([]tableDoc, 0, len(tables))
	for _, t := range tables {
		d := tableDoc{Section: t.Section, Table: t.Name, Rows: make([]rowDoc, 0, len(t.Rows))}
		for _, r := range t.Rows {
			d.Rows = append(d.Rows, rowDoc(r))
		}
		docs = append(docs, d)
	}
	return docs
}

// EmitJSON writes the tables as an indented JSON array.
func EmitJSON(w io.Writer, tables []Table, _ Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toDocs(tables)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// EmitYAML writes the tables as a YAML sequence.
func EmitYAML(w io.Writer, tables []Table, _ Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocs(tables)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
