package generator

import (
	"strings"

	"github.com/example/optgen/internal/extractor"
)

// Table is one emitted declaration: a section's options as rows.
type Table struct {
	Section string // section display name
	Name    string // identifier derived from Section
	Rows    []Row
}

// Row is {name, heading, short description}. Default is carried for the
// structured formats only.
type Row struct {
	Name        string
	Heading     string
	Description string
	Default     string
}

// BuildTables converts a catalog into tables, skipping sections without
// options. Table names are not deduplicated.
func BuildTables(cat *extractor.Catalog) []Table {
	var tables []Table
	for _, sec := range cat.Sections() {
		if sec.Len() == 0 {
			continue
		}
		t := Table{Section: sec.Name, Name: TableName(sec.Name)}
		for _, opt := range sec.Options() {
			t.Rows = append(t.Rows, Row{
				Name:        opt.Name,
				Heading:     opt.Heading,
				Description: ShortDescription(opt.Description),
				Default:     opt.Default,
			})
		}
		tables = append(tables, t)
	}
	return tables
}

// TableName lowercases a section name and replaces spaces and slashes with
// underscores: "Input/Output Options" becomes "input_output_options".
func TableName(section string) string {
	name := strings.ToLower(section)
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "/", "_")
}

// ShortDescription returns desc up to, not including, its first period.
func ShortDescription(desc string) string {
	if i := strings.IndexByte(desc, '.'); i >= 0 {
		return desc[:i]
	}
	return desc
}

// EscapeLiteral escapes s for a double-quoted string literal. Only backslash
// and double quote are escaped.
func EscapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
