package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"
)

// DefaultPackage is the package clause used by the go format when none is set.
const DefaultPackage = "options"

const goTemplate = `// Code generated by optgen. DO NOT EDIT.

package {{.Package}}
{{range .Tables}}
// {{.Name}} lists the options documented under {{printf "%q" .Section}}.
// Each row is {name, heading, short description}.
var {{.Name}} = [][3]string{
{{- range .Rows}}
	{"{{escape .Name}}", "{{escape .Heading}}", "{{escape .Description}}"},
{{- end}}
}
{{end}}`

var goTmpl = template.Must(template.New("tables").
	Funcs(template.FuncMap{"escape": EscapeLiteral}).
	Parse(goTemplate))

// EmitGo writes a gofmt-formatted Go file declaring one [][3]string variable
// per table. Table names that are not valid Go identifiers make formatting
// fail.
func EmitGo(w io.Writer, tables []Table, opts Options) error {
	pkg := opts.Package
	if pkg == "" {
		pkg = DefaultPackage
	}

	data := struct {
		Package string
		Tables  []Table
	}{
		Package: pkg,
		Tables:  tables,
	}

	var buf bytes.Buffer
	if err := goTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format generated code: %w", err)
	}

	_, err = w.Write(formatted)
	return err
}
