package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/example/optgen/internal/extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func catalogFrom(text string) *extractor.Catalog {
	return extractor.Extract(extractor.SplitLines(text))
}

func generate(t *testing.T, format, text string, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(nil).Generate(&buf, format, catalogFrom(text), opts))
	return buf.String()
}

const solverDoc = "## Solver Options\n### maxiter (default 100)\nMaximum number of iterations. See docs.\n"

func TestGenerateJava_EndToEnd(t *testing.T) {
	got := generate(t, "java", solverDoc, Options{})

	want := "    String[][] solver_options = {\n" +
		"        {\"maxiter\", \"maxiter (default 100)\", \"Maximum number of iterations\"},\n" +
		"    };\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestGenerateJava_MultipleSections(t *testing.T) {
	doc := "intro\n" +
		"## Empty Section\nnothing here\n" +
		"## Input/Output\n### alpha, beta\nShared.\n" +
		"## Misc\n### gamma\n"
	got := generate(t, "java", doc, Options{})

	want := "    String[][] input_output = {\n" +
		"        {\"alpha\", \"alpha, beta\", \"Shared\"},\n" +
		"        {\"beta\", \"alpha, beta\", \"Shared\"},\n" +
		"    };\n" +
		"\n" +
		"    String[][] misc = {\n" +
		"        {\"gamma\", \"gamma\", \"\"},\n" +
		"    };\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestGenerate_NoSectionsIsEmpty(t *testing.T) {
	assert.Empty(t, generate(t, "java", "# Title\n### alpha\nText.\n", Options{}))
}

func TestGenerateJava_DuplicateTableNamesNotMerged(t *testing.T) {
	got := generate(t, "java", "## A B\n### x\nX.\n## a b\n### y\nY.\n", Options{})
	assert.Equal(t, 2, strings.Count(got, "String[][] a_b = {"))
}

func TestGenerateJava_EscapingRoundTrip(t *testing.T) {
	desc := `Use "quotes" and C:\path\to. Rest`
	got := generate(t, "java", "## S\n### alpha\n"+desc+"\n", Options{})

	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	row := strings.TrimSpace(lines[1])
	row = strings.TrimSuffix(strings.TrimPrefix(row, "{"), "},")
	fields := splitRow(t, row)
	require.Len(t, fields, 3)
	assert.Equal(t, "alpha", fields[0])
	assert.Equal(t, "alpha", fields[1])
	assert.Equal(t, `Use "quotes" and C:\path\to`, fields[2])
}

// splitRow unquotes the three comma-separated literals of a row.
func splitRow(t *testing.T, row string) []string {
	t.Helper()
	var out []string
	for row != "" {
		row = strings.TrimLeft(row, ", ")
		lit, err := strconv.QuotedPrefix(row)
		require.NoError(t, err)
		s, err := strconv.Unquote(lit)
		require.NoError(t, err)
		out = append(out, s)
		row = row[len(lit):]
	}
	return out
}

func TestGenerate_Idempotent(t *testing.T) {
	doc := "## A\n### one, two\nOne. Two.\n## B\n### three\n\n\nThree \"quoted\".\n"
	for _, format := range []string{"java", "go", "json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			assert.Equal(t, generate(t, format, doc, Options{}), generate(t, format, doc, Options{}))
		})
	}
}

func TestGenerateJava_LastWriteWins(t *testing.T) {
	doc := "## S\n### alpha\nFirst.\n### beta\nBeta.\n### alpha (default 2)\nSecond.\n"
	got := generate(t, "java", doc, Options{})

	want := "    String[][] s = {\n" +
		"        {\"alpha\", \"alpha (default 2)\", \"Second\"},\n" +
		"        {\"beta\", \"beta\", \"Beta\"},\n" +
		"    };\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestGenerateGo(t *testing.T) {
	got := generate(t, "go", solverDoc+"### tol\nPath C:\\tmp \"x\".\n", Options{Package: "ampl"})

	assert.True(t, strings.HasPrefix(got, "// Code generated by optgen. DO NOT EDIT.\n\npackage ampl\n"))
	assert.Contains(t, got, "var solver_options = [][3]string{\n")
	assert.Contains(t, got, "\t{\"maxiter\", \"maxiter (default 100)\", \"Maximum number of iterations\"},\n")
	assert.Contains(t, got, "\t{\"tol\", \"tol\", \"Path C:\\\\tmp \\\"x\\\"\"},\n")
}

func TestGenerateGo_DefaultPackage(t *testing.T) {
	got := generate(t, "go", solverDoc, Options{})
	assert.Contains(t, got, "package "+DefaultPackage+"\n")
}

func TestGenerateGo_InvalidIdentifier(t *testing.T) {
	var buf bytes.Buffer
	err := New(nil).Generate(&buf, "go", catalogFrom("## C++ Options\n### x\nX.\n"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to format generated code")
	assert.Zero(t, buf.Len())
}

func TestGenerateJSON(t *testing.T) {
	got := generate(t, "json", solverDoc+"## Empty\n", Options{})

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Solver Options", docs[0]["section"])
	assert.Equal(t, "solver_options", docs[0]["table"])

	rows := docs[0]["rows"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "maxiter", row["name"])
	assert.Equal(t, "maxiter (default 100)", row["heading"])
	assert.Equal(t, "Maximum number of iterations", row["description"])
	assert.Equal(t, "100", row["default"])
}

func TestGenerateJSON_EmptyCatalog(t *testing.T) {
	assert.Equal(t, "[]\n", generate(t, "json", "", Options{}))
}

func TestGenerateYAML(t *testing.T) {
	got := generate(t, "yaml", "## S\n### alpha, beta\nShared <text>.\n", Options{})

	var docs []tableDoc
	require.NoError(t, yaml.Unmarshal([]byte(got), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "s", docs[0].Table)
	assert.Equal(t, []rowDoc{
		{Name: "alpha", Heading: "alpha, beta", Description: "Shared <text>"},
		{Name: "beta", Heading: "alpha, beta", Description: "Shared <text>"},
	}, docs[0].Rows)
}

func TestGenerate_UnknownFormat(t *testing.T) {
	err := New(nil).Generate(io.Discard, "cobol", catalogFrom(solverDoc), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormatNotFound))
}

func TestGenerate_EmitterErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	require.NoError(t, r.Register(&FormatSpec{
		ID:   "fail",
		Emit: func(io.Writer, []Table, Options) error { return boom },
	}))

	err := New(r).Generate(io.Discard, "fail", catalogFrom(solverDoc), Options{})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "emit fail")
}
