package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is the ordered list of raw lines of an option reference.
type Document []string

// SplitLines breaks text into lines. Line terminators (LF or CRLF) are not
// part of the returned lines and a trailing terminator does not produce an
// extra empty line.
func SplitLines(text string) Document {
	if text == "" {
		return Document{}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return Document(lines)
}

// ReadDocument reads the whole file at path into memory.
func ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return SplitLines(string(data)), nil
}
