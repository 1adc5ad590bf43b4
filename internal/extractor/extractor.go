// Package extractor turns a Markdown option reference into an ordered catalog
// of sections and options.
//
// The recognised idiom is narrow: "## " opens a section, a
// "### " heading whose text fits the alias character class defines one or
// more options, and the first non-blank, non-heading line within
// DescriptionWindow lines below it is the option's description. Everything
// else is ignored.
package extractor

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// DescriptionWindow is how many lines after an option heading are searched
// for its description.
const DescriptionWindow = 5

// Extractor runs the single pass over a document.
type Extractor struct {
	log *logrus.Logger
}

// New creates an extractor. A nil logger is replaced by a default one.
func New(log *logrus.Logger) *Extractor {
	if log == nil {
		log = logrus.New()
	}
	return &Extractor{log: log}
}

// Extract is shorthand for New(nil).Extract(doc).
func Extract(doc Document) *Catalog {
	return New(nil).Extract(doc)
}

// Extract builds a fresh catalog from doc.
func (e *Extractor) Extract(doc Document) *Catalog {
	cat := NewCatalog()
	var current *Section

	for i, line := range doc {
		if IsSectionHeading(line) {
			current = cat.Enter(SectionName(line))
			e.log.Debugf("section %q at line %d", current.Name, i+1)
			continue
		}
		if current == nil {
			continue
		}

		h, ok := ParseOptionHeading(line)
		if !ok {
			continue
		}
		desc := findDescription(doc, i)
		for _, name := range h.Aliases {
			if _, seen := current.Lookup(name); seen {
				e.log.Debugf("option %q in section %q redefined at line %d", name, current.Name, i+1)
			}
			current.Put(Option{Name: name, Heading: h.Heading, Description: desc, Default: h.Default})
		}
	}

	e.log.Debugf("extracted %d sections, %d options", cat.Len(), cat.OptionCount())
	return cat
}

// findDescription returns the description for the option heading at index i.
func findDescription(doc Document, i int) string {
	end := i + 1 + DescriptionWindow
	if end > len(doc) {
		end = len(doc)
	}
	desc := ""
	for j := i + 1; j < end; j++ {
		line := strings.TrimSpace(doc[j])
		if line != "" && !strings.HasPrefix(line, optionPrefix) {
			desc = line
			break
		}
	}
	desc = strings.ReplaceAll(desc, "\n", " ")
	return strings.ReplaceAll(desc, "  ", " ")
}
