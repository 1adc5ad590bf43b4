package extractor

import (
	"regexp"
	"strings"
)

const (
	sectionMarker = "## "
	optionMarker  = "### "
	optionPrefix  = "###"
)

// optionPattern recognises option headings such as
// `### maxiter (default 100)` or `### alpha, beta`. The alias class does not
// admit '-', so a heading like `### bar-flag` only matches up to "bar".
var optionPattern = regexp.MustCompile(`^###\s+([a-zA-Z0-9_(), ]+)(?: \(default ([^)]*)\))?`)

// defaultPattern finds the default annotation anywhere in a heading. The alias
// class also admits parentheses and spaces, so optionPattern's own default
// group is normally absorbed into the alias list.
var defaultPattern = regexp.MustCompile(`\(default ([^)]*)\)`)

// OptionHeading is a parsed option-defining line.
type OptionHeading struct {
	Heading string   // trimmed line without the "### " marker
	Aliases []string // identifiers, left to right
	Default string   // text inside "(default ...)", if present
}

// IsSectionHeading reports whether line opens a section.
func IsSectionHeading(line string) bool {
	return strings.HasPrefix(line, sectionMarker)
}

// SectionName returns the section name carried by a section heading line.
func SectionName(line string) string {
	return strings.ReplaceAll(strings.TrimSpace(line), sectionMarker, "")
}

// ParseOptionHeading classifies line as an option heading.
func ParseOptionHeading(line string) (OptionHeading, bool) {
	m := optionPattern.FindStringSubmatch(line)
	if m == nil {
		return OptionHeading{}, false
	}
	h := OptionHeading{
		Heading: strings.ReplaceAll(strings.TrimSpace(line), optionMarker, ""),
		Aliases: splitAliases(m[1]),
		Default: m[2],
	}
	if h.Default == "" {
		if d := defaultPattern.FindStringSubmatch(h.Heading); d != nil {
			h.Default = d[1]
		}
	}
	return h, true
}

// splitAliases splits a comma-separated alias list and keeps the first word of
// each entry; "count n" becomes "count".
func splitAliases(list string) []string {
	var names []string
	for _, raw := range strings.Split(list, ",") {
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		names = append(names, fields[0])
	}
	return names
}
