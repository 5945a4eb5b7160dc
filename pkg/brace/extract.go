// Package brace checks MusicBrainz brace placeholders such as {var},
// {var:text}, {instrument:%|instruments} and {var|title} in translated
// strings.
//
// Scanning relies on RE2 and therefore runs in time linear in the input
// length, whatever the input.
package brace

import (
	"regexp"
	"strings"
)

// CheckID identifies the brace format check in a host check registry.
const CheckID = "musicbrainz_brace"

var bracePattern = regexp.MustCompile(
	`\{` +
		`([_A-Za-z][_0-9A-Za-z]*)` + // identifier
		`(?::([^{}:%|]*%[^{}:%|]*|[^{}:%|]+))?` + // replacement text, at most one '%'
		`(?:\|([^{}:%|]*%[^{}:%|]*|[^{}:%|]*))?` + // alternative, may be empty
		`\}`,
)

// Occurrence is one placeholder found in a string.
type Occurrence struct {
	Identifier     string
	HasConsequent  bool
	HasPercent     bool
	HasAlternative bool
}

// Shape returns the structural classification of o.
func (o Occurrence) Shape() Shape {
	return classify(o.HasConsequent, o.HasPercent && o.HasConsequent, o.HasAlternative)
}

// Extract returns the placeholders of text from left to right. Text that is
// not a well-formed placeholder is ignored.
func Extract(text string) []Occurrence {
	matches := bracePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Occurrence, 0, len(matches))
	for _, m := range matches {
		o := Occurrence{Identifier: text[m[2]:m[3]]}
		if m[4] >= 0 {
			o.HasConsequent = true
			o.HasPercent = strings.Contains(text[m[4]:m[5]], "%")
		}
		// An empty alternative counts as no alternative.
		o.HasAlternative = m[6] >= 0 && m[7] > m[6]
		out = append(out, o)
	}
	return out
}
