package brace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  Occurrence
		shape Shape
	}{
		{"bare", "{var}", Occurrence{Identifier: "var"}, Value},
		{"substitute", "{var:text}", Occurrence{Identifier: "var", HasConsequent: true}, Value},
		{"percent only", "{vocal:%}", Occurrence{Identifier: "vocal", HasConsequent: true, HasPercent: true}, Value},
		{"text alternative", "{var:text|alt}", Occurrence{Identifier: "var", HasConsequent: true, HasAlternative: true}, TextAlternative},
		{"plural", "{instrument:%|instruments}", Occurrence{Identifier: "instrument", HasConsequent: true, HasPercent: true, HasAlternative: true}, Plural},
		{"percent inside text", "{n:% items|items}", Occurrence{Identifier: "n", HasConsequent: true, HasPercent: true, HasAlternative: true}, Plural},
		{"hyperlink", "{var|title}", Occurrence{Identifier: "var", HasAlternative: true}, Hyperlink},
		{"empty hyperlink title", "{var|}", Occurrence{Identifier: "var"}, Value},
		{"empty plural form", "{instrument:%|}", Occurrence{Identifier: "instrument", HasConsequent: true, HasPercent: true}, Value},
		{"underscore identifier", "{_x9}", Occurrence{Identifier: "_x9"}, Value},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
			assert.Equal(t, tt.shape, got[0].Shape())
		})
	}
}

func TestExtract_Malformed(t *testing.T) {
	for _, text := range []string{
		"",
		"plain text",
		"{var",
		"var}",
		"{}",
		"{9var}",
		"{var name}",
		"{var:}",
		"{var:%%}",
		"{var:a:b}",
		"{var:a|b|c}",
		"{var-x}",
		"{é}",
	} {
		assert.Empty(t, Extract(text), "text %q", text)
	}
}

func TestExtract_LeftToRight(t *testing.T) {
	got := Extract("{b} and {a:%|as}, {{c}} then {broken and {d|link}")
	require.Len(t, got, 4)
	assert.Equal(t, "b", got[0].Identifier)
	assert.Equal(t, "a", got[1].Identifier)
	assert.Equal(t, Plural, got[1].Shape())
	assert.Equal(t, "c", got[2].Identifier)
	assert.Equal(t, "d", got[3].Identifier)
	assert.Equal(t, Hyperlink, got[3].Shape())
}

func TestExtract_DoesNotSpanPlaceholders(t *testing.T) {
	got := Extract("{a:x} {b}")
	require.Len(t, got, 2)
	assert.Equal(t, Value, got[0].Shape())
	assert.Equal(t, "b", got[1].Identifier)

	// The replacement text cannot swallow the brace of the next placeholder.
	got = Extract("{a:x {b|title}")
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Identifier)
	assert.Equal(t, Hyperlink, got[0].Shape())
}

func TestExtract_PercentInAlternativeIsNotFlagged(t *testing.T) {
	got := Extract("{var:text|% more}")
	require.Len(t, got, 1)
	assert.False(t, got[0].HasPercent)
	assert.Equal(t, TextAlternative, got[0].Shape())
}

func TestExtract_LargeAdversarialInput(t *testing.T) {
	text := strings.Repeat("{a:", 50000) + strings.Repeat("%|", 50000)
	assert.Empty(t, Extract(text))

	text = strings.Repeat("{v}", 20000)
	assert.Len(t, Extract(text), 20000)
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "value", Value.String())
	assert.Equal(t, "text_alternative", TextAlternative.String())
	assert.Equal(t, "plural", Plural.String())
	assert.Equal(t, "hyperlink", Hyperlink.String())
	assert.Equal(t, "unknown", Shape(42).String())
	assert.False(t, Value.IsStructural())
	assert.True(t, Plural.IsStructural())
}
