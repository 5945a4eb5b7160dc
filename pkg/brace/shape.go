package brace

// Shape classifies a placeholder occurrence by the clauses it carries.
type Shape int

const (
	// Value is a plain substitution; any replacement text is decorative.
	Value Shape = iota
	// TextAlternative carries replacement text and an alternative, no '%'.
	TextAlternative
	// Plural carries a '%' replacement and an alternative (plural) form.
	Plural
	// Hyperlink carries only an alternative, used as a link title.
	Hyperlink
)

var shapeNames = [...]string{
	Value:           "value",
	TextAlternative: "text_alternative",
	Plural:          "plural",
	Hyperlink:       "hyperlink",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "unknown"
	}
	return shapeNames[s]
}

// IsStructural reports whether a source occurrence of this shape must be
// reproduced by the translation.
func (s Shape) IsStructural() bool {
	return s != Value
}

func classify(hasConsequent, hasPercent, hasAlternative bool) Shape {
	switch {
	case !hasAlternative:
		return Value
	case !hasConsequent:
		return Hyperlink
	case hasPercent:
		return Plural
	default:
		return TextAlternative
	}
}
