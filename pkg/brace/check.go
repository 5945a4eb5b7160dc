package brace

import "sort"

// Record maps each identifier of a string to the set of shapes it was used with.
type Record map[string]map[Shape]struct{}

// NewRecord reduces occurrences to a Record. Order and duplicates are irrelevant.
func NewRecord(occurrences []Occurrence) Record {
	r := make(Record, len(occurrences))
	for _, o := range occurrences {
		shapes, ok := r[o.Identifier]
		if !ok {
			shapes = make(map[Shape]struct{}, 1)
			r[o.Identifier] = shapes
		}
		shapes[o.Shape()] = struct{}{}
	}
	return r
}

// RecordOf extracts the placeholders of text and reduces them to a Record.
func RecordOf(text string) Record {
	return NewRecord(Extract(text))
}

// Identifiers returns the identifiers of r in lexical order.
func (r Record) Identifiers() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Has reports whether id was used with shape s.
func (r Record) Has(id string, s Shape) bool {
	_, ok := r[id][s]
	return ok
}

// Shapes returns the shapes recorded for id in ascending order.
func (r Record) Shapes(id string) []Shape {
	set := r[id]
	out := make([]Shape, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TargetPreserves is the structural rule: a source shape other than Value
// must appear for the same identifier in the target. A Value source leaves
// the translator free to use any shape.
func TargetPreserves(source, target Record, id string, s Shape) bool {
	if !source.Has(id, s) || !s.IsStructural() {
		return true
	}
	return target.Has(id, s)
}

// ShapeMismatch reports a structural source shape the target dropped.
type ShapeMismatch struct {
	Identifier string
	Want       Shape
	Got        []Shape
}

// Mismatch lists every reason a translation was rejected.
type Mismatch struct {
	// Missing holds identifiers of the source absent from the target.
	Missing []string
	// Unexpected holds identifiers of the target absent from the source.
	Unexpected []string
	Shapes     []ShapeMismatch
}

// Empty reports whether the translation is acceptable.
func (m Mismatch) Empty() bool {
	return len(m.Missing) == 0 && len(m.Unexpected) == 0 && len(m.Shapes) == 0
}

// Compare applies the presence rule then the structural rule to two records.
func Compare(source, target Record) Mismatch {
	var m Mismatch
	for _, id := range source.Identifiers() {
		if _, ok := target[id]; !ok {
			m.Missing = append(m.Missing, id)
		}
	}
	for _, id := range target.Identifiers() {
		if _, ok := source[id]; !ok {
			m.Unexpected = append(m.Unexpected, id)
		}
	}
	for _, id := range source.Identifiers() {
		if _, ok := target[id]; !ok {
			continue
		}
		for _, s := range source.Shapes(id) {
			if !TargetPreserves(source, target, id, s) {
				m.Shapes = append(m.Shapes, ShapeMismatch{
					Identifier: id,
					Want:       s,
					Got:        target.Shapes(id),
				})
			}
		}
	}
	return m
}

// Diagnose explains why target is not a valid translation of source. The
// result is empty when the translation is accepted.
func Diagnose(source, target string) Mismatch {
	return Compare(RecordOf(source), RecordOf(target))
}

// IsMismatched reports whether target must be rejected as a translation of
// source.
func IsMismatched(source, target string) bool {
	return !Diagnose(source, target).Empty()
}
