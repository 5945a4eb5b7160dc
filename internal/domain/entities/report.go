package entities

import "github.com/metabrainz/musicbrainz-weblate-checks/pkg/brace"

// Finding is a unit whose target failed the brace check.
type Finding struct {
	Unit
	Mismatch brace.Mismatch
}

// Report gathers the findings of one locale.
type Report struct {
	Locale   string
	Checked  int
	Findings []Finding
}

// Failed reports whether at least one unit was rejected.
func (r *Report) Failed() bool {
	return len(r.Findings) > 0
}

// Passed reports whether the unit was accepted.
func (f Finding) Passed() bool {
	return f.Mismatch.Empty()
}
