// Package cli prints check results for the bracecheck command.
package cli

import (
	"fmt"
	"io"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/adapters/message"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain/entities"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/output"
)

// Exit codes of the bracecheck command.
const (
	ExitOK       = 0
	ExitMismatch = 1
	ExitUsage    = 2
)

// Printer writes localized results to w.
type Printer struct {
	w       io.Writer
	t       output.T
	locale  string
	verbose bool
}

func NewPrinter(w io.Writer, t output.T, locale string, verbose bool) *Printer {
	return &Printer{w: w, t: t, locale: locale, verbose: verbose}
}

// Pair prints the outcome of a single check and returns the exit code.
func (p *Printer) Pair(f entities.Finding) int {
	fmt.Fprintln(p.w, message.Verdict(p.t, p.locale, f))
	for _, r := range message.Reasons(p.t, p.locale, f.Mismatch) {
		fmt.Fprintf(p.w, "  - %s\n", r)
	}
	if f.Passed() {
		return ExitOK
	}
	return ExitMismatch
}

// Reports prints every report and returns the exit code.
func (p *Printer) Reports(reports []*entities.Report) int {
	code := ExitOK
	for _, r := range reports {
		fmt.Fprintln(p.w, message.Summary(p.t, p.locale, r))
		for _, f := range r.Findings {
			fmt.Fprintf(p.w, "  %s\n", message.Header(p.t, p.locale, f))
			if p.verbose {
				fmt.Fprintf(p.w, "    < %s\n    > %s\n", f.Source, f.Target)
			}
			for _, reason := range message.Reasons(p.t, p.locale, f.Mismatch) {
				fmt.Fprintf(p.w, "    - %s\n", reason)
			}
		}
		if r.Failed() {
			code = ExitMismatch
		}
	}
	return code
}

// Error prints err and returns the usage exit code.
func (p *Printer) Error(err error) int {
	fmt.Fprintf(p.w, "%s (%v)\n", message.Error(p.t, p.locale, err), err)
	return ExitUsage
}
