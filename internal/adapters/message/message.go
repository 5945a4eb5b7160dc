// Package message turns check results into localized text shared by the CLI
// and the Discord bot.
package message

import (
	"strings"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain/entities"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/output"
	"github.com/metabrainz/musicbrainz-weblate-checks/pkg/brace"
)

// Verdict is the one-line outcome of a single check.
func Verdict(t output.T, locale string, f entities.Finding) string {
	if f.Passed() {
		return t.T(locale, "verdict.pass", nil)
	}
	return t.T(locale, "verdict.fail", nil)
}

// Reasons explains a mismatch, one line per problem.
func Reasons(t output.T, locale string, m brace.Mismatch) []string {
	var out []string
	if len(m.Missing) > 0 {
		out = append(out, t.T(locale, "reason.missing", map[string]any{"Identifiers": placeholders(m.Missing)}))
	}
	if len(m.Unexpected) > 0 {
		out = append(out, t.T(locale, "reason.unexpected", map[string]any{"Identifiers": placeholders(m.Unexpected)}))
	}
	for _, s := range m.Shapes {
		got := make([]string, len(s.Got))
		for i, g := range s.Got {
			got[i] = Shape(t, locale, g)
		}
		out = append(out, t.T(locale, "reason.shape", map[string]any{
			"Identifier": "{" + s.Identifier + "}",
			"Want":       Shape(t, locale, s.Want),
			"Got":        strings.Join(got, ", "),
		}))
	}
	return out
}

// Shape names a placeholder shape for translators.
func Shape(t output.T, locale string, s brace.Shape) string {
	return t.T(locale, "shape."+s.String(), nil)
}

// Header names the catalog entry behind a finding.
func Header(t output.T, locale string, f entities.Finding) string {
	return t.T(locale, "finding.header", map[string]any{"Key": f.Key, "Form": f.Form})
}

// Summary is the one-line outcome of a locale report.
func Summary(t output.T, locale string, r *entities.Report) string {
	data := map[string]any{"Locale": r.Locale, "Checked": r.Checked}
	if !r.Failed() {
		return t.T(locale, "report.clean", data)
	}
	return t.TN(locale, "report.summary", len(r.Findings), data)
}

// Error maps err to a user-facing message.
func Error(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return t.T(locale, "error."+code, nil)
	}
	return t.T(locale, "error.generic", nil)
}

func placeholders(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = "{" + id + "}"
	}
	return strings.Join(quoted, ", ")
}
