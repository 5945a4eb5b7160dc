package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/adapters/cli"
)

const testCatalog = "../../internal/infrastructure/catalog/testdata"

func runCLI(t *testing.T, args ...string) (int, string) {
	t.Helper()
	t.Setenv("UI_LOCALE", "en")
	t.Setenv("SOURCE_LOCALE", "en")
	var out, errOut bytes.Buffer
	code := run(context.Background(), append([]string{"bracecheck"}, args...), &out, &errOut)
	return code, out.String()
}

func TestRun_Pair(t *testing.T) {
	code, out := runCLI(t, "--source", "{var} string", "--target", "retez")
	assert.Equal(t, cli.ExitMismatch, code)
	assert.Contains(t, out, "Variables missing from the translation: {var}")

	code, out = runCLI(t, "--source", "{var} string", "--target", "{var:nahradnik|alternativa} retez")
	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out, "Brace format matches the source.")
}

func TestRun_EmptyPair(t *testing.T) {
	code, out := runCLI(t, "--catalog-dir", "does-not-exist", "--source", "", "--target", "")
	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out, "Brace format matches the source.")

	code, out = runCLI(t, "--catalog-dir", "does-not-exist", "--target", "{var}")
	assert.Equal(t, cli.ExitMismatch, code)
	assert.Contains(t, out, "Unknown variables in the translation: {var}")
}

func TestRun_Help(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		code, out := runCLI(t, flag)
		assert.Equal(t, cli.ExitOK, code, flag)
		assert.Contains(t, out, "catalog-dir", flag)
		assert.NotContains(t, out, "problem", flag)
	}
}

func TestRun_Catalog(t *testing.T) {
	code, out := runCLI(t, "--catalog-dir", testCatalog)
	assert.Equal(t, cli.ExitMismatch, code)
	assert.Contains(t, out, "cs: 3 problems in 7 strings")
	assert.Contains(t, out, "fr: 6 strings checked, no problem found")

	code, out = runCLI(t, "--catalog-dir", testCatalog, "--locale", "fr")
	assert.Equal(t, cli.ExitOK, code)
	assert.NotContains(t, out, "cs:")
}

func TestRun_CatalogErrors(t *testing.T) {
	code, out := runCLI(t, "--catalog-dir", "does-not-exist")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, out, "The translation catalog could not be found.")

	code, out = runCLI(t, "--catalog-dir", testCatalog, "--locale", "de")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, out, "The catalog has no file for this language.")
}
