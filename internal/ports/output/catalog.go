package output

import (
	"context"

	"golang.org/x/text/language"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain/entities"
)

// CatalogRepository gives access to a source catalog and its translations.
type CatalogRepository interface {
	SourceLocale() language.Tag
	// Locales lists the translated locales, source excluded.
	Locales(ctx context.Context) ([]language.Tag, error)
	// Units returns every translated string of locale paired with its source.
	Units(ctx context.Context, locale language.Tag) ([]entities.Unit, error)
}
