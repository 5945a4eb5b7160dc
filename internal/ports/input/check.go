package input

import (
	"context"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain/entities"
)

type CheckUseCase interface {
	CheckPair(source, target string) entities.Finding
	CheckLocale(ctx context.Context, locale string) (*entities.Report, error)
	CheckCatalog(ctx context.Context) ([]*entities.Report, error)
	Describe(locale string) (name, description string)
}
