package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain/entities"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/input"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/output"
	"github.com/metabrainz/musicbrainz-weblate-checks/pkg/brace"
	"github.com/metabrainz/musicbrainz-weblate-checks/pkg/logger"
)

// maxParallelLocales bounds the locales checked at once by CheckCatalog.
const maxParallelLocales = 4

var _ input.CheckUseCase = (*CheckService)(nil)

type CheckService struct {
	catalog    output.CatalogRepository
	translator output.T
}

// NewCheckService wires the brace check to its ports. catalog may be nil when
// only single pairs are checked.
func NewCheckService(catalog output.CatalogRepository, translator output.T) *CheckService {
	return &CheckService{
		catalog:    catalog,
		translator: translator,
	}
}

func (s *CheckService) CheckPair(source, target string) entities.Finding {
	return entities.Finding{
		Unit:     entities.Unit{Source: source, Target: target},
		Mismatch: brace.Diagnose(source, target),
	}
}

func (s *CheckService) CheckLocale(ctx context.Context, locale string) (*entities.Report, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogNotConfigured
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidLocale, locale)
	}
	return s.checkLocale(ctx, tag)
}

func (s *CheckService) checkLocale(ctx context.Context, tag language.Tag) (*entities.Report, error) {
	units, err := s.catalog.Units(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", tag, err)
	}

	report := &entities.Report{Locale: tag.String(), Checked: len(units)}
	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m := brace.Diagnose(u.Source, u.Target)
		if !m.Empty() {
			report.Findings = append(report.Findings, entities.Finding{Unit: u, Mismatch: m})
		}
	}

	logger.Info("check: langue vérifiée",
		zap.String("locale", report.Locale),
		zap.Int("checked", report.Checked),
		zap.Int("findings", len(report.Findings)),
	)
	return report, nil
}

// CheckCatalog checks every translated locale. Reports follow the locale
// order of the repository.
func (s *CheckService) CheckCatalog(ctx context.Context) ([]*entities.Report, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogNotConfigured
	}
	locales, err := s.catalog.Locales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}

	reports := make([]*entities.Report, len(locales))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLocales)
	for i, tag := range locales {
		g.Go(func() error {
			r, err := s.checkLocale(gctx, tag)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Describe returns the localized name and description of the check.
func (s *CheckService) Describe(locale string) (name, description string) {
	return s.translator.T(locale, "check.name", nil), s.translator.T(locale, "check.description", nil)
}
