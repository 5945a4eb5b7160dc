package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain/entities"
)

// MockCatalog is an in-package mock for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) SourceLocale() language.Tag {
	return language.English
}

func (m *MockCatalog) Locales(ctx context.Context) ([]language.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]language.Tag), args.Error(1)
}

func (m *MockCatalog) Units(ctx context.Context, locale language.Tag) ([]entities.Unit, error) {
	args := m.Called(ctx, locale.String())
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Unit), args.Error(1)
}

type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) T(locale, key string, data map[string]any) string {
	return m.Called(locale, key, data).String(0)
}

func (m *MockTranslator) TN(locale, key string, count int, data map[string]any) string {
	return m.Called(locale, key, count, data).String(0)
}

func TestCheckService_CheckPair(t *testing.T) {
	svc := NewCheckService(nil, nil)

	ok := svc.CheckPair("{var} string", "{var} retez {var}")
	assert.True(t, ok.Passed())
	assert.Equal(t, "{var} string", ok.Source)

	bad := svc.CheckPair("{instrument:%|instruments} string", "{instrument:nastroj|nastroje} retez")
	assert.False(t, bad.Passed())
	require.Len(t, bad.Mismatch.Shapes, 1)
	assert.Equal(t, "instrument", bad.Mismatch.Shapes[0].Identifier)
}

func TestCheckService_CheckLocale(t *testing.T) {
	repo := new(MockCatalog)
	units := []entities.Unit{
		{Key: "a", Locale: "cs", Form: "other", Source: "{var} string", Target: "retez"},
		{Key: "b", Locale: "cs", Form: "other", Source: "{var|title}", Target: "{var|titul}"},
		{Key: "c", Locale: "cs", Form: "few", Source: "{n:%|ns}", Target: "{n:%|}"},
	}
	repo.On("Units", mock.Anything, "cs").Return(units, nil)

	svc := NewCheckService(repo, nil)
	report, err := svc.CheckLocale(context.Background(), "cs")
	require.NoError(t, err)

	assert.Equal(t, "cs", report.Locale)
	assert.Equal(t, 3, report.Checked)
	assert.True(t, report.Failed())
	require.Len(t, report.Findings, 2)
	assert.Equal(t, "a", report.Findings[0].Key)
	assert.Equal(t, []string{"var"}, report.Findings[0].Mismatch.Missing)
	assert.Equal(t, "c", report.Findings[1].Key)
	repo.AssertExpectations(t)
}

func TestCheckService_CheckLocale_Errors(t *testing.T) {
	_, err := NewCheckService(nil, nil).CheckLocale(context.Background(), "fr")
	assert.ErrorIs(t, err, domain.ErrCatalogNotConfigured)

	repo := new(MockCatalog)
	svc := NewCheckService(repo, nil)

	_, err = svc.CheckLocale(context.Background(), "not a locale!")
	assert.ErrorIs(t, err, domain.ErrInvalidLocale)

	repo.On("Units", mock.Anything, "de").Return(nil, domain.ErrLocaleNotFound)
	_, err = svc.CheckLocale(context.Background(), "de")
	assert.ErrorIs(t, err, domain.ErrLocaleNotFound)
	assert.Equal(t, "locale_not_found", domain.Code(err))
}

func TestCheckService_CheckCatalog(t *testing.T) {
	repo := new(MockCatalog)
	locales := []language.Tag{language.Czech, language.French, language.German, language.Italian, language.Spanish}
	repo.On("Locales", mock.Anything).Return(locales, nil)
	for _, tag := range locales {
		repo.On("Units", mock.Anything, tag.String()).Return([]entities.Unit{
			{Key: "k", Locale: tag.String(), Form: "other", Source: "{var}", Target: "{var}"},
		}, nil)
	}

	reports, err := NewCheckService(repo, nil).CheckCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, len(locales))
	for i, tag := range locales {
		assert.Equal(t, tag.String(), reports[i].Locale)
		assert.False(t, reports[i].Failed())
	}
}

func TestCheckService_CheckCatalog_Errors(t *testing.T) {
	repo := new(MockCatalog)
	repo.On("Locales", mock.Anything).Return(nil, domain.ErrSourceLocaleMissing)
	_, err := NewCheckService(repo, nil).CheckCatalog(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceLocaleMissing)

	boom := errors.New("boom")
	repo = new(MockCatalog)
	repo.On("Locales", mock.Anything).Return([]language.Tag{language.French}, nil)
	repo.On("Units", mock.Anything, "fr").Return(nil, boom)
	_, err = NewCheckService(repo, nil).CheckCatalog(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCheckService_Describe(t *testing.T) {
	tr := new(MockTranslator)
	tr.On("T", "fr", "check.name", map[string]any(nil)).Return("Format des accolades MusicBrainz")
	tr.On("T", "fr", "check.description", map[string]any(nil)).Return("ne correspond pas")

	name, desc := NewCheckService(nil, tr).Describe("fr")
	assert.Equal(t, "Format des accolades MusicBrainz", name)
	assert.Equal(t, "ne correspond pas", desc)
	tr.AssertExpectations(t)
}
