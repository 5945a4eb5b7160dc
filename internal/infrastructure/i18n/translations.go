package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/output"
	"github.com/metabrainz/musicbrainz-weblate-checks/pkg/logger"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.fr.toml"}

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator builds a Translator from the embedded active.*.toml files.
// An unparsable defaultLocale falls back to English.
func NewTranslator(defaultLocale string) (*Translator, error) {
	return newTranslator(localeFS, localeFiles, defaultLocale)
}

func newTranslator(fsys fs.FS, files []string, defaultLocale string) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			return nil, fmt.Errorf("i18n: chargement de %s: %w", file, err)
		}
	}
	logger.Debug("i18n: traductions chargées", zap.Strings("files", files), zap.String("default", tag.String()))

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}, nil
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	return t.localize(locale, &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}

// TN is T with plural selection on count.
func (t *Translator) TN(locale, key string, count int, data map[string]any) string {
	merged := make(map[string]any, len(data)+1)
	for k, v := range data {
		merged[k] = v
	}
	merged["Count"] = count
	return t.localize(locale, &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: merged,
		PluralCount:  count,
	})
}

func (t *Translator) localize(locale string, cfg *i18n.LocalizeConfig) string {
	if cfg.MessageID == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(cfg)
	if err != nil {
		logger.Debug("i18n: traduction introuvable",
			zap.String("key", cfg.MessageID),
			zap.Strings("locales", languages),
			zap.Error(err),
		)
		return cfg.MessageID
	}
	return msg
}
