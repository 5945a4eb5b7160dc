// Package catalog reads go-i18n message catalogs: one file or more per
// locale, named <name>.<locale>.toml (or .json), in a single directory.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/domain/entities"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/output"
	"github.com/metabrainz/musicbrainz-weblate-checks/pkg/logger"
)

var _ output.CatalogRepository = (*Repository)(nil)

// Repository implements output.CatalogRepository on top of go-i18n files.
// Files are parsed on first use and kept for the life of the Repository.
type Repository struct {
	fsys      fs.FS
	source    language.Tag
	unmarshal map[string]i18n.UnmarshalFunc

	mu       sync.Mutex
	catalogs map[string]*localeCatalog
}

// NewRepository opens the catalog stored in dir.
func NewRepository(dir string, source language.Tag) (*Repository, error) {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, dir)
	case err != nil:
		return nil, fmt.Errorf("open catalog %s: %w", dir, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s n'est pas un répertoire", domain.ErrCatalogNotFound, dir)
	}
	return NewRepositoryFS(os.DirFS(dir), source), nil
}

// NewRepositoryFS reads the catalog from the root of fsys.
func NewRepositoryFS(fsys fs.FS, source language.Tag) *Repository {
	return &Repository{
		fsys:   fsys,
		source: source,
		unmarshal: map[string]i18n.UnmarshalFunc{
			"toml": toml.Unmarshal,
		},
	}
}

func (r *Repository) SourceLocale() language.Tag {
	return r.source
}

func (r *Repository) Locales(ctx context.Context) ([]language.Tag, error) {
	catalogs, err := r.loaded(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := catalogs[r.source.String()]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceLocaleMissing, r.source)
	}
	out := make([]language.Tag, 0, len(catalogs))
	for key, c := range catalogs {
		if key == r.source.String() {
			continue
		}
		out = append(out, c.tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}

func (r *Repository) Units(ctx context.Context, locale language.Tag) ([]entities.Unit, error) {
	catalogs, err := r.loaded(ctx)
	if err != nil {
		return nil, err
	}
	src, ok := catalogs[r.source.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceLocaleMissing, r.source)
	}
	tgt, ok := catalogs[locale.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocaleNotFound, locale)
	}

	ids := make([]string, 0, len(tgt.messages))
	for id := range tgt.messages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var units []entities.Unit
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		srcMsg := src.messages[id]
		for _, f := range pluralForms(tgt.messages[id]) {
			units = append(units, entities.Unit{
				Key:    id,
				Locale: locale.String(),
				Form:   f.name,
				Source: sourceText(srcMsg, f.name),
				Target: f.text,
			})
		}
	}
	return units, nil
}

type localeCatalog struct {
	tag      language.Tag
	messages map[string]*i18n.Message
}

// loaded returns the parsed catalog, parsing it on the first successful call.
func (r *Repository) loaded(ctx context.Context) (map[string]*localeCatalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.catalogs != nil {
		return r.catalogs, nil
	}
	catalogs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	r.catalogs = catalogs
	return catalogs, nil
}

// load parses every message file of the catalog, merging files of the same
// locale. Files without a locale in their name are skipped.
func (r *Repository) load(ctx context.Context) (map[string]*localeCatalog, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCatalogNotFound
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	catalogs := make(map[string]*localeCatalog)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || !isMessageFile(name) {
			continue
		}
		buf, err := fs.ReadFile(r.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		mf, err := i18n.ParseMessageFileBytes(buf, name, r.unmarshal)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if mf.Tag == language.Und {
			logger.Warn("catalog: fichier sans langue ignoré", zap.String("file", name))
			continue
		}

		key := mf.Tag.String()
		c, ok := catalogs[key]
		if !ok {
			c = &localeCatalog{tag: mf.Tag, messages: make(map[string]*i18n.Message)}
			catalogs[key] = c
		}
		for _, m := range mf.Messages {
			c.messages[m.ID] = m
		}
		logger.Debug("catalog: fichier chargé",
			zap.String("file", name),
			zap.String("locale", key),
			zap.Int("messages", len(mf.Messages)),
		)
	}
	return catalogs, nil
}

func isMessageFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml", ".json":
		return true
	}
	return false
}

type form struct {
	name string
	text string
}

// pluralForms returns the non-empty plural forms of m in CLDR order.
func pluralForms(m *i18n.Message) []form {
	all := []form{
		{"zero", m.Zero},
		{"one", m.One},
		{"two", m.Two},
		{"few", m.Few},
		{"many", m.Many},
		{"other", m.Other},
	}
	out := all[:0]
	for _, f := range all {
		if f.text != "" {
			out = append(out, f)
		}
	}
	return out
}

// sourceText picks the source form matching name, or its "other" form since
// the source language may not have that plural category.
func sourceText(m *i18n.Message, name string) string {
	if m == nil {
		return ""
	}
	for _, f := range pluralForms(m) {
		if f.name == name {
			return f.text
		}
	}
	return m.Other
}
