package domain

import "errors"

// Domain errors.
var (
	ErrCatalogNotFound      = errors.New("catalogue introuvable")
	ErrSourceLocaleMissing  = errors.New("aucun fichier pour la langue source")
	ErrLocaleNotFound       = errors.New("aucun fichier pour cette langue")
	ErrInvalidLocale        = errors.New("code de langue invalide")
	ErrCatalogNotConfigured = errors.New("aucun catalogue configuré")
)

var codes = map[error]string{
	ErrCatalogNotFound:      "catalog_not_found",
	ErrSourceLocaleMissing:  "source_locale_missing",
	ErrLocaleNotFound:       "locale_not_found",
	ErrInvalidLocale:        "invalid_locale",
	ErrCatalogNotConfigured: "catalog_not_configured",
}

// Code returns the stable code of the domain error wrapped by err, or "" when
// err does not wrap one.
func Code(err error) string {
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
