package discord

import (
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/input"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	checkUseCase input.CheckUseCase
	translator   output.T
	fallback     string
}

// NewHandler creates a Handler. fallback is the locale used when an
// interaction carries none.
func NewHandler(checkUseCase input.CheckUseCase, translator output.T, fallback string) *Handler {
	return &Handler{
		checkUseCase: checkUseCase,
		translator:   translator,
		fallback:     fallback,
	}
}

func (h *Handler) locale(l string) string {
	if l == "" {
		return h.fallback
	}
	return l
}
