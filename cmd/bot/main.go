package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/adapters/discord"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/application"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/config"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/infrastructure/catalog"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/infrastructure/i18n"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/output"
	"github.com/metabrainz/musicbrainz-weblate-checks/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := cfg.RequireBot(); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := logger.Init(cfg.Environment); err != nil {
		log.Fatalf("❌ logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var repo output.CatalogRepository
	if r, err := catalog.NewRepository(cfg.CatalogDir, cfg.SourceLocale); err != nil {
		// Le bot reste utilisable pour /brace sans catalogue.
		logger.Warn("⚠️ Catalogue indisponible, /brace-catalog désactivé", zap.String("dir", cfg.CatalogDir), zap.Error(err))
	} else {
		repo = r
	}

	translator, err := i18n.NewTranslator(cfg.UILocale.String())
	if err != nil {
		logger.Fatal("❌ Erreur lors du chargement des traductions", zap.Error(err))
	}
	checks := application.NewCheckService(repo, translator)

	bot, err := discord.NewBot(cfg, checks, translator)
	if err != nil {
		logger.Fatal("❌ Erreur lors de la création du bot", zap.Error(err))
	}
	if err := bot.Start(); err != nil {
		logger.Error("❌ Erreur lors du démarrage du bot", zap.Error(err))
		os.Exit(1)
	}
}
