package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	defaultCatalogDir   = "locales"
	defaultSourceLocale = "en"
	defaultUILocale     = "en"
	defaultEnvironment  = "development"
)

type Config struct {
	CatalogDir   string
	SourceLocale language.Tag
	UILocale     language.Tag
	Environment  string
	DiscordToken string
	GuildID      string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		CatalogDir:   valueOr(getenv("CATALOG_DIR"), defaultCatalogDir),
		Environment:  valueOr(getenv("ENVIRONMENT"), defaultEnvironment),
		DiscordToken: strings.TrimSpace(getenv("DISCORD_TOKEN")),
		GuildID:      strings.TrimSpace(getenv("DISCORD_GUILD_ID")),
	}

	var err error
	if cfg.SourceLocale, err = parseLocale("SOURCE_LOCALE", valueOr(getenv("SOURCE_LOCALE"), defaultSourceLocale)); err != nil {
		return nil, err
	}
	if cfg.UILocale, err = parseLocale("UI_LOCALE", valueOr(getenv("UI_LOCALE"), defaultUILocale)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequireBot applique les règles propres au bot Discord.
func (c *Config) RequireBot() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("config: DISCORD_TOKEN est requis et ne peut pas être vide")
	}
	// GuildID vide = commandes globales.
	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
		}
	}
	return nil
}

func parseLocale(name, value string) (language.Tag, error) {
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, fmt.Errorf("config: %s invalide (%q): %w", name, value, err)
	}
	return tag, nil
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}
