package discord

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/config"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/input"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/output"
	"github.com/metabrainz/musicbrainz-weblate-checks/pkg/logger"
)

// Bot is the Discord adapter.
type Bot struct {
	session    *discordgo.Session
	config     *config.Config
	handler    *Handler
	translator output.T
}

// NewBot creates a Bot and wires the check use case to the slash commands.
func NewBot(cfg *config.Config, checkUseCase input.CheckUseCase, translator output.T) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("création de la session Discord: %w", err)
	}

	bot := &Bot{
		session:    s,
		config:     cfg,
		handler:    NewHandler(checkUseCase, translator, cfg.UILocale.String()),
		translator: translator,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case commandBrace:
		b.handler.HandleBrace(s, i)
	case commandCatalog:
		b.handler.HandleCatalog(s, i)
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("ouverture de la session: %w", err)
	}
	defer b.session.Close()

	cmds := commands(b.translator)
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, cmds); err != nil {
		logger.Warn("⚠️ Enregistrement des commandes impossible", zap.Error(err))
	}

	logger.Info("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.", zap.String("guild", b.config.GuildID))
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
