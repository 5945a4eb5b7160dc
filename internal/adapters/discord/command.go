package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/metabrainz/musicbrainz-weblate-checks/internal/adapters/message"
	"github.com/metabrainz/musicbrainz-weblate-checks/internal/ports/output"
	pkgdiscord "github.com/metabrainz/musicbrainz-weblate-checks/pkg/discord"
	"github.com/metabrainz/musicbrainz-weblate-checks/pkg/logger"
)

const (
	commandBrace   = "brace"
	commandCatalog = "brace-catalog"

	catalogTimeout = 30 * time.Second
)

// commands lists the slash commands, described in English with French
// localizations.
func commands(t output.T) []*discordgo.ApplicationCommand {
	describe := func(key string) (string, *map[discordgo.Locale]string) {
		return t.T("en", key, nil), &map[discordgo.Locale]string{discordgo.French: t.T("fr", key, nil)}
	}
	option := func(name, key string) *discordgo.ApplicationCommandOption {
		desc, loc := describe(key)
		return &discordgo.ApplicationCommandOption{
			Type:                     discordgo.ApplicationCommandOptionString,
			Name:                     name,
			Description:              desc,
			DescriptionLocalizations: *loc,
			Required:                 true,
		}
	}

	braceDesc, braceLoc := describe("command.brace.description")
	catalogDesc, catalogLoc := describe("command.catalog.description")
	return []*discordgo.ApplicationCommand{
		{
			Name:                     commandBrace,
			Description:              braceDesc,
			DescriptionLocalizations: braceLoc,
			Options: []*discordgo.ApplicationCommandOption{
				option("source", "command.brace.source"),
				option("target", "command.brace.target"),
			},
		},
		{
			Name:                     commandCatalog,
			Description:              catalogDesc,
			DescriptionLocalizations: catalogLoc,
			Options: []*discordgo.ApplicationCommandOption{
				option("locale", "command.catalog.locale"),
			},
		},
	}
}

// HandleBrace checks the source/target pair given as options.
func (h *Handler) HandleBrace(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := pkgdiscord.StringOptions(i.ApplicationCommandData())
	embed := h.braceEmbed(h.locale(string(i.Locale)), opts["source"], opts["target"])
	respondEmbed(s, i.Interaction, embed)
}

func (h *Handler) braceEmbed(locale, source, target string) *discordgo.MessageEmbed {
	finding := h.checkUseCase.CheckPair(source, target)
	name, _ := h.checkUseCase.Describe(locale)

	lines := []string{
		message.Verdict(h.translator, locale, finding),
		"",
		"< " + pkgdiscord.Code(source),
		"> " + pkgdiscord.Code(target),
	}
	if reasons := message.Reasons(h.translator, locale, finding.Mismatch); len(reasons) > 0 {
		lines = append(lines, "")
		for _, r := range reasons {
			lines = append(lines, "• "+r)
		}
	}
	return pkgdiscord.BuildResultEmbed(name, finding.Passed(), lines)
}

// HandleCatalog checks one locale of the configured catalog. Loading may
// exceed the interaction deadline, so the reply is deferred.
func (h *Handler) HandleCatalog(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		logger.Warn("discord: réponse différée impossible", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
	defer cancel()

	opts := pkgdiscord.StringOptions(i.ApplicationCommandData())
	embed := h.catalogEmbed(ctx, h.locale(string(i.Locale)), opts["locale"])
	embeds := []*discordgo.MessageEmbed{embed}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds}); err != nil {
		logger.Warn("discord: édition de la réponse impossible", zap.Error(err))
	}
}

func (h *Handler) catalogEmbed(ctx context.Context, locale, target string) *discordgo.MessageEmbed {
	report, err := h.checkUseCase.CheckLocale(ctx, target)
	if err != nil {
		logger.Warn("discord: vérification du catalogue échouée", zap.String("locale", target), zap.Error(err))
		return pkgdiscord.BuildResultEmbed(target, false, []string{message.Error(h.translator, locale, err)})
	}

	embed := pkgdiscord.BuildResultEmbed(message.Summary(h.translator, locale, report), !report.Failed(), nil)
	for n, f := range report.Findings {
		name := message.Header(h.translator, locale, f)
		lines := []string{"> " + pkgdiscord.Code(f.Target)}
		for _, r := range message.Reasons(h.translator, locale, f.Mismatch) {
			lines = append(lines, "• "+r)
		}

		// Unless this is the last finding, keep a slot and enough characters
		// for the overflow notice.
		rest := len(report.Findings) - n
		notice := []string{h.translator.TN(locale, "report.more", rest, nil)}
		slots, room := pkgdiscord.Room(embed)
		if rest > 1 && (slots < 2 || pkgdiscord.FieldSize(name, lines)+pkgdiscord.FieldSize("…", notice) > room) {
			pkgdiscord.AddField(embed, "…", notice)
			break
		}
		if !pkgdiscord.AddField(embed, name, lines) {
			pkgdiscord.AddField(embed, "…", notice)
			break
		}
	}
	return embed
}
