package discord

import "github.com/bwmarrin/discordgo"

// StringOptions collects the string options of a slash command by name.
func StringOptions(data discordgo.ApplicationCommandInteractionData) map[string]string {
	out := make(map[string]string, len(data.Options))
	for _, opt := range data.Options {
		if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		if v, ok := opt.Value.(string); ok {
			out[opt.Name] = v
		}
	}
	return out
}
