package discord

import (
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// Discord limits on embeds. MaxEmbedSize bounds their combined text.
const (
	MaxFields      = 25
	MaxEmbedSize   = 6000
	maxTitle       = 256
	maxDescription = 4096
	maxFieldName   = 256
	maxFieldValue  = 1024
)

const (
	colorPass = 0x57F287
	colorFail = 0xED4245
)

// BuildResultEmbed builds a green (passed) or red embed whose description
// lists lines.
func BuildResultEmbed(title string, passed bool, lines []string) *discordgo.MessageEmbed {
	color := colorFail
	if passed {
		color = colorPass
	}
	return &discordgo.MessageEmbed{
		Title:       truncate(title, maxTitle),
		Description: truncate(strings.Join(lines, "\n"), maxDescription),
		Color:       color,
	}
}

// AddField appends a field made of lines to embed. It returns false, leaving
// embed untouched, when the embed has no field slot or too few characters
// left for it.
func AddField(embed *discordgo.MessageEmbed, name string, lines []string) bool {
	slots, room := Room(embed)
	if slots < 1 || FieldSize(name, lines) > room {
		return false
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  truncate(name, maxFieldName),
		Value: truncate(strings.Join(lines, "\n"), maxFieldValue),
	})
	return true
}

// FieldSize returns the characters a field made of name and lines adds to an
// embed once truncated.
func FieldSize(name string, lines []string) int {
	return utf8.RuneCountInString(truncate(name, maxFieldName)) +
		utf8.RuneCountInString(truncate(strings.Join(lines, "\n"), maxFieldValue))
}

// EmbedSize counts the characters of embed that Discord checks against
// MaxEmbedSize.
func EmbedSize(embed *discordgo.MessageEmbed) int {
	n := utf8.RuneCountInString(embed.Title) + utf8.RuneCountInString(embed.Description)
	if embed.Footer != nil {
		n += utf8.RuneCountInString(embed.Footer.Text)
	}
	if embed.Author != nil {
		n += utf8.RuneCountInString(embed.Author.Name)
	}
	for _, f := range embed.Fields {
		n += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
	}
	return n
}

// Room returns the field slots and characters still available in embed.
func Room(embed *discordgo.MessageEmbed) (slots, chars int) {
	slots = MaxFields - len(embed.Fields)
	chars = MaxEmbedSize - EmbedSize(embed)
	if slots < 0 {
		slots = 0
	}
	if chars < 0 {
		chars = 0
	}
	return slots, chars
}

// Code wraps s in an inline code span so braces render verbatim.
func Code(s string) string {
	if s == "" {
		return "` `"
	}
	return "`" + strings.ReplaceAll(s, "`", "'") + "`"
}

// truncate cuts s to at most n runes, ending with an ellipsis when cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
