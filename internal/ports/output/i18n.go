package output

// T localizes the messages shown to translators by the CLI and the bot.
type T interface {
	// T renders key for locale; data feeds the message template and may be nil.
	T(locale, key string, data map[string]any) string
	// TN renders the plural form of key selected by count. count is also
	// exposed to the template as .Count.
	TN(locale, key string, count int, data map[string]any) string
}
