package entities

// Unit is one translatable string paired with its source.
type Unit struct {
	Key    string
	Locale string
	// Form is the plural category of the message ("other", "few", ...).
	Form   string
	Source string
	Target string
}
