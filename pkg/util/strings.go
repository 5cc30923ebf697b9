package util

// Placeholder is displayed wherever a textual field is absent.
const Placeholder = "—"

// OrPlaceholder substitutes the display placeholder for an empty string.
func OrPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
