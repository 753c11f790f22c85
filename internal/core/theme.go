package core

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Theme is the presentation-only light/dark preference. It affects chart
// colors, never transaction data.
type Theme string

// ParseTheme maps a stored value to a theme. Anything other than the
// literal "light" (including absent) means dark.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle flips the preference.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
