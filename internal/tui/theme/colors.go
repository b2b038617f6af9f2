package theme

import "github.com/thenoetrevino/dublaj/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	CardBackground string
	CardBorder     string
	Title          string
	Subtle         string
	Normal         string
	Link           string
	FieldError     string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	Highlight = c.Accent
	Background = c.Background
	CardBackground = c.CardBackground
	CardBorder = c.CardBorder
	Title = c.Title
	Subtle = c.Subtle
	Normal = c.Normal
	Link = c.Link
	FieldError = c.FieldError
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	WarningFg = c.WarningFg
	WarningBg = c.WarningBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
}
