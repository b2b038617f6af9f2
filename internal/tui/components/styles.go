// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dublaj/internal/config/colors"
	"github.com/thenoetrevino/dublaj/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// CardStyle frames the whole form
	CardStyle lipgloss.Style

	// BrandStyle renders the product name above the tabs
	BrandStyle lipgloss.Style

	// HeadingStyle renders the per-mode heading
	HeadingStyle lipgloss.Style

	// SubtleStyle renders subtitles, dividers and hints
	SubtleStyle lipgloss.Style

	// LinkStyle renders inline links (forgot password, switch prompt)
	LinkStyle lipgloss.Style

	// FocusedLinkStyle renders a focused inline link
	FocusedLinkStyle lipgloss.Style

	// FieldErrorStyle renders inline validation messages
	FieldErrorStyle lipgloss.Style

	// PrimaryButtonStyle renders the submit button
	PrimaryButtonStyle lipgloss.Style

	// FocusedPrimaryButtonStyle renders the submit button while focused
	FocusedPrimaryButtonStyle lipgloss.Style

	// SocialButtonStyle renders the decorative social buttons
	SocialButtonStyle lipgloss.Style

	// FocusedSocialButtonStyle renders a focused social button
	FocusedSocialButtonStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// DialogBoxStyle defines the base style for the close confirmation
	DialogBoxStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	// Tab styles
	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Foreground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.
		Border(activeTabBorder, true).
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		Padding(1, 2)

	BrandStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	HeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Link))

	FocusedLinkStyle = LinkStyle.
		Bold(true).
		Underline(true)

	FieldErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.FieldError))

	PrimaryButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal)).
		Background(lipgloss.Color(colors.CardBorder)).
		Align(lipgloss.Center).
		Padding(0, 2)

	FocusedPrimaryButtonStyle = PrimaryButtonStyle.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(colors.Accent)).
		Bold(true)

	SocialButtonStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		Foreground(lipgloss.Color(colors.Normal)).
		Padding(0, 1)

	FocusedSocialButtonStyle = SocialButtonStyle.
		BorderForeground(lipgloss.Color(colors.Accent)).
		Bold(true)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	DialogBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ErrorBg)).
		Padding(1, 2)
}
