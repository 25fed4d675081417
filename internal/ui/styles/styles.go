// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Slugs, secondary info
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Accent color for detected boards and headers
	AccentColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	// Title color for headers and section names
	TitleColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#C9C9C9"}

	// Selection indicator style (used for ">" prefix in lists)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// Common text styles
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(TitleColor)
	PrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	SecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	MutedStyle     = lipgloss.NewStyle().Foreground(TextMutedColor)
	AccentStyle    = lipgloss.NewStyle().Foreground(AccentColor)
	SuccessStyle   = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	WarnStyle      = lipgloss.NewStyle().Foreground(StatusWarningColor)
	ErrorStyle     = lipgloss.NewStyle().Foreground(StatusErrorColor)
)
