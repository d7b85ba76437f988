// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"} // Document text
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // Hints, help text, footers

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Saved confirmation
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Unsaved changes marker
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Mode indicator colors
	ModeInsertColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ModeNavColor    = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}

	// StatusBarStyle frames the bottom bar.
	StatusBarStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// ModeInsertBadgeStyle and ModeNavBadgeStyle render the mode
	// indicator in the status bar.
	ModeInsertBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(ModeInsertColor)
	ModeNavBadgeStyle    = lipgloss.NewStyle().Bold(true).Foreground(ModeNavColor)

	// FileNameStyle renders the opened file's name.
	FileNameStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)

	// DirtyMarkerStyle flags unsaved changes.
	DirtyMarkerStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusWarningColor)

	// StatusMessageStyle renders transient messages (saved, reloaded).
	StatusMessageStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)

	// ErrorMessageStyle renders errors in the status bar.
	ErrorMessageStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusErrorColor)

	// HelpStyle renders the key hints line.
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
)
