// Package styles provides the colour theme and lipgloss styles for
// the review screen.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette the review screen draws from.
type Theme struct {
	// Primary is the accent for titles and the selection bar.
	Primary lipgloss.Color

	// Secondary is the accent for summary lines.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for gutters, separators and help text.
	Muted lipgloss.Color

	// Success marks completed runs.
	Success lipgloss.Color

	// Warning marks dropped line numbers and fallback writes.
	Warning lipgloss.Color

	// Error marks lines about to be removed.
	Error lipgloss.Color

	// Border frames bordered containers.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#8839EF"),
		Secondary:  lipgloss.Color("#179299"),
		Foreground: lipgloss.Color("#C6D0F5"),
		Muted:      lipgloss.Color("#737994"),
		Success:    lipgloss.Color("#40A02B"),
		Warning:    lipgloss.Color("#DF8E1D"),
		Error:      lipgloss.Color("#E64553"),
		Border:     lipgloss.Color("#51576D"),
	}
}

// Styles holds the pre-built lipgloss styles for one review screen.
type Styles struct {
	theme *Theme

	// Title heads the screen.
	Title lipgloss.Style

	// Subtitle renders the removal summary.
	Subtitle lipgloss.Style

	// Normal renders plain text.
	Normal lipgloss.Style

	// Muted renders separators and secondary notes.
	Muted lipgloss.Style

	// Selected highlights the doomed line under the cursor.
	Selected lipgloss.Style

	// LineNumber renders the right-aligned gutter.
	LineNumber lipgloss.Style

	// Doomed strikes through lines marked for removal.
	Doomed lipgloss.Style

	// Help renders the keybinding line at the bottom.
	Help lipgloss.Style
}

// NewStyles builds styles from a theme. A nil theme means the default.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	text := lipgloss.NewStyle().Foreground(theme.Foreground)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:   text,
		Muted:    muted,

		Selected: text.
			Bold(true).
			Background(theme.Primary),

		LineNumber: muted.Align(lipgloss.Right),

		Doomed: lipgloss.NewStyle().
			Foreground(theme.Error).
			Strikethrough(true),

		Help: muted,
	}
}

// DefaultStyles returns styles built from the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette these styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
