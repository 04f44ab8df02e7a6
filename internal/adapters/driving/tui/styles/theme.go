// Package styles provides the colour theme and match rendering for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette the search UI is drawn with. The defaults follow
// Notion's dark mode.
type Theme struct {
	Primary    lipgloss.Color // accents and the selected row
	Secondary  lipgloss.Color // breadcrumbs and headers
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Highlight  lipgloss.Color // query matches
	Error      lipgloss.Color
	Border     lipgloss.Color
	Bar        lipgloss.Color // status bar background
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2383E2"),
		Secondary:  lipgloss.Color("#9B9A97"),
		Foreground: lipgloss.Color("#E3E2E0"),
		Muted:      lipgloss.Color("#787774"),
		Highlight:  lipgloss.Color("#FFDC49"),
		Error:      lipgloss.Color("#EB5757"),
		Border:     lipgloss.Color("#373737"),
		Bar:        lipgloss.Color("#202020"),
	}
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style

	// Match renders the parts of a title or snippet that matched the query.
	Match lipgloss.Style

	// Breadcrumb renders the ancestor path under a result title.
	Breadcrumb lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme selects DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	return &Styles{
		theme:    theme,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:   lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:    muted,
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),
		Error: lipgloss.NewStyle().Foreground(theme.Error),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),
		Help:       muted,
		Match:      lipgloss.NewStyle().Bold(true).Foreground(theme.Highlight),
		Breadcrumb: lipgloss.NewStyle().Foreground(theme.Secondary),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
