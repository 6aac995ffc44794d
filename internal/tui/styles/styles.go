package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles the views render with
type Styles struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Cursor   lipgloss.Style
	Marked   lipgloss.Style
	Kept     lipgloss.Style
	Kind     lipgloss.Style
	Path     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Stale    lipgloss.Style
	FileList lipgloss.Style
}

// New builds the styles from a theme palette keyed by role
// (primary, marked, kept, kind, path, muted, error, border).
func New(theme map[string]string) Styles {
	c := func(role string) lipgloss.Color { return lipgloss.Color(theme[role]) }

	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c("primary")),
		Prompt: lipgloss.NewStyle().
			Foreground(c("primary")),
		Cursor: lipgloss.NewStyle().
			Foreground(c("primary")).
			Bold(true),
		Marked: lipgloss.NewStyle().
			Foreground(c("marked")).
			Bold(true),
		Kept: lipgloss.NewStyle().
			Foreground(c("kept")),
		Kind: lipgloss.NewStyle().
			Foreground(c("kind")),
		Path: lipgloss.NewStyle().
			Foreground(c("path")),
		Muted: lipgloss.NewStyle().
			Foreground(c("muted")),
		Error: lipgloss.NewStyle().
			Foreground(c("error")),
		Stale: lipgloss.NewStyle().
			Foreground(c("error")).
			Bold(true),
		FileList: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c("border")).
			Padding(0, 1),
	}
}
