package views

import (
	"strings"

	"eradicate/internal/tui/components"
	"eradicate/internal/tui/styles"
	"eradicate/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// Screen is what the front end owns beyond application state
type Screen struct {
	Width  int
	Height int

	// PatternField is the rendered pattern input.
	PatternField string
	Help         string
	Status       *components.StatusBar
	Styles       styles.Styles
}

// chrome is the number of rows taken by everything except the entries:
// header, pattern line, list border (2) and status line.
const chrome = 5

func RenderMainView(m types.ModelReader, s Screen) string {
	var sb strings.Builder

	sb.WriteString(renderHeader(m, s.Styles))
	sb.WriteString("\n")
	sb.WriteString(s.PatternField)
	sb.WriteString("\n")

	rows := s.Height - chrome - lipgloss.Height(s.Help)
	if rows < 1 {
		rows = 1
	}
	index, ok := m.Index()
	list := components.NewFileList(s.Styles)
	list.SetEntries(m.Items(), index, ok)
	// Border (2) and padding (2) of the list box.
	list.SetSize(s.Width-6, rows)
	sb.WriteString(s.Styles.FileList.Render(list.View()))
	sb.WriteString("\n")

	if s.Status != nil {
		s.Status.SetCounts(m.MarkedCount(), len(m.Items()))
		sb.WriteString(s.Status.View())
		sb.WriteString("\n")
	}
	sb.WriteString(s.Help)

	return s.Styles.App.Render(sb.String())
}

func renderHeader(m types.ModelReader, st styles.Styles) string {
	caseBadge := "case: sensitive"
	if !m.CaseSensitive() {
		caseBadge = "case: ignored"
	}

	pattern := m.Pattern()
	if pattern == "" {
		pattern = "(none)"
	}

	return st.Title.Render("eradicate") + "  " +
		st.Muted.Render(m.Mode().String()) + "  " +
		st.Muted.Render(caseBadge) + "  " +
		st.Muted.Render("last: ") + st.Path.Render(pattern)
}
