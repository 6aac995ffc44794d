package components

import (
	"fmt"
	"strings"

	"eradicate/internal/tui/styles"
)

// StatusBar shows the mark count, the stale badge and the last message
type StatusBar struct {
	marked  int
	total   int
	stale   bool
	text    string
	isError bool
	styles  styles.Styles
}

func NewStatusBar(st styles.Styles) *StatusBar {
	return &StatusBar{styles: st}
}

func (s *StatusBar) SetCounts(marked, total int) {
	s.marked = marked
	s.total = total
}

func (s *StatusBar) SetStale(stale bool) {
	s.stale = stale
}

// SetText sets an informational message.
func (s *StatusBar) SetText(text string) {
	s.text = text
	s.isError = false
}

// SetError sets a failure message.
func (s *StatusBar) SetError(err error) {
	s.text = err.Error()
	s.isError = true
}

func (s *StatusBar) View() string {
	parts := []string{s.styles.Muted.Render(fmt.Sprintf("%d/%d marked", s.marked, s.total))}
	if s.stale {
		parts = append(parts, s.styles.Stale.Render("[stale: press r]"))
	}
	if s.text != "" {
		if s.isError {
			parts = append(parts, s.styles.Error.Render(s.text))
		} else {
			parts = append(parts, s.styles.Muted.Render(s.text))
		}
	}
	return strings.Join(parts, "  ")
}
