package components

import (
	"fmt"
	"strings"

	"eradicate/internal/tui/styles"
	"eradicate/pkg/types"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// FileList renders a window of entries around the selection
type FileList struct {
	entries  []types.Entry
	selected int
	hasSel   bool
	width    int
	height   int
	styles   styles.Styles
}

func NewFileList(st styles.Styles) *FileList {
	return &FileList{styles: st}
}

func (fl *FileList) SetEntries(entries []types.Entry, selected int, ok bool) {
	fl.entries = entries
	fl.selected = selected
	fl.hasSel = ok
}

// SetSize sets the number of columns and rows available for entries.
func (fl *FileList) SetSize(width, height int) {
	fl.width = width
	fl.height = height
}

// Window returns the half-open range of entries that fit, keeping the
// selection on screen.
func (fl *FileList) Window() (int, int) {
	n := len(fl.entries)
	if fl.height <= 0 || n <= fl.height {
		return 0, n
	}
	start := 0
	if fl.hasSel && fl.selected >= fl.height {
		start = fl.selected - fl.height + 1
	}
	return start, start + fl.height
}

func (fl *FileList) View() string {
	if len(fl.entries) == 0 {
		return fl.styles.Muted.Render("No matches")
	}

	start, end := fl.Window()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, fl.row(i))
	}
	return strings.Join(rows, "\n")
}

func (fl *FileList) row(i int) string {
	e := fl.entries[i]

	cursor := "  "
	if fl.hasSel && i == fl.selected {
		cursor = fl.styles.Cursor.Render("> ")
	}

	mark := fl.styles.Kept.Render("[ ]")
	if e.MarkedForDelete {
		mark = fl.styles.Marked.Render("[x]")
	}

	kind := fl.styles.Kind.Render(fmt.Sprintf("%-4s", e.Kind()))

	// cursor(2) + mark(3) + space + kind(4) + space
	path := e.Path
	if fl.width > 0 {
		path = TruncatePath(path, fl.width-11)
	}

	return cursor + mark + " " + kind + " " + fl.styles.Path.Render(path)
}

// TruncatePath shortens path to at most width terminal cells by dropping
// its head, so the base name stays visible.
func TruncatePath(path string, width int) string {
	if runewidth.StringWidth(path) <= width {
		return path
	}
	if width <= 0 {
		return ""
	}

	budget := width - runewidth.StringWidth(ellipsis)
	runes := []rune(path)
	used := 0
	cut := len(runes)
	for cut > 0 {
		w := runewidth.RuneWidth(runes[cut-1])
		if used+w > budget {
			break
		}
		used += w
		cut--
	}
	return ellipsis + string(runes[cut:])
}
