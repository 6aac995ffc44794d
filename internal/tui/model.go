// Package tui is the terminal front end. It translates key presses into
// application state operations and renders the state after each one.
package tui

import (
	"fmt"
	"time"

	"eradicate/internal/app"
	"eradicate/internal/config"
	"eradicate/internal/log"
	"eradicate/internal/tui/components"
	"eradicate/internal/tui/messages"
	"eradicate/internal/tui/styles"
	"eradicate/internal/tui/views"
	"eradicate/internal/watch"
	"eradicate/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type Model struct {
	state *app.State
	keys  types.KeyMap
	help  help.Model
	input textinput.Model

	styles styles.Styles
	status *components.StatusBar

	width  int
	height int

	tick       time.Duration
	watcher    *watch.Watcher
	watchLimit int
	stale      bool

	// Set once a quit key has been handled
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithWatcher enables stale detection. The watcher must not be started;
// Init starts it.
func WithWatcher(w *watch.Watcher, limit int) Option {
	return func(m *Model) {
		m.watcher = w
		m.watchLimit = limit
	}
}

// New creates the front end around state, styled and paced by cfg.
func New(state *app.State, cfg *config.Config, opts ...Option) *Model {
	st := styles.New(config.GetTheme(cfg.UI.Theme))

	ti := textinput.New()
	ti.Prompt = "pattern> "
	ti.PromptStyle = st.Prompt
	ti.Placeholder = "glob, e.g. **/*.tmp"
	ti.SetValue(state.Input())

	m := &Model{
		state:  state,
		keys:   types.DefaultKeyMap(),
		help:   help.New(),
		input:  ti,
		styles: st,
		status: components.NewStatusBar(st),
		width:  defaultWidth,
		height: defaultHeight,
		tick:   cfg.TickInterval(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd()}
	if m.watcher != nil {
		if err := m.watcher.Start(); err != nil {
			log.Warn("watcher not started", err)
			m.watcher = nil
		} else {
			m.rewatch()
			cmds = append(cmds, m.waitForChange())
		}
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.status.SetStale(m.stale)
	return views.RenderMainView(m.state, views.Screen{
		Width:        m.width,
		Height:       m.height,
		PatternField: m.input.View(),
		Help:         m.helpView(),
		Status:       m.status,
		Styles:       m.styles,
	})
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-4, 1)
		return m, nil

	case tea.KeyMsg:
		if m.state.Mode() == types.Editing {
			return m.handleEditingKeys(msg)
		}
		return m.handleBrowsingKeys(msg)

	case messages.TickMsg:
		return m, m.tickCmd()

	case messages.ChangeMsg:
		if !m.stale {
			log.LogWithFields(log.F("path", msg.Change.Path), log.F("op", msg.Change.Op.String())).Debug("listing is stale")
		}
		m.stale = true
		return m, m.waitForChange()

	case messages.WatchClosedMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) handleBrowsingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.state.Previous()
	case key.Matches(msg, m.keys.Down):
		m.state.Next()
	case key.Matches(msg, m.keys.ToggleMark):
		m.state.ToggleMark()
	case key.Matches(msg, m.keys.ToggleCase):
		m.state.ToggleCaseSensitivity()
		if m.state.CaseSensitive() {
			m.status.SetText("case sensitive matching")
		} else {
			m.status.SetText("case insensitive matching")
		}
	case key.Matches(msg, m.keys.EnterEdit):
		m.state.EnterEdit()
		m.syncInput()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Rerun):
		if err := m.state.Rerun(); err != nil {
			m.status.SetError(err)
		} else if m.state.Pattern() != "" {
			m.searched()
		}
	case key.Matches(msg, m.keys.Delete):
		n, err := m.state.CommitDelete()
		if err != nil {
			m.status.SetError(fmt.Errorf("%w (%d removed before failure)", err, n))
			break
		}
		if n > 0 {
			m.status.SetText(fmt.Sprintf("deleted %d entries", n))
			m.rewatch()
		}
	}
	return m, nil
}

func (m *Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()
	case key.Matches(msg, m.keys.Commit):
		err := m.state.CommitSearch()
		m.input.Blur()
		if err != nil {
			m.status.SetError(err)
		} else {
			m.searched()
		}
	case key.Matches(msg, m.keys.Cancel):
		m.state.CancelEdit()
		m.input.Blur()
	case key.Matches(msg, m.keys.Backspace):
		m.state.Backspace()
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		for _, r := range msg.Runes {
			m.state.InsertRune(r)
		}
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			m.state.InsertRune(' ')
		}
	}
	m.syncInput()
	return m, nil
}

// searched resets the screen after a successful search.
func (m *Model) searched() {
	m.stale = false
	m.status.SetText(fmt.Sprintf("%d matches for %s", len(m.state.Items()), m.state.Pattern()))
	m.rewatch()
}

// syncInput mirrors the state's pattern buffer into the text field.
func (m *Model) syncInput() {
	m.input.SetValue(m.state.Input())
	m.input.CursorEnd()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return m, tea.Quit
}

func (m *Model) helpView() string {
	if m.state.Mode() == types.Editing {
		return m.help.View(types.EditingHelp{KeyMap: m.keys})
	}
	return m.help.View(m.keys)
}

// rewatch points the watcher at the directories holding the current entries.
func (m *Model) rewatch() {
	if m.watcher == nil {
		return
	}
	items := m.state.Items()
	paths := make([]string, 0, len(items))
	for _, e := range items {
		paths = append(paths, e.Path)
	}
	m.watcher.SetDirectories(watch.ParentDirs(paths, m.watchLimit))
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(time.Time) tea.Msg {
		return messages.TickMsg{}
	})
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return messages.WatchClosedMsg{}
		}
		return messages.ChangeMsg{Change: change}
	}
}

// State returns the application state behind the model.
func (m *Model) State() *app.State {
	return m.state
}

// Stale reports whether the filesystem changed since the last search.
func (m *Model) Stale() bool {
	return m.stale
}

// ShowHelp reports whether the full help is shown.
func (m *Model) ShowHelp() bool {
	return m.help.ShowAll
}
