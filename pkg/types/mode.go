package types

// Mode represents the current mode of the application
type Mode int

const (
	// Browsing is the default mode for navigating, marking and deleting entries
	Browsing Mode = iota
	// Editing is the mode for composing a new glob pattern
	Editing
)

func (m Mode) String() string {
	switch m {
	case Editing:
		return "editing"
	default:
		return "browsing"
	}
}

// ModelReader defines the interface that views use to read application state.
// Views never mutate state through it.
type ModelReader interface {
	Mode() Mode
	Input() string
	Pattern() string
	CaseSensitive() bool
	Items() []Entry
	Index() (int, bool)
	MarkedCount() int
}
