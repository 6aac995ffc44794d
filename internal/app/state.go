// Package app holds the application state machine: the current mode, the
// pattern being edited, and the list of matched entries with their marks.
//
// State is exclusively owned by the event loop. Every operation runs to
// completion before returning; nothing happens in the background.
package app

import (
	"eradicate/internal/errors"
	"eradicate/internal/log"
	"eradicate/internal/remove"
	"eradicate/internal/search"
	"eradicate/internal/selectable"
	"eradicate/pkg/types"
)

// Searcher expands a pattern into fresh entries.
type Searcher interface {
	Search(pattern string, caseSensitive bool) ([]types.Entry, error)
}

// State is the application state. Operations that do not apply to the
// current mode are no-ops.
type State struct {
	mode          types.Mode
	input         []rune
	pattern       string
	caseSensitive bool
	entries       *selectable.List[types.Entry]

	searcher Searcher
	remover  remove.Remover
}

// Option configures a State.
type Option func(*State)

// WithSearcher replaces the filesystem search engine.
func WithSearcher(s Searcher) Option {
	return func(st *State) { st.searcher = s }
}

// WithRemover replaces the filesystem delete primitives.
func WithRemover(r remove.Remover) Option {
	return func(st *State) { st.remover = r }
}

// WithCaseSensitive sets the initial case-sensitivity option.
func WithCaseSensitive(on bool) Option {
	return func(st *State) { st.caseSensitive = on }
}

// New returns a State in Browsing mode with an empty entry list.
// Matching is case sensitive unless configured otherwise.
func New(opts ...Option) *State {
	s := &State{
		mode:          types.Browsing,
		caseSensitive: true,
		entries:       selectable.New[types.Entry](),
		searcher:      search.New(),
		remover:       remove.FS{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the current mode.
func (s *State) Mode() types.Mode { return s.mode }

// Input returns the pattern buffer, which survives mode switches.
func (s *State) Input() string { return string(s.input) }

// Pattern returns the last successfully committed pattern.
func (s *State) Pattern() string { return s.pattern }

// CaseSensitive reports whether the next search matches case sensitively.
func (s *State) CaseSensitive() bool { return s.caseSensitive }

// Entries returns the displayed collection. Callers must treat it as
// read-only.
func (s *State) Entries() *selectable.List[types.Entry] { return s.entries }

// Items returns the displayed entries in match order.
func (s *State) Items() []types.Entry { return s.entries.Items }

// Index returns the selected position, if any.
func (s *State) Index() (int, bool) { return s.entries.Index() }

// MarkedCount returns the number of entries currently marked for deletion.
func (s *State) MarkedCount() int {
	return s.entries.Count(isMarked)
}

// SetInput replaces the pattern buffer.
func (s *State) SetInput(text string) {
	s.input = []rune(text)
}

// EnterEdit switches from Browsing to Editing.
func (s *State) EnterEdit() {
	if s.mode != types.Browsing {
		return
	}
	s.mode = types.Editing
}

// InsertRune appends r to the pattern buffer.
func (s *State) InsertRune(r rune) {
	if s.mode != types.Editing {
		return
	}
	s.input = append(s.input, r)
}

// Backspace removes the last rune of the pattern buffer.
func (s *State) Backspace() {
	if s.mode != types.Editing || len(s.input) == 0 {
		return
	}
	s.input = s.input[:len(s.input)-1]
}

// CancelEdit returns to Browsing and keeps the buffer.
func (s *State) CancelEdit() {
	if s.mode != types.Editing {
		return
	}
	s.mode = types.Browsing
}

// CommitSearch runs the buffered pattern and returns to Browsing. On
// success the entry list is replaced; on failure it is left untouched
// and the error is returned.
func (s *State) CommitSearch() error {
	if s.mode != types.Editing {
		return nil
	}
	s.mode = types.Browsing
	return s.runSearch(string(s.input))
}

// Rerun repeats the last committed search.
func (s *State) Rerun() error {
	if s.mode != types.Browsing || s.pattern == "" {
		return nil
	}
	return s.runSearch(s.pattern)
}

func (s *State) runSearch(pattern string) error {
	logger := log.LogWithFields(log.F("pattern", pattern), log.F("case_sensitive", s.caseSensitive))

	results, err := s.searcher.Search(pattern, s.caseSensitive)
	if err != nil {
		logger.Warnf("search failed: %v", err)
		return err
	}

	s.entries = selectable.NewWith(results)
	s.pattern = pattern
	logger.Infof("search matched %d entries", len(results))
	return nil
}

// Next moves the selection forward.
func (s *State) Next() {
	if s.mode != types.Browsing {
		return
	}
	s.entries.Next()
}

// Previous moves the selection backward.
func (s *State) Previous() {
	if s.mode != types.Browsing {
		return
	}
	s.entries.Previous()
}

// ToggleMark flips the deletion mark of the selected entry.
func (s *State) ToggleMark() {
	if s.mode != types.Browsing {
		return
	}
	if entry, ok := s.entries.Selected(); ok {
		entry.ToggleDelete()
	}
}

// ToggleCaseSensitivity flips case-sensitive matching for later searches.
func (s *State) ToggleCaseSensitivity() {
	if s.mode != types.Browsing {
		return
	}
	s.caseSensitive = !s.caseSensitive
}

// CommitDelete removes every marked entry from disk in list order and
// keeps only the unmarked ones. The first failure stops the batch and
// leaves the entry list exactly as it was; deletions already done are not
// undone. It returns how many entries were removed.
func (s *State) CommitDelete() (int, error) {
	if s.mode != types.Browsing {
		return 0, nil
	}

	toDelete := s.entries.Filter(isMarked)
	survivors := s.entries.Filter(func(e types.Entry) bool { return !e.MarkedForDelete })

	for i, entry := range toDelete {
		var err error
		if entry.IsFile {
			err = s.remover.RemoveFile(entry.Path)
		} else {
			err = s.remover.RemoveTree(entry.Path)
		}
		if err != nil {
			log.LogWithFields(log.F("path", entry.Path), log.F("removed", i)).Errorf("delete aborted: %v", err)
			return i, errors.NewFileError("delete failed", entry.Path, errors.DeleteFailed, err)
		}
	}

	s.entries = selectable.NewWith(survivors)
	if len(toDelete) > 0 {
		log.Info("deleted %d entries, %d remain", len(toDelete), len(survivors))
	}
	return len(toDelete), nil
}

func isMarked(e types.Entry) bool {
	return e.MarkedForDelete
}
