package app

import (
	"fmt"
	"path/filepath"
	"testing"

	"eradicate/internal/errors"
	"eradicate/internal/remove"
	"eradicate/pkg/testutils"
	"eradicate/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ types.ModelReader = (*State)(nil)

type stubSearcher struct {
	results []types.Entry
	err     error
	calls   []string
}

func (s *stubSearcher) Search(pattern string, caseSensitive bool) ([]types.Entry, error) {
	s.calls = append(s.calls, fmt.Sprintf("%s/%t", pattern, caseSensitive))
	if s.err != nil {
		return nil, s.err
	}
	out := make([]types.Entry, len(s.results))
	copy(out, s.results)
	return out, nil
}

type recordingRemover struct {
	failOn  string
	removed []string
}

func (r *recordingRemover) RemoveFile(path string) error { return r.remove("file:" + path) }
func (r *recordingRemover) RemoveTree(path string) error { return r.remove("tree:" + path) }

func (r *recordingRemover) remove(op string) error {
	if op[5:] == r.failOn {
		return fmt.Errorf("permission denied")
	}
	r.removed = append(r.removed, op)
	return nil
}

var _ remove.Remover = (*recordingRemover)(nil)

func entries(names ...string) []types.Entry {
	out := make([]types.Entry, 0, len(names))
	for _, n := range names {
		out = append(out, types.Entry{Path: n, IsFile: true, MarkedForDelete: true})
	}
	return out
}

func searchWith(t *testing.T, s *State, pattern string) {
	t.Helper()
	s.EnterEdit()
	s.SetInput(pattern)
	require.NoError(t, s.CommitSearch())
}

func TestNewState(t *testing.T) {
	s := New()
	assert.Equal(t, types.Browsing, s.Mode())
	assert.Empty(t, s.Input())
	assert.Empty(t, s.Pattern())
	assert.True(t, s.CaseSensitive())
	assert.Empty(t, s.Items())
	_, ok := s.Index()
	assert.False(t, ok)

	assert.False(t, New(WithCaseSensitive(false)).CaseSensitive())
}

func TestEditingTransitions(t *testing.T) {
	s := New(WithSearcher(&stubSearcher{}))

	// Typing in Browsing mode does nothing.
	s.InsertRune('x')
	assert.Empty(t, s.Input())

	s.EnterEdit()
	assert.Equal(t, types.Editing, s.Mode())

	for _, r := range "*.tx" {
		s.InsertRune(r)
	}
	s.InsertRune('ť')
	assert.Equal(t, "*.txť", s.Input())
	s.Backspace()
	assert.Equal(t, "*.tx", s.Input())

	s.CancelEdit()
	assert.Equal(t, types.Browsing, s.Mode())
	assert.Equal(t, "*.tx", s.Input(), "cancel keeps the buffer")

	s.EnterEdit()
	for i := 0; i < 10; i++ {
		s.Backspace()
	}
	assert.Empty(t, s.Input())
}

func TestCommitSearchReplacesEntries(t *testing.T) {
	stub := &stubSearcher{results: entries("a.txt", "b.txt")}
	s := New(WithSearcher(stub))

	searchWith(t, s, "*.txt")
	assert.Equal(t, types.Browsing, s.Mode())
	assert.Equal(t, "*.txt", s.Pattern())
	assert.Equal(t, entries("a.txt", "b.txt"), s.Items())
	i, ok := s.Index()
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, []string{"*.txt/true"}, stub.calls)

	// A new search replaces marks too.
	s.ToggleMark()
	require.NoError(t, s.Rerun())
	assert.True(t, s.Items()[0].MarkedForDelete)
}

func TestCommitSearchInvalidPatternKeepsState(t *testing.T) {
	stub := &stubSearcher{results: entries("a", "b", "c")}
	s := New(WithSearcher(stub))
	searchWith(t, s, "*")
	s.Next()
	s.ToggleMark()
	before := append([]types.Entry(nil), s.Items()...)

	stub.err = errors.NewPatternError("invalid pattern", "[", nil)
	s.EnterEdit()
	s.SetInput("[")
	err := s.CommitSearch()

	require.Error(t, err)
	assert.True(t, errors.IsInvalidPattern(err))
	assert.Equal(t, types.Browsing, s.Mode())
	assert.Equal(t, before, s.Items())
	i, _ := s.Index()
	assert.Equal(t, 1, i)
	assert.Equal(t, "*", s.Pattern())
}

func TestCommitSearchOnlyFromEditing(t *testing.T) {
	stub := &stubSearcher{}
	s := New(WithSearcher(stub))
	require.NoError(t, s.CommitSearch())
	assert.Empty(t, stub.calls)
}

func TestRerunWithoutPatternIsNoop(t *testing.T) {
	stub := &stubSearcher{}
	s := New(WithSearcher(stub))
	require.NoError(t, s.Rerun())
	assert.Empty(t, stub.calls)
}

func TestToggleCaseSensitivityFeedsSearch(t *testing.T) {
	stub := &stubSearcher{}
	s := New(WithSearcher(stub))
	s.ToggleCaseSensitivity()
	assert.False(t, s.CaseSensitive())
	searchWith(t, s, "*.TXT")
	assert.Equal(t, []string{"*.TXT/false"}, stub.calls)

	// Ignored while editing.
	s.EnterEdit()
	s.ToggleCaseSensitivity()
	assert.False(t, s.CaseSensitive())
}

func TestNavigationAndMarking(t *testing.T) {
	s := New(WithSearcher(&stubSearcher{results: entries("a", "b", "c")}))
	searchWith(t, s, "*")

	s.Previous()
	i, _ := s.Index()
	assert.Equal(t, 2, i)
	s.Next()
	i, _ = s.Index()
	assert.Equal(t, 0, i)

	assert.Equal(t, 3, s.MarkedCount())
	s.ToggleMark()
	assert.False(t, s.Items()[0].MarkedForDelete)
	assert.Equal(t, 2, s.MarkedCount())
	s.ToggleMark()
	assert.True(t, s.Items()[0].MarkedForDelete)

	// Navigation is ignored while editing.
	s.EnterEdit()
	s.Next()
	i, _ = s.Index()
	assert.Equal(t, 0, i)
}

func TestOperationsOnEmptyListAreNoops(t *testing.T) {
	s := New(WithRemover(&recordingRemover{}))
	s.Next()
	s.Previous()
	s.ToggleMark()
	_, ok := s.Index()
	assert.False(t, ok)

	n, err := s.CommitDelete()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestToggleMarkWithoutSelection(t *testing.T) {
	s := New(WithSearcher(&stubSearcher{results: entries("a")}))
	searchWith(t, s, "a")
	s.Entries().Unselect()
	s.ToggleMark()
	assert.True(t, s.Items()[0].MarkedForDelete)
}

func TestCommitDeleteKeepsUnmarked(t *testing.T) {
	results := entries("a", "b", "c", "d")
	results[1].IsFile = false
	rm := &recordingRemover{}
	s := New(WithSearcher(&stubSearcher{results: results}), WithRemover(rm))
	searchWith(t, s, "*")

	s.Next()
	s.Next()
	s.ToggleMark() // unmark c

	n, err := s.CommitDelete()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"file:a", "tree:b", "file:d"}, rm.removed)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "c", s.Items()[0].Path)
	assert.False(t, s.Items()[0].MarkedForDelete)
	i, ok := s.Index()
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestCommitDeleteFailFast(t *testing.T) {
	rm := &recordingRemover{failOn: "b"}
	s := New(WithSearcher(&stubSearcher{results: entries("a", "b", "c")}), WithRemover(rm))
	searchWith(t, s, "*")
	s.Next()
	s.Next()
	before := append([]types.Entry(nil), s.Items()...)

	n, err := s.CommitDelete()
	require.Error(t, err)
	assert.True(t, errors.IsDeleteFailed(err))
	assert.Contains(t, err.Error(), "b")
	assert.Equal(t, 1, n)

	// c was never attempted and the list is unchanged.
	assert.Equal(t, []string{"file:a"}, rm.removed)
	assert.Equal(t, before, s.Items())
	i, _ := s.Index()
	assert.Equal(t, 2, i)
}

func TestCommitDeleteAllUnmarked(t *testing.T) {
	rm := &recordingRemover{}
	s := New(WithSearcher(&stubSearcher{results: entries("a", "b")}), WithRemover(rm))
	searchWith(t, s, "*")
	s.ToggleMark()
	s.Next()
	s.ToggleMark()

	n, err := s.CommitDelete()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, rm.removed)
	assert.Len(t, s.Items(), 2)
}

func TestCommitDeleteIgnoredWhileEditing(t *testing.T) {
	rm := &recordingRemover{}
	s := New(WithSearcher(&stubSearcher{results: entries("a")}), WithRemover(rm))
	searchWith(t, s, "*")
	s.EnterEdit()
	n, err := s.CommitDelete()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, rm.removed)
}

func TestDeleteWorkflowOnDisk(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestTree(t, dir, "a.txt", "b.txt", "c.txt", "notes.md")
	s := New()

	searchWith(t, s, filepath.Join(dir, "*.txt"))
	require.Len(t, s.Items(), 3)

	s.Next()
	s.ToggleMark()
	n, err := s.CommitDelete()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.False(t, testutils.Exists(filepath.Join(dir, "a.txt")))
	assert.True(t, testutils.Exists(filepath.Join(dir, "b.txt")))
	assert.False(t, testutils.Exists(filepath.Join(dir, "c.txt")))
	assert.True(t, testutils.Exists(filepath.Join(dir, "notes.md")))
	require.Len(t, s.Items(), 1)
	assert.Equal(t, filepath.Join(dir, "b.txt"), s.Items()[0].Path)
}

func TestDeleteWorkflowRemovesDirectories(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestTree(t, dir, "node_modules/pkg/index.js", "src/main.go")
	s := New()

	searchWith(t, s, filepath.Join(dir, "node_*"))
	require.Len(t, s.Items(), 1)
	assert.False(t, s.Items()[0].IsFile)

	_, err := s.CommitDelete()
	require.NoError(t, err)
	assert.False(t, testutils.Exists(filepath.Join(dir, "node_modules")))
	assert.True(t, testutils.Exists(filepath.Join(dir, "src", "main.go")))
	assert.Empty(t, s.Items())
}

func TestDeleteWorkflowVanishedPath(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestTree(t, dir, "a.txt", "b.txt", "c.txt")
	s := New()
	searchWith(t, s, filepath.Join(dir, "*.txt"))
	before := append([]types.Entry(nil), s.Items()...)

	// b vanishes between listing and deletion.
	require.NoError(t, remove.FS{}.RemoveFile(filepath.Join(dir, "b.txt")))

	_, err := s.CommitDelete()
	require.Error(t, err)
	assert.True(t, errors.IsDeleteFailed(err))
	assert.Equal(t, before, s.Items())
	assert.False(t, testutils.Exists(filepath.Join(dir, "a.txt")))
	assert.True(t, testutils.Exists(filepath.Join(dir, "c.txt")))
}
