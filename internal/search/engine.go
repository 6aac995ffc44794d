// Package search expands shell-style glob patterns against the filesystem.
package search

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"eradicate/internal/errors"
	"eradicate/internal/log"
	"eradicate/pkg/types"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"
)

// metaChars are the characters that make a path component a pattern
// rather than a literal name.
const metaChars = "*?[{\\"

// fold is Unicode case folding, applied to both sides when matching case
// insensitively.
var fold = cases.Fold()

// Engine matches patterns by walking from the pattern's literal prefix.
type Engine struct{}

// New creates a search engine.
func New() *Engine {
	return &Engine{}
}

// Search returns an entry for every existing path matching pattern, in
// lexical walk order. Paths that cannot be stat'ed are left out.
func (e *Engine) Search(pattern string, caseSensitive bool) ([]types.Entry, error) {
	if pattern == "" {
		return nil, errors.NewPatternError("empty pattern", pattern, nil)
	}

	q, err := compile(pattern, caseSensitive)
	if err != nil {
		return nil, err
	}

	logger := log.LogWithFields(log.F("pattern", pattern), log.F("case_sensitive", caseSensitive))
	logger.Debugf("walking %s (depth %d, recursive %t)", q.root, q.depth, q.recursive)

	if q.literal {
		entry, statErr := types.NewEntry(filepath.FromSlash(q.full))
		if statErr != nil {
			return []types.Entry{}, nil
		}
		if q.dirsOnly && entry.IsFile {
			return []types.Entry{}, nil
		}
		return []types.Entry{entry}, nil
	}

	entries := []types.Entry{}
	skipped := 0
	walkErr := filepath.WalkDir(q.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories drop out like unreadable entries.
			skipped++
			return nil
		}
		if path == q.root {
			return nil
		}

		rel, relErr := filepath.Rel(q.root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		candidate := q.prefix + rel

		if q.matches(candidate) {
			entry, statErr := types.NewEntry(filepath.FromSlash(candidate))
			switch {
			case statErr != nil:
				skipped++
			case q.dirsOnly && entry.IsFile:
			default:
				entries = append(entries, entry)
			}
		}

		if d.IsDir() && !q.recursive && strings.Count(rel, "/")+1 >= q.depth {
			return fs.SkipDir
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, "search %s", pattern)
	}

	logger.Debugf("matched %d entries, skipped %d", len(entries), skipped)
	return entries, nil
}

// query is a compiled pattern plus the walk it needs.
type query struct {
	full          string
	matchers      []glob.Glob
	root          string
	prefix        string
	depth         int
	recursive     bool
	literal       bool
	dirsOnly      bool
	caseSensitive bool
}

func compile(pattern string, caseSensitive bool) (*query, error) {
	slash := filepath.ToSlash(pattern)
	q := &query{caseSensitive: caseSensitive}

	if len(slash) > 1 && strings.HasSuffix(slash, "/") {
		q.dirsOnly = true
		slash = strings.TrimRight(slash, "/")
		if slash == "" {
			slash = "/"
		}
	}
	q.full = slash

	if err := checkBalance(slash); err != nil {
		return nil, errors.NewPatternError("invalid pattern", pattern, err)
	}

	source := slash
	if !caseSensitive {
		source = fold.String(source)
	}
	// gobwas requires "**/" to cross at least one directory, so each
	// combination of "**/" segments dropped gets its own matcher.
	for _, variant := range expandDoubleStar(source) {
		matcher, err := glob.Compile(variant, '/')
		if err != nil {
			return nil, errors.NewPatternError("invalid pattern", pattern, err)
		}
		q.matchers = append(q.matchers, matcher)
	}

	if !strings.ContainsAny(slash, metaChars) {
		q.literal = true
		return q, nil
	}

	comps := strings.Split(slash, "/")
	n := 0
	for n < len(comps) && !strings.ContainsAny(comps[n], metaChars) {
		n++
	}

	q.root = strings.Join(comps[:n], "/")
	if n > 0 {
		q.prefix = q.root + "/"
	}
	if q.root == "" {
		if n > 0 {
			q.root = "/"
		} else {
			q.root = "."
		}
	}
	q.root = filepath.FromSlash(q.root)

	rest := comps[n:]
	q.depth = len(rest)
	for _, c := range rest {
		if strings.Contains(c, "**") {
			q.recursive = true
			break
		}
	}
	return q, nil
}

func (q *query) matches(candidate string) bool {
	if !q.caseSensitive {
		candidate = fold.String(candidate)
	}
	for _, m := range q.matchers {
		if m.Match(candidate) {
			return true
		}
	}
	return false
}

// checkBalance rejects unbalanced braces and a dangling escape, which gobwas
// would otherwise accept as literals.
func checkBalance(pattern string) error {
	depth := 0
	inClass := false
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\':
			if i == len(pattern)-1 {
				return fmt.Errorf("trailing escape")
			}
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '{':
			depth++
		case c == '}':
			if depth == 0 {
				return fmt.Errorf("unexpected '}' at %d", i)
			}
			depth--
		}
	}
	if depth > 0 {
		return fmt.Errorf("unclosed '{'")
	}
	return nil
}

// expandDoubleStar returns pattern plus every variant with one or more
// whole-component "**/" segments removed.
func expandDoubleStar(pattern string) []string {
	for i := 0; i+3 <= len(pattern); i++ {
		if pattern[i:i+3] != "**/" || (i > 0 && pattern[i-1] != '/') {
			continue
		}
		head := pattern[:i]
		var out []string
		for _, tail := range expandDoubleStar(pattern[i+3:]) {
			out = append(out, head+"**/"+tail, head+tail)
		}
		return out
	}
	return []string{pattern}
}
