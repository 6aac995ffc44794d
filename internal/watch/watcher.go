// Package watch notices filesystem changes around the current listing so the
// front end can tell the user the entries may be out of date. It never
// touches application state.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"eradicate/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change is a filesystem event under a watched directory
type Change struct {
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Watcher monitors directories for changes using fsnotify
type Watcher struct {
	// Directories being watched
	directories []string

	// Channel delivering changes
	changes chan Change

	// Channel to signal stop
	stopChan chan struct{}

	fsWatcher *fsnotify.Watcher

	// Guards running and directories
	mutex sync.RWMutex

	running bool
	stopped bool
}

// New creates a new directory watcher
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		changes:   make(chan Change, 16),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// SetDirectories replaces the watched set. Directories that cannot be
// watched (vanished, permission denied) are skipped and logged.
func (w *Watcher) SetDirectories(dirs []string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	for _, dir := range w.directories {
		_ = w.fsWatcher.Remove(dir)
	}
	w.directories = w.directories[:0]

	for _, dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			log.LogWithFields(log.F("directory", dir), log.F("error", err)).Debug("cannot watch directory")
			continue
		}
		w.directories = append(w.directories, dir)
	}
	log.LogWithFields(log.F("count", len(w.directories))).Debug("watching directories")
}

// Changes returns the channel that delivers filesystem changes
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins forwarding fsnotify events
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	if w.stopped {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.running = true
	w.mutex.Unlock()

	go func() {
		// Only this goroutine sends on changes, so only it may close it.
		defer close(w.changes)
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				// Permission changes do not affect the listing.
				if event.Op == fsnotify.Chmod {
					continue
				}

				change := Change{Path: event.Name, Op: event.Op, Timestamp: time.Now()}
				// One pending change is enough to flag staleness.
				select {
				case w.changes <- change:
				default:
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop halts the watcher. Changes is closed once the forwarding goroutine
// has exited.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	w.running = false
	w.stopped = true
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Directories returns the directories being watched
func (w *Watcher) Directories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirsCopy := make([]string, len(w.directories))
	copy(dirsCopy, w.directories)
	return dirsCopy
}

// ParentDirs returns the distinct parent directories of paths in first-seen
// order, at most limit of them. A limit of 0 means none.
func ParentDirs(paths []string, limit int) []string {
	seen := make(map[string]struct{})
	dirs := []string{}
	for _, p := range paths {
		if len(dirs) >= limit {
			break
		}
		dir := filepath.Dir(p)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}
