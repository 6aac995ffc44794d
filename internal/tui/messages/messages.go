package messages

import "eradicate/internal/watch"

// TickMsg is the periodic refresh
type TickMsg struct{}

// ChangeMsg reports a filesystem change under a watched directory
type ChangeMsg struct {
	Change watch.Change
}

// WatchClosedMsg is sent once the watcher's channel has been closed
type WatchClosedMsg struct{}
