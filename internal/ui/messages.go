package ui

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	"termctl/internal/bridge"
	"termctl/internal/store"
)

// Bubble Tea messages

// bridge health poll result
type healthMsg struct {
	up      bool
	checked time.Time
}

// synchronous execute finished
type execFinishedMsg struct {
	tabID   string
	command string
	result  bridge.ExecResult
	err     error
}

// streaming execute started; the orchestrator starts draining ch
type streamStartedMsg struct {
	tabID  string
	ch     <-chan bridge.StreamEvent
	cancel context.CancelFunc
	err    error
}

// one drained stream event; closed reports channel closure (terminal event
// already seen, or silent cancellation)
type streamEventMsg struct {
	tabID  string
	ev     bridge.StreamEvent
	closed bool
}

// remote sessions fetched for the restore-once load or the session overlay
type sessionsLoadedMsg struct {
	sessions []store.PersistedSession
	err      error
}

// named save finished
type sessionSavedMsg struct {
	name string
	err  error
}

// remote delete finished
type sessionDeletedMsg struct {
	id  string
	err error
}

// file browser listing result
type fsEntriesMsg struct {
	path    string
	entries []bridge.FileEntry
	err     error
}

// settings file watcher lifecycle
type watchStartedMsg struct {
	w  *fsnotify.Watcher
	ch <-chan struct{}
}
type settingsChangedMsg struct{}

// periodic tick for the status bar clock
type tickMsg time.Time
