// Package store is the dual-tier session persistence layer: an ephemeral
// local cache (survives restarts, not identity-bound) and a durable remote
// store (identity-bound, cross-device).
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"termctl/internal/config"
	"termctl/internal/session"
)

const (
	localStateFile = "terminal-state.json"

	// localBufferCap truncates each tab's buffer on local save.
	localBufferCap = 50
)

// LocalState is the single local-cache record.
type LocalState struct {
	Tabs           []session.Tab    `json:"tabs"`
	ActiveTabIndex int              `json:"activeTabIndex"`
	Settings       session.Settings `json:"settings"`
}

// StatePath returns the local cache file path.
func StatePath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, localStateFile), nil
}

// LoadLocal reads the cached state. Any failure (missing file, bad JSON,
// unreadable config dir) degrades to "no prior state".
func LoadLocal() (LocalState, bool) {
	p, err := StatePath()
	if err != nil {
		return LocalState{}, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return LocalState{}, false
	}
	var st LocalState
	if err := json.Unmarshal(b, &st); err != nil {
		return LocalState{}, false
	}
	if len(st.Tabs) == 0 {
		return LocalState{}, false
	}
	return st, true
}

// SaveLocal writes the state best-effort, truncating each tab's buffer to
// the most recent lines. Write failures are ignored.
func SaveLocal(st LocalState) {
	p, err := StatePath()
	if err != nil {
		return
	}
	trimmed := make([]session.Tab, len(st.Tabs))
	for i, t := range st.Tabs {
		if n := len(t.OutputBuffer); n > localBufferCap {
			t.OutputBuffer = append([]session.OutputLine(nil), t.OutputBuffer[n-localBufferCap:]...)
		}
		trimmed[i] = t
	}
	st.Tabs = trimmed
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(p, b, 0o644)
}

// LoadLocalSettings re-reads only the settings section, used by the
// hot-reload watcher while the TUI is running. Unlike LoadLocal it accepts
// a state file with no tabs, which `termctl settings` can produce on a
// fresh install.
func LoadLocalSettings() (session.Settings, bool) {
	p, err := StatePath()
	if err != nil {
		return session.Settings{}, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return session.Settings{}, false
	}
	var st LocalState
	if err := json.Unmarshal(b, &st); err != nil || st.Settings.Theme == "" {
		return session.Settings{}, false
	}
	return st.Settings, true
}
