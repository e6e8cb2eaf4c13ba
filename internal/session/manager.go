package session

import (
	"fmt"
	"time"
)

const (
	// historyCap bounds each tab's command history to the most recent entries.
	historyCap = 200

	welcomeText = "Welcome to termctl. Connect the local bridge to execute real commands."
	clearedText = "Screen cleared."
)

// Manager is the tab-collection state machine. It is not safe for concurrent
// use; the UI event loop is the single writer.
type Manager struct {
	ids      IDSource
	tabs     []Tab
	active   int
	settings Settings

	backendLoaded bool
	lastFailed    *FailedCommand
}

// NewManager returns a manager with one fresh tab. A nil ids falls back to
// the production id source.
func NewManager(ids IDSource) *Manager {
	if ids == nil {
		ids = NewIDSource()
	}
	m := &Manager{ids: ids, settings: DefaultSettings()}
	m.tabs = []Tab{m.newTab("")}
	return m
}

func (m *Manager) newTab(name string) Tab {
	if name == "" {
		name = "Terminal"
	}
	return Tab{
		ID:               m.ids.TabID(),
		Name:             name,
		OutputBuffer:     []OutputLine{m.makeLine(welcomeText, LineInfo)},
		WorkingDirectory: "~",
	}
}

func (m *Manager) makeLine(text string, kind LineKind) OutputLine {
	return OutputLine{ID: m.ids.LineID(), Text: text, Kind: kind, Timestamp: time.Now()}
}

// Tabs exposes the live tab collection for rendering and persistence.
func (m *Manager) Tabs() []Tab { return m.tabs }

// IDs exposes the manager's id source so restored lines share the same
// uniqueness domain.
func (m *Manager) IDs() IDSource { return m.ids }

// ActiveIndex reports the active tab index, always in range.
func (m *Manager) ActiveIndex() int { return m.active }

// ActiveTab returns a pointer into the collection; never nil.
func (m *Manager) ActiveTab() *Tab { return &m.tabs[m.active] }

// Settings returns the shared settings value.
func (m *Manager) Settings() Settings { return m.settings }

func (m *Manager) tab(id string) *Tab {
	for i := range m.tabs {
		if m.tabs[i].ID == id {
			return &m.tabs[i]
		}
	}
	return nil
}

// AddTab appends a fresh idle tab and makes it active.
func (m *Manager) AddTab(name string) *Tab {
	m.tabs = append(m.tabs, m.newTab(name))
	m.active = len(m.tabs) - 1
	return &m.tabs[m.active]
}

// CloseTab removes a tab. Closing the last remaining tab is a no-op. The
// active index shifts down when a tab before it disappears and clamps when
// the active tab itself was removed.
func (m *Manager) CloseTab(id string) {
	if len(m.tabs) == 1 {
		return
	}
	idx := -1
	for i := range m.tabs {
		if m.tabs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	m.tabs = append(m.tabs[:idx], m.tabs[idx+1:]...)
	switch {
	case m.active >= len(m.tabs):
		m.active = len(m.tabs) - 1
	case m.active > idx:
		m.active--
	}
}

// RenameTab sets a tab's display name.
func (m *Manager) RenameTab(id, name string) {
	if t := m.tab(id); t != nil && name != "" {
		t.Name = name
	}
}

// SwitchTab activates the tab at index, clamped into range.
func (m *Manager) SwitchTab(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(m.tabs) {
		index = len(m.tabs) - 1
	}
	m.active = index
}

// AppendOutput appends one line to a tab's buffer and returns it.
func (m *Manager) AppendOutput(tabID, text string, kind LineKind) OutputLine {
	line := m.makeLine(text, kind)
	if t := m.tab(tabID); t != nil {
		t.OutputBuffer = append(t.OutputBuffer, line)
	}
	return line
}

// ClearOutput replaces a tab's buffer with a single "cleared" info line.
func (m *Manager) ClearOutput(tabID string) {
	if t := m.tab(tabID); t != nil {
		t.OutputBuffer = []OutputLine{m.makeLine(clearedText, LineInfo)}
	}
}

// RecordHistory appends command to a tab's history, removing any prior
// identical entry first and capping to the most recent entries.
func (m *Manager) RecordHistory(tabID, command string) {
	t := m.tab(tabID)
	if t == nil {
		return
	}
	next := make([]string, 0, len(t.CommandHistory)+1)
	for _, c := range t.CommandHistory {
		if c != command {
			next = append(next, c)
		}
	}
	next = append(next, command)
	if len(next) > historyCap {
		next = next[len(next)-historyCap:]
	}
	t.CommandHistory = next
}

// SetWorkingDirectory records a tab's working directory.
func (m *Manager) SetWorkingDirectory(tabID, dir string) {
	if t := m.tab(tabID); t != nil {
		t.WorkingDirectory = dir
	}
}

// SetRunning flips a tab's running flag.
func (m *Manager) SetRunning(tabID string, running bool) {
	if t := m.tab(tabID); t != nil {
		t.IsRunning = running
	}
}

// UpdateSettings shallow-merges the provided fields.
func (m *Manager) UpdateSettings(p SettingsPatch) {
	if p.Theme != nil {
		m.settings.Theme = *p.Theme
	}
	if p.FontSize != nil {
		m.settings.FontSize = *p.FontSize
	}
	if p.ShowTimestamps != nil {
		m.settings.ShowTimestamps = *p.ShowTimestamps
	}
}

// SetSettings replaces the settings wholesale (local-state restore).
func (m *Manager) SetSettings(s Settings) { m.settings = s }

// RestoreSession appends a brand-new tab built from a persisted session's
// name, history and working directory, with a synthetic "restored" info
// line, and activates it.
func (m *Manager) RestoreSession(name string, history []string, workingDir string) *Tab {
	t := Tab{
		ID:             m.ids.TabID(),
		Name:           name,
		CommandHistory: append([]string(nil), history...),
		OutputBuffer: []OutputLine{
			m.makeLine(fmt.Sprintf("Session %q restored. Working directory: %s", name, workingDir), LineInfo),
		},
		WorkingDirectory: workingDir,
	}
	m.tabs = append(m.tabs, t)
	m.active = len(m.tabs) - 1
	return &m.tabs[m.active]
}

// LoadFromBackend replaces the whole tab collection with backend sessions,
// at most once per authenticated lifetime. Returns true when a replacement
// happened. An empty session list arms the guard without touching tabs.
func (m *Manager) LoadFromBackend(tabs []Tab) bool {
	if m.backendLoaded {
		return false
	}
	m.backendLoaded = true
	if len(tabs) == 0 {
		return false
	}
	m.tabs = append([]Tab(nil), tabs...)
	m.active = 0
	return true
}

// ReplaceTabs installs tabs restored from the local cache. Used once at
// startup, before any backend load.
func (m *Manager) ReplaceTabs(tabs []Tab, active int) {
	if len(tabs) == 0 {
		return
	}
	m.tabs = append([]Tab(nil), tabs...)
	m.SwitchTab(active)
}

// ResetBackendGuard re-arms the restore-once guard on logout.
func (m *Manager) ResetBackendGuard() { m.backendLoaded = false }

// LastFailed returns the most recent failed-command fact, or nil.
func (m *Manager) LastFailed() *FailedCommand { return m.lastFailed }

// ClearLastFailed drops the failed-command fact (e.g. when dismissed).
func (m *Manager) ClearLastFailed() { m.lastFailed = nil }
