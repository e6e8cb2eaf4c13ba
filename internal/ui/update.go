package ui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"termctl/internal/intel"
	"termctl/internal/palette"
	"termctl/internal/session"
	"termctl/internal/store"
)

// healthInterval is how often the bridge is re-probed.
const healthInterval = 5 * time.Second

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for i := range m.mgr.Tabs() {
				if zone.Get(tabZoneID(i)).InBounds(msg) {
					m.mgr.SwitchTab(i)
					m.hist.Reset()
					m.refreshSuggestions()
					m.refreshViewport()
					return m, nil
				}
			}
			if zone.Get("term.tab.new").InBounds(msg) {
				m.mgr.AddTab("")
				m.hist.Reset()
				m.refreshSuggestions()
				m.refreshViewport()
				m.scheduleAutoSave()
				return m, nil
			}
			if zone.Get("term.input").InBounds(msg) {
				if !m.ti.Focused() {
					m.ti.Focus()
				}
				return m, nil
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := msg.Width - 2
		if inner < 10 {
			inner = 10
		}
		tiw := inner - 4 // account for " $ " prompt
		if tiw < 5 {
			tiw = 5
		}
		m.ti.Width = tiw
		m.vp.Width = msg.Width
		m.vp.Height = maxInt(3, msg.Height-6)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case healthMsg:
		m.bridgeUp = msg.up
		m.bridgeKnown = true
		m.lastChecked = msg.checked
		return m, nil

	case execFinishedMsg:
		if msg.err != nil {
			m.mgr.FailCommand(msg.tabID, msg.err)
		} else {
			m.mgr.ApplyExecResult(msg.tabID, msg.command, msg.result.Stdout, msg.result.Stderr, msg.result.ExitCode)
		}
		m.refreshAI()
		m.refreshViewport()
		m.scheduleAutoSave()
		return m, nil

	case streamStartedMsg:
		if msg.err != nil {
			m.mgr.FailCommand(msg.tabID, msg.err)
			m.refreshViewport()
			return m, nil
		}
		m.streamCh = msg.ch
		m.streamCancel = msg.cancel
		m.streamTab = msg.tabID
		return m, waitStreamCmd(msg.tabID, msg.ch)

	case streamEventMsg:
		if msg.tabID != m.streamTab || m.streamCh == nil {
			return m, nil
		}
		if msg.closed {
			// terminal event already applied, or silent cancellation
			m.mgr.SetRunning(msg.tabID, false)
			if m.streamCancel != nil {
				m.streamCancel()
			}
			m.streamCh = nil
			m.streamCancel = nil
			m.streamTab = ""
			m.refreshViewport()
			m.scheduleAutoSave()
			return m, nil
		}
		switch {
		case msg.ev.Err != nil:
			m.mgr.FailCommand(msg.tabID, msg.ev.Err)
		case msg.ev.Exit:
			m.mgr.FinishStream(msg.tabID, msg.ev.Code)
		default:
			m.mgr.AppendOutput(msg.tabID, msg.ev.Line, session.LineOutput)
		}
		m.refreshViewport()
		return m, waitStreamCmd(msg.tabID, m.streamCh)

	case sessionsLoadedMsg:
		if msg.err != nil {
			m.ssNotice = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.ssList = msg.sessions
		if m.ssIndex >= len(m.ssList) {
			m.ssIndex = maxInt(0, len(m.ssList)-1)
		}
		// first successful load replaces local tabs, once per sign-in
		if m.mgr.LoadFromBackend(store.SessionTabs(msg.sessions, m.mgr.IDs())) {
			m.hist.Reset()
			m.refreshSuggestions()
			m.refreshViewport()
		}
		return m, nil

	case sessionSavedMsg:
		if msg.err != nil {
			m.ssNotice = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.ssNotice = "saved " + strconv.Quote(msg.name)
		return m, loadSessionsCmd(m.sessions, m.owner)

	case sessionDeletedMsg:
		if msg.err != nil {
			m.ssNotice = "delete failed: " + msg.err.Error()
			return m, nil
		}
		m.ssNotice = "deleted"
		return m, loadSessionsCmd(m.sessions, m.owner)

	case fsEntriesMsg:
		if msg.path != m.fb.path {
			return m, nil
		}
		m.fb.loading = false
		m.fb.err = msg.err
		m.fb.entries = msg.entries
		m.fb.index = 0
		return m, nil

	case watchStartedMsg:
		m.watcher = msg.w
		m.watchCh = msg.ch
		return m, watchSubscribeCmd(m.watchCh)

	case settingsChangedMsg:
		if s, ok := store.LoadLocalSettings(); ok {
			m.mgr.SetSettings(s)
			m.refreshViewport()
		}
		return m, watchSubscribeCmd(m.watchCh)

	case tickMsg:
		m.now = time.Time(msg)
		var cmd tea.Cmd
		if m.lastChecked.IsZero() || time.Since(m.lastChecked) >= healthInterval {
			m.lastChecked = time.Now()
			cmd = healthCmd(m.br)
		}
		if cmd != nil {
			return m, tea.Batch(tickCmd(), cmd)
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C cancels a running command first, quits otherwise.
	if msg.String() == "ctrl+c" {
		if m.streamCancel != nil {
			m.streamCancel()
			return m, nil
		}
		m.shutdown()
		m.quitting = true
		return m, tea.Quit
	}

	if m.paletteOpen {
		return m.updatePalette(msg)
	}
	if m.ssOpen {
		return m.updateSessions(msg)
	}
	if m.fbOpen {
		return m.updateFileBrowser(msg)
	}

	if m.renaming {
		switch msg.String() {
		case "esc":
			m.renaming = false
			return m, nil
		case "enter":
			if name := strings.TrimSpace(m.rnInput.Value()); name != "" {
				m.mgr.RenameTab(m.mgr.ActiveTab().ID, name)
				m.scheduleAutoSave()
			}
			m.renaming = false
			return m, nil
		}
		var cmd tea.Cmd
		m.rnInput, cmd = m.rnInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		if m.streamCancel != nil {
			m.streamCancel()
		}
		return m, nil
	case "ctrl+p":
		m.paletteOpen = true
		m.paletteQuery = ""
		m.paletteIndex = 0
		tab := m.mgr.ActiveTab()
		m.paletteAll = palette.Build(tab.CommandHistory, tab.WorkingDirectory)
		return m, nil
	case "ctrl+t":
		m.mgr.AddTab("")
		m.hist.Reset()
		m.refreshSuggestions()
		m.refreshViewport()
		m.scheduleAutoSave()
		return m, nil
	case "ctrl+w":
		m.mgr.CloseTab(m.mgr.ActiveTab().ID)
		m.hist.Reset()
		m.refreshSuggestions()
		m.refreshViewport()
		m.scheduleAutoSave()
		return m, nil
	case "ctrl+right":
		m.mgr.SwitchTab(m.mgr.ActiveIndex() + 1)
		m.hist.Reset()
		m.refreshSuggestions()
		m.refreshViewport()
		return m, nil
	case "ctrl+left":
		m.mgr.SwitchTab(m.mgr.ActiveIndex() - 1)
		m.hist.Reset()
		m.refreshSuggestions()
		m.refreshViewport()
		return m, nil
	case "ctrl+r":
		m.renaming = true
		m.rnInput.SetValue(m.mgr.ActiveTab().Name)
		m.rnInput.CursorEnd()
		m.rnInput.Focus()
		return m, nil
	case "ctrl+g":
		m.aiOpen = !m.aiOpen
		m.refreshAI()
		return m, nil
	case "ctrl+f":
		m.fbOpen = true
		start := m.mgr.ActiveTab().WorkingDirectory
		if start == "" || start == "~" {
			start = "/"
		}
		return m.browseTo(start)
	case "ctrl+s":
		m.ssOpen = true
		m.ssNotice = ""
		if m.sessions != nil {
			return m, loadSessionsCmd(m.sessions, m.owner)
		}
		return m, nil
	case "up":
		tab := m.mgr.ActiveTab()
		if v, ok := m.hist.Up(tab.CommandHistory); ok {
			m.ti.SetValue(v)
			m.ti.CursorEnd()
		}
		return m, nil
	case "down":
		tab := m.mgr.ActiveTab()
		if v, ok := m.hist.Down(tab.CommandHistory); ok {
			m.ti.SetValue(v)
			m.ti.CursorEnd()
		} else {
			m.ti.SetValue("")
		}
		return m, nil
	case "tab":
		// ghost-text completion: history first, then the static table
		tab := m.mgr.ActiveTab()
		if rest := intel.Complete(m.ti.Value(), tab.CommandHistory); rest != "" {
			m.ti.SetValue(m.ti.Value() + rest)
			m.ti.CursorEnd()
		}
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	if msg.Type == tea.KeyEnter {
		val := m.ti.Value()
		if strings.TrimSpace(strings.ToLower(val)) == "exit" {
			m.shutdown()
			m.quitting = true
			return m, tea.Quit
		}
		return m.submit(val)
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.refreshAI()
	return m, cmd
}

func (m model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtered := palette.Filter(m.paletteQuery, m.paletteAll)
	switch msg.String() {
	case "esc":
		m.paletteOpen = false
		return m, nil
	case "up":
		if len(filtered) > 0 {
			m.paletteIndex--
			if m.paletteIndex < 0 {
				m.paletteIndex = len(filtered) - 1
			}
		}
		return m, nil
	case "down":
		if len(filtered) > 0 {
			m.paletteIndex++
			if m.paletteIndex >= len(filtered) {
				m.paletteIndex = 0
			}
		}
		return m, nil
	case "enter":
		if m.paletteIndex >= 0 && m.paletteIndex < len(filtered) {
			m.paletteOpen = false
			return m.submit(filtered[m.paletteIndex].Text)
		}
		m.paletteOpen = false
		return m, nil
	case "backspace":
		if m.paletteQuery != "" {
			m.paletteQuery = m.paletteQuery[:len(m.paletteQuery)-1]
			m.paletteIndex = 0
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.paletteQuery += string(msg.Runes)
		m.paletteIndex = 0
	}
	return m, nil
}

// submit routes input through the session pipeline and dispatches bridge
// work as told.
func (m model) submit(input string) (tea.Model, tea.Cmd) {
	tab := m.mgr.ActiveTab()
	if tab.IsRunning {
		m.notice = "a command is already running, Esc cancels it"
		return m, nil
	}
	command := strings.TrimSpace(input)
	d := m.mgr.Submit(tab.ID, input, m.bridgeUp)
	m.ti.SetValue("")
	m.hist.Reset()
	m.notice = ""
	m.refreshSuggestions()
	m.refreshAI()
	m.refreshViewport()

	var cmd tea.Cmd
	switch d {
	case session.DispatchSync:
		cmd = executeCmd(m.br, tab.ID, command)
	case session.DispatchStream:
		cmd = startStreamCmd(m.br, tab.ID, command)
	}
	if command != "" {
		m.scheduleAutoSave()
	}
	return m, cmd
}

// refreshViewport re-renders the active tab's buffer and pins to the bottom.
func (m *model) refreshViewport() {
	settings := m.mgr.Settings()
	th := themeFor(settings.Theme)
	m.vp.SetContent(renderBuffer(th, settings, m.mgr.ActiveTab().OutputBuffer))
	m.vp.GotoBottom()
}

// shutdown flushes pending saves and releases the watcher before quit.
func (m *model) shutdown() {
	m.saver.Stop()
	st := store.LocalState{
		Tabs:           m.mgr.Tabs(),
		ActiveTabIndex: m.mgr.ActiveIndex(),
		Settings:       m.mgr.Settings(),
	}
	store.SaveLocal(st)
	if m.streamCancel != nil {
		m.streamCancel()
	}
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}
