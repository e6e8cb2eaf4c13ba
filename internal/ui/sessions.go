package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termctl/internal/store"
)

// updateSessions handles keys while the session manager overlay is open.
// The overlay requires a signed-in identity; opening it anonymous shows a
// hint instead.
func (m model) updateSessions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ssNaming {
		switch msg.String() {
		case "esc":
			m.ssNaming = false
			m.ssName.SetValue("")
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.ssName.Value())
			if name == "" {
				return m, nil
			}
			m.ssNaming = false
			m.ssName.SetValue("")
			tab := *m.mgr.ActiveTab()
			ps := store.SnapshotTab(tab, m.owner, time.Now())
			ps.Name = name
			return m, saveSessionCmd(m.sessions, ps)
		}
		var cmd tea.Cmd
		m.ssName, cmd = m.ssName.Update(msg)
		return m, cmd
	}

	if msg.String() == "esc" {
		m.ssOpen = false
		m.ssNotice = ""
		return m, nil
	}
	if m.sessions == nil {
		return m, nil
	}

	switch msg.String() {
	case "up":
		if m.ssIndex > 0 {
			m.ssIndex--
		}
		return m, nil
	case "down":
		if m.ssIndex < len(m.ssList)-1 {
			m.ssIndex++
		}
		return m, nil
	case "s":
		m.ssNaming = true
		m.ssName.SetValue("")
		m.ssName.Focus()
		return m, nil
	case "r":
		return m, loadSessionsCmd(m.sessions, m.owner)
	case "d":
		if m.ssIndex >= 0 && m.ssIndex < len(m.ssList) {
			return m, deleteSessionCmd(m.sessions, m.owner, m.ssList[m.ssIndex].ID)
		}
		return m, nil
	case "enter":
		if m.ssIndex >= 0 && m.ssIndex < len(m.ssList) {
			ps := m.ssList[m.ssIndex]
			m.mgr.RestoreSession(ps.Name, ps.CommandHistory, ps.WorkingDirectory)
			m.ssOpen = false
			m.ssNotice = ""
			m.refreshSuggestions()
			m.scheduleAutoSave()
			m.refreshViewport()
		}
		return m, nil
	}
	return m, nil
}

// renderSessionOverlay draws the saved-session list with save/restore
// controls.
func (m model) renderSessionOverlay(th designTheme, width int) string {
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	border := th.borderStyle()
	dim := lipglossFG(th.Muted)
	hl := th.accentBold().Render

	var b strings.Builder
	b.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	writeBoxLine(&b, border, th, inner, hl(" Sessions"))

	switch {
	case m.sessions == nil:
		writeBoxLine(&b, border, th, inner, dim.Render("  sign in with `termctl login` to sync sessions"))
	case m.ssNaming:
		writeBoxLine(&b, border, th, inner, truncateTo(m.ssName.View(), inner))
	case len(m.ssList) == 0:
		writeBoxLine(&b, border, th, inner, dim.Render("  no saved sessions"))
	default:
		for i, s := range m.ssList {
			line := fmt.Sprintf("  %-24s %-20s %s",
				truncateTo(s.Name, 24),
				s.WorkingDirectory,
				dim.Render(s.LastUsedAt.Format("2006-01-02 15:04")))
			line = truncateTo(line, inner)
			if i == m.ssIndex {
				line = hl(line)
			}
			writeBoxLine(&b, border, th, inner, line)
		}
	}
	if m.ssNotice != "" {
		writeBoxLine(&b, border, th, inner, lipglossFG(th.Info).Render(truncateTo("  "+m.ssNotice, inner)))
	}
	b.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	b.WriteString(dim.Render("  Enter restore · s save current · d delete · r refresh · Esc close") + "\n")
	return b.String()
}
