package ui

import (
	"fmt"
	"strings"
	"time"

	zone "github.com/lrstanley/bubblezone"

	"termctl/internal/palette"
	appver "termctl/internal/version"
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	settings := m.mgr.Settings()
	th := themeFor(settings.Theme)

	b := &strings.Builder{}
	b.WriteString(renderTabs(th, m.width, m.mgr.Tabs(), m.mgr.ActiveIndex()))
	b.WriteString("\n")

	switch {
	case m.paletteOpen:
		filtered := palette.Filter(m.paletteQuery, m.paletteAll)
		b.WriteString(renderPaletteOverlay(th, m.width, m.paletteQuery, filtered, m.paletteIndex))
	case m.ssOpen:
		b.WriteString(m.renderSessionOverlay(th, m.width))
	case m.fbOpen:
		b.WriteString(m.renderFileBrowser(th, m.width))
	default:
		b.WriteString(m.vp.View())
		b.WriteString("\n")
	}

	if m.aiOpen && !m.paletteOpen {
		b.WriteString(m.renderAIPanel(th, m.width))
	}

	if m.notice != "" {
		b.WriteString("  " + lipglossFG(th.Info).Render(m.notice) + "\n")
	}

	input := m.ti.View()
	if m.renaming {
		input = m.rnInput.View()
	}
	b.WriteString(zone.Mark("term.input", renderInputUI(th, m.width, input)))
	b.WriteString(m.renderStatusBar(th))
	return zone.Scan(b.String())
}

// renderStatusBar builds the one-line status bar under the input.
func (m model) renderStatusBar(th designTheme) string {
	now := m.now
	if now.IsZero() {
		now = time.Now()
	}

	left := []string{m.bridgeStatusText()}
	if wd := m.mgr.ActiveTab().WorkingDirectory; wd != "" {
		left = append(left, wd)
	}

	right := []string{"v" + appver.AppVersion}
	if m.owner != "" {
		right = append(right, m.owner)
	}
	right = append(right, now.Format("15:04:05"))

	return renderStatusBarStyled(th, m.width, left, right)
}

// bridgeStatusText renders the connection indicator: connecting until the
// first probe answers, then connected or disconnected with the probe time.
func (m model) bridgeStatusText() string {
	if !m.bridgeKnown {
		return "◌ connecting…"
	}
	mark := "✗ disconnected"
	if m.bridgeUp {
		mark = "● connected"
	}
	if m.lastChecked.IsZero() {
		return mark
	}
	return fmt.Sprintf("%s %s", mark, m.lastChecked.Format("15:04:05"))
}
