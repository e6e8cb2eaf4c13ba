package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	runewidth "github.com/mattn/go-runewidth"

	"termctl/internal/session"
)

// tabZoneID names the clickable zone for the i-th tab.
func tabZoneID(i int) string { return fmt.Sprintf("term.tab.%d", i) }

// renderTabs draws the tab bar. Each tab is a clickable zone; the running
// dot marks tabs with an in-flight command.
func renderTabs(th designTheme, width int, tabs []session.Tab, active int) string {
	activeStyle := lipgloss.NewStyle().Bold(true).
		Foreground(th.OnAccent).
		Background(th.Primary).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(th.Secondary).
		Background(th.Bg).
		Padding(0, 1)
	sep := lipgloss.NewStyle().Foreground(th.Border).Render("│")

	parts := make([]string, 0, len(tabs))
	for i, t := range tabs {
		name := runewidth.Truncate(t.Name, 16, "…")
		label := fmt.Sprintf("%d %s", i+1, name)
		if t.IsRunning {
			label += " ●"
		}
		var cell string
		if i == active {
			cell = activeStyle.Render(label)
		} else {
			cell = inactiveStyle.Render(label)
		}
		parts = append(parts, zone.Mark(tabZoneID(i), cell))
	}
	parts = append(parts, zone.Mark("term.tab.new", inactiveStyle.Render("+")))

	line := strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(th.Bg).Width(width).Render(line)
}
