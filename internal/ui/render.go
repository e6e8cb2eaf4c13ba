package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func lipglossFG(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// truncateTo trims s to the given display width, ANSI-aware.
func truncateTo(s string, w int) string {
	if xansi.StringWidth(s) <= w {
		return s
	}
	return xansi.Truncate(s, w, "…")
}

// writeBoxLine writes one bordered, background-filled line of an overlay box.
func writeBoxLine(b *strings.Builder, border lipgloss.Style, th designTheme, inner int, content string) {
	b.WriteString(border.Render("│"))
	b.WriteString(th.fillBG().Width(inner).Render(content))
	b.WriteString(border.Render("│") + "\n")
}

// renderInputUI draws the single-line bordered input box at the given width.
func renderInputUI(th designTheme, width int, content string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	if w < 10 {
		w = 10
	}
	inner := w - 2
	cw := xansi.StringWidth(content)
	if cw > inner {
		cw = inner
	}
	pad := inner - cw
	border := th.borderStyle()
	var sb strings.Builder
	sb.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	sb.WriteString(border.Render("│"))
	sb.WriteString(content)
	if pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(border.Render("│") + "\n")
	sb.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	return sb.String()
}

// renderStatusBarStyled lays out chip segments left and right on a filled
// bar, dropping segments from the inside out when they do not fit.
func renderStatusBarStyled(th designTheme, width int, leftParts, rightParts []string) string {
	w := width
	if w <= 0 {
		w = 100
	}

	statusBarStyle := th.statusBarBase()
	keyStyle := th.chipStyle(th.Primary).Inherit(statusBarStyle).MarginRight(1)

	nugget := lipgloss.NewStyle().Foreground(th.OnAccent).Padding(0, 1)
	nuggetBG := []lipgloss.Color{th.Primary, th.Blue, th.Yellow, th.Magenta}

	leftItems := make([]string, 0, len(leftParts))
	for i, s := range leftParts {
		if i == 0 {
			leftItems = append(leftItems, keyStyle.Render(s))
			continue
		}
		bg := nuggetBG[(i-1)%len(nuggetBG)]
		leftItems = append(leftItems, nugget.Background(bg).Render(s))
	}
	leftStr := strings.Join(leftItems, "")

	rightItems := make([]string, 0, len(rightParts))
	for i, s := range rightParts {
		bg := nuggetBG[i%len(nuggetBG)]
		rightItems = append(rightItems, nugget.Background(bg).Render(s))
	}
	rightStr := strings.Join(rightItems, "")

	lw := xansi.StringWidth(leftStr)
	rw := xansi.StringWidth(rightStr)

	rebuild := func(parts []string) (string, int) {
		s := strings.Join(parts, "")
		return s, xansi.StringWidth(s)
	}
	for lw+rw > w && len(leftItems) > 1 {
		leftItems = leftItems[:len(leftItems)-1]
		leftStr, lw = rebuild(leftItems)
	}
	for lw+rw > w && len(rightItems) > 0 {
		rightItems = rightItems[:len(rightItems)-1]
		rightStr, rw = rebuild(rightItems)
	}

	centerWidth := w - lw - rw
	if centerWidth < 0 {
		centerWidth = 0
	}
	center := lipgloss.NewStyle().Inherit(statusBarStyle).Width(centerWidth).Render("")

	return statusBarStyle.Width(w).Render(leftStr + center + rightStr)
}

// helper used locally for layout
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
