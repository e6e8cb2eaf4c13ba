package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"termctl/internal/palette"
)

// renderPaletteOverlay draws the command palette at the top of the screen:
// an input echo line plus the filtered command list with source tags.
func renderPaletteOverlay(th designTheme, width int, query string, cmds []palette.Command, sel int) string {
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	border := th.borderStyle()
	text := lipglossFG(th.Text)
	dim := lipglossFG(th.Muted).Render
	hl := th.accentBold().Render
	prompt := th.accentBold().Render("›")

	srcStyle := map[palette.Source]lipgloss.Style{
		palette.SourceHistory: lipglossFG(th.Cyan),
		palette.SourceAI:      lipglossFG(th.Magenta),
		palette.SourceCommon:  lipglossFG(th.Muted),
	}

	var b strings.Builder
	b.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")

	in := fmt.Sprintf(" %s %s", prompt, text.Render(query))
	if xansi.StringWidth(in) > inner {
		in = xansi.Truncate(in, inner, "")
	}
	writeBoxLine(&b, border, th, inner, in)

	maxItems := 10
	if len(cmds) > maxItems {
		cmds = cmds[:maxItems]
		if sel >= maxItems {
			sel = maxItems - 1
		}
	}
	if len(cmds) == 0 {
		writeBoxLine(&b, border, th, inner, "  no matches")
	}
	for i, c := range cmds {
		tag := srcStyle[c.Source].Render(fmt.Sprintf("%-7s", c.Source))
		line := fmt.Sprintf("  %s %-28s %s", tag, c.Text, dim(c.Description))
		if xansi.StringWidth(line) > inner {
			line = xansi.Truncate(line, inner, "")
		}
		if i == sel {
			line = hl(line)
		}
		writeBoxLine(&b, border, th, inner, line)
	}
	b.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	b.WriteString(dim("  ↑/↓ select · Enter run · Esc close") + "\n")
	return b.String()
}
