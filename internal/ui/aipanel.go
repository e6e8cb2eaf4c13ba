package ui

import (
	"fmt"
	"strings"

	"termctl/internal/intel"
)

// refreshAI recomputes assistant content: suggestions follow the input line,
// fixes follow the most recent failed command.
func (m *model) refreshAI() {
	if !m.aiOpen {
		return
	}
	m.aiSuggestions = intel.Suggest(m.ti.Value())
	m.aiFixes = nil
	if f := m.mgr.LastFailed(); f != nil {
		m.aiFixes = intel.AnalyzeError(f.Command, f.Stderr, f.ExitCode)
	}
}

// renderAIPanel draws the assistant box: fixes for the last failure first,
// then suggestions for whatever is being typed.
func (m model) renderAIPanel(th designTheme, width int) string {
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	border := th.borderStyle()
	dim := lipglossFG(th.Muted)
	title := th.accentBold().Render

	var b strings.Builder
	b.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	writeBoxLine(&b, border, th, inner, title(" Assistant"))

	writeSuggestion := func(s intel.Suggestion) {
		line := fmt.Sprintf("  %-36s %s", s.Command, dim.Render(s.Description))
		line = truncateTo(line, inner)
		writeBoxLine(&b, border, th, inner, line)
	}

	if f := m.mgr.LastFailed(); f != nil && len(m.aiFixes) > 0 {
		head := fmt.Sprintf("  `%s` failed (exit %d), try:", f.Command, f.ExitCode)
		writeBoxLine(&b, border, th, inner, lipglossFG(th.ErrText).Render(truncateTo(head, inner)))
		for _, s := range m.aiFixes {
			writeSuggestion(s)
		}
	}

	if len(m.aiSuggestions) > 0 {
		writeBoxLine(&b, border, th, inner, dim.Render("  suggestions"))
		for _, s := range m.aiSuggestions {
			writeSuggestion(s)
		}
	}

	if len(m.aiFixes) == 0 && len(m.aiSuggestions) == 0 {
		writeBoxLine(&b, border, th, inner, dim.Render("  describe what you want to do, e.g. \"clone https://…\""))
	}
	b.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	return b.String()
}
