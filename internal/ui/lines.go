package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termctl/internal/ansi"
	"termctl/internal/session"
)

// renderLine converts one output line to styled terminal text. Command
// echoes get a prompt prefix; output and error lines run through the SGR
// decoder so colored tool output keeps its colors.
func renderLine(th designTheme, settings session.Settings, ln session.OutputLine) string {
	var b strings.Builder

	if settings.ShowTimestamps {
		b.WriteString(lipglossFG(th.Muted).Render(ln.Timestamp.Format("15:04:05") + " "))
	}

	switch ln.Kind {
	case session.LineCommand:
		b.WriteString(th.accentBold().Render("$ "))
		b.WriteString(th.lineStyle(ln.Kind).Render(ln.Text))
	case session.LineOutput, session.LineError:
		base := th.lineStyle(ln.Kind)
		for _, sp := range ansi.Parse(ln.Text) {
			b.WriteString(spanStyle(base, sp.Style).Render(sp.Text))
		}
	case session.LineAI:
		b.WriteString(th.lineStyle(ln.Kind).Render("✦ " + ln.Text))
	default:
		b.WriteString(th.lineStyle(ln.Kind).Render(ln.Text))
	}
	return b.String()
}

// spanStyle layers decoded SGR attributes over the line's base style.
func spanStyle(base lipgloss.Style, st ansi.Style) lipgloss.Style {
	s := base
	if st.Foreground != "" {
		s = s.Foreground(lipgloss.Color(st.Foreground))
	}
	if st.Background != "" {
		s = s.Background(lipgloss.Color(st.Background))
	}
	if st.Bold {
		s = s.Bold(true)
	}
	if st.Dim {
		s = s.Faint(true)
	}
	if st.Italic {
		s = s.Italic(true)
	}
	if st.Underline {
		s = s.Underline(true)
	}
	return s
}

// renderBuffer joins a tab's lines for the viewport. The lg font size adds
// breathing room between lines; a terminal cannot scale glyphs.
func renderBuffer(th designTheme, settings session.Settings, lines []session.OutputLine) string {
	var b strings.Builder
	for i, ln := range lines {
		if i > 0 {
			b.WriteString("\n")
			if settings.FontSize == session.FontLG {
				b.WriteString("\n")
			}
		}
		b.WriteString(renderLine(th, settings, ln))
	}
	return b.String()
}
