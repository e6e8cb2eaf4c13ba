package ui

import (
	"github.com/charmbracelet/lipgloss"

	"termctl/internal/session"
)

// Design centralizes the TUI color palette and common styles. Three themes
// mirror the terminal settings: dark (Dracula-inspired, matches the SGR
// decoder palette), light, and solarized.
type designTheme struct {
	// Core brand/semantic colors
	Primary lipgloss.Color
	Blue    lipgloss.Color
	Yellow  lipgloss.Color
	Magenta lipgloss.Color
	Cyan    lipgloss.Color
	Red     lipgloss.Color

	// Text colors
	Text      lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color

	// Line-kind colors
	Command lipgloss.Color
	ErrText lipgloss.Color
	Info    lipgloss.Color
	AI      lipgloss.Color

	// Surfaces
	Bg     lipgloss.Color
	BgSoft lipgloss.Color
	Border lipgloss.Color

	// Text on accent backgrounds (buttons/chips)
	OnAccent lipgloss.Color

	// Status bar colors
	BarFG lipgloss.Color
	BarBG lipgloss.Color
}

// Dracula is the default dark theme.
var Dracula = designTheme{
	Primary: lipgloss.Color("#50fa7b"),
	Blue:    lipgloss.Color("#6272a4"),
	Yellow:  lipgloss.Color("#f1fa8c"),
	Magenta: lipgloss.Color("#ff79c6"),
	Cyan:    lipgloss.Color("#8be9fd"),
	Red:     lipgloss.Color("#ff5555"),

	Text:      lipgloss.Color("#f8f8f2"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#6272a4"),

	Command: lipgloss.Color("#8be9fd"),
	ErrText: lipgloss.Color("#ff5555"),
	Info:    lipgloss.Color("#f1fa8c"),
	AI:      lipgloss.Color("#ff79c6"),

	Bg:     lipgloss.Color("#181820"),
	BgSoft: lipgloss.Color("#282a36"),
	Border: lipgloss.Color("#44475a"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.Color("#bfbaaa"),
	BarBG: lipgloss.Color("#222"),
}

// Paper is the light theme.
var Paper = designTheme{
	Primary: lipgloss.Color("#1a7f37"),
	Blue:    lipgloss.Color("#0969da"),
	Yellow:  lipgloss.Color("#9a6700"),
	Magenta: lipgloss.Color("#8250df"),
	Cyan:    lipgloss.Color("#1b7c83"),
	Red:     lipgloss.Color("#cf222e"),

	Text:      lipgloss.Color("#1f2328"),
	Secondary: lipgloss.Color("#57606a"),
	Muted:     lipgloss.Color("#8c959f"),

	Command: lipgloss.Color("#0969da"),
	ErrText: lipgloss.Color("#cf222e"),
	Info:    lipgloss.Color("#9a6700"),
	AI:      lipgloss.Color("#8250df"),

	Bg:     lipgloss.Color("#ffffff"),
	BgSoft: lipgloss.Color("#f6f8fa"),
	Border: lipgloss.Color("#d0d7de"),

	OnAccent: lipgloss.Color("#ffffff"),

	BarFG: lipgloss.Color("#57606a"),
	BarBG: lipgloss.Color("#eaeef2"),
}

// Solarized is the solarized-dark theme.
var Solarized = designTheme{
	Primary: lipgloss.Color("#859900"),
	Blue:    lipgloss.Color("#268bd2"),
	Yellow:  lipgloss.Color("#b58900"),
	Magenta: lipgloss.Color("#d33682"),
	Cyan:    lipgloss.Color("#2aa198"),
	Red:     lipgloss.Color("#dc322f"),

	Text:      lipgloss.Color("#839496"),
	Secondary: lipgloss.Color("#93a1a1"),
	Muted:     lipgloss.Color("#586e75"),

	Command: lipgloss.Color("#2aa198"),
	ErrText: lipgloss.Color("#dc322f"),
	Info:    lipgloss.Color("#b58900"),
	AI:      lipgloss.Color("#d33682"),

	Bg:     lipgloss.Color("#002b36"),
	BgSoft: lipgloss.Color("#073642"),
	Border: lipgloss.Color("#586e75"),

	OnAccent: lipgloss.Color("#002b36"),

	BarFG: lipgloss.Color("#93a1a1"),
	BarBG: lipgloss.Color("#073642"),
}

// themeFor maps the settings theme to the design palette.
func themeFor(t session.Theme) designTheme {
	switch t {
	case session.ThemeLight:
		return Paper
	case session.ThemeSolarized:
		return Solarized
	default:
		return Dracula
	}
}

// Convenience style helpers, parameterized on the active theme.

func (t designTheme) borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Border)
}

func (t designTheme) fillBG() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.Bg)
}

func (t designTheme) accentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

func (t designTheme) chipStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.OnAccent).Background(bg).Padding(0, 1)
}

func (t designTheme) statusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.BarFG).Background(t.BarBG)
}

// lineStyle returns the base style for one output line kind.
func (t designTheme) lineStyle(kind session.LineKind) lipgloss.Style {
	switch kind {
	case session.LineCommand:
		return lipgloss.NewStyle().Foreground(t.Command).Bold(true)
	case session.LineError:
		return lipgloss.NewStyle().Foreground(t.ErrText)
	case session.LineInfo:
		return lipgloss.NewStyle().Foreground(t.Info)
	case session.LineAI:
		return lipgloss.NewStyle().Foreground(t.AI)
	default:
		return lipgloss.NewStyle().Foreground(t.Text)
	}
}
