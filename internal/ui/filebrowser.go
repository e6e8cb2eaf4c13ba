package ui

import (
	"fmt"
	"path"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"termctl/internal/bridge"
)

// fileBrowser is the state of the remote file panel backed by the bridge's
// directory listing endpoint.
type fileBrowser struct {
	path    string
	entries []bridge.FileEntry
	query   string
	index   int
	loading bool
	err     error
}

// entrySource adapts listings to the fuzzy matcher.
type entrySource []bridge.FileEntry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }

// filtered returns the entries narrowed by the query, ranked by match
// quality. A blank query keeps the bridge's ordering.
func (fb fileBrowser) filtered() []bridge.FileEntry {
	if strings.TrimSpace(fb.query) == "" {
		return fb.entries
	}
	matches := fuzzy.FindFrom(fb.query, entrySource(fb.entries))
	out := make([]bridge.FileEntry, 0, len(matches))
	for _, mt := range matches {
		out = append(out, fb.entries[mt.Index])
	}
	return out
}

func (fb fileBrowser) selected() (bridge.FileEntry, bool) {
	list := fb.filtered()
	if fb.index < 0 || fb.index >= len(list) {
		return bridge.FileEntry{}, false
	}
	return list[fb.index], true
}

func parentPath(p string) string {
	parent := path.Dir(strings.TrimRight(p, "/"))
	if parent == "" || parent == "." {
		return "/"
	}
	return parent
}

// updateFileBrowser handles keys while the file panel is open.
func (m model) updateFileBrowser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.fbOpen = false
		return m, nil
	case "up":
		if m.fb.index > 0 {
			m.fb.index--
		}
		return m, nil
	case "down":
		if m.fb.index < len(m.fb.filtered())-1 {
			m.fb.index++
		}
		return m, nil
	case "left":
		return m.browseTo(parentPath(m.fb.path))
	case "enter":
		sel, ok := m.fb.selected()
		if !ok {
			return m, nil
		}
		if sel.Type == "directory" {
			return m.browseTo(sel.Path)
		}
		// insert the file path into the input line
		m.ti.SetValue(strings.TrimRight(m.ti.Value(), " ") + " " + sel.Path)
		m.fbOpen = false
		return m, nil
	case "ctrl+o":
		// open the selected directory (or the current one) in the terminal
		target := m.fb.path
		if sel, ok := m.fb.selected(); ok && sel.Type == "directory" {
			target = sel.Path
		}
		m.fbOpen = false
		return m.submit("cd " + target)
	case "backspace":
		if m.fb.query != "" {
			m.fb.query = m.fb.query[:len(m.fb.query)-1]
			m.fb.index = 0
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.fb.query += string(msg.Runes)
		m.fb.index = 0
	}
	return m, nil
}

// browseTo kicks off a listing for p and marks the panel loading.
func (m model) browseTo(p string) (tea.Model, tea.Cmd) {
	m.fb.path = p
	m.fb.loading = true
	m.fb.err = nil
	m.fb.query = ""
	m.fb.index = 0
	return m, listDirCmd(m.br, p)
}

// renderFileBrowser draws the file panel box.
func (m model) renderFileBrowser(th designTheme, width int) string {
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	border := th.borderStyle()
	dim := lipglossFG(th.Muted)
	hl := th.accentBold().Render

	var b strings.Builder
	b.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	title := fmt.Sprintf(" Files  %s", m.fb.path)
	if m.fb.query != "" {
		title += fmt.Sprintf("  /%s", m.fb.query)
	}
	writeBoxLine(&b, border, th, inner, hl(truncateTo(title, inner)))

	switch {
	case m.fb.loading:
		writeBoxLine(&b, border, th, inner, dim.Render("  loading…"))
	case m.fb.err != nil:
		writeBoxLine(&b, border, th, inner, lipglossFG(th.ErrText).Render(truncateTo("  "+m.fb.err.Error(), inner)))
	default:
		list := m.fb.filtered()
		if len(list) == 0 {
			writeBoxLine(&b, border, th, inner, dim.Render("  no entries"))
		}
		maxItems := 12
		if len(list) > maxItems {
			list = list[:maxItems]
		}
		for i, e := range list {
			icon := " "
			if e.Type == "directory" {
				icon = "▸"
			}
			line := fmt.Sprintf("  %s %-30s %8d", icon, e.Name, e.Size)
			line = truncateTo(line, inner)
			if i == m.fb.index {
				line = hl(line)
			} else {
				line = lipglossFG(th.Text).Render(line)
			}
			writeBoxLine(&b, border, th, inner, line)
		}
	}
	b.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	b.WriteString(dim.Render("  ↑/↓ select · Enter open · ← up · Ctrl+O cd here · type to filter · Esc close") + "\n")
	return b.String()
}
