package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"termctl/internal/bridge"
	"termctl/internal/intel"
	"termctl/internal/palette"
	"termctl/internal/session"
	"termctl/internal/store"
)

// Model for the terminal TUI
type model struct {
	mgr   *session.Manager
	br    *bridge.Client
	saver *store.Debouncer

	// remote persistence; nil when anonymous
	sessions store.SessionStore
	owner    string

	width  int
	height int

	// input
	ti   textinput.Model
	hist *session.HistoryCursor

	// output pane
	vp viewport.Model

	// bridge status: connecting until the first health result arrives
	bridgeUp    bool
	bridgeKnown bool
	lastChecked time.Time

	// active streaming command, at most one at a time
	streamCh     <-chan bridge.StreamEvent
	streamCancel context.CancelFunc
	streamTab    string

	// command palette overlay
	paletteOpen  bool
	paletteQuery string
	paletteIndex int
	paletteAll   []palette.Command

	// AI assistant panel
	aiOpen        bool
	aiSuggestions []intel.Suggestion
	aiFixes       []intel.Suggestion

	// file browser panel
	fbOpen bool
	fb     fileBrowser

	// tab rename mode: the input box edits the active tab's name
	renaming bool
	rnInput  textinput.Model

	// session manager overlay
	ssOpen   bool
	ssList   []store.PersistedSession
	ssIndex  int
	ssNaming bool
	ssName   textinput.Model
	ssNotice string

	// settings file watcher
	watcher *fsnotify.Watcher
	watchCh <-chan struct{}

	now      time.Time
	notice   string
	quitting bool
}

// Deps carries everything the orchestrator composes.
type Deps struct {
	Manager  *session.Manager
	Bridge   *bridge.Client
	Sessions store.SessionStore // nil when anonymous
	Owner    string
}

func initialModel(d Deps) model {
	m := model{
		mgr:      d.Manager,
		br:       d.Bridge,
		sessions: d.Sessions,
		owner:    d.Owner,
		saver:    store.NewDebouncer(store.AutoSaveDelay),
		hist:     session.NewHistoryCursor(),
	}

	ti := textinput.New()
	ti.Prompt = " $ "
	ti.Placeholder = "Type a command"
	ti.CharLimit = 4096
	ti.ShowSuggestions = true
	ti.Focus()
	m.ti = ti

	name := textinput.New()
	name.Prompt = " name: "
	name.CharLimit = 64
	m.ssName = name

	rn := textinput.New()
	rn.Prompt = " rename: "
	rn.CharLimit = 32
	m.rnInput = rn

	m.refreshSuggestions()
	return m
}

// InitialModel is the public constructor for app.
func InitialModel(d Deps) tea.Model { return initialModel(d) }

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{healthCmd(m.br), tickCmd(), watchStartCmd(), textinput.Blink}
	if m.sessions != nil {
		cmds = append(cmds, loadSessionsCmd(m.sessions, m.owner))
	}
	return tea.Batch(cmds...)
}

// refreshSuggestions feeds the active tab's history into the input line's
// ghost-text completion.
func (m *model) refreshSuggestions() {
	m.ti.SetSuggestions(intel.Completions(m.mgr.ActiveTab().CommandHistory))
}
