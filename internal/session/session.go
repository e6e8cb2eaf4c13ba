// Package session owns the terminal tab collection, per-tab output buffers,
// command history, working directory and running state. All mutation goes
// through Manager operations, which the UI event loop serializes.
package session

import (
	"time"

	"github.com/google/uuid"
)

// LineKind is the closed set of output line variants.
type LineKind string

const (
	LineOutput  LineKind = "output"
	LineError   LineKind = "error"
	LineInfo    LineKind = "info"
	LineCommand LineKind = "command"
	LineAI      LineKind = "ai"
)

// OutputLine is one immutable rendered line. IDs are unique within a session
// so renderers can use them as stable keys.
type OutputLine struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Kind      LineKind  `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

// Tab is one independent terminal session.
type Tab struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	CommandHistory   []string     `json:"commandHistory"`
	OutputBuffer     []OutputLine `json:"outputBuffer"`
	WorkingDirectory string       `json:"workingDirectory"`
	IsRunning        bool         `json:"isRunning"`
}

// Theme selects the terminal color scheme.
type Theme string

const (
	ThemeDark      Theme = "dark"
	ThemeLight     Theme = "light"
	ThemeSolarized Theme = "solarized"
)

// FontSize selects the rendered text size.
type FontSize string

const (
	FontSM FontSize = "sm"
	FontMD FontSize = "md"
	FontLG FontSize = "lg"
)

// Settings are process-wide, shared by all tabs.
type Settings struct {
	Theme          Theme    `json:"theme"`
	FontSize       FontSize `json:"fontSize"`
	ShowTimestamps bool     `json:"showTimestamps"`
}

// DefaultSettings returns the out-of-box settings.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeDark, FontSize: FontMD, ShowTimestamps: false}
}

// SettingsPatch shallow-merges provided fields into Settings; nil fields are
// left untouched.
type SettingsPatch struct {
	Theme          *Theme
	FontSize       *FontSize
	ShowTimestamps *bool
}

// FailedCommand records the most recent non-zero synchronous exit for the
// intelligence engine to analyze.
type FailedCommand struct {
	Command  string
	Stderr   string
	ExitCode int
}

// IDSource generates tab and line identifiers. Injected into the Manager so
// tests can substitute a deterministic source.
type IDSource interface {
	TabID() string
	LineID() string
}

type defaultIDs struct{}

func (s *defaultIDs) TabID() string { return "tab-" + uuid.NewString() }

// LineID is random rather than a counter so lines appended after a restart
// never collide with ids restored from a previous run's buffers.
func (s *defaultIDs) LineID() string { return "line-" + uuid.NewString() }

// NewIDSource returns the production id source, UUID tab and line ids.
func NewIDSource() IDSource { return &defaultIDs{} }
