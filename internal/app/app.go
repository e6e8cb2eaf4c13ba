package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"termctl/internal/auth"
	"termctl/internal/bridge"
	"termctl/internal/config"
	"termctl/internal/session"
	"termctl/internal/store"
	"termctl/internal/ui"
)

// Start composes the terminal and runs the TUI program.
func Start() error {
	mgr := session.NewManager(nil)

	// local cache restores immediately; the remote tier replaces it once
	// the first backend load answers
	restoreLocal(mgr)

	deps := ui.Deps{
		Manager: mgr,
		Bridge:  bridge.New(config.BridgeURL()),
	}
	if id, ok := auth.Current(); ok {
		deps.Sessions = store.NewRemoteStore(config.SyncURL())
		deps.Owner = id.Principal
	}

	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	if _, err := tea.NewProgram(ui.InitialModel(deps), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return err
	}
	return nil
}

// restoreLocal seeds the manager from the local cache. A full snapshot wins;
// without one, a settings-only record (written by `termctl settings` before
// any TUI run) still applies. Running flags are cleared because the stream
// they tracked died with the previous process.
func restoreLocal(mgr *session.Manager) {
	if st, ok := store.LoadLocal(); ok {
		for i := range st.Tabs {
			st.Tabs[i].IsRunning = false
		}
		mgr.ReplaceTabs(st.Tabs, st.ActiveTabIndex)
		mgr.SetSettings(st.Settings)
		return
	}
	if s, ok := store.LoadLocalSettings(); ok {
		mgr.SetSettings(s)
	}
}

// Main is a helper to use as entry-point from cmd.
func Main() {
	if err := Start(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
