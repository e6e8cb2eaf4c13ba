package ui

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"termctl/internal/bridge"
	"termctl/internal/session"
	"termctl/internal/store"
)

// Commands

func healthCmd(br *bridge.Client) tea.Cmd {
	return func() tea.Msg {
		up := br.Health(context.Background())
		return healthMsg{up: up, checked: time.Now()}
	}
}

func executeCmd(br *bridge.Client, tabID, command string) tea.Cmd {
	return func() tea.Msg {
		res, err := br.Execute(context.Background(), command)
		return execFinishedMsg{tabID: tabID, command: command, result: res, err: err}
	}
}

func startStreamCmd(br *bridge.Client, tabID, command string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(context.Background())
		ch, err := br.Stream(ctx, command)
		if err != nil {
			cancel()
			return streamStartedMsg{tabID: tabID, err: err}
		}
		return streamStartedMsg{tabID: tabID, ch: ch, cancel: cancel}
	}
}

// waitStreamCmd drains one event; Update re-issues it until the channel
// closes.
func waitStreamCmd(tabID string, ch <-chan bridge.StreamEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return streamEventMsg{tabID: tabID, closed: true}
		}
		return streamEventMsg{tabID: tabID, ev: ev}
	}
}

func loadSessionsCmd(st store.SessionStore, owner string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sessions, err := st.Load(ctx, owner)
		return sessionsLoadedMsg{sessions: sessions, err: err}
	}
}

func saveSessionCmd(st store.SessionStore, ps store.PersistedSession) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := st.Save(ctx, ps)
		return sessionSavedMsg{name: ps.Name, err: err}
	}
}

func deleteSessionCmd(st store.SessionStore, owner, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := st.Delete(ctx, owner, id)
		return sessionDeletedMsg{id: id, err: err}
	}
}

func listDirCmd(br *bridge.Client, path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := br.ListDirectory(context.Background(), path)
		return fsEntriesMsg{path: path, entries: entries, err: err}
	}
}

// scheduleAutoSave debounces a full snapshot write: the local cache always,
// the remote store when signed in. The snapshot is taken here, on the event
// loop; the write happens later on the debouncer's timer.
func (m *model) scheduleAutoSave() {
	st := store.LocalState{
		Tabs:           append([]session.Tab(nil), m.mgr.Tabs()...),
		ActiveTabIndex: m.mgr.ActiveIndex(),
		Settings:       m.mgr.Settings(),
	}
	var remote []store.PersistedSession
	if m.sessions != nil {
		now := time.Now()
		for _, t := range st.Tabs {
			remote = append(remote, store.SnapshotTab(t, m.owner, now))
		}
	}
	sessions := m.sessions
	m.saver.Trigger(func() {
		store.SaveLocal(st)
		for _, ps := range remote {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			_ = sessions.Save(ctx, ps)
			cancel()
		}
	})
}

// watchStartCmd starts an fsnotify watcher on the config dir so settings
// edited by `termctl settings` reload into a running TUI.
func watchStartCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := store.StatePath()
		if err != nil {
			return nil
		}
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return nil
		}
		_ = w.Add(filepath.Dir(p))
		ch := make(chan struct{}, 1)
		go func() {
			for {
				select {
				case ev, ok := <-w.Events:
					if !ok {
						return
					}
					if filepath.Base(ev.Name) != filepath.Base(p) {
						continue
					}
					select {
					case ch <- struct{}{}:
					default:
					}
				case _, ok := <-w.Errors:
					if !ok {
						return
					}
				}
			}
		}()
		return watchStartedMsg{w: w, ch: ch}
	}
}

func watchSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		<-ch
		time.Sleep(120 * time.Millisecond)
		return settingsChangedMsg{}
	}
}

// periodic tick command
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}
