package store

import (
	"fmt"
	"time"

	"termctl/internal/session"
)

// outputHistoryCap bounds the non-command lines kept in a remote session.
const outputHistoryCap = 100

// SnapshotTab converts a tab into its remote-store form. Command echo lines
// are excluded from the output history, which is capped to the most recent
// entries. The session id is the tab id, so repeated saves upsert.
func SnapshotTab(t session.Tab, owner string, now time.Time) PersistedSession {
	var out []string
	for _, l := range t.OutputBuffer {
		if l.Kind != session.LineCommand {
			out = append(out, l.Text)
		}
	}
	if len(out) > outputHistoryCap {
		out = out[len(out)-outputHistoryCap:]
	}
	return PersistedSession{
		ID:               t.ID,
		Name:             t.Name,
		Owner:            owner,
		CommandHistory:   append([]string(nil), t.CommandHistory...),
		WorkingDirectory: t.WorkingDirectory,
		OutputHistory:    out,
		CreatedAt:        now,
		LastUsedAt:       now,
		LastSavedAt:      now,
	}
}

// SessionTab rebuilds a display tab from a persisted session: one synthetic
// "restored" info line followed by the stored output history. Command lines
// are never replayed into the buffer.
func SessionTab(s PersistedSession, ids session.IDSource) session.Tab {
	buf := make([]session.OutputLine, 0, len(s.OutputHistory)+1)
	buf = append(buf, session.OutputLine{
		ID:        ids.LineID(),
		Text:      fmt.Sprintf("Session %q restored. Working directory: %s", s.Name, s.WorkingDirectory),
		Kind:      session.LineInfo,
		Timestamp: time.Now(),
	})
	for i, text := range s.OutputHistory {
		buf = append(buf, session.OutputLine{
			ID:        fmt.Sprintf("restored-%s-%d", s.ID, i),
			Text:      text,
			Kind:      session.LineOutput,
			Timestamp: s.LastUsedAt,
		})
	}
	return session.Tab{
		ID:               s.ID,
		Name:             s.Name,
		CommandHistory:   append([]string(nil), s.CommandHistory...),
		OutputBuffer:     buf,
		WorkingDirectory: s.WorkingDirectory,
	}
}

// SessionTabs converts a backend load result for Manager.LoadFromBackend.
func SessionTabs(sessions []PersistedSession, ids session.IDSource) []session.Tab {
	tabs := make([]session.Tab, len(sessions))
	for i, s := range sessions {
		tabs[i] = SessionTab(s, ids)
	}
	return tabs
}
