package session

import (
	"fmt"
	"strings"
	"testing"
)

// fakeIDs yields predictable identifiers for assertions.
type fakeIDs struct {
	tabs, lines int
}

func (f *fakeIDs) TabID() string {
	f.tabs++
	return fmt.Sprintf("tab-%d", f.tabs)
}

func (f *fakeIDs) LineID() string {
	f.lines++
	return fmt.Sprintf("line-%d", f.lines)
}

func newTestManager() *Manager { return NewManager(&fakeIDs{}) }

func TestNewManager_StartsWithOneTab(t *testing.T) {
	m := newTestManager()
	if len(m.Tabs()) != 1 {
		t.Fatalf("expected 1 tab, got %d", len(m.Tabs()))
	}
	tab := m.ActiveTab()
	if tab.Name != "Terminal" || tab.WorkingDirectory != "~" || tab.IsRunning {
		t.Fatalf("unexpected initial tab: %+v", tab)
	}
	if len(tab.OutputBuffer) != 1 || tab.OutputBuffer[0].Kind != LineInfo {
		t.Fatalf("expected a single welcome info line: %+v", tab.OutputBuffer)
	}
}

func TestAddAndSwitchTab(t *testing.T) {
	m := newTestManager()
	m.AddTab("build")
	if m.ActiveIndex() != 1 || m.ActiveTab().Name != "build" {
		t.Fatalf("new tab should become active: idx=%d", m.ActiveIndex())
	}
	m.SwitchTab(0)
	if m.ActiveIndex() != 0 {
		t.Fatalf("switch failed: %d", m.ActiveIndex())
	}
	m.SwitchTab(99)
	if m.ActiveIndex() != len(m.Tabs())-1 {
		t.Fatalf("out-of-range switch must clamp: %d", m.ActiveIndex())
	}
	m.SwitchTab(-3)
	if m.ActiveIndex() != 0 {
		t.Fatalf("negative switch must clamp to 0: %d", m.ActiveIndex())
	}
}

func TestCloseTab_LastTabIsNoop(t *testing.T) {
	m := newTestManager()
	m.CloseTab(m.ActiveTab().ID)
	if len(m.Tabs()) != 1 {
		t.Fatal("closing the last tab must be a no-op")
	}
}

func TestCloseTab_ActiveIndexRederived(t *testing.T) {
	m := newTestManager()
	m.AddTab("two")
	m.AddTab("three") // active = 2

	// close a tab before the active one: shift down
	m.CloseTab(m.Tabs()[0].ID)
	if len(m.Tabs()) != 2 || m.ActiveIndex() != 1 || m.ActiveTab().Name != "three" {
		t.Fatalf("expected active to follow its tab: idx=%d", m.ActiveIndex())
	}

	// close the active (last) tab: clamp
	m.CloseTab(m.ActiveTab().ID)
	if len(m.Tabs()) != 1 || m.ActiveIndex() != 0 {
		t.Fatalf("expected clamp to 0: idx=%d", m.ActiveIndex())
	}
}

func TestCloseTab_ActiveNeverOutOfRange(t *testing.T) {
	// closing the currently-active tab never empties the collection and the
	// index stays in range, for any starting shape
	for nTabs := 2; nTabs <= 5; nTabs++ {
		for active := 0; active < nTabs; active++ {
			m := newTestManager()
			for i := 1; i < nTabs; i++ {
				m.AddTab(fmt.Sprintf("t%d", i))
			}
			m.SwitchTab(active)
			m.CloseTab(m.ActiveTab().ID)
			if len(m.Tabs()) == 0 {
				t.Fatalf("n=%d active=%d: collection emptied", nTabs, active)
			}
			if m.ActiveIndex() < 0 || m.ActiveIndex() >= len(m.Tabs()) {
				t.Fatalf("n=%d active=%d: index %d out of range", nTabs, active, m.ActiveIndex())
			}
		}
	}
}

func TestRenameTab(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	m.RenameTab(id, "deploy")
	if m.ActiveTab().Name != "deploy" {
		t.Fatalf("rename failed: %q", m.ActiveTab().Name)
	}
	m.RenameTab(id, "")
	if m.ActiveTab().Name != "deploy" {
		t.Fatal("empty rename must be ignored")
	}
}

func TestRecordHistory_DedupAndCap(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	m.RecordHistory(id, "ls")
	m.RecordHistory(id, "pwd")
	m.RecordHistory(id, "ls")
	h := m.ActiveTab().CommandHistory
	if len(h) != 2 || h[0] != "pwd" || h[1] != "ls" {
		t.Fatalf("dedup should move the repeat to the end: %v", h)
	}

	for i := 0; i < historyCap+50; i++ {
		m.RecordHistory(id, fmt.Sprintf("cmd-%d", i))
	}
	h = m.ActiveTab().CommandHistory
	if len(h) != historyCap {
		t.Fatalf("history must cap at %d, got %d", historyCap, len(h))
	}
	if h[len(h)-1] != fmt.Sprintf("cmd-%d", historyCap+49) {
		t.Fatalf("cap must keep the most recent entries: last=%q", h[len(h)-1])
	}
}

func TestClearOutput(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	m.AppendOutput(id, "one", LineOutput)
	m.AppendOutput(id, "two", LineError)
	m.ClearOutput(id)
	buf := m.ActiveTab().OutputBuffer
	if len(buf) != 1 || buf[0].Kind != LineInfo || buf[0].Text != clearedText {
		t.Fatalf("unexpected buffer after clear: %+v", buf)
	}
}

func TestAppendOutput_UniqueIDs(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		line := m.AppendOutput(id, "x", LineOutput)
		if seen[line.ID] {
			t.Fatalf("duplicate line id %q", line.ID)
		}
		seen[line.ID] = true
	}
}

func TestAppendOutput_NoIDCollisionAcrossRestart(t *testing.T) {
	// restart simulation: a second manager with a fresh production id source
	// adopts the first one's buffers, then keeps appending
	m1 := NewManager(nil)
	id := m1.ActiveTab().ID
	m1.AppendOutput(id, "before restart", LineOutput)

	m2 := NewManager(nil)
	m2.ReplaceTabs(m1.Tabs(), 0)

	seen := map[string]bool{}
	for _, ln := range m2.ActiveTab().OutputBuffer {
		seen[ln.ID] = true
	}
	for i := 0; i < 20; i++ {
		line := m2.AppendOutput(id, "after restart", LineOutput)
		if seen[line.ID] {
			t.Fatalf("line id %q collides with a restored line", line.ID)
		}
		seen[line.ID] = true
	}
}

func TestUpdateSettings_ShallowMerge(t *testing.T) {
	m := newTestManager()
	theme := ThemeSolarized
	m.UpdateSettings(SettingsPatch{Theme: &theme})
	s := m.Settings()
	if s.Theme != ThemeSolarized {
		t.Fatalf("theme not updated: %+v", s)
	}
	if s.FontSize != FontMD || s.ShowTimestamps {
		t.Fatalf("untouched fields must survive the merge: %+v", s)
	}
}

func TestRestoreSession_AppendsTab(t *testing.T) {
	m := newTestManager()
	m.RestoreSession("old work", []string{"git status"}, "/srv/app")
	if len(m.Tabs()) != 2 || m.ActiveIndex() != 1 {
		t.Fatalf("restored tab should be appended and active")
	}
	tab := m.ActiveTab()
	if tab.Name != "old work" || tab.WorkingDirectory != "/srv/app" {
		t.Fatalf("unexpected restored tab: %+v", tab)
	}
	if len(tab.OutputBuffer) != 1 || tab.OutputBuffer[0].Kind != LineInfo ||
		!strings.Contains(tab.OutputBuffer[0].Text, "restored") {
		t.Fatalf("expected a synthetic restored line: %+v", tab.OutputBuffer)
	}
}

func TestLoadFromBackend_RestoreOnce(t *testing.T) {
	m := newTestManager()
	sessions := []Tab{
		{ID: "s1", Name: "one", WorkingDirectory: "~"},
		{ID: "s2", Name: "two", WorkingDirectory: "~"},
	}
	if !m.LoadFromBackend(sessions) {
		t.Fatal("first load should replace tabs")
	}
	if len(m.Tabs()) != 2 || m.ActiveIndex() != 0 {
		t.Fatalf("local-only tab must be discarded: %d tabs", len(m.Tabs()))
	}

	// a second load must not change anything
	more := []Tab{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	if m.LoadFromBackend(more) {
		t.Fatal("second load must be guarded")
	}
	if len(m.Tabs()) != 2 {
		t.Fatalf("guarded load altered tabs: %d", len(m.Tabs()))
	}

	// logout re-arms the guard
	m.ResetBackendGuard()
	if !m.LoadFromBackend(more) {
		t.Fatal("guard should re-arm after logout")
	}
	if len(m.Tabs()) != 3 {
		t.Fatalf("expected 3 tabs after re-armed load, got %d", len(m.Tabs()))
	}
}

func TestLoadFromBackend_EmptyListKeepsTabsButArmsGuard(t *testing.T) {
	m := newTestManager()
	if m.LoadFromBackend(nil) {
		t.Fatal("empty load must not replace tabs")
	}
	if len(m.Tabs()) != 1 {
		t.Fatal("tabs must survive an empty load")
	}
	if m.LoadFromBackend([]Tab{{ID: "s1"}}) {
		t.Fatal("guard must be set even by an empty load")
	}
}
