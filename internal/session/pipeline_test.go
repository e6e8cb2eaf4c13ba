package session

import (
	"errors"
	"testing"
)

func TestSubmit_BlankRejected(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	if d := m.Submit(id, "   ", true); d != DispatchNone {
		t.Fatalf("blank input must not dispatch: %v", d)
	}
	if len(m.ActiveTab().CommandHistory) != 0 {
		t.Fatal("blank input must not touch history")
	}
}

func TestSubmit_ClearHandledLocally(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	m.AppendOutput(id, "noise", LineOutput)

	// repeated clears are idempotent and never dispatch to the bridge
	for i := 0; i < 3; i++ {
		if d := m.Submit(id, "clear", true); d != DispatchNone {
			t.Fatalf("clear must not dispatch: %v", d)
		}
		buf := m.ActiveTab().OutputBuffer
		if len(buf) != 1 || buf[0].Kind != LineInfo {
			t.Fatalf("clear must leave exactly one info line: %+v", buf)
		}
	}
	if len(m.ActiveTab().CommandHistory) != 0 {
		t.Fatal("clear must not be recorded in history")
	}
}

func TestSubmit_BridgeDown(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	if d := m.Submit(id, "ls", false); d != DispatchBlocked {
		t.Fatalf("expected DispatchBlocked, got %v", d)
	}
	tab := m.ActiveTab()
	if tab.IsRunning {
		t.Fatal("bridge-down submit must not enter running state")
	}
	last := tab.OutputBuffer[len(tab.OutputBuffer)-1]
	if last.Kind != LineError {
		t.Fatalf("expected trailing error line: %+v", last)
	}
	if h := tab.CommandHistory; len(h) != 1 || h[0] != "ls" {
		t.Fatalf("command must still be recorded: %v", h)
	}
}

func TestSubmit_SyncVsStream(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	if d := m.Submit(id, "ls -la", true); d != DispatchSync {
		t.Fatalf("expected sync dispatch: %v", d)
	}
	m.SetRunning(id, false)
	if d := m.Submit(id, "npm run dev", true); d != DispatchStream {
		t.Fatalf("expected stream dispatch: %v", d)
	}
	if !m.ActiveTab().IsRunning {
		t.Fatal("dispatched submit must set running")
	}
}

func TestIsLongRunning(t *testing.T) {
	cases := map[string]bool{
		"npm install":   true,
		"go run ./cmd":  true,
		"MAKE all":      true,
		"make --help":   true, // prefix heuristic, known imprecision
		"tail -f x.log": true,
		"ls -la":        false,
		"git status":    false,
		"gofmt .":       false,
	}
	for cmd, want := range cases {
		if got := IsLongRunning(cmd); got != want {
			t.Fatalf("IsLongRunning(%q) = %v, want %v", cmd, got, want)
		}
	}
}

func TestApplyExecResult_SplitsOutputAndRecordsFailure(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	m.Submit(id, "cat missing", true)
	m.ApplyExecResult(id, "cat missing", "partial\n", "cat: missing: No such file\n", 1)

	tab := m.ActiveTab()
	if tab.IsRunning {
		t.Fatal("running flag must clear after result")
	}
	var outs, errs int
	for _, l := range tab.OutputBuffer {
		switch l.Kind {
		case LineOutput:
			outs++
		case LineError:
			errs++
		}
	}
	if outs != 1 || errs != 1 {
		t.Fatalf("expected 1 output + 1 error line, got %d/%d", outs, errs)
	}
	lf := m.LastFailed()
	if lf == nil || lf.Command != "cat missing" || lf.ExitCode != 1 {
		t.Fatalf("failed-command fact not recorded: %+v", lf)
	}
}

func TestApplyExecResult_SuccessClearsNothingAndMovesCwd(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	m.Submit(id, "cd /tmp/work", true)
	m.ApplyExecResult(id, "cd /tmp/work", "", "", 0)
	if m.ActiveTab().WorkingDirectory != "/tmp/work" {
		t.Fatalf("cd must move working directory: %q", m.ActiveTab().WorkingDirectory)
	}

	m.Submit(id, "cd   ", true)
	m.ApplyExecResult(id, "cd   ", "", "", 0)
	if m.ActiveTab().WorkingDirectory != "~" {
		t.Fatalf("bare cd must go home: %q", m.ActiveTab().WorkingDirectory)
	}
}

func TestApplyExecResult_FailedCdDoesNotMove(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	m.Submit(id, "cd /nope", true)
	m.ApplyExecResult(id, "cd /nope", "", "no such directory", 1)
	if m.ActiveTab().WorkingDirectory != "~" {
		t.Fatalf("failed cd must not move: %q", m.ActiveTab().WorkingDirectory)
	}
}

func TestSubmit_ClearsPreviousFailure(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	m.Submit(id, "boom", true)
	m.ApplyExecResult(id, "boom", "", "bad", 2)
	if m.LastFailed() == nil {
		t.Fatal("expected failure fact")
	}
	m.Submit(id, "ls", true)
	if m.LastFailed() != nil {
		t.Fatal("new dispatch must clear the stale failure fact")
	}
}

func TestFinishStream(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	m.Submit(id, "npm run dev", true)
	m.FinishStream(id, 0)
	tab := m.ActiveTab()
	if tab.IsRunning {
		t.Fatal("running flag must clear")
	}
	before := len(tab.OutputBuffer)

	m.Submit(id, "npm run dev", true)
	m.FinishStream(id, 137)
	tab = m.ActiveTab()
	last := tab.OutputBuffer[len(tab.OutputBuffer)-1]
	if last.Kind != LineError || last.Text != "Process exited with code 137" {
		t.Fatalf("expected exit error line, got %+v", last)
	}
	if len(tab.OutputBuffer) != before+2 { // command echo + exit line
		t.Fatalf("unexpected buffer growth: %d -> %d", before, len(tab.OutputBuffer))
	}
}

func TestFailCommand(t *testing.T) {
	m := newTestManager()
	id := m.ActiveTab().ID
	m.Submit(id, "curl x", true)
	m.FailCommand(id, errors.New("connection reset"))
	tab := m.ActiveTab()
	if tab.IsRunning {
		t.Fatal("running flag must clear on transport failure")
	}
	last := tab.OutputBuffer[len(tab.OutputBuffer)-1]
	if last.Kind != LineError || last.Text != "Error: connection reset" {
		t.Fatalf("unexpected failure line: %+v", last)
	}
}

func TestHistoryCursor(t *testing.T) {
	h := []string{"one", "two", "three"}
	c := NewHistoryCursor()

	if _, ok := c.Down(h); ok {
		t.Fatal("down before navigating should be a no-op")
	}
	if got, ok := c.Up(h); !ok || got != "three" {
		t.Fatalf("first up should recall newest: %q", got)
	}
	if got, _ := c.Up(h); got != "two" {
		t.Fatalf("second up: %q", got)
	}
	if got, _ := c.Up(h); got != "one" {
		t.Fatalf("third up: %q", got)
	}
	if got, _ := c.Up(h); got != "one" {
		t.Fatalf("up at oldest must stick: %q", got)
	}
	if got, _ := c.Down(h); got != "two" {
		t.Fatalf("down: %q", got)
	}
	if got, _ := c.Down(h); got != "three" {
		t.Fatalf("down: %q", got)
	}
	if got, ok := c.Down(h); !ok || got != "" {
		t.Fatalf("down past newest returns to live input: %q ok=%v", got, ok)
	}

	c.Up(h)
	c.Reset()
	if _, ok := c.Down(h); ok {
		t.Fatal("reset should leave the cursor on the live line")
	}
}

func TestHistoryCursor_Empty(t *testing.T) {
	c := NewHistoryCursor()
	if _, ok := c.Up(nil); ok {
		t.Fatal("up on empty history must report no entry")
	}
}
