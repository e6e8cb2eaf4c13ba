package session

import (
	"regexp"
	"strconv"
	"strings"
)

// Dispatch tells the orchestrator what to do after Submit has applied the
// local effects of a submitted command.
type Dispatch int

const (
	// DispatchNone: nothing further (blank input or locally handled command).
	DispatchNone Dispatch = iota
	// DispatchBlocked: recorded but not executable (bridge unreachable);
	// an auto-save should still be scheduled.
	DispatchBlocked
	// DispatchSync: run via the synchronous execute endpoint.
	DispatchSync
	// DispatchStream: run via the streaming endpoint.
	DispatchStream
)

const bridgeDownText = "Error: bridge not connected. Start the local bridge or check `termctl doctor`."

// longRunning matches first tokens of commands that are expected to produce
// incremental output: package managers, build tools, containers, watchers,
// pagers, interpreters. Prefix heuristic only; `make --help` matches too.
var longRunning = regexp.MustCompile(`(?i)^(npm|yarn|pnpm|pip|cargo|make|docker|kubectl|watch|tail|ping|top|htop|python|node|ruby|go run)`)

// IsLongRunning classifies a command for streaming vs. synchronous dispatch.
func IsLongRunning(command string) bool { return longRunning.MatchString(command) }

// Submit routes a typed command through the single submission pipeline:
// blank input is rejected, `clear` is handled locally without touching the
// bridge, and everything else is recorded, echoed as a command line and
// classified for dispatch. With the bridge down an error line is appended
// and no running state is entered.
func (m *Manager) Submit(tabID, input string, bridgeUp bool) Dispatch {
	command := strings.TrimSpace(input)
	if command == "" {
		return DispatchNone
	}
	if command == "clear" {
		m.ClearOutput(tabID)
		return DispatchNone
	}
	m.RecordHistory(tabID, command)
	m.AppendOutput(tabID, command, LineCommand)
	if !bridgeUp {
		m.AppendOutput(tabID, bridgeDownText, LineError)
		return DispatchBlocked
	}
	m.SetRunning(tabID, true)
	m.ClearLastFailed()
	if IsLongRunning(command) {
		return DispatchStream
	}
	return DispatchSync
}

// ApplyExecResult folds a synchronous execution result into the tab:
// stdout/stderr are split into output/error lines, a non-zero exit records
// the failed-command fact, and a successful `cd <dir>` moves the working
// directory. The running flag is always cleared.
func (m *Manager) ApplyExecResult(tabID, command, stdout, stderr string, exitCode int) {
	for _, line := range splitLines(stdout) {
		m.AppendOutput(tabID, line, LineOutput)
	}
	for _, line := range splitLines(stderr) {
		m.AppendOutput(tabID, line, LineError)
	}
	if exitCode != 0 {
		m.lastFailed = &FailedCommand{Command: command, Stderr: stderr, ExitCode: exitCode}
	}
	if exitCode == 0 && strings.HasPrefix(command, "cd ") {
		dir := strings.TrimSpace(command[3:])
		if dir == "" {
			dir = "~"
		}
		m.SetWorkingDirectory(tabID, dir)
	}
	m.SetRunning(tabID, false)
}

// FinishStream ends a streamed execution: the running flag clears and a
// non-zero exit leaves an error line.
func (m *Manager) FinishStream(tabID string, exitCode int) {
	m.SetRunning(tabID, false)
	if exitCode != 0 {
		m.AppendOutput(tabID, "Process exited with code "+strconv.Itoa(exitCode), LineError)
	}
}

// FailCommand renders a transport failure as a single error line and clears
// the running flag.
func (m *Manager) FailCommand(tabID string, err error) {
	m.AppendOutput(tabID, "Error: "+err.Error(), LineError)
	m.SetRunning(tabID, false)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
