package intel

import (
	"fmt"
	"strings"
)

// AnalyzeError inspects the stderr of a failed command for known fault
// signatures and proposes remediation commands. A zero exit code yields no
// suggestions. Signatures are independent; several may fire at once and
// their results concatenate. When nothing matches a non-zero exit, a single
// low-confidence "--help" fallback is produced.
func AnalyzeError(command, stderr string, exitCode int) []Suggestion {
	if exitCode == 0 {
		return nil
	}
	lower := strings.ToLower(stderr)
	var out []Suggestion

	if strings.Contains(lower, "command not found") || strings.Contains(lower, "not recognized") {
		cmd := firstToken(command)
		out = append(out, Suggestion{
			Command:     fmt.Sprintf("which %s || type %s", cmd, cmd),
			Description: fmt.Sprintf("Check if '%s' is installed", cmd),
			Confidence:  0.8,
		})
		switch cmd {
		case "node", "npm":
			out = append(out, Suggestion{Command: "nvm install --lts", Description: "Install Node.js via nvm", Confidence: 0.75})
		case "python", "python3":
			out = append(out, Suggestion{Command: "python3 --version", Description: "Try python3 instead", Confidence: 0.8})
		case "git":
			out = append(out, Suggestion{Command: "brew install git", Description: "Install git via Homebrew (macOS)", Confidence: 0.7})
		}
	}

	if strings.Contains(lower, "permission denied") {
		out = append(out,
			Suggestion{Command: "sudo " + command, Description: "Run with elevated permissions", Confidence: 0.85},
			Suggestion{Command: "chmod +x " + firstToken(command), Description: "Make file executable", Confidence: 0.7},
		)
	}

	if strings.Contains(lower, "no such file or directory") {
		out = append(out,
			Suggestion{Command: "ls -la", Description: "List files to check what exists", Confidence: 0.8},
			Suggestion{Command: "pwd", Description: "Check current directory", Confidence: 0.75},
		)
	}

	if strings.Contains(lower, "already exists") {
		out = append(out, Suggestion{
			Command:     strings.Replace(command, "mkdir", "mkdir -p", 1),
			Description: "Use -p flag to ignore existing directories",
			Confidence:  0.85,
		})
	}

	if strings.Contains(lower, "merge conflict") || strings.Contains(lower, "conflict") {
		out = append(out,
			Suggestion{Command: "git status", Description: "Check conflicted files", Confidence: 0.9},
			Suggestion{Command: "git mergetool", Description: "Open merge tool", Confidence: 0.7},
		)
	}

	if strings.Contains(lower, "port") && strings.Contains(lower, "in use") {
		out = append(out,
			Suggestion{Command: "lsof -i :3000", Description: "Find process using port 3000", Confidence: 0.8},
			Suggestion{Command: "kill -9 $(lsof -t -i:3000)", Description: "Kill process on port 3000", Confidence: 0.7},
		)
	}

	if len(out) == 0 {
		out = append(out, Suggestion{
			Command:     command + " --help",
			Description: "Show command help",
			Confidence:  0.6,
		})
	}
	return out
}

func firstToken(command string) string {
	if fields := strings.Fields(command); len(fields) > 0 {
		return fields[0]
	}
	return command
}
