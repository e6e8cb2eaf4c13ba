// Package intel generates heuristic shell-command suggestions from
// natural-language-ish input and remediation suggestions from failed-command
// stderr. Both operations are pure rule-table lookups; there is no model
// behind them.
package intel

import (
	"fmt"
	"sort"
	"strings"
)

// Suggestion is a candidate command with a confidence in [0,1].
type Suggestion struct {
	Command     string
	Description string
	Confidence  float64
}

// rule fires when any keyword appears (case-insensitive substring) in the
// input and then generates one or more suggestions from the raw input.
type rule struct {
	keywords []string
	generate func(input string) []Suggestion
}

// extractArg returns the first whitespace-delimited token following any of
// the marker words, searched in order. Empty when no marker yields a token.
func extractArg(input string, after ...string) string {
	lower := strings.ToLower(input)
	for _, kw := range after {
		idx := strings.Index(lower, kw)
		if idx < 0 {
			continue
		}
		rest := strings.TrimSpace(input[idx+len(kw):])
		if fields := strings.Fields(rest); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

func pickF(cond bool, yes, no float64) float64 {
	if cond {
		return yes
	}
	return no
}

var rules = []rule{
	{
		keywords: []string{"clone", "download repo", "get repo"},
		generate: func(input string) []Suggestion {
			url := extractArg(input, "clone", "download", "get")
			return []Suggestion{{
				Command:     pick(url != "", "git clone "+url, "git clone <repo-url>"),
				Description: "Clone a repository",
				Confidence:  pickF(url != "", 0.9, 0.7),
			}}
		},
	},
	{
		keywords: []string{"fork", "fork repo", "fork repository"},
		generate: func(input string) []Suggestion {
			repo := extractArg(input, "fork")
			return []Suggestion{
				{
					Command:     pick(repo != "", "gh repo fork "+repo+" --clone", "gh repo fork <owner/repo> --clone"),
					Description: "Fork a repository using GitHub CLI",
					Confidence:  pickF(repo != "", 0.85, 0.7),
				},
				{Command: "gh auth login", Description: "Authenticate GitHub CLI first if needed", Confidence: 0.5},
			}
		},
	},
	{
		keywords: []string{"commit", "save changes", "commit changes"},
		generate: func(input string) []Suggestion {
			msg := extractArg(input, "commit", "message", "with message")
			return []Suggestion{
				{
					Command:     pick(msg != "", fmt.Sprintf("git commit -m %q", msg), `git commit -m "your message"`),
					Description: "Commit staged changes",
					Confidence:  0.85,
				},
				{Command: `git add . && git commit -m "update"`, Description: "Stage all and commit", Confidence: 0.75},
			}
		},
	},
	{
		keywords: []string{"push", "push changes", "upload changes"},
		generate: func(string) []Suggestion {
			return []Suggestion{
				{Command: "git push", Description: "Push to remote", Confidence: 0.9},
				{Command: "git push origin main", Description: "Push to origin main", Confidence: 0.8},
			}
		},
	},
	{
		keywords: []string{"pull", "update repo", "sync repo", "fetch changes"},
		generate: func(string) []Suggestion {
			return []Suggestion{
				{Command: "git pull", Description: "Pull latest changes", Confidence: 0.9},
				{Command: "git fetch && git merge", Description: "Fetch then merge", Confidence: 0.7},
			}
		},
	},
	{
		keywords: []string{"branch", "create branch", "new branch", "switch branch"},
		generate: func(input string) []Suggestion {
			name := extractArg(input, "branch", "called", "named")
			return []Suggestion{
				{
					Command:     pick(name != "", "git checkout -b "+name, "git checkout -b <branch-name>"),
					Description: "Create and switch to new branch",
					Confidence:  pickF(name != "", 0.9, 0.75),
				},
				{Command: "git branch -a", Description: "List all branches", Confidence: 0.6},
			}
		},
	},
	{
		keywords: []string{"status", "git status", "what changed", "changes"},
		generate: func(string) []Suggestion {
			return []Suggestion{
				{Command: "git status", Description: "Show working tree status", Confidence: 0.95},
				{Command: "git diff", Description: "Show unstaged changes", Confidence: 0.7},
			}
		},
	},
	{
		keywords: []string{"install", "npm install", "install dependencies", "install packages"},
		generate: func(input string) []Suggestion {
			pkg := extractArg(input, "install", "add")
			return []Suggestion{
				{
					Command:     pick(pkg != "", "npm install "+pkg, "npm install"),
					Description: pick(pkg != "", "Install "+pkg, "Install all dependencies"),
					Confidence:  0.85,
				},
				{
					Command:     pick(pkg != "", "yarn add "+pkg, "yarn install"),
					Description: "Using yarn",
					Confidence:  0.7,
				},
			}
		},
	},
	{
		keywords: []string{"run", "start", "npm run", "run script", "start server", "dev server"},
		generate: func(input string) []Suggestion {
			script := extractArg(input, "run", "start")
			return []Suggestion{
				{
					Command:     pick(script != "" && script != "server", "npm run "+script, "npm run dev"),
					Description: "Run npm script",
					Confidence:  0.85,
				},
				{Command: "npm start", Description: "Start the application", Confidence: 0.75},
			}
		},
	},
	{
		keywords: []string{"pip", "pip install", "python install", "python package"},
		generate: func(input string) []Suggestion {
			pkg := extractArg(input, "install", "pip")
			return []Suggestion{{
				Command:     pick(pkg != "", "pip install "+pkg, "pip install -r requirements.txt"),
				Description: pick(pkg != "", "Install "+pkg, "Install from requirements"),
				Confidence:  0.85,
			}}
		},
	},
	{
		keywords: []string{"cargo", "rust build", "cargo build", "cargo run"},
		generate: func(string) []Suggestion {
			return []Suggestion{
				{Command: "cargo build", Description: "Build Rust project", Confidence: 0.85},
				{Command: "cargo run", Description: "Build and run", Confidence: 0.8},
				{Command: "cargo test", Description: "Run tests", Confidence: 0.7},
			}
		},
	},
	{
		keywords: []string{"list", "ls", "show files", "list files", "what files"},
		generate: func(string) []Suggestion {
			return []Suggestion{
				{Command: "ls -la", Description: "List all files with details", Confidence: 0.9},
				{Command: "ls", Description: "List files", Confidence: 0.85},
			}
		},
	},
	{
		keywords: []string{"go to", "navigate", "change directory", "cd"},
		generate: func(input string) []Suggestion {
			dir := extractArg(input, "to", "into", "cd")
			return []Suggestion{{
				Command:     pick(dir != "", "cd "+dir, "cd <directory>"),
				Description: "Change directory",
				Confidence:  pickF(dir != "", 0.9, 0.7),
			}}
		},
	},
	{
		keywords: []string{"mkdir", "create folder", "create directory", "new folder"},
		generate: func(input string) []Suggestion {
			name := extractArg(input, "folder", "directory", "called", "named", "mkdir")
			return []Suggestion{{
				Command:     pick(name != "", "mkdir -p "+name, "mkdir -p <folder-name>"),
				Description: "Create directory",
				Confidence:  pickF(name != "", 0.9, 0.7),
			}}
		},
	},
	{
		keywords: []string{"remove", "delete", "rm", "delete file", "remove file"},
		generate: func(input string) []Suggestion {
			target := extractArg(input, "remove", "delete", "rm")
			return []Suggestion{{
				Command:     pick(target != "", "rm -rf "+target, "rm -rf <path>"),
				Description: "Remove file or directory",
				Confidence:  pickF(target != "", 0.85, 0.65),
			}}
		},
	},
	{
		keywords: []string{"read", "show file", "cat", "print file", "view file"},
		generate: func(input string) []Suggestion {
			file := extractArg(input, "read", "show", "cat", "view", "print")
			return []Suggestion{{
				Command:     pick(file != "", "cat "+file, "cat <filename>"),
				Description: "Display file contents",
				Confidence:  pickF(file != "", 0.9, 0.7),
			}}
		},
	},
	{
		keywords: []string{"search", "grep", "find text", "search in files"},
		generate: func(input string) []Suggestion {
			term := extractArg(input, "search", "grep", "for", "find")
			return []Suggestion{{
				Command:     pick(term != "", fmt.Sprintf("grep -r %q .", term), `grep -r "<pattern>" .`),
				Description: "Search recursively in files",
				Confidence:  pickF(term != "", 0.85, 0.7),
			}}
		},
	},
	{
		keywords: []string{"test", "run tests", "tests", "testing"},
		generate: func(string) []Suggestion {
			return []Suggestion{
				{Command: "npm test", Description: "Run npm tests", Confidence: 0.8},
				{Command: "pytest", Description: "Run Python tests", Confidence: 0.7},
				{Command: "cargo test", Description: "Run Rust tests", Confidence: 0.7},
			}
		},
	},
	{
		keywords: []string{"where am i", "current directory", "pwd", "current path"},
		generate: func(string) []Suggestion {
			return []Suggestion{{Command: "pwd", Description: "Print working directory", Confidence: 0.95}}
		},
	},
}

// maxSuggestions caps the Suggest result after dedup and sorting.
const maxSuggestions = 6

// Suggest runs every rule whose keywords appear in input, deduplicates by
// exact command text across rules, sorts by descending confidence and caps
// the result.
func Suggest(input string) []Suggestion {
	lower := strings.ToLower(input)
	seen := make(map[string]bool)
	var out []Suggestion
	for _, r := range rules {
		fired := false
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				fired = true
				break
			}
		}
		if !fired {
			continue
		}
		for _, s := range r.generate(input) {
			if !seen[s.Command] {
				seen[s.Command] = true
				out = append(out, s)
			}
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Confidence > out[b].Confidence })
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// CommonCommands is the static catalog surfaced by the command palette.
var CommonCommands = []Suggestion{
	{Command: "ls -la", Description: "List all files with details", Confidence: 1},
	{Command: "pwd", Description: "Print working directory", Confidence: 1},
	{Command: "git status", Description: "Show git status", Confidence: 1},
	{Command: "git log --oneline -10", Description: "Show last 10 commits", Confidence: 1},
	{Command: "npm install", Description: "Install npm dependencies", Confidence: 1},
	{Command: "npm run dev", Description: "Start dev server", Confidence: 1},
	{Command: "git pull", Description: "Pull latest changes", Confidence: 1},
	{Command: "git push", Description: "Push changes", Confidence: 1},
	{Command: "cat package.json", Description: "View package.json", Confidence: 1},
	{Command: "df -h", Description: "Show disk usage", Confidence: 1},
	{Command: "ps aux", Description: "List running processes", Confidence: 1},
	{Command: "top", Description: "Show system resource usage", Confidence: 1},
}
