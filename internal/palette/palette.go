// Package palette builds and filters the command palette entries: recent
// history first, then context suggestions, then the common-command catalog.
package palette

import (
	"strings"

	"termctl/internal/fuzzy"
	"termctl/internal/intel"
)

// Source tags where a palette entry came from.
type Source string

const (
	SourceHistory Source = "history"
	SourceAI      Source = "ai"
	SourceCommon  Source = "common"
)

// Command is one palette entry.
type Command struct {
	Text        string
	Description string
	Source      Source
}

const (
	recentLimit = 20
	resultLimit = 20
)

// contextInput derives a suggestion prompt from the working directory.
// Coarse on purpose; it only seeds the context-suggestion tier.
func contextInput(workingDir string) string {
	switch {
	case strings.Contains(workingDir, "node_modules") || strings.Contains(workingDir, "package"):
		return "npm install run"
	case strings.Contains(workingDir, ".git") || strings.Contains(workingDir, "git"):
		return "git status commit push"
	default:
		return "list files"
	}
}

// Build assembles the full palette for the given command history and working
// directory. Entries are deduplicated by text with history winning over
// context suggestions, which win over the common catalog.
func Build(history []string, workingDir string) []Command {
	seen := make(map[string]bool)
	var cmds []Command

	add := func(text, desc string, src Source) {
		if seen[text] {
			return
		}
		seen[text] = true
		cmds = append(cmds, Command{Text: text, Description: desc, Source: src})
	}

	recent := 0
	for i := len(history) - 1; i >= 0 && recent < recentLimit; i-- {
		add(history[i], "Recent command", SourceHistory)
		recent++
	}

	for _, s := range intel.Suggest(contextInput(workingDir)) {
		add(s.Command, s.Description, SourceAI)
	}

	for _, c := range intel.CommonCommands {
		add(c.Command, c.Description, SourceCommon)
	}

	return cmds
}

// Filter narrows cmds to the query, fuzzy-ranked, capped at 20 entries.
// A blank query returns the first 20 entries unranked.
func Filter(query string, cmds []Command) []Command {
	if strings.TrimSpace(query) == "" {
		if len(cmds) > resultLimit {
			return cmds[:resultLimit]
		}
		return cmds
	}
	texts := make([]string, len(cmds))
	for i, c := range cmds {
		texts[i] = c.Text
	}
	matches := fuzzy.Search(query, texts)
	out := make([]Command, 0, resultLimit)
	for _, m := range matches {
		out = append(out, cmds[m.Index])
		if len(out) == resultLimit {
			break
		}
	}
	return out
}
