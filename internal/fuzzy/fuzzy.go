// Package fuzzy ranks candidate strings against a query with a tiered
// scoring policy used for command recall.
package fuzzy

import (
	"sort"
	"strings"
)

// Match pairs a candidate index with its relevance score.
type Match struct {
	Index int
	Score int
}

// Scores per match class. Subsequence matches start at scoreSubseq and gain
// consecutiveBonus per run of adjacent matched characters.
const (
	scoreExact       = 100
	scorePrefix      = 80
	scoreSubstring   = 60
	scoreSubseq      = 20
	consecutiveBonus = 5
)

// Search scores items against query and returns matches sorted by
// non-increasing score. Non-matches are dropped. An empty (or blank) query
// matches everything with a uniform score, preserving input order.
func Search(query string, items []string) []Match {
	if strings.TrimSpace(query) == "" {
		out := make([]Match, len(items))
		for i := range items {
			out[i] = Match{Index: i, Score: 1}
		}
		return out
	}

	q := strings.ToLower(query)
	var out []Match
	for i, item := range items {
		if s := Score(q, strings.ToLower(item)); s > 0 {
			out = append(out, Match{Index: i, Score: s})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	return out
}

// Score rates a single lowercased candidate against a lowercased query.
// Zero means no match.
func Score(q, text string) int {
	switch {
	case text == q:
		return scoreExact
	case strings.HasPrefix(text, q):
		return scorePrefix
	case strings.Contains(text, q):
		return scoreSubstring
	}
	// subsequence: every query char appears in order
	qi := 0
	consecutive := 0
	lastMatch := -1
	for i := 0; i < len(text) && qi < len(q); i++ {
		if text[i] == q[qi] {
			if lastMatch == i-1 {
				consecutive++
			}
			lastMatch = i
			qi++
		}
	}
	if qi == len(q) {
		return scoreSubseq + consecutive*consecutiveBonus
	}
	return 0
}
