// Package ansi decodes SGR escape sequences (ESC [ <params> m) embedded in a
// single line of terminal output into styled text spans.
//
// Only color/weight/decoration attributes are handled; cursor movement and
// alternate screen sequences are out of scope.
package ansi

import (
	"strconv"
	"strings"
)

// Style is the accumulated rendition state for a span. Zero value means
// unstyled text.
type Style struct {
	Foreground string // hex color, empty when unset
	Background string
	Bold       bool
	Dim        bool
	Italic     bool
	Underline  bool
}

// Span is a run of text carrying one style.
type Span struct {
	Text  string
	Style Style
}

// Foreground SGR codes 30-37 and 90-97 mapped to hex colors
// (Dracula-inspired palette).
var fgColors = map[int]string{
	30: "#4a4a4a",
	31: "#ff5555",
	32: "#50fa7b",
	33: "#f1fa8c",
	34: "#6272a4",
	35: "#ff79c6",
	36: "#8be9fd",
	37: "#f8f8f2",
	90: "#6272a4",
	91: "#ff6e6e",
	92: "#69ff94",
	93: "#ffffa5",
	94: "#d6acff",
	95: "#ff92df",
	96: "#a4ffff",
	97: "#ffffff",
}

// Background SGR codes 40-47.
var bgColors = map[int]string{
	40: "#000000",
	41: "#ff5555",
	42: "#50fa7b",
	43: "#f1fa8c",
	44: "#6272a4",
	45: "#ff79c6",
	46: "#8be9fd",
	47: "#f8f8f2",
}

// Parse splits line into spans, applying SGR parameters left to right.
// Code 0 resets the accumulator; 1/2/3/4 set bold/dim/italic/underline;
// recognized color codes set foreground/background. Unknown codes are
// ignored. Style never carries over between calls.
func Parse(line string) []Span {
	var spans []Span
	var cur Style
	rest := line
	for {
		esc := strings.Index(rest, "\x1b[")
		if esc < 0 {
			break
		}
		// locate the terminating 'm'; the parameter body may only contain
		// digits and semicolons, anything else means not an SGR sequence
		end := esc + 2
		for end < len(rest) && (rest[end] == ';' || (rest[end] >= '0' && rest[end] <= '9')) {
			end++
		}
		if end >= len(rest) || rest[end] != 'm' {
			// not SGR; emit up to and including the bogus escape as text
			spans = appendSpan(spans, rest[:end], cur)
			rest = rest[end:]
			continue
		}
		spans = appendSpan(spans, rest[:esc], cur)
		cur = applyCodes(cur, rest[esc+2:end])
		rest = rest[end+1:]
	}
	spans = appendSpan(spans, rest, cur)
	if len(spans) == 0 {
		spans = []Span{{Text: line}}
	}
	return spans
}

func appendSpan(spans []Span, text string, st Style) []Span {
	if text == "" {
		return spans
	}
	return append(spans, Span{Text: text, Style: st})
}

func applyCodes(st Style, params string) Style {
	for _, p := range strings.Split(params, ";") {
		code, err := strconv.Atoi(p)
		if err != nil {
			// empty parameter means 0 per ECMA-48
			if p == "" {
				st = Style{}
			}
			continue
		}
		switch {
		case code == 0:
			st = Style{}
		case code == 1:
			st.Bold = true
		case code == 2:
			st.Dim = true
		case code == 3:
			st.Italic = true
		case code == 4:
			st.Underline = true
		default:
			if c, ok := fgColors[code]; ok {
				st.Foreground = c
			} else if c, ok := bgColors[code]; ok {
				st.Background = c
			}
		}
	}
	return st
}

// Strip removes SGR sequences from line, returning plain text.
func Strip(line string) string {
	spans := Parse(line)
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
