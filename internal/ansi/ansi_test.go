package ansi

import "testing"

func TestParse_PlainLine(t *testing.T) {
	spans := Parse("hello world")
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Text != "hello world" {
		t.Fatalf("unexpected text: %q", spans[0].Text)
	}
	if spans[0].Style != (Style{}) {
		t.Fatalf("plain line must carry no style: %+v", spans[0].Style)
	}
}

func TestParse_EmptyLine(t *testing.T) {
	spans := Parse("")
	if len(spans) != 1 || spans[0].Text != "" {
		t.Fatalf("empty line should yield one empty span, got %v", spans)
	}
}

func TestParse_ColorAndReset(t *testing.T) {
	spans := Parse("\x1b[32mok\x1b[0m done")
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %v", len(spans), spans)
	}
	if spans[0].Text != "ok" || spans[0].Style.Foreground != "#50fa7b" {
		t.Fatalf("unexpected first span: %+v", spans[0])
	}
	// text after a reset must not inherit any style
	if spans[1].Text != " done" || spans[1].Style != (Style{}) {
		t.Fatalf("reset did not clear style: %+v", spans[1])
	}
}

func TestParse_CombinedParams(t *testing.T) {
	spans := Parse("\x1b[1;31mfatal\x1b[0m")
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	st := spans[0].Style
	if !st.Bold || st.Foreground != "#ff5555" {
		t.Fatalf("expected bold red, got %+v", st)
	}
}

func TestParse_StyleAccumulates(t *testing.T) {
	spans := Parse("\x1b[4ma\x1b[33mb")
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if !spans[0].Style.Underline || spans[0].Style.Foreground != "" {
		t.Fatalf("unexpected first span style: %+v", spans[0].Style)
	}
	if !spans[1].Style.Underline || spans[1].Style.Foreground != "#f1fa8c" {
		t.Fatalf("later codes must accumulate onto earlier ones: %+v", spans[1].Style)
	}
}

func TestParse_BackgroundAndAttrs(t *testing.T) {
	spans := Parse("\x1b[2;3;41mx")
	st := spans[0].Style
	if !st.Dim || !st.Italic || st.Background != "#ff5555" {
		t.Fatalf("unexpected style: %+v", st)
	}
}

func TestParse_UnknownCodesIgnored(t *testing.T) {
	spans := Parse("\x1b[5;38mblink")
	if len(spans) != 1 || spans[0].Text != "blink" {
		t.Fatalf("unexpected spans: %v", spans)
	}
	if spans[0].Style != (Style{}) {
		t.Fatalf("unknown codes must not alter style: %+v", spans[0].Style)
	}
}

func TestParse_NonSGRSequencePassesThrough(t *testing.T) {
	spans := Parse("\x1b[Kcleared")
	var text string
	for _, s := range spans {
		text += s.Text
	}
	if text != "\x1b[Kcleared" {
		t.Fatalf("non-SGR escapes should stay literal, got %q", text)
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("\x1b[1;32mPASS\x1b[0m ok"); got != "PASS ok" {
		t.Fatalf("Strip: %q", got)
	}
}
