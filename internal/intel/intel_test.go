package intel

import (
	"strings"
	"testing"
)

func TestSuggest_CloneWithURL(t *testing.T) {
	got := Suggest("clone https://x/y.git")
	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	top := got[0]
	if top.Command != "git clone https://x/y.git" {
		t.Fatalf("unexpected top suggestion: %+v", top)
	}
	if top.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", top.Confidence)
	}
}

func TestSuggest_NoArgumentFallsBackToPlaceholder(t *testing.T) {
	got := Suggest("clone")
	if len(got) == 0 || got[0].Command != "git clone <repo-url>" {
		t.Fatalf("unexpected suggestions: %+v", got)
	}
	if got[0].Confidence != 0.7 {
		t.Fatalf("placeholder suggestion should be lower confidence: %v", got[0].Confidence)
	}
}

func TestSuggest_SortedAndCapped(t *testing.T) {
	// fires several rules at once: install, run, test, status
	got := Suggest("install run test status")
	if len(got) > 6 {
		t.Fatalf("result must be capped to 6, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Confidence > got[i-1].Confidence {
			t.Fatalf("not sorted by descending confidence: %+v", got)
		}
	}
}

func TestSuggest_DeduplicatesAcrossRules(t *testing.T) {
	// both the cargo rule and the test rule emit "cargo test"
	got := Suggest("cargo test")
	n := 0
	for _, s := range got {
		if s.Command == "cargo test" {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("expected cargo test exactly once, got %d in %+v", n, got)
	}
}

func TestSuggest_NoMatch(t *testing.T) {
	if got := Suggest("qqqq"); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %+v", got)
	}
}

func TestSuggest_CaseInsensitiveKeywords(t *testing.T) {
	got := Suggest("CLONE https://x/y.git")
	if len(got) == 0 || got[0].Command != "git clone https://x/y.git" {
		t.Fatalf("keyword matching must be case-insensitive: %+v", got)
	}
}

func TestAnalyzeError_ZeroExitIsClean(t *testing.T) {
	if got := AnalyzeError("ls", "whatever", 0); got != nil {
		t.Fatalf("zero exit must yield nothing, got %+v", got)
	}
}

func TestAnalyzeError_CommandNotFound(t *testing.T) {
	got := AnalyzeError("foo --bar", "bash: foo: command not found", 127)
	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	if got[0].Command != "which foo || type foo" {
		t.Fatalf("unexpected first suggestion: %+v", got[0])
	}
}

func TestAnalyzeError_KnownInterpreterHints(t *testing.T) {
	got := AnalyzeError("python script.py", "python: command not found", 127)
	found := false
	for _, s := range got {
		if s.Command == "python3 --version" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected python3 hint, got %+v", got)
	}
}

func TestAnalyzeError_MultipleSignaturesConcatenate(t *testing.T) {
	stderr := "permission denied\nls: no such file or directory"
	got := AnalyzeError("./run.sh", stderr, 1)
	var hasSudo, hasLs bool
	for _, s := range got {
		if s.Command == "sudo ./run.sh" {
			hasSudo = true
		}
		if s.Command == "ls -la" {
			hasLs = true
		}
	}
	if !hasSudo || !hasLs {
		t.Fatalf("expected both signatures to fire: %+v", got)
	}
}

func TestAnalyzeError_FallbackHelp(t *testing.T) {
	got := AnalyzeError("mytool sync", "inscrutable failure", 3)
	if len(got) != 1 || got[0].Command != "mytool sync --help" {
		t.Fatalf("expected single --help fallback, got %+v", got)
	}
	if got[0].Confidence != 0.6 {
		t.Fatalf("fallback should be low confidence: %v", got[0].Confidence)
	}
}

func TestAnalyzeError_PortInUse(t *testing.T) {
	got := AnalyzeError("npm run dev", "Error: port 3000 already in use", 1)
	var hasLsof bool
	for _, s := range got {
		if strings.HasPrefix(s.Command, "lsof") {
			hasLsof = true
		}
	}
	if !hasLsof {
		t.Fatalf("expected lsof suggestion, got %+v", got)
	}
}

func TestComplete_HistoryFirst(t *testing.T) {
	history := []string{"git push origin main", "git pull"}
	if got := Complete("git pu", history); got != "ll" {
		t.Fatalf("most recent history entry should win, got %q", got)
	}
}

func TestComplete_TableByFirstWord(t *testing.T) {
	if got := Complete("cargo b", nil); got != "uild" {
		t.Fatalf("unexpected completion: %q", got)
	}
}

func TestComplete_NoInput(t *testing.T) {
	if got := Complete("   ", []string{"ls"}); got != "" {
		t.Fatalf("blank input completes to nothing, got %q", got)
	}
}

func TestComplete_ExactInputNotCompleted(t *testing.T) {
	if got := Complete("git status", []string{"git status"}); got != "" {
		t.Fatalf("identical entry must not complete to itself, got %q", got)
	}
}
