package interp

import (
	"strings"
	"testing"

	"github.com/qeforge/qescript/internal/editor"
)

func TestIfElse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"if (1) a = 1 else a = 2; a", "-> 1"},
		{"if (0) a = 1 else a = 2; a", "-> 2"},
		{"if (1) a = 1; a", "-> 1"},
		{`if ("s") a = 1 else a = 2; a`, "-> 1"}, // strings are truthy
		{"if ('x') a = 1 else a = 2; a", "-> 1"}, // chars are truthy
		{"if (2 > 1) a = 1 else a = 2; a", "-> 1"},
		{"if (0) { a = 1; b = 1 } else { a = 2; b = 3 }; a + b", "-> 5"},
		{"if (1) { a = 1 } else { a = 2 }; a", "-> 1"},
		{"if (0) a = 1; if (1) b = 2; b", "-> 2"},
	}

	for _, tt := range tests {
		status, errs := evalString(t, tt.input)
		if errs != "" {
			t.Errorf("%q: unexpected errors %q", tt.input, errs)
			continue
		}
		if got := strings.TrimSpace(status); got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestIfSkipsUntakenBranch(t *testing.T) {
	_, w, _, errs := testHost()
	EvalExpression(w, "if (0) t = 9 else a = 1; if (1) b = 2 else u = 9", editor.NoArg)
	if errs.String() != "" {
		t.Fatalf("unexpected errors %q", errs.String())
	}
	for _, name := range []string{"t", "u"} {
		if kind, _, _ := w.Ed.Broker.Get(w, name); kind != editor.VarUnknown {
			t.Errorf("variable %q was assigned in an untaken branch", name)
		}
	}
	for _, name := range []string{"a", "b"} {
		if kind, _, _ := w.Ed.Broker.Get(w, name); kind != editor.VarNumber {
			t.Errorf("variable %q missing from the taken branch", name)
		}
	}
}

func TestNestedIf(t *testing.T) {
	src := `
		a = 0
		if (1) {
			if (0)
				a = 1
			else
				a = 2
		}
		a`
	status, errs := evalString(t, src)
	if errs != "" {
		t.Fatalf("unexpected errors %q", errs)
	}
	if got := strings.TrimSpace(status); got != "-> 2" {
		t.Fatalf("expected -> 2, got %q", got)
	}
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	// two statements on separate lines need no ';'
	status, errs := evalString(t, "a = 1\na + 1")
	if errs != "" {
		t.Fatalf("unexpected errors %q", errs)
	}
	if got := strings.TrimSpace(status); got != "-> 2" {
		t.Fatalf("expected -> 2, got %q", got)
	}

	// two statements on the same line require ';'
	_, errs = evalString(t, "a = 1 a + 1")
	if !strings.Contains(errs, "missing ';'") {
		t.Fatalf("expected missing ';' error, got %q", errs)
	}
}

func TestEmptyStatements(t *testing.T) {
	status, errs := evalString(t, ";;; 5 ;;")
	if errs != "" {
		t.Fatalf("unexpected errors %q", errs)
	}
	if got := strings.TrimSpace(status); got != "-> 5" {
		t.Fatalf("expected -> 5, got %q", got)
	}
}

func TestMissingBrace(t *testing.T) {
	_, errs := evalString(t, "{ a = 1")
	if !strings.Contains(errs, "missing '}'") {
		t.Fatalf("expected missing '}' error, got %q", errs)
	}
}

func TestBlockStatements(t *testing.T) {
	status, errs := evalString(t, "{ a = 1; b = 2; a + b }")
	if errs != "" {
		t.Fatalf("unexpected errors %q", errs)
	}
	if got := strings.TrimSpace(status); got != "-> 3" {
		t.Fatalf("expected -> 3, got %q", got)
	}
}

func TestCommentsInScripts(t *testing.T) {
	src := `
		// configure indentation
		a = 1
		/* block comment
		   spanning lines */
		a + 1`
	status, errs := evalString(t, src)
	if errs != "" {
		t.Fatalf("unexpected errors %q", errs)
	}
	if got := strings.TrimSpace(status); got != "-> 2" {
		t.Fatalf("expected -> 2, got %q", got)
	}
}

func TestFailedStatementResetsResult(t *testing.T) {
	// a failing final statement leaves no stale value to display
	status, errs := evalString(t, "1 + 2; nosuch")
	if !strings.Contains(errs, "no variable nosuch") {
		t.Fatalf("expected no variable error, got %q", errs)
	}
	if status != "" {
		t.Fatalf("expected no status output, got %q", status)
	}
}
