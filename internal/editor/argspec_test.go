package editor

import "testing"

func TestSpecReaderEvalExpression(t *testing.T) {
	r := NewSpecReader("s{Eval: }[.symbol]|expression|P")
	if r.Mutates {
		t.Fatal("spec should not be mutating")
	}

	as, err := r.Next()
	if err != nil || as == nil {
		t.Fatalf("first descriptor: %v %v", as, err)
	}
	if as.Type != ArgString || as.Prompt != "Eval: " || as.Completion != ".symbol" || as.History != "expression" {
		t.Fatalf("unexpected descriptor %+v", as)
	}

	as, err = r.Next()
	if err != nil || as == nil {
		t.Fatalf("second descriptor: %v %v", as, err)
	}
	if as.Type != ArgInt || as.Flag != FlagRawArgval {
		t.Fatalf("unexpected descriptor %+v", as)
	}

	if as, err = r.Next(); as != nil || err != nil {
		t.Fatalf("expected end of spec, got %v %v", as, err)
	}
}

func TestSpecReaderMutating(t *testing.T) {
	r := NewSpecReader("*md")
	if !r.Mutates {
		t.Fatal("spec should be mutating")
	}

	flags := []ArgFlag{FlagUseMark, FlagUsePoint}
	for i, want := range flags {
		as, err := r.Next()
		if err != nil || as == nil {
			t.Fatalf("descriptor %d: %v %v", i, as, err)
		}
		if as.Type != ArgInt || as.Flag != want {
			t.Fatalf("descriptor %d: got %+v", i, as)
		}
	}
}

func TestSpecReaderPseudoArgs(t *testing.T) {
	r := NewSpecReader("vS{prompt text}")

	as, _ := r.Next()
	if as == nil || as.Type != ArgIntVal {
		t.Fatalf("expected INTVAL, got %+v", as)
	}
	as, _ = r.Next()
	if as == nil || as.Type != ArgStringVal || as.Prompt != "prompt text" {
		t.Fatalf("expected STRINGVAL with prompt, got %+v", as)
	}
}

func TestSpecReaderErrors(t *testing.T) {
	r := NewSpecReader("x")
	if _, err := r.Next(); err == nil {
		t.Fatal("expected error for unknown descriptor letter")
	}

	r = NewSpecReader("s{unterminated")
	if _, err := r.Next(); err == nil {
		t.Fatal("expected error for unterminated annotation")
	}
}
