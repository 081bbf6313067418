package repl

import (
	"testing"

	"github.com/ahonen/golisp/pkg/lisp"
)

func TestGetCompletionsIncludesSpecialForms(t *testing.T) {
	env, err := lisp.NewRootEnvironment()
	if err != nil {
		t.Fatalf("NewRootEnvironment error: %v", err)
	}
	cp := NewCompletionProvider(env)

	got := cp.GetCompletions("def")
	found := false
	for _, name := range got {
		if name == "def!" {
			found = true
		}
	}
	if !found {
		t.Errorf("GetCompletions(%q) = %v, want it to include %q", "def", got, "def!")
	}
}

func TestGetCompletionsIncludesBuiltins(t *testing.T) {
	env, err := lisp.NewRootEnvironment()
	if err != nil {
		t.Fatalf("NewRootEnvironment error: %v", err)
	}
	cp := NewCompletionProvider(env)

	got := cp.GetCompletions("cons")
	if len(got) != 1 || got[0] != "cons" {
		t.Errorf("GetCompletions(%q) = %v, want [%q]", "cons", got, "cons")
	}
}

func TestGetCompletionsNoMatches(t *testing.T) {
	env, err := lisp.NewRootEnvironment()
	if err != nil {
		t.Fatalf("NewRootEnvironment error: %v", err)
	}
	cp := NewCompletionProvider(env)

	if got := cp.GetCompletions("zzz-not-a-thing"); len(got) != 0 {
		t.Errorf("GetCompletions(%q) = %v, want none", "zzz-not-a-thing", got)
	}
}
