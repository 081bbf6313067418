package repl

import (
	"strings"
	"testing"

	"github.com/ahonen/golisp/pkg/lisp"
	"github.com/ahonen/golisp/pkg/symbol"
)

func TestFormatException(t *testing.T) {
	f := NewErrorFormatter()
	out := f.Format(lisp.NewException(lisp.Str("boom")))
	if !strings.Contains(out, "exception: boom") {
		t.Errorf("Format(exception) = %q, want it to contain %q", out, "exception: boom")
	}
}

func TestFormatUnboundSymbol(t *testing.T) {
	f := NewErrorFormatter()
	out := f.Format(&lisp.UnboundSymbolError{Name: symbol.Intern("frobnicate")})
	if !strings.Contains(out, "unbound-symbol") || !strings.Contains(out, "frobnicate") {
		t.Errorf("Format(unbound) = %q, want it to mention unbound-symbol and the name", out)
	}
}

func TestFormatArityError(t *testing.T) {
	f := NewErrorFormatter()
	out := f.Format(&lisp.ArityError{Name: "cons", Want: 2, Got: 1})
	if !strings.Contains(out, "arity-error") {
		t.Errorf("Format(arity) = %q, want it to mention arity-error", out)
	}
}
