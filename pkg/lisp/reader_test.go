package lisp

import (
	"testing"

	"github.com/ahonen/golisp/pkg/symbol"
)

func TestReadStringAtoms(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"nil", "nil"},
		{"true", "true"},
		{"false", "false"},
		{`"hi"`, "hi"},
	}
	for _, c := range cases {
		v, err := ReadString(c.input)
		if err != nil {
			t.Fatalf("ReadString(%q) error: %v", c.input, err)
		}
		if v.String() != c.want {
			t.Errorf("ReadString(%q) = %q, want %q", c.input, v.String(), c.want)
		}
	}
}

func TestReadStringList(t *testing.T) {
	v, err := ReadString("(+ 1 2)")
	if err != nil {
		t.Fatalf("ReadString error: %v", err)
	}
	list, ok := v.(*List)
	if !ok {
		t.Fatalf("expected *List, got %T", v)
	}
	if list.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", list.Len())
	}
	if sym, ok := list.First().(symbol.Symbol); !ok || sym.String() != "+" {
		t.Errorf("first element = %v, want symbol +", list.First())
	}
}

func TestReadStringQuoteSugar(t *testing.T) {
	cases := map[string]string{
		"'x":  "(quote x)",
		"`x":  "(quasiquote x)",
		"~x":  "(unquote x)",
		"~@x": "(splice-unquote x)",
	}
	for input, want := range cases {
		v, err := ReadString(input)
		if err != nil {
			t.Fatalf("ReadString(%q) error: %v", input, err)
		}
		if v.String() != want {
			t.Errorf("ReadString(%q) = %q, want %q", input, v.String(), want)
		}
	}
}

func TestReadStringEmptyInput(t *testing.T) {
	v, err := ReadString("   ; just a comment\n")
	if err != nil {
		t.Fatalf("ReadString error: %v", err)
	}
	if v != nil {
		t.Errorf("ReadString(whitespace/comment) = %v, want nil", v)
	}
}

func TestReadStringUnterminatedList(t *testing.T) {
	_, err := ReadString("(+ 1 2")
	if err == nil {
		t.Fatal("expected an error for an unterminated list")
	}
}

func TestReadStringUnterminatedString(t *testing.T) {
	_, err := ReadString(`"unterminated`)
	if err == nil {
		t.Fatal("expected an error for an unterminated string")
	}
}

func TestReadStringEscapes(t *testing.T) {
	v, err := ReadString(`"a\nb\tc\"d"`)
	if err != nil {
		t.Fatalf("ReadString error: %v", err)
	}
	want := "a\nb\tc\"d"
	if string(v.(Str)) != want {
		t.Errorf("ReadString escapes = %q, want %q", string(v.(Str)), want)
	}
}

func TestReadAll(t *testing.T) {
	exprs, err := ReadAll("1 2 (+ 1 2)")
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if len(exprs) != 3 {
		t.Fatalf("ReadAll returned %d expressions, want 3", len(exprs))
	}
}
