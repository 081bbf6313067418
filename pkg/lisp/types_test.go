package lisp

import (
	"testing"

	"github.com/ahonen/golisp/pkg/symbol"
)

func TestListBasics(t *testing.T) {
	l := NewList(Number{1}, Number{2}, Number{3})
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if l.First() != (Number{1}) {
		t.Errorf("First() = %v, want 1", l.First())
	}
	if l.Rest().Len() != 2 {
		t.Errorf("Rest().Len() = %d, want 2", l.Rest().Len())
	}
}

func TestEmptyList(t *testing.T) {
	var l *List
	if !l.IsEmpty() {
		t.Error("nil *List should be empty")
	}
	if !IsNil(l.First()) {
		t.Errorf("First() of empty list = %v, want nil", l.First())
	}
}

func TestConsAndAppend(t *testing.T) {
	a := NewList(Number{1}, Number{2})
	b := NewList(Number{3})
	joined := Append(a, b)
	if joined.Len() != 3 {
		t.Fatalf("Append Len() = %d, want 3", joined.Len())
	}
	c := Cons(Number{0}, joined)
	if c.First() != (Number{0}) || c.Len() != 4 {
		t.Errorf("Cons produced %v", c)
	}
}

func TestEqualStructural(t *testing.T) {
	a := NewList(Number{1}, Str("x"))
	b := NewList(Number{1}, Str("x"))
	if !Equal(a, b) {
		t.Error("structurally identical lists should be Equal")
	}
	c := NewList(Number{1}, Str("y"))
	if Equal(a, c) {
		t.Error("structurally different lists should not be Equal")
	}
}

func TestEqualSymbolIdentity(t *testing.T) {
	if !Equal(symbol.Intern("foo"), symbol.Intern("foo")) {
		t.Error("interned symbols with the same name should be Equal")
	}
}

func TestAtomMutation(t *testing.T) {
	a := NewAtom(Number{1})
	if a.Deref() != (Number{1}) {
		t.Fatalf("Deref() = %v, want 1", a.Deref())
	}
	a.Set(Number{2})
	if a.Deref() != (Number{2}) {
		t.Fatalf("Deref() after Set = %v, want 2", a.Deref())
	}
}

func TestProcedureNaming(t *testing.T) {
	proc := NewUserProcedure(nil, false, symbol.Symbol{}, []Value{NilValue}, nil)
	if _, named := proc.Name(); named {
		t.Fatal("fresh procedure should be unnamed")
	}
	proc.SetName(symbol.Intern("greet"))
	name, named := proc.Name()
	if !named || name.String() != "greet" {
		t.Errorf("Name() = (%v, %v), want (greet, true)", name, named)
	}
	proc.SetName(symbol.Intern("other"))
	name, _ = proc.Name()
	if name.String() != "greet" {
		t.Error("SetName should not rename an already-named procedure")
	}
}

func TestTruthy(t *testing.T) {
	if !Truthy(Number{0}) {
		t.Error("0 should be truthy")
	}
	if !Truthy(Str("")) {
		t.Error("empty string should be truthy")
	}
	if Truthy(NilValue) {
		t.Error("nil should be falsy")
	}
	if Truthy(FalseValue) {
		t.Error("false should be falsy")
	}
}
