package lisp

import "testing"

func TestListBuiltins(t *testing.T) {
	env := newTestEnv(t)
	if v := mustEval(t, env, "(cons 1 (list 2 3))"); v.String() != "(1 2 3)" {
		t.Errorf("cons = %s, want (1 2 3)", v)
	}
	if v := mustEval(t, env, "(concat (list 1 2) (list 3 4))"); v.String() != "(1 2 3 4)" {
		t.Errorf("concat = %s, want (1 2 3 4)", v)
	}
	if v := mustEval(t, env, "(nth (list 1 2 3) 5)"); !IsNil(v) {
		t.Errorf("nth out of range = %s, want nil", v)
	}
	if v := mustEval(t, env, "(list-rest 1 2 (list 3 4))"); v.String() != "(1 2 3 4)" {
		t.Errorf("list-rest = %s, want (1 2 3 4)", v)
	}
}

func TestListRefOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	_, err := evalSrc(env, "(list-ref (list 1 2) 5)")
	if _, ok := err.(*IndexOutOfRangeError); !ok {
		t.Errorf("error = %v, want *IndexOutOfRangeError", err)
	}
}

func TestAtomBuiltins(t *testing.T) {
	env := newTestEnv(t)
	mustEval(t, env, "(def! a (atom 10))")
	if v := mustEval(t, env, "(deref a)"); v.String() != "10" {
		t.Errorf("deref = %s, want 10", v)
	}
	mustEval(t, env, "(atom-set! a 20)")
	if v := mustEval(t, env, "(deref a)"); v.String() != "20" {
		t.Errorf("deref after set = %s, want 20", v)
	}
	mustEval(t, env, "(swap! a (lambda (x) (+ x 1)))")
	if v := mustEval(t, env, "(deref a)"); v.String() != "21" {
		t.Errorf("deref after swap = %s, want 21", v)
	}
}

func TestApplyAndEval(t *testing.T) {
	env := newTestEnv(t)
	if v := mustEval(t, env, "(apply + (list 1 2 3))"); v.String() != "6" {
		t.Errorf("apply = %s, want 6", v)
	}
	if v := mustEval(t, env, "(apply + 1 2 (list 3 4))"); v.String() != "10" {
		t.Errorf("apply with leading args = %s, want 10", v)
	}
	if v := mustEval(t, env, `(eval (read-string "(+ 1 2)"))`); v.String() != "3" {
		t.Errorf("eval+read-string = %s, want 3", v)
	}
}

func TestTypeIntrospection(t *testing.T) {
	env := newTestEnv(t)
	if v := mustEval(t, env, "(type 1)"); v.String() != "number" {
		t.Errorf("(type 1) = %s, want number", v)
	}
	if v := mustEval(t, env, "(builtin? +)"); v.String() != "true" {
		t.Errorf("(builtin? +) = %s, want true", v)
	}
	mustEval(t, env, "(def! f (lambda (a b) (+ a b)))")
	if v := mustEval(t, env, "(arity f)"); v.String() != "2" {
		t.Errorf("(arity f) = %s, want 2", v)
	}
	if v := mustEval(t, env, "(builtin? f)"); v.String() != "false" {
		t.Errorf("(builtin? f) = %s, want false", v)
	}
}

func TestPrinterReadableVsRaw(t *testing.T) {
	if got := Print(Str("hi\nthere"), true); got != `"hi\nthere"` {
		t.Errorf("Print(readable) = %q, want %q", got, `"hi\nthere"`)
	}
	if got := Print(Str("hi\nthere"), false); got != "hi\nthere" {
		t.Errorf("Print(raw) = %q, want %q", got, "hi\nthere")
	}
}
