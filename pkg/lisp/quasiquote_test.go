package lisp

import "testing"

func TestQuasiquoteLiteral(t *testing.T) {
	env := newTestEnv(t)
	v := mustEval(t, env, "`(1 2 3)")
	if v.String() != "(1 2 3)" {
		t.Errorf("`(1 2 3) = %s, want (1 2 3)", v)
	}
}

func TestQuasiquoteUnquote(t *testing.T) {
	env := newTestEnv(t)
	mustEval(t, env, "(def! x 5)")
	v := mustEval(t, env, "`(a ~x c)")
	if v.String() != "(a 5 c)" {
		t.Errorf("`(a ~x c) = %s, want (a 5 c)", v)
	}
}

func TestQuasiquoteSpliceUnquote(t *testing.T) {
	env := newTestEnv(t)
	mustEval(t, env, "(def! xs (list 1 2 3))")
	v := mustEval(t, env, "`(a ~@xs b)")
	if v.String() != "(a 1 2 3 b)" {
		t.Errorf("`(a ~@xs b) = %s, want (a 1 2 3 b)", v)
	}
}

func TestQuasiquoteNested(t *testing.T) {
	env := newTestEnv(t)
	mustEval(t, env, "(def! y 9)")
	v := mustEval(t, env, "`(1 (2 ~y))")
	if v.String() != "(1 (2 9))" {
		t.Errorf("`(1 (2 ~y)) = %s, want (1 (2 9))", v)
	}
}
