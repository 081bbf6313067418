package lisp

import "testing"

func TestTryCatchesThrow(t *testing.T) {
	env := newTestEnv(t)
	v := mustEval(t, env, `
		(try*
		  (throw "boom")
		  (catch* e (str "caught: " (exn-datum e))))
	`)
	if v.String() != "caught: boom" {
		t.Errorf("try*/catch* result = %s, want %q", v, "caught: boom")
	}
}

func TestTrySucceedsWithoutCatching(t *testing.T) {
	env := newTestEnv(t)
	v := mustEval(t, env, `
		(try*
		  (+ 1 2)
		  (catch* e -1))
	`)
	if v.String() != "3" {
		t.Errorf("try* without an exception = %s, want 3", v)
	}
}

func TestTryDoesNotCatchEvaluatorErrors(t *testing.T) {
	env := newTestEnv(t)
	_, err := evalSrc(env, `
		(try*
		  (undefined-thing)
		  (catch* e "should not reach here"))
	`)
	if _, ok := err.(*UnboundSymbolError); !ok {
		t.Errorf("try* caught a non-exception error; got %v, want *UnboundSymbolError to propagate", err)
	}
}

func TestExnPredicateAndConstructor(t *testing.T) {
	env := newTestEnv(t)
	v := mustEval(t, env, `(exn? (exn 42))`)
	if v.String() != "true" {
		t.Errorf("(exn? (exn 42)) = %s, want true", v)
	}
	v = mustEval(t, env, `(exn-datum (exn 42))`)
	if v.String() != "42" {
		t.Errorf("(exn-datum (exn 42)) = %s, want 42", v)
	}
}

func TestThrowUnwindsThroughFrames(t *testing.T) {
	env := newTestEnv(t)
	mustEval(t, env, `(def! f (lambda () (throw "deep")))`)
	mustEval(t, env, `(def! g (lambda () (f)))`)
	v := mustEval(t, env, `
		(try*
		  (g)
		  (catch* e (exn-datum e)))
	`)
	if v.String() != "deep" {
		t.Errorf("exception through nested frames = %s, want deep", v)
	}
}
