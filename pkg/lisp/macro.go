package lisp

import "github.com/ahonen/golisp/pkg/symbol"

// macroExpand repeatedly expands expr's outermost form while it is a
// call to a macro, until a fixpoint is reached. No argument of the call
// is evaluated until expansion is complete (spec §4.5.5).
func macroExpand(expr Value, env *Environment) (Value, error) {
	for {
		list, ok := expr.(*List)
		if !ok || list.IsEmpty() {
			return expr, nil
		}
		sym, ok := list.First().(symbol.Symbol)
		if !ok {
			return expr, nil
		}
		val, ok := env.Get(sym)
		if !ok {
			return expr, nil
		}
		proc, ok := val.(*Procedure)
		if !ok || !proc.IsMacro {
			return expr, nil
		}
		expanded, err := applyFully(proc, list.Rest().ToSlice(), env)
		if err != nil {
			return nil, err
		}
		expr = expanded
	}
}

// applyFully invokes proc to completion and returns its result,
// evaluating every body form with ordinary host recursion. Used for
// macro expansion and for builtins (apply, swap!) that need a finished
// value rather than a tail-call continuation. callerEnv is passed to
// built-ins that need the calling scope (e.g. eval); user procedures
// always run in their own captured closure environment.
func applyFully(proc *Procedure, args []Value, callerEnv *Environment) (Value, error) {
	if proc.IsBuiltin() {
		return proc.Builtin(args, callerEnv)
	}
	env, err := bindParams(proc, args)
	if err != nil {
		return nil, err
	}
	var result Value = NilValue
	for _, form := range proc.Body {
		result, err = Eval(form, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
