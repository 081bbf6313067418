package lisp

import (
	"errors"

	"github.com/ahonen/golisp/pkg/symbol"
)

var symCatch = symbol.Intern("catch*")
var symLambda = symbol.Intern("lambda")

// evalSpecialForm dispatches one of the core special forms. Exactly one
// of (value, next) is meaningful on success: next signals a tail
// position the control loop should continue evaluating; value is the
// finished result otherwise.
func evalSpecialForm(head symbol.Symbol, rest *List, env *Environment) (Value, *tailCall, error) {
	switch symbol.NameOf(head) {
	case "quote":
		args := rest.ToSlice()
		if len(args) != 1 {
			return nil, nil, &BadSyntaxError{Form: "quote", Detail: "expects exactly 1 argument"}
		}
		return args[0], nil, nil

	case "quasiquote":
		args := rest.ToSlice()
		if len(args) != 1 {
			return nil, nil, &BadSyntaxError{Form: "quasiquote", Detail: "expects exactly 1 argument"}
		}
		v, err := quasiquoteExpand(args[0], env)
		return v, nil, err

	case "macroexpand":
		args := rest.ToSlice()
		if len(args) != 1 {
			return nil, nil, &BadSyntaxError{Form: "macroexpand", Detail: "expects exactly 1 argument"}
		}
		v, err := macroExpand(args[0], env)
		return v, nil, err

	case "if":
		return evalIf(rest, env)

	case "do":
		return evalDo(rest, env)

	case "lambda":
		return evalLambda(rest, env)

	case "def!":
		return evalDef(rest, env, false)

	case "defmacro!":
		return evalDef(rest, env, true)

	case "let*":
		return evalLetStar(rest, env)

	case "try*":
		return evalTry(rest, env)
	}
	return nil, nil, &BadSyntaxError{Form: head.String(), Detail: "unknown special form"}
}

func evalIf(rest *List, env *Environment) (Value, *tailCall, error) {
	args := rest.ToSlice()
	if len(args) != 2 && len(args) != 3 {
		return nil, nil, &BadSyntaxError{Form: "if", Detail: "expects 2 or 3 arguments"}
	}
	cond, err := Eval(args[0], env)
	if err != nil {
		return nil, nil, err
	}
	if Truthy(cond) {
		return nil, &tailCall{Expr: args[1], Env: env}, nil
	}
	if len(args) == 3 {
		return nil, &tailCall{Expr: args[2], Env: env}, nil
	}
	return NilValue, nil, nil
}

func evalDo(rest *List, env *Environment) (Value, *tailCall, error) {
	if rest.IsEmpty() {
		return NilValue, nil, nil
	}
	elems := rest.ToSlice()
	for _, e := range elems[:len(elems)-1] {
		if _, err := Eval(e, env); err != nil {
			return nil, nil, err
		}
	}
	return nil, &tailCall{Expr: elems[len(elems)-1], Env: env}, nil
}

func evalLambda(rest *List, env *Environment) (Value, *tailCall, error) {
	args := rest.ToSlice()
	if len(args) < 2 {
		return nil, nil, &BadSyntaxError{Form: "lambda", Detail: "expects a parameter list and at least one body form"}
	}
	paramList, ok := args[0].(*List)
	if !ok {
		return nil, nil, &BadSyntaxError{Form: "lambda", Detail: "first argument must be a parameter list"}
	}
	params, hasRest, variadic, err := parseParams(paramList)
	if err != nil {
		return nil, nil, err
	}
	proc := NewUserProcedure(params, hasRest, variadic, args[1:], env)
	return proc, nil, nil
}

func evalDef(rest *List, env *Environment, macro bool) (Value, *tailCall, error) {
	formName := "def!"
	if macro {
		formName = "defmacro!"
	}
	args := rest.ToSlice()
	if len(args) != 2 {
		return nil, nil, &BadSyntaxError{Form: formName, Detail: "expects exactly 2 arguments"}
	}
	name, ok := args[0].(symbol.Symbol)
	if !ok {
		return nil, nil, &BadSyntaxError{Form: formName, Detail: "first argument must be a symbol"}
	}
	if macro {
		lambdaForm, ok := args[1].(*List)
		if !ok || lambdaForm.IsEmpty() {
			return nil, nil, &BadSyntaxError{Form: formName, Detail: "second argument must be a lambda form"}
		}
		if s, ok := lambdaForm.First().(symbol.Symbol); !ok || s != symLambda {
			return nil, nil, &BadSyntaxError{Form: formName, Detail: "second argument must literally be a lambda form"}
		}
	}
	value, err := Eval(args[1], env)
	if err != nil {
		return nil, nil, err
	}
	if macro {
		proc, ok := value.(*Procedure)
		if !ok {
			return nil, nil, &BadSyntaxError{Form: formName, Detail: "second argument must evaluate to a procedure"}
		}
		proc.IsMacro = true
	}
	env.Put(name, value)
	return value, nil, nil
}

func evalLetStar(rest *List, env *Environment) (Value, *tailCall, error) {
	args := rest.ToSlice()
	if len(args) != 2 {
		return nil, nil, &BadSyntaxError{Form: "let*", Detail: "expects exactly 2 arguments (bindings expr)"}
	}
	bindings, ok := args[0].(*List)
	if !ok {
		return nil, nil, &BadSyntaxError{Form: "let*", Detail: "first argument must be a binding list"}
	}
	child := NewEnvironment(env)
	for cur := bindings; cur != nil; cur = cur.Rest() {
		pair, ok := cur.First().(*List)
		if !ok || pair.Len() != 2 {
			return nil, nil, &BadSyntaxError{Form: "let*", Detail: "each binding must be a (symbol expr) pair"}
		}
		sym, ok := pair.First().(symbol.Symbol)
		if !ok {
			return nil, nil, &BadSyntaxError{Form: "let*", Detail: "binding name must be a symbol"}
		}
		value, err := Eval(pair.Rest().First(), child)
		if err != nil {
			return nil, nil, err
		}
		child.Put(sym, value)
	}
	return nil, &tailCall{Expr: args[1], Env: child}, nil
}

func evalTry(rest *List, env *Environment) (Value, *tailCall, error) {
	args := rest.ToSlice()
	if len(args) != 2 {
		return nil, nil, &BadSyntaxError{Form: "try*", Detail: "expects exactly 2 arguments (expr (catch* sym handler))"}
	}
	catchForm, ok := args[1].(*List)
	if !ok || catchForm.IsEmpty() {
		return nil, nil, &BadSyntaxError{Form: "try*", Detail: "second argument must be a (catch* sym handler) form"}
	}
	catchArgs := catchForm.ToSlice()
	if len(catchArgs) != 3 {
		return nil, nil, &BadSyntaxError{Form: "try*", Detail: "catch* expects exactly a symbol and a handler expression"}
	}
	if s, ok := catchArgs[0].(symbol.Symbol); !ok || s != symCatch {
		return nil, nil, &BadSyntaxError{Form: "try*", Detail: "second argument must literally be a catch* form"}
	}
	sym, ok := catchArgs[1].(symbol.Symbol)
	if !ok {
		return nil, nil, &BadSyntaxError{Form: "try*", Detail: "catch* binding must be a symbol"}
	}
	handler := catchArgs[2]

	result, err := Eval(args[0], env)
	if err == nil {
		return result, nil, nil
	}

	var exn *Exception
	if !errors.As(err, &exn) {
		return nil, nil, err
	}
	child := NewEnvironment(env)
	child.Put(sym, exn)
	return nil, &tailCall{Expr: handler, Env: child}, nil
}
