package lisp

import "github.com/ahonen/golisp/pkg/symbol"

var specialForms = map[symbol.Symbol]bool{}

func init() {
	for _, name := range []string{
		"def!", "defmacro!", "let*", "if", "do", "lambda",
		"quote", "quasiquote", "macroexpand", "try*",
	} {
		specialForms[symbol.Intern(name)] = true
	}
}

// tailCall is returned by a special form that wants the control loop to
// continue evaluating Expr in Env instead of recursing, giving tail
// calls constant stack space.
type tailCall struct {
	Expr Value
	Env  *Environment
}

// Eval evaluates expr in env to a value, implementing tail-call
// elimination by looping instead of recursing whenever the next step is
// in tail position (spec §4.5.1, §4.5.4).
func Eval(expr Value, env *Environment) (Value, error) {
	for {
		list, ok := expr.(*List)
		if !ok {
			return evalAtom(expr, env)
		}
		if list.IsEmpty() {
			return nil, &BadSyntaxError{Form: "()", Detail: "empty list is not callable"}
		}

		expanded, err := macroExpand(list, env)
		if err != nil {
			return nil, err
		}
		list, ok = expanded.(*List)
		if !ok {
			expr = expanded
			continue
		}
		if list.IsEmpty() {
			return nil, &BadSyntaxError{Form: "()", Detail: "empty list is not callable"}
		}

		if head, ok := list.First().(symbol.Symbol); ok && specialForms[head] {
			value, next, err := evalSpecialForm(head, list.Rest(), env)
			if err != nil {
				return nil, err
			}
			if next != nil {
				expr, env = next.Expr, next.Env
				continue
			}
			return value, nil
		}

		evaluated, err := evalAtom(list, env)
		if err != nil {
			return nil, err
		}
		evList := evaluated.(*List)
		fn := evList.First()
		args := evList.Rest().ToSlice()

		proc, ok := fn.(*Procedure)
		if !ok {
			return nil, &NotApplicableError{Value: fn}
		}
		if proc.IsMacro {
			return nil, &NotApplicableError{Value: fn}
		}
		if proc.IsBuiltin() {
			return proc.Builtin(args, env)
		}

		newEnv, err := bindParams(proc, args)
		if err != nil {
			return nil, err
		}
		for _, form := range proc.Body[:len(proc.Body)-1] {
			if _, err := Eval(form, newEnv); err != nil {
				return nil, err
			}
		}
		expr = proc.Body[len(proc.Body)-1]
		env = newEnv
	}
}

// evalAtom evaluates a non-call-site value: a symbol resolves through
// env, a list has each of its elements evaluated left to right, and
// everything else (numbers, strings, nil/true/false, procedures, atoms,
// exceptions) evaluates to itself (spec §4.5.2).
func evalAtom(v Value, env *Environment) (Value, error) {
	switch x := v.(type) {
	case symbol.Symbol:
		val, ok := env.Get(x)
		if !ok {
			return nil, &UnboundSymbolError{Name: x}
		}
		return val, nil
	case *List:
		elems := make([]Value, 0, x.Len())
		for cur := x; cur != nil; cur = cur.Rest() {
			ev, err := Eval(cur.First(), env)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ev)
		}
		return NewList(elems...), nil
	default:
		return v, nil
	}
}
