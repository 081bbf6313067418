package lisp

import "github.com/ahonen/golisp/pkg/symbol"

// parseParams splits a lambda parameter list into required params and an
// optional rest param introduced by a lone "&". E.g. (a b & rest) yields
// params=[a b], hasRest=true, rest=rest.
func parseParams(list *List) (params []symbol.Symbol, hasRest bool, rest symbol.Symbol, err error) {
	amp := symbol.Intern("&")
	elems := list.ToSlice()
	for i := 0; i < len(elems); i++ {
		sym, ok := elems[i].(symbol.Symbol)
		if !ok {
			return nil, false, symbol.Symbol{}, &BadSyntaxError{Form: "lambda", Detail: "parameter list must contain only symbols"}
		}
		if sym == amp {
			if i != len(elems)-2 {
				return nil, false, symbol.Symbol{}, &BadSyntaxError{Form: "lambda", Detail: "'&' must be followed by exactly one rest parameter"}
			}
			restSym, ok := elems[i+1].(symbol.Symbol)
			if !ok {
				return nil, false, symbol.Symbol{}, &BadSyntaxError{Form: "lambda", Detail: "rest parameter must be a symbol"}
			}
			return params, true, restSym, nil
		}
		params = append(params, sym)
	}
	return params, false, symbol.Symbol{}, nil
}

// bindParams binds a procedure's parameters to args in a new child
// environment. When the procedure is variadic, the declared arity is
// the minimum: any args beyond the required params are collected into a
// list and bound to the rest parameter (spec §9 open question).
func bindParams(proc *Procedure, args []Value) (*Environment, error) {
	env := NewEnvironment(proc.Env)
	if proc.HasRest {
		if len(args) < len(proc.Params) {
			return nil, &ArityError{Name: procErrorName(proc), Want: len(proc.Params), Variadic: true, Got: len(args)}
		}
	} else if len(args) != len(proc.Params) {
		return nil, &ArityError{Name: procErrorName(proc), Want: len(proc.Params), Got: len(args)}
	}

	for i, p := range proc.Params {
		env.Put(p, args[i])
	}
	if proc.HasRest {
		env.Put(proc.Variadic, NewList(args[len(proc.Params):]...))
	}
	return env, nil
}

func procErrorName(proc *Procedure) string {
	if name, ok := proc.Name(); ok {
		return name.String()
	}
	return ""
}
