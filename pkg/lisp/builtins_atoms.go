package lisp

func installAtoms(env *Environment) {
	env.Put(intern("atom"), NewBuiltin("atom", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "atom", Want: 1, Got: len(args)}
		}
		return NewAtom(args[0]), nil
	}))

	env.Put(intern("deref"), NewBuiltin("deref", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "deref", Want: 1, Got: len(args)}
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, &TypeError{Op: "deref", Expected: "atom", Got: args[0]}
		}
		return a.Deref(), nil
	}))

	env.Put(intern("atom-set!"), NewBuiltin("atom-set!", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, &ArityError{Name: "atom-set!", Want: 2, Got: len(args)}
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, &TypeError{Op: "atom-set!", Expected: "atom", Got: args[0]}
		}
		return a.Set(args[1]), nil
	}))

	env.Put(intern("swap!"), NewBuiltin("swap!", func(args []Value, callerEnv *Environment) (Value, error) {
		if len(args) < 2 {
			return nil, &ArityError{Name: "swap!", Want: 2, Variadic: true, Got: len(args)}
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, &TypeError{Op: "swap!", Expected: "atom", Got: args[0]}
		}
		proc, ok := args[1].(*Procedure)
		if !ok {
			return nil, &TypeError{Op: "swap!", Expected: "procedure", Got: args[1]}
		}
		extra := args[2:]
		return a.Swap(func(cur Value) (Value, error) {
			callArgs := append([]Value{cur}, extra...)
			return applyFully(proc, callArgs, callerEnv)
		})
	}))
}
