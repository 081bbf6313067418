package lisp

func installExceptions(env *Environment) {
	env.Put(intern("exn"), NewBuiltin("exn", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "exn", Want: 1, Got: len(args)}
		}
		return NewException(args[0]), nil
	}))

	env.Put(intern("exn-datum"), NewBuiltin("exn-datum", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "exn-datum", Want: 1, Got: len(args)}
		}
		exn, ok := args[0].(*Exception)
		if !ok {
			return nil, &TypeError{Op: "exn-datum", Expected: "exception", Got: args[0]}
		}
		return exn.Payload, nil
	}))

	env.Put(intern("throw"), NewBuiltin("throw", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "throw", Want: 1, Got: len(args)}
		}
		return nil, NewException(args[0])
	}))
}
