package lisp

func installReflect(env *Environment) {
	env.Put(intern("read-string"), NewBuiltin("read-string", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "read-string", Want: 1, Got: len(args)}
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, &TypeError{Op: "read-string", Expected: "string", Got: args[0]}
		}
		v, err := ReadString(string(s))
		if err != nil {
			return nil, err
		}
		if v == nil {
			return NilValue, nil
		}
		return v, nil
	}))

	env.Put(intern("eval"), NewBuiltin("eval", func(args []Value, callerEnv *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "eval", Want: 1, Got: len(args)}
		}
		return Eval(args[0], callerEnv.Root())
	}))

	env.Put(intern("apply"), NewBuiltin("apply", func(args []Value, callerEnv *Environment) (Value, error) {
		if len(args) < 2 {
			return nil, &ArityError{Name: "apply", Want: 2, Variadic: true, Got: len(args)}
		}
		proc, ok := args[0].(*Procedure)
		if !ok {
			return nil, &TypeError{Op: "apply", Expected: "procedure", Got: args[0]}
		}
		tail, err := asList("apply", args[len(args)-1])
		if err != nil {
			return nil, err
		}
		callArgs := append([]Value{}, args[1:len(args)-1]...)
		callArgs = append(callArgs, tail.ToSlice()...)
		return applyFully(proc, callArgs, callerEnv)
	}))
}
