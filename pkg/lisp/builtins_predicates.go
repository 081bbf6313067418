package lisp

func unaryPredicate(name string, env *Environment, test func(Value) bool) {
	env.Put(intern(name), NewBuiltin(name, func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: name, Want: 1, Got: len(args)}
		}
		return BoolValue(test(args[0])), nil
	}))
}

func installPredicates(env *Environment) {
	unaryPredicate("symbol?", env, func(v Value) bool {
		_, ok := v.(Sym)
		return ok
	})
	unaryPredicate("string?", env, func(v Value) bool {
		_, ok := v.(Str)
		return ok
	})
	unaryPredicate("true?", env, func(v Value) bool {
		_, ok := v.(trueType)
		return ok
	})
	unaryPredicate("false?", env, func(v Value) bool {
		_, ok := v.(falseType)
		return ok
	})
	unaryPredicate("list?", env, func(v Value) bool {
		_, ok := v.(*List)
		return ok
	})
	unaryPredicate("atom?", env, func(v Value) bool {
		_, ok := v.(*Atom)
		return ok
	})
	unaryPredicate("procedure?", env, func(v Value) bool {
		p, ok := v.(*Procedure)
		return ok && !p.IsMacro
	})
	unaryPredicate("macro?", env, func(v Value) bool {
		p, ok := v.(*Procedure)
		return ok && p.IsMacro
	})
	unaryPredicate("exn?", env, func(v Value) bool {
		_, ok := v.(*Exception)
		return ok
	})
}
