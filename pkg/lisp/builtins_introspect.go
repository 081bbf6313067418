package lisp

func installIntrospect(env *Environment) {
	env.Put(intern("arity"), NewBuiltin("arity", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "arity", Want: 1, Got: len(args)}
		}
		proc, ok := args[0].(*Procedure)
		if !ok {
			return nil, &TypeError{Op: "arity", Expected: "procedure", Got: args[0]}
		}
		return Number{Value: int64(proc.Arity())}, nil
	}))

	env.Put(intern("builtin?"), NewBuiltin("builtin?", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "builtin?", Want: 1, Got: len(args)}
		}
		proc, ok := args[0].(*Procedure)
		return BoolValue(ok && proc.IsBuiltin()), nil
	}))

	env.Put(intern("type"), NewBuiltin("type", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "type", Want: 1, Got: len(args)}
		}
		return Str(typeName(args[0])), nil
	}))
}

func typeName(v Value) string {
	switch x := v.(type) {
	case Number:
		return "number"
	case Str:
		return "string"
	case Sym:
		return "symbol"
	case *List:
		return "list"
	case *Atom:
		return "atom"
	case *Exception:
		return "exception"
	case *Procedure:
		if x.IsMacro {
			return "macro"
		}
		return "procedure"
	case nilType:
		return "nil"
	case trueType, falseType:
		return "boolean"
	default:
		return "unknown"
	}
}
