package lisp

func asList(op string, v Value) (*List, error) {
	l, ok := v.(*List)
	if !ok {
		return nil, &TypeError{Op: op, Expected: "list", Got: v}
	}
	return l, nil
}

func asIndex(op string, v Value) (int, error) {
	n, ok := v.(Number)
	if !ok {
		return 0, &TypeError{Op: op, Expected: "number", Got: v}
	}
	return int(n.Value), nil
}

func installList(env *Environment) {
	env.Put(intern("list"), NewBuiltin("list", func(args []Value, _ *Environment) (Value, error) {
		return NewList(args...), nil
	}))

	env.Put(intern("cons"), NewBuiltin("cons", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, &ArityError{Name: "cons", Want: 2, Got: len(args)}
		}
		tail, err := asList("cons", args[1])
		if err != nil {
			return nil, err
		}
		return Cons(args[0], tail), nil
	}))

	env.Put(intern("rest"), NewBuiltin("rest", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "rest", Want: 1, Got: len(args)}
		}
		l, err := asList("rest", args[0])
		if err != nil {
			return nil, err
		}
		return l.Rest(), nil
	}))

	env.Put(intern("list-rest"), NewBuiltin("list-rest", func(args []Value, _ *Environment) (Value, error) {
		if len(args) < 1 {
			return nil, &ArityError{Name: "list-rest", Want: 1, Variadic: true, Got: 0}
		}
		tail, err := asList("list-rest", args[len(args)-1])
		if err != nil {
			return nil, err
		}
		result := tail
		for i := len(args) - 2; i >= 0; i-- {
			result = Cons(args[i], result)
		}
		return result, nil
	}))

	env.Put(intern("nth"), NewBuiltin("nth", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, &ArityError{Name: "nth", Want: 2, Got: len(args)}
		}
		l, err := asList("nth", args[0])
		if err != nil {
			return nil, err
		}
		idx, err := asIndex("nth", args[1])
		if err != nil {
			return nil, err
		}
		cur := l
		for i := 0; i < idx && cur != nil; i++ {
			cur = cur.Rest()
		}
		if cur == nil {
			return NilValue, nil
		}
		return cur.First(), nil
	}))

	env.Put(intern("list-ref"), NewBuiltin("list-ref", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, &ArityError{Name: "list-ref", Want: 2, Got: len(args)}
		}
		l, err := asList("list-ref", args[0])
		if err != nil {
			return nil, err
		}
		idx, err := asIndex("list-ref", args[1])
		if err != nil {
			return nil, err
		}
		length := l.Len()
		if idx < 0 || idx >= length {
			return nil, &IndexOutOfRangeError{Op: "list-ref", Index: idx, Len: length}
		}
		cur := l
		for i := 0; i < idx; i++ {
			cur = cur.Rest()
		}
		return cur.First(), nil
	}))

	env.Put(intern("concat"), NewBuiltin("concat", func(args []Value, _ *Environment) (Value, error) {
		var result *List
		for i := len(args) - 1; i >= 0; i-- {
			l, err := asList("concat", args[i])
			if err != nil {
				return nil, err
			}
			result = Append(l, result)
		}
		return result, nil
	}))

	env.Put(intern("empty?"), NewBuiltin("empty?", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "empty?", Want: 1, Got: len(args)}
		}
		l, err := asList("empty?", args[0])
		if err != nil {
			return nil, err
		}
		return BoolValue(l.IsEmpty()), nil
	}))
}
