package lisp

func numArgs(op string, args []Value) ([]int64, error) {
	nums := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(Number)
		if !ok {
			return nil, &TypeError{Op: op, Expected: "number", Got: a}
		}
		nums[i] = n.Value
	}
	return nums, nil
}

func installArith(env *Environment) {
	env.Put(intern("+"), NewBuiltin("+", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numArgs("+", args)
		if err != nil {
			return nil, err
		}
		var total int64
		for _, n := range nums {
			total += n
		}
		return Number{Value: total}, nil
	}))

	env.Put(intern("-"), NewBuiltin("-", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numArgs("-", args)
		if err != nil {
			return nil, err
		}
		if len(nums) == 0 {
			return nil, &ArityError{Name: "-", Want: 1, Variadic: true, Got: 0}
		}
		if len(nums) == 1 {
			return Number{Value: -nums[0]}, nil
		}
		total := nums[0]
		for _, n := range nums[1:] {
			total -= n
		}
		return Number{Value: total}, nil
	}))

	env.Put(intern("*"), NewBuiltin("*", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numArgs("*", args)
		if err != nil {
			return nil, err
		}
		total := int64(1)
		for _, n := range nums {
			total *= n
		}
		return Number{Value: total}, nil
	}))

	env.Put(intern("/"), NewBuiltin("/", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numArgs("/", args)
		if err != nil {
			return nil, err
		}
		if len(nums) < 1 {
			return nil, &ArityError{Name: "/", Want: 1, Variadic: true, Got: 0}
		}
		if len(nums) == 1 {
			if nums[0] == 0 {
				return nil, &TypeError{Op: "/", Expected: "nonzero divisor", Got: args[0]}
			}
			return Number{Value: 1 / nums[0]}, nil
		}
		total := nums[0]
		for i, n := range nums[1:] {
			if n == 0 {
				return nil, &TypeError{Op: "/", Expected: "nonzero divisor", Got: args[i+1]}
			}
			total /= n
		}
		return Number{Value: total}, nil
	}))

	env.Put(intern("%"), NewBuiltin("%", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, &ArityError{Name: "%", Want: 2, Got: len(args)}
		}
		nums, err := numArgs("%", args)
		if err != nil {
			return nil, err
		}
		if nums[1] == 0 {
			return nil, &TypeError{Op: "%", Expected: "nonzero divisor", Got: args[1]}
		}
		return Number{Value: nums[0] % nums[1]}, nil
	}))

	env.Put(intern("="), NewBuiltin("=", func(args []Value, _ *Environment) (Value, error) {
		if len(args) < 1 {
			return nil, &ArityError{Name: "=", Want: 1, Variadic: true, Got: 0}
		}
		for i := 1; i < len(args); i++ {
			if !Equal(args[0], args[i]) {
				return FalseValue, nil
			}
		}
		return TrueValue, nil
	}))

	env.Put(intern(">"), NewBuiltin(">", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numArgs(">", args)
		if err != nil {
			return nil, err
		}
		if len(nums) < 1 {
			return nil, &ArityError{Name: ">", Want: 1, Variadic: true, Got: 0}
		}
		for i := 1; i < len(nums); i++ {
			if !(nums[i-1] > nums[i]) {
				return FalseValue, nil
			}
		}
		return TrueValue, nil
	}))

	env.Put(intern("even?"), NewBuiltin("even?", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "even?", Want: 1, Got: len(args)}
		}
		n, ok := args[0].(Number)
		if !ok {
			return nil, &TypeError{Op: "even?", Expected: "number", Got: args[0]}
		}
		return BoolValue(n.Value%2 == 0), nil
	}))

	env.Put(intern("number?"), NewBuiltin("number?", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "number?", Want: 1, Got: len(args)}
		}
		_, ok := args[0].(Number)
		return BoolValue(ok), nil
	}))
}
