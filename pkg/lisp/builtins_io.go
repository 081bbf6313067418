package lisp

import (
	"fmt"
	"os"
	"strings"
)

func installIO(env *Environment) {
	env.Put(intern("prn"), NewBuiltin("prn", func(args []Value, _ *Environment) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = Print(a, true)
		}
		fmt.Println(strings.Join(parts, " "))
		return NilValue, nil
	}))

	env.Put(intern("println"), NewBuiltin("println", func(args []Value, _ *Environment) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = Print(a, false)
		}
		fmt.Println(strings.Join(parts, " "))
		return NilValue, nil
	}))

	env.Put(intern("pr-str"), NewBuiltin("pr-str", func(args []Value, _ *Environment) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = Print(a, true)
		}
		return Str(strings.Join(parts, " ")), nil
	}))

	env.Put(intern("str"), NewBuiltin("str", func(args []Value, _ *Environment) (Value, error) {
		var sb strings.Builder
		for _, a := range args {
			sb.WriteString(Print(a, false))
		}
		return Str(sb.String()), nil
	}))

	env.Put(intern("slurp"), NewBuiltin("slurp", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, &ArityError{Name: "slurp", Want: 1, Got: len(args)}
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, &TypeError{Op: "slurp", Expected: "string", Got: args[0]}
		}
		content, err := os.ReadFile(string(path))
		if err != nil {
			return nil, fmt.Errorf("slurp: %w", err)
		}
		return Str(content), nil
	}))
}
