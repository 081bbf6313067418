package lisp

import "github.com/ahonen/golisp/pkg/symbol"

// Environment is one frame of lexical scope: a table of bindings plus a
// pointer to the enclosing frame. Lookup walks outward; Put only ever
// touches the frame it's called on (per-frame shadowing — def! and
// lambda binding never leak into or mutate an enclosing frame).
type Environment struct {
	vars     map[symbol.Symbol]Value
	outer    *Environment
}

// NewEnvironment creates a fresh frame enclosed by outer. outer is nil
// for the root environment.
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{vars: make(map[symbol.Symbol]Value), outer: outer}
}

// Put binds sym to value in this frame, returning the previous binding
// in this frame (if any). If value is an unnamed user-defined
// procedure, it is named after sym as a side effect (spec §4.2) — this
// is what makes (def! fact (lambda (n) ...)) produce a procedure that
// prints and reports itself as "fact".
func (e *Environment) Put(sym symbol.Symbol, value Value) (Value, bool) {
	if proc, ok := value.(*Procedure); ok {
		proc.SetName(sym)
	}
	prev, had := e.vars[sym]
	e.vars[sym] = value
	return prev, had
}

// Get looks up sym in this frame and, failing that, each enclosing frame
// in turn.
func (e *Environment) Get(sym symbol.Symbol) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.vars[sym]; ok {
			return v, true
		}
	}
	return nil, false
}

// Root walks outward and returns the outermost frame.
func (e *Environment) Root() *Environment {
	env := e
	for env.outer != nil {
		env = env.outer
	}
	return env
}

// Outer returns the enclosing frame, or nil at the root.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// Names returns the surface names bound directly in this frame, for
// REPL tab completion. It does not walk enclosing frames.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for sym := range e.vars {
		names = append(names, sym.String())
	}
	return names
}
