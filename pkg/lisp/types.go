// Package lisp implements the evaluation core: the value model, the
// lexically-scoped environment, the reader, the printer and the
// tree-walking evaluator with proper tail calls.
package lisp

import (
	"strconv"

	"github.com/ahonen/golisp/pkg/symbol"
)

// Value is the interface implemented by every datum the evaluator can
// produce or consume.
type Value interface {
	String() string
}

// Sym is a symbol datum. Two symbols are equal iff they were interned
// from the same name (symbol.Symbol already compares by identity).
type Sym = symbol.Symbol

// Number is a signed 64-bit integer datum. There is no floating-point or
// arbitrary-precision tier in this interpreter (spec Non-goals).
type Number struct {
	Value int64
}

func NewNumber(v int64) Number { return Number{Value: v} }

func (n Number) String() string { return strconv.FormatInt(n.Value, 10) }

// Str is a string datum. String() returns the raw bytes; the quoted,
// escaped surface form is produced by the printer in readable mode.
type Str string

func (s Str) String() string { return string(s) }

// singleton values: Nil, True, False.
type nilType struct{}

func (nilType) String() string { return "nil" }

type trueType struct{}

func (trueType) String() string { return "true" }

type falseType struct{}

func (falseType) String() string { return "false" }

var (
	// NilValue is the unique nil datum.
	NilValue Value = nilType{}
	// TrueValue is the unique true datum.
	TrueValue Value = trueType{}
	// FalseValue is the unique false datum.
	FalseValue Value = falseType{}
)

// IsNil reports whether v is the nil singleton.
func IsNil(v Value) bool {
	_, ok := v.(nilType)
	return ok
}

// IsFalse reports whether v is the false singleton.
func IsFalse(v Value) bool {
	_, ok := v.(falseType)
	return ok
}

// Truthy implements the truthiness rule used by if/and/or/cond: only nil
// and false are falsy, everything else (including 0 and the empty
// string) is truthy.
func Truthy(v Value) bool {
	return !IsNil(v) && !IsFalse(v)
}

// BoolValue converts a host bool to the corresponding singleton.
func BoolValue(b bool) Value {
	if b {
		return TrueValue
	}
	return FalseValue
}

// List is an immutable (from the user's view) singly-linked list. A nil
// *List represents the empty list and prints as "()".
type List struct {
	head Value
	tail *List
}

// NewList builds a list from the given elements, right to left.
func NewList(elements ...Value) *List {
	var result *List
	for i := len(elements) - 1; i >= 0; i-- {
		result = &List{head: elements[i], tail: result}
	}
	return result
}

// Cons prepends v to rest.
func Cons(v Value, rest *List) *List {
	return &List{head: v, tail: rest}
}

func (l *List) IsEmpty() bool { return l == nil }

func (l *List) First() Value {
	if l == nil {
		return NilValue
	}
	return l.head
}

func (l *List) Rest() *List {
	if l == nil {
		return nil
	}
	return l.tail
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	n := 0
	for cur := l; cur != nil; cur = cur.tail {
		n++
	}
	return n
}

// ToSlice flattens the list into a slice, left to right.
func (l *List) ToSlice() []Value {
	var out []Value
	for cur := l; cur != nil; cur = cur.tail {
		out = append(out, cur.head)
	}
	return out
}

func (l *List) String() string {
	return Print(l, true)
}

// Append returns a new list consisting of a's elements followed by b's.
// a's tail structure is not mutated; only a's spine is copied.
func Append(a, b *List) *List {
	if a == nil {
		return b
	}
	elems := a.ToSlice()
	result := b
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

// Atom is a mutable single-slot cell.
type Atom struct {
	val Value
}

func NewAtom(v Value) *Atom { return &Atom{val: v} }

func (a *Atom) Deref() Value { return a.val }

// Set replaces the held value and returns it.
func (a *Atom) Set(v Value) Value {
	a.val = v
	return v
}

// Swap replaces the held value with f(current) and returns the new value.
func (a *Atom) Swap(f func(Value) (Value, error)) (Value, error) {
	next, err := f(a.val)
	if err != nil {
		return nil, err
	}
	a.val = next
	return next, nil
}

func (a *Atom) String() string { return Print(a, true) }

// Exception is both a Value (the datum caught by try*/catch*) and a Go
// error (so it propagates through ordinary Go error returns until a
// catch* handler intercepts it with errors.As).
type Exception struct {
	Payload Value
}

func NewException(payload Value) *Exception { return &Exception{Payload: payload} }

func (e *Exception) String() string { return "#<exn>" }

func (e *Exception) Error() string {
	return "exception: " + Print(e.Payload, false)
}

// BuiltinFunc is the signature of a built-in procedure's host
// implementation.
type BuiltinFunc func(args []Value, env *Environment) (Value, error)

// Procedure is a callable value: either a built-in (Builtin != nil) or a
// user-defined closure (Body != nil, Env != nil). Procedures compare by
// identity (pointer equality).
type Procedure struct {
	name     Sym
	named    bool
	Params   []Sym // required parameters
	Variadic Sym   // rest parameter, valid only when HasRest
	HasRest  bool
	IsMacro  bool
	Body     []Value // non-empty for user procedures
	Env      *Environment
	Builtin  BuiltinFunc
	builtinName string // set for builtins, used for printing/introspection
}

// NewUserProcedure constructs an unnamed user-defined procedure.
func NewUserProcedure(params []Sym, hasRest bool, variadic Sym, body []Value, env *Environment) *Procedure {
	return &Procedure{
		Params:   params,
		HasRest:  hasRest,
		Variadic: variadic,
		Body:     body,
		Env:      env,
	}
}

// NewBuiltin constructs a named built-in procedure.
func NewBuiltin(name string, fn BuiltinFunc) *Procedure {
	return &Procedure{Builtin: fn, builtinName: name, named: true}
}

// BuiltinName returns the built-in's registered name, or "" for
// user-defined procedures.
func (p *Procedure) BuiltinName() string { return p.builtinName }

// IsBuiltin reports whether p wraps a host function.
func (p *Procedure) IsBuiltin() bool { return p.Builtin != nil }

// Arity returns the number of required parameters of a user procedure.
// Built-ins carry no declared arity (each checks its own argument
// count), so Arity returns 0 for every built-in.
func (p *Procedure) Arity() int {
	if p.IsBuiltin() {
		return 0
	}
	return len(p.Params)
}

// Name returns the procedure's name and whether it has been named yet.
func (p *Procedure) Name() (Sym, bool) {
	if p.IsBuiltin() {
		return symbol.Intern(p.builtinName), true
	}
	return p.name, p.named
}

// SetName names an as-yet-unnamed user procedure. Per spec §4.2, this is
// a side effect of its first binding through Environment.Put (def!,
// defmacro!, let*, parameter and catch* bindings alike).
func (p *Procedure) SetName(name Sym) {
	if p.IsBuiltin() || p.named {
		return
	}
	p.name = name
	p.named = true
}

func (p *Procedure) String() string { return Print(p, true) }
