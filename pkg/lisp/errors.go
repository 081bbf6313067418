package lisp

import (
	"fmt"

	"github.com/ahonen/golisp/pkg/symbol"
)

// BadSyntaxError reports a special form used with a malformed shape:
// wrong element count, a binding list that isn't pairs, a defmacro!
// body that isn't literally a lambda, and so on.
type BadSyntaxError struct {
	Form   string
	Detail string
}

func (e *BadSyntaxError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("bad syntax in %s", e.Form)
	}
	return fmt.Sprintf("bad syntax in %s: %s", e.Form, e.Detail)
}

// ArityError reports a procedure called with the wrong number of
// arguments.
type ArityError struct {
	Name     string
	Want     int
	Variadic bool
	Got      int
}

func (e *ArityError) Error() string {
	name := e.Name
	if name == "" {
		name = "#<procedure>"
	}
	if e.Variadic {
		return fmt.Sprintf("%s: expected at least %d argument(s), got %d", name, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: expected %d argument(s), got %d", name, e.Want, e.Got)
}

// TypeError reports a value of the wrong kind reaching an operation that
// requires a specific datum type.
type TypeError struct {
	Op       string
	Expected string
	Got      Value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Op, e.Expected, Print(e.Got, true))
}

// UnboundSymbolError reports a symbol with no binding visible from the
// lookup environment.
type UnboundSymbolError struct {
	Name symbol.Symbol
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("unbound symbol: %s", e.Name.String())
}

// NotApplicableError reports an attempt to call a value that isn't a
// procedure.
type NotApplicableError struct {
	Value Value
}

func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("not applicable: %s", Print(e.Value, true))
}

// IndexOutOfRangeError reports an out-of-bounds list index.
type IndexOutOfRangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}
