package lisp

import "github.com/ahonen/golisp/pkg/symbol"

func intern(name string) symbol.Symbol { return symbol.Intern(name) }

// Equal implements the datum equality used by "=": numbers, strings,
// lists and exceptions compare structurally; symbols compare by
// identity (already guaranteed by interning); nil/true/false, atoms and
// procedures compare by identity.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && x.Value == y.Value
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case symbol.Symbol:
		y, ok := b.(symbol.Symbol)
		return ok && x == y
	case *List:
		y, ok := b.(*List)
		if !ok {
			return false
		}
		for {
			if x == nil || y == nil {
				return x == nil && y == nil
			}
			if !Equal(x.First(), y.First()) {
				return false
			}
			x, y = x.Rest(), y.Rest()
		}
	case *Exception:
		y, ok := b.(*Exception)
		return ok && Equal(x.Payload, y.Payload)
	case nilType:
		_, ok := b.(nilType)
		return ok
	case trueType:
		_, ok := b.(trueType)
		return ok
	case falseType:
		_, ok := b.(falseType)
		return ok
	default:
		return a == b
	}
}
