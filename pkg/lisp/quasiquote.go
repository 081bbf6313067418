package lisp

import "github.com/ahonen/golisp/pkg/symbol"

var (
	symUnquote       = symbol.Intern("unquote")
	symSpliceUnquote = symbol.Intern("splice-unquote")
)

// quasiquoteExpand walks a quasiquoted template, evaluating unquote and
// splice-unquote holes against env and reassembling everything else as
// literal data (spec §4.5.6).
func quasiquoteExpand(expr Value, env *Environment) (Value, error) {
	list, ok := expr.(*List)
	if !ok || list.IsEmpty() {
		return expr, nil
	}

	if sym, ok := list.First().(symbol.Symbol); ok && sym == symUnquote {
		args := list.Rest()
		if args.Len() != 1 {
			return nil, &BadSyntaxError{Form: "unquote", Detail: "expects exactly 1 argument"}
		}
		return Eval(args.First(), env)
	}

	if sym, ok := list.First().(symbol.Symbol); ok && sym == symSpliceUnquote {
		return nil, &BadSyntaxError{Form: "splice-unquote", Detail: "not valid at the outermost position of a quasiquote"}
	}

	var elems []Value
	for cur := list; cur != nil; cur = cur.Rest() {
		elem := cur.First()
		if elemList, ok := elem.(*List); ok && !elemList.IsEmpty() {
			if sym, ok := elemList.First().(symbol.Symbol); ok && sym == symSpliceUnquote {
				args := elemList.Rest()
				if args.Len() != 1 {
					return nil, &BadSyntaxError{Form: "splice-unquote", Detail: "expects exactly 1 argument"}
				}
				spliced, err := Eval(args.First(), env)
				if err != nil {
					return nil, err
				}
				splicedList, ok := spliced.(*List)
				if !ok {
					return nil, &TypeError{Op: "splice-unquote", Expected: "list", Got: spliced}
				}
				elems = append(elems, splicedList.ToSlice()...)
				continue
			}
		}
		expanded, err := quasiquoteExpand(elem, env)
		if err != nil {
			return nil, err
		}
		elems = append(elems, expanded)
	}
	return NewList(elems...), nil
}
