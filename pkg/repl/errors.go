package repl

import (
	"fmt"

	"github.com/ahonen/golisp/pkg/lisp"
	"github.com/fatih/color"
)

// ErrorFormatter renders an evaluator error as a single colored line for
// stderr, categorized by the error's concrete Go type rather than by
// matching substrings in its message.
type ErrorFormatter struct {
	syntaxColor    *color.Color
	arityColor     *color.Color
	typeColor      *color.Color
	undefinedColor *color.Color
	applyColor     *color.Color
	rangeColor     *color.Color
	exceptionColor *color.Color
	generalColor   *color.Color
}

func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		syntaxColor:    color.New(color.FgRed, color.Bold),
		arityColor:     color.New(color.FgMagenta, color.Bold),
		typeColor:      color.New(color.FgCyan, color.Bold),
		undefinedColor: color.New(color.FgYellow, color.Bold),
		applyColor:     color.New(color.FgBlue, color.Bold),
		rangeColor:     color.New(color.FgHiMagenta, color.Bold),
		exceptionColor: color.New(color.FgRed),
		generalColor:   color.New(color.FgWhite, color.Bold),
	}
}

// Format renders err per spec §7: exceptions print as "exception: VALUE"
// (no source name is ever included); every other error kind prints as a
// categorized, colored one-liner.
func (ef *ErrorFormatter) Format(err error) string {
	switch e := err.(type) {
	case *lisp.Exception:
		return ef.exceptionColor.Sprintf("exception: %s", lisp.Print(e.Payload, false))
	case *lisp.BadSyntaxError:
		return ef.syntaxColor.Sprintf("bad-syntax: %s", e.Error())
	case *lisp.ArityError:
		return ef.arityColor.Sprintf("arity-error: %s", e.Error())
	case *lisp.TypeError:
		return ef.typeColor.Sprintf("type-error: %s", e.Error())
	case *lisp.UnboundSymbolError:
		return ef.undefinedColor.Sprintf("unbound-symbol: %s", e.Error())
	case *lisp.NotApplicableError:
		return ef.applyColor.Sprintf("not-applicable: %s", e.Error())
	case *lisp.IndexOutOfRangeError:
		return ef.rangeColor.Sprintf("index-out-of-range: %s", e.Error())
	default:
		return ef.generalColor.Sprintf("error: %s", fmt.Sprint(err))
	}
}
