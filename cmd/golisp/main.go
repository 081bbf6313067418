// Command golisp runs the interpreter: interactively as a REPL, or
// non-interactively against a -e expression or -f script file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ahonen/golisp/pkg/lisp"
	"github.com/ahonen/golisp/pkg/repl"
)

func main() {
	var (
		help = flag.Bool("help", false, "Show help message")
		h    = flag.Bool("h", false, "Show help message")
		eval = flag.String("e", "", "Evaluate code directly instead of reading from a file")
		file = flag.String("f", "", "File to execute")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                # start the interactive REPL\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f script.lisp # execute a file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -e '(+ 1 2 3)' # evaluate code directly\n", os.Args[0])
	}
	flag.Parse()

	if *help || *h {
		flag.Usage()
		return
	}

	session, err := repl.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating interpreter: %v\n", err)
		os.Exit(1)
	}

	if *eval != "" {
		result, err := session.EvalString(*eval)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error evaluating code: %v\n", err)
			os.Exit(1)
		}
		if !lisp.IsNil(result) {
			fmt.Println(lisp.Print(result, true))
		}
		return
	}

	target := *file
	if target == "" && len(flag.Args()) > 0 {
		target = flag.Args()[0]
	}
	if target != "" {
		if err := session.LoadFile(target); err != nil {
			fmt.Fprintf(os.Stderr, "error executing file %s: %v\n", target, err)
			os.Exit(1)
		}
		return
	}

	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "repl error: %v\n", err)
		os.Exit(1)
	}
}
