// Package repl implements the interactive shell and scripted drivers
// that sit around the evaluation core: a readline-backed REPL, a
// one-shot string evaluator, and a file loader.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ahonen/golisp/pkg/lisp"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// REPL holds the root environment and reusable formatting/input state
// used across a whole interactive session.
type REPL struct {
	env       *lisp.Environment
	formatter *ErrorFormatter
	colors    bool
}

// New builds a REPL with a freshly bootstrapped root environment (spec
// §6 startup sequence).
func New() (*REPL, error) {
	env, err := lisp.NewRootEnvironment()
	if err != nil {
		return nil, err
	}
	return &REPL{env: env, formatter: NewErrorFormatter(), colors: true}, nil
}

// SetColors toggles colored output, useful for tests and for piped
// (non-tty) output.
func (r *REPL) SetColors(enabled bool) {
	r.colors = enabled
	color.NoColor = !enabled
}

// EvalString reads and evaluates every top-level form in src, returning
// the value of the last one.
func (r *REPL) EvalString(src string) (lisp.Value, error) {
	forms, err := lisp.ReadAll(src)
	if err != nil {
		return nil, err
	}
	var result lisp.Value = lisp.NilValue
	for _, form := range forms {
		result, err = lisp.Eval(form, r.env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// LoadFile evaluates the contents of path as a sequence of top-level
// forms in the root environment.
func (r *REPL) LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = r.EvalString(string(content))
	return err
}

// Run starts the interactive loop: read one complete (balanced) form,
// evaluate it in the root env, print the result in readable mode, and
// on error print a single diagnostic line to stderr (spec §6 REPL
// contract). EOF on stdin ends the loop.
func (r *REPL) Run() error {
	historyFile := historyFilePath()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptText("user> ", r.colors),
		HistoryFile:     historyFile,
		AutoComplete:    newCompleter(r.env),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	r.printWelcome()

	for {
		input, err := r.readForm(rl)
		if err != nil {
			if err == io.EOF {
				break
			}
			fmt.Fprintf(os.Stderr, "input error: %v\n", err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		value, err := r.EvalString(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, r.formatter.Format(err))
			continue
		}
		r.printResult(value)
	}

	r.printGoodbye()
	return nil
}

func (r *REPL) printResult(v lisp.Value) {
	text := lisp.Print(v, true)
	if r.colors {
		color.New(color.FgGreen).Printf("%s\n", text)
		return
	}
	fmt.Println(text)
}

// readForm reads lines from rl until the accumulated input holds a
// balanced set of parentheses outside of any string literal.
func (r *REPL) readForm(rl *readline.Instance) (string, error) {
	var sb strings.Builder
	depth := 0
	inString := false
	escaped := false
	first := true

	for {
		if first {
			rl.SetPrompt(promptText("user> ", r.colors))
			first = false
		} else {
			rl.SetPrompt(promptText("...   ", r.colors))
		}

		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		for _, c := range line {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				if inString {
					escaped = true
				}
			case '"':
				inString = !inString
			case '(':
				if !inString {
					depth++
				}
			case ')':
				if !inString {
					depth--
				}
			}
		}

		if depth <= 0 && !inString {
			return sb.String(), nil
		}
	}
}

func promptText(text string, colors bool) string {
	if !colors {
		return text
	}
	return color.New(color.FgBlue, color.Bold).Sprint(text)
}

func (r *REPL) printWelcome() {
	if !r.colors {
		fmt.Println("golisp")
		fmt.Println("Type expressions to evaluate them. EOF (Ctrl-D) exits.")
		return
	}
	title := color.New(color.FgCyan, color.Bold)
	instr := color.New(color.FgYellow)
	title.Println("golisp")
	instr.Println("Type expressions to evaluate them. EOF (Ctrl-D) exits.")
}

func (r *REPL) printGoodbye() {
	if !r.colors {
		fmt.Println("goodbye")
		return
	}
	color.New(color.FgMagenta, color.Bold).Println("goodbye")
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".golisp_history"
	}
	return home + "/.golisp_history"
}
