package repl

import (
	"sort"
	"strings"

	"github.com/ahonen/golisp/pkg/lisp"
	"github.com/chzyer/readline"
)

// CompletionProvider offers tab-completion candidates drawn from the
// names bound in the root environment plus the core special forms
// (which, unlike procedures, are never bound as values).
type CompletionProvider struct {
	env *lisp.Environment
}

func NewCompletionProvider(env *lisp.Environment) *CompletionProvider {
	return &CompletionProvider{env: env}
}

var specialFormNames = []string{
	"def!", "defmacro!", "let*", "if", "do", "lambda",
	"quote", "quasiquote", "macroexpand", "try*", "catch*",
}

// GetCompletions returns every known name with the given prefix, sorted.
func (cp *CompletionProvider) GetCompletions(prefix string) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(name string) {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	for _, name := range specialFormNames {
		add(name)
	}
	for env := cp.env; env != nil; env = env.Outer() {
		for _, name := range env.Names() {
			add(name)
		}
	}

	sort.Strings(out)
	return out
}

// lispCompleter adapts CompletionProvider to readline.AutoCompleter,
// completing the word immediately before the cursor.
type lispCompleter struct {
	provider *CompletionProvider
}

func newCompleter(env *lisp.Environment) readline.AutoCompleter {
	return &lispCompleter{provider: NewCompletionProvider(env)}
}

func (c *lispCompleter) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])

	var candidates [][]rune
	for _, name := range c.provider.GetCompletions(prefix) {
		candidates = append(candidates, []rune(name[len(prefix):]))
	}
	return candidates, pos - start
}

func isWordChar(r rune) bool {
	return !strings.ContainsRune(" \t\n()\"'`~", r)
}
