package lisp

import _ "embed"

//go:embed prelude.lisp
var preludeSource string

// NewRootEnvironment performs the startup sequence from spec §6: create
// the root frame, bind the nil/true/false singletons, install the
// built-in procedure library, define load-file, then load the
// standard prelude of user-level helpers.
func NewRootEnvironment() (*Environment, error) {
	env := NewEnvironment(nil)

	env.Put(intern("nil"), NilValue)
	env.Put(intern("true"), TrueValue)
	env.Put(intern("false"), FalseValue)

	installArith(env)
	installPredicates(env)
	installList(env)
	installIO(env)
	installIntrospect(env)
	installAtoms(env)
	installReflect(env)
	installExceptions(env)

	if err := loadSource(env, loadFileDefinition); err != nil {
		return nil, err
	}
	if err := loadSource(env, preludeSource); err != nil {
		return nil, err
	}
	return env, nil
}

// loadFileDefinition implements load-file: read a file's contents,
// wrap them in an implicit (do ...) and evaluate in the root env.
const loadFileDefinition = `
(def! load-file
  (lambda (path)
    (eval (read-string (str "(do " (slurp path) "\n)")))))
`

// loadSource reads every top-level form out of source and evaluates
// each in env, returning the first error encountered.
func loadSource(env *Environment, source string) error {
	forms, err := ReadAll(source)
	if err != nil {
		return err
	}
	for _, form := range forms {
		if _, err := Eval(form, env); err != nil {
			return err
		}
	}
	return nil
}
