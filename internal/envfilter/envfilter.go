// Package envfilter compiles and evaluates filter expressions over
// environment variables.
//
// Expressions see two string identifiers, key and value, and must produce
// a boolean, e.g. `key startsWith "PATH"` or `value contains "/usr"`.
package envfilter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled predicate over a single environment variable.
type Filter struct {
	prog *vm.Program
}

// Compile pre-compiles the filter expression for efficiency.
func Compile(expression string) (*Filter, error) {
	// Define the environment for expression type checking
	exprEnv := map[string]interface{}{
		"key":   "",
		"value": "",
	}

	prog, err := expr.Compile(expression, expr.Env(exprEnv), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression %q: %w", expression, err)
	}
	return &Filter{prog: prog}, nil
}

// Match evaluates the filter against one key/value pair.
func (f *Filter) Match(key, value string) (bool, error) {
	env := map[string]interface{}{
		"key":   key,
		"value": value,
	}

	output, err := expr.Run(f.prog, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter for %q: %w", key, err)
	}

	b, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression must produce a boolean, got %T", output)
	}
	return b, nil
}
