package filter

import (
	"fmt"
	"strings"
)

var defaultCompiler = NewExprCompiler(WithCache(100))

// CompileFilter compiles an expr expression with the shared caching compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// ParseAndCreateFilter accepts either an expr expression or the shorthand
// syntax and returns a compiled filter. An empty expression matches everything.
func ParseAndCreateFilter(expression string) (CompiledFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return matchAll{}, nil
	}

	if IsShorthand(expression) {
		converted, err := ConvertShorthand(expression)
		if err != nil {
			return nil, fmt.Errorf("failed to convert shorthand filter: %w", err)
		}
		expression = converted
	}

	return CompileFilter(expression)
}
