// Package filter compiles expr-lang expressions for narrowing catalog
// search results on the client side.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/soup/cineshell/omdb"
)

// Filter represents a compiled filter expression
type Filter struct {
	program *vm.Program
	expr    string
}

// helpers usable in every expression
var helpers = map[string]interface{}{
	"contains": func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	},
	"startsWith": func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	},
	"endsWith": func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	},
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
}

// Compile compiles a filter expression
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helpers),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program: program,
		expr:    expression,
	}, nil
}

// Evaluate evaluates the filter against a movie. Runtime evaluation
// errors and non-boolean results exclude the movie.
func (f *Filter) Evaluate(movie omdb.Movie) bool {
	env := map[string]interface{}{
		"Movie": movie,

		// Direct movie properties for convenience
		"Title":     movie.Title,
		"Year":      movie.Year,
		"Type":      movie.Type,
		"ImdbID":    movie.ImdbID,
		"HasPoster": movie.HasPoster(),
	}
	for name, fn := range helpers {
		env[name] = fn
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	if boolResult, ok := result.(bool); ok {
		return boolResult
	}
	return false
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expr
}

// Apply returns the movies matching the filter, preserving order
func (f *Filter) Apply(movies []omdb.Movie) []omdb.Movie {
	matched := make([]omdb.Movie, 0, len(movies))
	for _, movie := range movies {
		if f.Evaluate(movie) {
			matched = append(matched, movie)
		}
	}
	return matched
}
