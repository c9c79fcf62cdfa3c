package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.customFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		customFuncs: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	customFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// The zero subject gives the checker every field and helper signature.
	env := createRuntimeEnvironment(Subject{})
	maps.Copy(env, c.customFuncs)

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Position:   -1,
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a subject. Subjects that cause a
// runtime error do not match.
func (f *exprFilter) Evaluate(subject Subject) bool {
	ok, err := f.Match(subject)
	return err == nil && ok
}

// Match evaluates the filter and returns any runtime error as an *EvaluationError.
func (f *exprFilter) Match(subject Subject) (bool, error) {
	result, err := expr.Run(f.program, createRuntimeEnvironment(subject))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Subject:    fmt.Sprintf("%s %d", subject.Kind, subject.ID),
			Reason:     "failed to run expression",
			Err:        err,
		}
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the subject-independent helper functions to env
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse(time.DateOnly, dateStr)
		return t
	}
	// String helpers
	env["containsText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}

// createRuntimeEnvironment creates the evaluation environment for subject
func createRuntimeEnvironment(subject Subject) map[string]any {
	env := make(map[string]any, 32)

	addHelperFunctions(env)

	env["Subject"] = subject

	env["hasTag"] = createHasTagFunc(subject.Tags)
	env["hasEmail"] = createHasEmailFunc(subject.Emails)
	env["attr"] = createAttrFunc(subject.Attributes)
	env["isPerson"] = createKindFunc(subject.Kind, KindPerson)
	env["isCompany"] = createKindFunc(subject.Kind, KindCompany)

	// Direct subject properties for convenience
	env["Kind"] = subject.Kind
	env["ID"] = subject.ID
	env["Name"] = subject.Name
	env["Title"] = subject.Title
	env["CompanyName"] = subject.CompanyName
	env["Background"] = subject.Background
	env["VisibleTo"] = subject.VisibleTo
	env["Tags"] = subject.Tags
	env["Emails"] = subject.Emails
	env["Phones"] = subject.Phones
	env["CreatedAt"] = subject.CreatedAt
	env["UpdatedAt"] = subject.UpdatedAt

	return env
}

func createHasTagFunc(tags []string) func(string) bool {
	lowerTags := make([]string, len(tags))
	for i, tag := range tags {
		lowerTags[i] = strings.ToLower(tag)
	}
	return func(tag string) bool {
		return slices.Contains(lowerTags, strings.ToLower(tag))
	}
}

// createHasEmailFunc matches any address containing fragment, ignoring case.
func createHasEmailFunc(emails []string) func(string) bool {
	return func(fragment string) bool {
		fragment = strings.ToLower(fragment)
		return slices.ContainsFunc(emails, func(e string) bool {
			return strings.Contains(strings.ToLower(e), fragment)
		})
	}
}

func createAttrFunc(attrs map[string]string) func(string) string {
	return func(name string) string {
		return attrs[name]
	}
}

func createKindFunc(kind, want string) func() bool {
	return func() bool {
		return kind == want
	}
}
