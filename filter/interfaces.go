package filter

// Filter defines the basic interface for contact filters
type Filter interface {
	// Evaluate checks if a subject matches the filter criteria
	Evaluate(subject Subject) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Match evaluates the filter and reports evaluation failures
	Match(subject Subject) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// matchAll is the filter used for an empty expression.
type matchAll struct{}

func (matchAll) Evaluate(Subject) bool { return true }

func (matchAll) Match(Subject) (bool, error) { return true, nil }

func (matchAll) Expression() string { return "" }

// Select returns the items whose subject matches f, preserving order.
func Select[T any](items []T, subject func(T) Subject, f Filter) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f.Evaluate(subject(item)) {
			out = append(out, item)
		}
	}
	return out
}
