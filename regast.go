// Package regast parses regular-expression patterns into an abstract syntax
// tree. The front end is a small backtracking parser-combinator library; the
// grammar in this package composes those combinators into the full regex
// syntax (literals, character classes, anchors, groups, quantifiers,
// alternation). Executing the resulting tree against subject text is the job
// of a separate matching engine.
package regast

import "fmt"

// Parser consumes a prefix of input and produces a value of type T together
// with the unconsumed suffix. On failure the returned suffix is the original
// input: no combinator in this package reports a successfully consumed prefix
// alongside an error. Either relies on this invariant to backtrack correctly.
type Parser[T any] interface {
	Parse(input string) (T, string, error)
}

// Func adapts an ordinary function to the Parser interface.
type Func[T any] func(input string) (T, string, error)

func (f Func[T]) Parse(input string) (T, string, error) {
	return f(input)
}

// Lazy defers construction of a parser until parse time. A grammar rule that
// reaches itself through another rule (a group containing a full expression)
// cannot be built eagerly; Lazy is the dynamic-dispatch point that breaks the
// cycle.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return Func[T](func(input string) (T, string, error) {
		return build().Parse(input)
	})
}

// SyntaxError reports a generic parse failure. Input is the full input the
// failing parser received.
type SyntaxError struct {
	Input string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %q", e.Input)
}

// RepeatLowerError reports a repetition that stopped before reaching its
// lower bound.
type RepeatLowerError struct {
	Bound int
}

func (e RepeatLowerError) Error() string {
	return fmt.Sprintf("expected at least %d repetitions", e.Bound)
}

// RepeatUpperError reports a repetition that would exceed its upper bound.
type RepeatUpperError struct {
	Bound int
}

func (e RepeatUpperError) Error() string {
	return fmt.Sprintf("expected at most %d repetitions", e.Bound)
}

// UnexpectedMatchError reports a negative lookahead that matched after all.
type UnexpectedMatchError struct {
	Input string
}

func (e UnexpectedMatchError) Error() string {
	return fmt.Sprintf("unexpected match at %q", e.Input)
}

var (
	_ error = SyntaxError{}
	_ error = RepeatLowerError{}
	_ error = RepeatUpperError{}
	_ error = UnexpectedMatchError{}
)
