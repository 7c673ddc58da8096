package regast

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Error(t, SyntaxError{Input: "a|b"}, `syntax error at "a|b"`)
	assert.Error(t, RepeatLowerError{Bound: 3}, "expected at least 3 repetitions")
	assert.Error(t, RepeatUpperError{Bound: 5}, "expected at most 5 repetitions")
	assert.Error(t, UnexpectedMatchError{Input: "ab"}, `unexpected match at "ab"`)
}

func TestParserReuse(t *testing.T) {
	// Parsers hold no state between runs: the same value produces the
	// same result on repeated and interleaved inputs.
	p := OneOrMore(MatchLiteral("e"))

	for i := 0; i < 3; i++ {
		vs, rest, err := p.Parse("eek")
		assert.NilError(t, err)
		assert.Equal(t, len(vs), 2)
		assert.Equal(t, rest, "k")

		_, rest, err = p.Parse("no")
		assert.Equal(t, err, RepeatLowerError{Bound: 1})
		assert.Equal(t, rest, "no")
	}
}

func TestLazy(t *testing.T) {
	built := 0
	p := Lazy(func() Parser[rune] {
		built++
		return AnyChar
	})

	// Nothing is constructed until the parser runs.
	assert.Equal(t, built, 0)

	r, rest, err := p.Parse("ab")
	assert.NilError(t, err)
	assert.Equal(t, r, 'a')
	assert.Equal(t, rest, "b")
	assert.Equal(t, built, 1)
}
