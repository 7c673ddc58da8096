package regast

import (
	"math"
	"strings"
	"unicode/utf8"
)

// MatchLiteral succeeds when s is a prefix of the input, consuming exactly
// it. The match is case-sensitive and yields no value.
func MatchLiteral(s string) Parser[struct{}] {
	return Func[struct{}](func(input string) (struct{}, string, error) {
		if !strings.HasPrefix(input, s) {
			return struct{}{}, input, SyntaxError{Input: input}
		}
		return struct{}{}, input[len(s):], nil
	})
}

// AnyChar consumes a single character and yields it. Fails on empty input.
var AnyChar Parser[rune] = Func[rune](func(input string) (rune, string, error) {
	r, size := utf8.DecodeRuneInString(input)
	if size == 0 {
		return 0, input, SyntaxError{Input: input}
	}
	return r, input[size:], nil
})

// Optional always succeeds: a pointer to p's value when p matches, nil (and
// no consumption) when it does not.
func Optional[T any](p Parser[T]) Parser[*T] {
	return Func[*T](func(input string) (*T, string, error) {
		v, rest, err := p.Parse(input)
		if err != nil {
			return nil, input, nil
		}
		return &v, rest, nil
	})
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Number parses one or more ASCII decimal digits as a non-negative integer.
// Values that do not fit in an int saturate at math.MaxInt.
func Number() Parser[int] {
	digits := OneOrMore(Predicate(AnyChar, isDigit))
	return Map(digits, func(ds []rune) int {
		var n int64
		for _, d := range ds {
			n = n*10 + int64(d-'0')
			if n >= math.MaxInt || n < 0 {
				n = math.MaxInt
			}
		}
		return int(n)
	})
}

// Reserved metacharacters. These never parse as bare literals and are the
// characters an escape sequence turns back into literals.
func isReserved(r rune) bool {
	switch r {
	case '[', ']', '(', ')', '*', '?', '+', '.', '\\', '-':
		return true
	}
	return false
}
