package regast

// Tuple is the result of Pair: both values in sequence order.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Map runs p and transforms its value with f. Failure propagates unchanged.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Func[B](func(input string) (B, string, error) {
		a, rest, err := p.Parse(input)
		if err != nil {
			var zero B
			return zero, input, err
		}
		return f(a), rest, nil
	})
}

// Pair runs p1 and then p2 on the remainder, combining both values. If
// either fails the error is reported against the input Pair started from.
func Pair[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Tuple[A, B]] {
	return Func[Tuple[A, B]](func(input string) (Tuple[A, B], string, error) {
		a, rest, err := p1.Parse(input)
		if err != nil {
			return Tuple[A, B]{}, input, err
		}
		b, rest, err := p2.Parse(rest)
		if err != nil {
			return Tuple[A, B]{}, input, err
		}
		return Tuple[A, B]{First: a, Second: b}, rest, nil
	})
}

// Left runs both parsers in sequence and keeps the first value.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) A { return t.First })
}

// Right runs both parsers in sequence and keeps the second value.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) B { return t.Second })
}

// Unbounded marks a repetition with no upper limit.
const Unbounded = -1

// RepeatRange applies p greedily. The loop stops when p fails or when stop
// successes have accumulated (stop == Unbounded never stops early); hitting
// the upper bound is loop termination, not an error. Fewer than start
// successes fail with RepeatLowerError, reported against the pre-loop input.
func RepeatRange[T any](p Parser[T], start, stop int) Parser[[]T] {
	return Func[[]T](func(input string) ([]T, string, error) {
		var result []T
		rest := input
		for stop == Unbounded || len(result) < stop {
			v, next, err := p.Parse(rest)
			if err != nil {
				break
			}
			result = append(result, v)
			rest = next
		}
		if len(result) < start {
			return nil, input, RepeatLowerError{Bound: start}
		}
		return result, rest, nil
	})
}

// ZeroOrMore applies p any number of times.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return RepeatRange(p, 0, Unbounded)
}

// OneOrMore applies p at least once.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return RepeatRange(p, 1, Unbounded)
}

// Predicate runs p and fails unless pred holds for the value. The failure is
// reported against the input p started from, so the consumption p performed
// is not observable.
func Predicate[T any](p Parser[T], pred func(T) bool) Parser[T] {
	return Func[T](func(input string) (T, string, error) {
		v, rest, err := p.Parse(input)
		if err != nil {
			var zero T
			return zero, input, err
		}
		if !pred(v) {
			var zero T
			return zero, input, SyntaxError{Input: input}
		}
		return v, rest, nil
	})
}

// AndThen runs p, builds a second parser from its value and runs that on the
// remainder. Grammar rules whose continuation depends on an earlier value
// are expressed with this.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return Func[B](func(input string) (B, string, error) {
		a, rest, err := p.Parse(input)
		if err != nil {
			var zero B
			return zero, input, err
		}
		b, rest, err := f(a).Parse(rest)
		if err != nil {
			var zero B
			return zero, input, err
		}
		return b, rest, nil
	})
}

// Either tries p1 and, if it fails, tries p2 on the original input. This is
// the backtracking point of the whole library; it depends on every parser
// honoring the no-consumption-on-failure convention.
func Either[T any](p1, p2 Parser[T]) Parser[T] {
	return Func[T](func(input string) (T, string, error) {
		v, rest, err := p1.Parse(input)
		if err == nil {
			return v, rest, nil
		}
		return p2.Parse(input)
	})
}

// Choice tries each alternative in order on the same input, returning the
// first success. Equivalent to folding Either over the alternatives; the
// error of the last alternative is the one reported.
func Choice[T any](alternatives ...Parser[T]) Parser[T] {
	return Func[T](func(input string) (T, string, error) {
		var err error = SyntaxError{Input: input}
		for _, p := range alternatives {
			var v T
			var rest string
			v, rest, err = p.Parse(input)
			if err == nil {
				return v, rest, nil
			}
		}
		var zero T
		return zero, input, err
	})
}

// Not succeeds, consuming nothing, exactly when p fails. When p matches, Not
// fails with UnexpectedMatchError.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return Func[struct{}](func(input string) (struct{}, string, error) {
		if _, _, err := p.Parse(input); err == nil {
			return struct{}{}, input, UnexpectedMatchError{Input: input}
		}
		return struct{}{}, input, nil
	})
}

// NotBut is a negative lookahead followed by a real match: it yields p2's
// value iff p1 does not match at the current position.
func NotBut[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Right(Not(p1), p2)
}
