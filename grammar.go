package regast

// The grammar, informally (alternatives are tried in declared order):
//
//	expression      := alternation
//	alternation     := sub_expression ('|' sub_expression)*
//	sub_expression  := quantified_token+
//	quantified_token:= token quantifier?
//	token           := anchor | group | indirect_match | char_literal
//	anchor          := '^' | '$'
//	group           := '(' ('?:' expression | expression) ')'
//	indirect_match  := '.' | char_class
//	char_class      := '[' '^'? class_body ']'
//	class_body      := char_range | special_set | char+
//	char_literal    := escaped | unreserved
//	quantifier      := ('*' | '+' | '?' | '{' bound '}') '?'?
//	bound           := number (',' number?)?
//
// Every rule is a pure value built from the combinators; the group rule
// reaches expression again through Lazy.

// Parse parses a pattern into its AST and returns the unconsumed suffix of
// the pattern, which is empty for a fully valid pattern. Deciding whether a
// non-empty suffix is an error is the caller's job; ParseComplete decides it
// for them.
func Parse(pattern string) (Expression, string, error) {
	expr, rest, err := expression().Parse(pattern)
	if err != nil {
		return Expression{}, pattern, err
	}
	numberGroups(&expr, 0)
	return expr, rest, nil
}

// ParseComplete parses a pattern and rejects trailing characters.
func ParseComplete(pattern string) (Expression, error) {
	expr, rest, err := Parse(pattern)
	if err != nil {
		return Expression{}, err
	}
	if rest != "" {
		return Expression{}, SyntaxError{Input: rest}
	}
	return expr, nil
}

// MustParse is like ParseComplete but panics on error.
func MustParse(pattern string) Expression {
	expr, err := ParseComplete(pattern)
	if err != nil {
		panic("regast: MustParse: " + err.Error())
	}
	return expr
}

func expression() Parser[Expression] {
	return Map(alternation(), func(alt Alternation) Expression {
		return Expression{Alt: alt}
	})
}

func alternation() Parser[Alternation] {
	more := ZeroOrMore(Right(MatchLiteral("|"), subExpression()))
	return Map(Pair(subExpression(), more), func(t Tuple[SubExpression, []SubExpression]) Alternation {
		return Alternation{Choices: append([]SubExpression{t.First}, t.Second...)}
	})
}

func subExpression() Parser[SubExpression] {
	return Map(OneOrMore(quantifiedToken()), func(tokens []QuantifiedToken) SubExpression {
		return SubExpression{Tokens: tokens}
	})
}

func quantifiedToken() Parser[QuantifiedToken] {
	return Map(Pair(token(), Optional(quantifier())), func(t Tuple[Token, *Quantifier]) QuantifiedToken {
		return QuantifiedToken{Token: t.First, Quantifier: t.Second}
	})
}

func token() Parser[Token] {
	return Choice(anchor(), group(), indirectMatch(), charLiteral())
}

func anchor() Parser[Token] {
	return Either(
		Map(MatchLiteral("^"), func(_ struct{}) Token { return Anchor(AnchorBegin) }),
		Map(MatchLiteral("$"), func(_ struct{}) Token { return Anchor(AnchorEnd) }),
	)
}

func group() Parser[Token] {
	// Indices stay 0 here; numberGroups assigns them after the parse.
	nonCapturing := Map(Right(MatchLiteral("?:"), Lazy(expression)), func(e Expression) Token {
		return &Group{Expr: &e}
	})
	capturing := Map(Lazy(expression), func(e Expression) Token {
		return &Group{Capturing: true, Expr: &e}
	})
	body := Either(nonCapturing, capturing)
	return Left(Right(MatchLiteral("("), body), MatchLiteral(")"))
}

func indirectMatch() Parser[Token] {
	wildcard := Map(MatchLiteral("."), func(_ struct{}) Token { return Wildcard{} })
	class := Map(charClass(), func(c CharClass) Token { return c })
	return Either(wildcard, class)
}

// char_literal: a bare unreserved character, or a backslash escape. An
// escaped reserved character (or '|') is a literal again; \w, \s, \d and
// \P{Name} produce the corresponding built-in class.
func charLiteral() Parser[Token] {
	escapedLiteral := Map(Predicate(AnyChar, func(r rune) bool {
		return isReserved(r) || r == '|'
	}), func(r rune) Token {
		return Char{Rune: r}
	})
	escapedSet := Map(charSetEscape(), func(s CharSet) Token {
		return CharClass{Body: SpecialSet{Set: s}}
	})
	escaped := Right(MatchLiteral(`\`), Either(escapedLiteral, escapedSet))

	// '|' must stay out of bare literals or alternation never sees its
	// separator.
	unreserved := Map(Predicate(AnyChar, func(r rune) bool {
		return !isReserved(r) && r != '|'
	}), func(r rune) Token {
		return Char{Rune: r}
	})

	return Either(escaped, unreserved)
}

// charSetEscape parses the part of a built-in class after the backslash:
// the letter of \w, \s, \d, or P{Name} for a Unicode category.
func charSetEscape() Parser[CharSet] {
	letter := Map(Predicate(AnyChar, func(r rune) bool {
		return r == 'w' || r == 's' || r == 'd'
	}), func(r rune) CharSet {
		switch r {
		case 'w':
			return CharSet{Kind: SetWord}
		case 's':
			return CharSet{Kind: SetWhitespace}
		default:
			return CharSet{Kind: SetDecimalDigit}
		}
	})
	return Either(letter, unicodeCategorySet())
}

func unicodeCategorySet() Parser[CharSet] {
	name := Map(OneOrMore(Predicate(AnyChar, func(r rune) bool {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	})), func(letters []rune) string {
		return string(letters)
	})
	known := Predicate(name, func(s string) bool {
		_, ok := categoryByName(s)
		return ok
	})
	body := Left(Right(MatchLiteral("P{"), known), MatchLiteral("}"))
	return Map(body, func(s string) CharSet {
		category, _ := categoryByName(s)
		return CharSet{Kind: SetUnicodeCategory, Category: category}
	})
}

// categoryByName maps a recognized Unicode category name to its category.
// Every recognized name currently collapses to Punctuation.
func categoryByName(name string) (UnicodeCategory, bool) {
	switch name {
	case "P", "Lt", "Ll", "N", "S":
		return CategoryPunctuation, true
	}
	return 0, false
}

func charClass() Parser[CharClass] {
	body := Pair(Optional(MatchLiteral("^")), classBody())
	bracketed := Left(Right(MatchLiteral("["), body), MatchLiteral("]"))
	return Map(bracketed, func(t Tuple[*struct{}, RawCharClass]) CharClass {
		return CharClass{Inverted: t.First != nil, Body: t.Second}
	})
}

// class_body is a single range, a single built-in set, or a run of plain
// characters. The range alternative goes first so '-' binds as a range.
//
// TODO: a range followed by more members ([a-ef]) fails to parse; the body
// would need to be a list of mixed items instead of one variant.
func classBody() Parser[RawCharClass] {
	return Choice(classRange(), classSpecialSet(), classGroup())
}

func classChar() Parser[rune] {
	return Predicate(AnyChar, func(r rune) bool { return !isReserved(r) })
}

func classRange() Parser[RawCharClass] {
	p := Pair(classChar(), Right(MatchLiteral("-"), classChar()))
	return Map(p, func(t Tuple[rune, rune]) RawCharClass {
		return CharRange{Lo: t.First, Hi: t.Second}
	})
}

func classSpecialSet() Parser[RawCharClass] {
	return Map(Right(MatchLiteral(`\`), charSetEscape()), func(s CharSet) RawCharClass {
		return SpecialSet{Set: s}
	})
}

func classGroup() Parser[RawCharClass] {
	return Map(OneOrMore(classChar()), func(chars []rune) RawCharClass {
		return CharGroup{Chars: chars}
	})
}

func quantifier() Parser[Quantifier] {
	raw := Choice(
		Map(MatchLiteral("*"), func(_ struct{}) Quantifier { return Quantifier{Kind: QuantKleene} }),
		Map(MatchLiteral("+"), func(_ struct{}) Quantifier { return Quantifier{Kind: QuantPlus} }),
		Map(MatchLiteral("?"), func(_ struct{}) Quantifier { return Quantifier{Kind: QuantPossible} }),
		boundedQuantifier(),
	)
	return Map(Pair(raw, Optional(MatchLiteral("?"))), func(t Tuple[Quantifier, *struct{}]) Quantifier {
		q := t.First
		q.Lazy = t.Second != nil
		return q
	})
}

// boundedQuantifier parses {n}, {n,} and {n,m}. Whether n <= m is not
// checked; the tree carries what was written and validation is left to the
// consuming engine.
func boundedQuantifier() Parser[Quantifier] {
	type rangeTail struct {
		max *int
	}
	tail := Optional(Map(Right(MatchLiteral(","), Optional(Number())), func(max *int) rangeTail {
		return rangeTail{max: max}
	}))
	bound := Pair(Number(), tail)
	body := Left(Right(MatchLiteral("{"), bound), MatchLiteral("}"))
	return Map(body, func(t Tuple[int, *rangeTail]) Quantifier {
		switch {
		case t.Second == nil:
			return Quantifier{Kind: QuantExact, Min: t.First}
		case t.Second.max == nil:
			return Quantifier{Kind: QuantRange, Min: t.First}
		default:
			return Quantifier{Kind: QuantRange, Min: t.First, Max: *t.Second.max, HasMax: true}
		}
	})
}
