package regast

// The AST is a strict tree of immutable values: groups own their nested
// expression exclusively, nothing is shared and nothing refers back into the
// pattern text after parsing completes.

// Expression is the root of a parsed pattern: one alternation.
type Expression struct {
	Alt Alternation
}

// Alternation is an ordered set of alternatives. Order matters: at match
// time the first matching alternative wins.
type Alternation struct {
	Choices []SubExpression
}

// SubExpression is a left-to-right concatenation of quantified tokens.
type SubExpression struct {
	Tokens []QuantifiedToken
}

// QuantifiedToken pairs a token with an optional repetition modifier. A nil
// Quantifier means the token matches exactly once.
type QuantifiedToken struct {
	Token      Token
	Quantifier *Quantifier
}

// Token is an atomic matchable unit. The concrete types are Char, Wildcard,
// CharClass, *Group and Anchor.
type Token interface {
	isToken()
}

// Char matches one literal character.
type Char struct {
	Rune rune
}

// Wildcard matches any single character ('.').
type Wildcard struct{}

// Anchor asserts a position without consuming any subject text.
type Anchor int

const (
	AnchorBegin Anchor = iota // ^
	AnchorEnd                 // $
)

// Group is a parenthesized sub-expression. Capturing groups carry an index
// assigned 1..n in left-to-right order of their opening parenthesis;
// non-capturing groups are skipped by the numbering and keep Index 0.
type Group struct {
	Capturing bool
	Index     int
	Expr      *Expression
}

// QuantifierKind identifies the repetition operator that was written.
type QuantifierKind int

const (
	QuantKleene   QuantifierKind = iota // *
	QuantPlus                          // +
	QuantPossible                      // ?
	QuantExact                         // {n}
	QuantRange                         // {n,} or {n,m}
)

// Quantifier is a repetition modifier. Min is meaningful for QuantExact and
// QuantRange; Max only for QuantRange and only when HasMax is set. Lazy
// records a trailing '?'; the parser only tags laziness, it does not change
// how repetition is matched. Min <= Max is not checked at parse time.
type Quantifier struct {
	Kind   QuantifierKind
	Lazy   bool
	Min    int
	Max    int
	HasMax bool
}

// CharClass matches one character from a class. Inverted corresponds to a
// leading '^' in the class body.
type CharClass struct {
	Inverted bool
	Body     RawCharClass
}

// RawCharClass is a class body: CharGroup, CharRange or SpecialSet.
type RawCharClass interface {
	isRawCharClass()
}

// CharGroup is an explicit set of characters.
type CharGroup struct {
	Chars []rune
}

// CharRange spans Lo through Hi inclusive. Lo <= Hi is not checked at parse
// time.
type CharRange struct {
	Lo rune
	Hi rune
}

// SpecialSet is a built-in character set such as \w.
type SpecialSet struct {
	Set CharSet
}

// CharSetKind identifies a built-in character set.
type CharSetKind int

const (
	SetWord            CharSetKind = iota // \w
	SetWhitespace                         // \s
	SetDecimalDigit                       // \d
	SetUnicodeCategory                    // \P{...}
)

// UnicodeCategory names a Unicode general category. Every category name the
// grammar currently recognizes collapses to CategoryPunctuation; this is a
// known incompleteness of the recognized-name table, not of the grammar.
type UnicodeCategory int

const (
	CategoryPunctuation UnicodeCategory = iota
)

// CharSet identifies a built-in character set. Category is meaningful only
// when Kind is SetUnicodeCategory.
type CharSet struct {
	Kind     CharSetKind
	Category UnicodeCategory
}

func (Char) isToken()      {}
func (Wildcard) isToken()  {}
func (Anchor) isToken()    {}
func (*Group) isToken()    {}
func (CharClass) isToken() {}

func (CharGroup) isRawCharClass()  {}
func (CharRange) isRawCharClass()  {}
func (SpecialSet) isRawCharClass() {}

// numberGroups walks the tree in pre-order and assigns capture indices in
// left-to-right order of opening parenthesis, skipping non-capturing groups.
// next is the highest index assigned so far; the new highest is returned.
// Running this as a walk after the parse keeps the grammar rules pure: no
// combinator has to thread a counter through the recursion.
func numberGroups(e *Expression, next int) int {
	for i := range e.Alt.Choices {
		tokens := e.Alt.Choices[i].Tokens
		for j := range tokens {
			g, ok := tokens[j].Token.(*Group)
			if !ok {
				continue
			}
			if g.Capturing {
				next++
				g.Index = next
			}
			next = numberGroups(g.Expr, next)
		}
	}
	return next
}
