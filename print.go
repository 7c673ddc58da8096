package regast

import (
	"fmt"
	"strings"
)

// String renders the expression back to pattern text. Parsing the result
// yields an equal tree (capture indices included, since numbering depends
// only on group order, which printing preserves).
func (e Expression) String() string {
	var b strings.Builder
	writeExpression(&b, e)
	return b.String()
}

func writeExpression(b *strings.Builder, e Expression) {
	for i, choice := range e.Alt.Choices {
		if i > 0 {
			b.WriteByte('|')
		}
		for _, qt := range choice.Tokens {
			writeToken(b, qt.Token)
			if qt.Quantifier != nil {
				writeQuantifier(b, *qt.Quantifier)
			}
		}
	}
}

func writeToken(b *strings.Builder, tok Token) {
	switch t := tok.(type) {
	case Char:
		if isReserved(t.Rune) || t.Rune == '|' {
			b.WriteByte('\\')
		}
		b.WriteRune(t.Rune)
	case Wildcard:
		b.WriteByte('.')
	case Anchor:
		if t == AnchorBegin {
			b.WriteByte('^')
		} else {
			b.WriteByte('$')
		}
	case *Group:
		b.WriteByte('(')
		if !t.Capturing {
			b.WriteString("?:")
		}
		writeExpression(b, *t.Expr)
		b.WriteByte(')')
	case CharClass:
		writeCharClass(b, t)
	}
}

func writeCharClass(b *strings.Builder, c CharClass) {
	// A non-inverted built-in set prints in its bare escape form.
	if set, ok := c.Body.(SpecialSet); ok && !c.Inverted {
		writeCharSet(b, set.Set)
		return
	}
	b.WriteByte('[')
	if c.Inverted {
		b.WriteByte('^')
	}
	switch body := c.Body.(type) {
	case CharGroup:
		for _, r := range body.Chars {
			b.WriteRune(r)
		}
	case CharRange:
		b.WriteRune(body.Lo)
		b.WriteByte('-')
		b.WriteRune(body.Hi)
	case SpecialSet:
		writeCharSet(b, body.Set)
	}
	b.WriteByte(']')
}

func writeCharSet(b *strings.Builder, s CharSet) {
	b.WriteByte('\\')
	switch s.Kind {
	case SetWord:
		b.WriteByte('w')
	case SetWhitespace:
		b.WriteByte('s')
	case SetDecimalDigit:
		b.WriteByte('d')
	case SetUnicodeCategory:
		// All recognized category names collapse to Punctuation, so "P"
		// is the only name a tree can round-trip through.
		b.WriteString("P{P}")
	}
}

func writeQuantifier(b *strings.Builder, q Quantifier) {
	switch q.Kind {
	case QuantKleene:
		b.WriteByte('*')
	case QuantPlus:
		b.WriteByte('+')
	case QuantPossible:
		b.WriteByte('?')
	case QuantExact:
		fmt.Fprintf(b, "{%d}", q.Min)
	case QuantRange:
		if q.HasMax {
			fmt.Fprintf(b, "{%d,%d}", q.Min, q.Max)
		} else {
			fmt.Fprintf(b, "{%d,}", q.Min)
		}
	}
	if q.Lazy {
		b.WriteByte('?')
	}
}
