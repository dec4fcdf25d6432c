package budget

import (
	"strconv"
	"strings"

	"github.com/etnz/budgetbot/date"
	"github.com/shopspring/decimal"
)

// Kind is the type a word was classified as.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindFloat
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindDate:
		return "date"
	default:
		return "text"
	}
}

// Token is one whitespace-delimited word of a command line, classified once
// at construction. The classification order matters: an integer parse is
// attempted before a float one, a float before a date, so that "5" is an
// Integer and "5.0" a Float. Anything unparsable is Text.
type Token struct {
	Raw  string
	Kind Kind
	num  decimal.Decimal
	date date.Date
}

// Classify parses raw into a Token. It is a pure function of its input.
func Classify(raw string) Token {
	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		num, _ := decimal.NewFromString(raw)
		return Token{Raw: raw, Kind: KindInteger, num: num}
	}
	if num, err := decimal.NewFromString(raw); err == nil {
		return Token{Raw: raw, Kind: KindFloat, num: num}
	}
	if d, err := date.Parse(raw); err == nil {
		return Token{Raw: raw, Kind: KindDate, date: d}
	}
	return Token{Raw: raw, Kind: KindText}
}

// Tokenize splits line on whitespace and classifies every word. Empty and
// whitespace-only words are dropped.
func Tokenize(line string) []Token {
	words := strings.Fields(line)
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, Classify(w))
	}
	return tokens
}

// IsNumeric reports whether the token holds a number. Integers are numbers
// too.
func (t Token) IsNumeric() bool { return t.Kind == KindInteger || t.Kind == KindFloat }

// IsText reports whether the token fell through every parse.
func (t Token) IsText() bool { return t.Kind == KindText }

// Number returns the numeric value. Zero unless IsNumeric.
func (t Token) Number() decimal.Decimal { return t.num }

// Date returns the date value. Zero unless Kind is KindDate.
func (t Token) Date() date.Date { return t.date }

// Is reports whether the token's raw text equals any of words,
// case-insensitively.
func (t Token) Is(words ...string) bool {
	for _, w := range words {
		if strings.EqualFold(t.Raw, w) {
			return true
		}
	}
	return false
}

// Equal compares two tokens by raw text, case-insensitively.
func (t Token) Equal(u Token) bool { return strings.EqualFold(t.Raw, u.Raw) }
