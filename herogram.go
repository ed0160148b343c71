package herogram

import "fmt"

// --- Tokens ----------------------------------------------------------------

// Token is a terminal symbol instance, as produced by a tokenizer.
// Tokens of an input sentence are numbered contiguously, starting at 0.
//
// An example would be a token for a multi-word hero name:
//
//    Lexeme = "iron man"   // normalized lexeme, a grammar terminal
//    Pos    = 0            // first token of the sentence
//    Offset = (0…8)        // byte offsets within the normalized input text
//
type Token struct {
	Lexeme string // normalized (lower-case) lexeme
	Pos    int    // position in the token sequence
	Offset Span   // byte offsets within the normalized input
}

func (t Token) String() string {
	return fmt.Sprintf("%q@%d", t.Lexeme, t.Pos)
}

// MakeTokens creates a token sequence from a list of lexemes. It does not
// normalize the lexemes and leaves byte offsets empty.
// It is mainly useful for tests and for clients who do their own tokenization.
func MakeTokens(lexemes ...string) []Token {
	toks := make([]Token, len(lexemes))
	for i, l := range lexemes {
		toks[i] = Token{Lexeme: l, Pos: i}
	}
	return toks
}

// Lexemes returns the lexemes of a token sequence.
func Lexemes(toks []Token) []string {
	l := make([]string, len(toks))
	for i, t := range toks {
		l[i] = t.Lexeme
	}
	return l
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// MakeSpan creates a span from integer positions.
func MakeSpan(from, to int) Span {
	return Span{uint64(from), uint64(to)}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for empty spans. Note that an epsilon-derivation at position
// n is an empty span (n…n), but is not null unless n = 0.
func (s Span) IsNull() bool {
	return s == Span{}
}

// IsEmpty is true if the span does not cover any position.
func (s Span) IsEmpty() bool {
	return s[0] == s[1]
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
