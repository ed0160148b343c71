package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedGrammar is wrapped by every error reporting a grammar which
// cannot be used for parsing. Check with
//
//     errors.Is(err, grammar.ErrMalformedGrammar)
//
var ErrMalformedGrammar = errors.New("malformed grammar")

// MalformedGrammarError lists the problems found when building a grammar.
type MalformedGrammarError struct {
	Grammar  string   // name of the grammar
	Problems []string // human readable descriptions
}

func (e *MalformedGrammarError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedGrammar.Error(), e.Grammar,
		strings.Join(e.Problems, "; "))
}

// Unwrap returns ErrMalformedGrammar.
func (e *MalformedGrammarError) Unwrap() error {
	return ErrMalformedGrammar
}

// NotationError is returned by Build for rule strings with syntax errors.
// It is not a MalformedGrammarError: the rules could not even be read.
type NotationError struct {
	Line   int // 1-based line within the concatenated rule text
	Column int // 1-based column
	Msg    string
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("rule notation error at %d:%d: %s", e.Line, e.Column, e.Msg)
}
