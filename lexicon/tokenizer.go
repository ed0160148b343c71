package lexicon

import (
	"strings"

	"github.com/npillmayer/herogram"
	"github.com/npillmayer/herogram/grammar"
)

// Tokenizer splits sentences into tokens, merging registered multi-word terms.
// A Tokenizer is immutable after creation and may be used concurrently.
type Tokenizer struct {
	terms *trie
}

// NewTokenizer creates a tokenizer for a set of multi-word terms. Terms are
// normalized. Single-word terms need not be registered, but do no harm.
func NewTokenizer(terms ...string) *Tokenizer {
	tz := &Tokenizer{terms: &trie{}}
	for _, term := range terms {
		ws := strings.Fields(grammar.NormalizeTerminal(term))
		if len(ws) > 1 {
			tz.terms.insert(ws)
		}
	}
	return tz
}

// ForGrammar creates a tokenizer which knows about all the multi-word
// terminals of a grammar.
func ForGrammar(g *grammar.Grammar) *Tokenizer {
	return NewTokenizer(g.MultiWordTerminals()...)
}

// Tokenize splits a sentence into tokens, recognizing the multi-word terminals
// of grammar g.
func Tokenize(text string, g *grammar.Grammar) []herogram.Token {
	return ForGrammar(g).Tokenize(text)
}

// Tokenize splits a sentence into tokens. Offsets of tokens refer to the
// lower-case version of text.
func (tz *Tokenizer) Tokenize(text string) []herogram.Token {
	ws := words(strings.ToLower(text))
	toks := make([]herogram.Token, 0, len(ws))
	for i := 0; i < len(ws); {
		n := tz.terms.longestMatch(ws[i:])
		if n <= 1 {
			n = 1
		}
		lexemes := make([]string, n)
		for j := range lexemes {
			lexemes[j] = ws[i+j].text
		}
		toks = append(toks, herogram.Token{
			Lexeme: strings.Join(lexemes, " "),
			Pos:    len(toks),
			Offset: ws[i].offset.Extend(ws[i+n-1].offset),
		})
		i += n
	}
	tracer().Debugf("tokens = %v", toks)
	return toks
}

// --- Trie of multi-word terms ----------------------------------------------

type trie struct {
	next map[string]*trie
	term bool // a term ends here
}

func (t *trie) insert(ws []string) {
	node := t
	for _, w := range ws {
		if node.next == nil {
			node.next = make(map[string]*trie)
		}
		child, ok := node.next[w]
		if !ok {
			child = &trie{}
			node.next[w] = child
		}
		node = child
	}
	node.term = true
}

// longestMatch returns the number of words of the longest term which is a
// prefix of ws, or 0.
func (t *trie) longestMatch(ws []word) int {
	node, longest := t, 0
	for i, w := range ws {
		if node = node.next[w.text]; node == nil {
			break
		}
		if node.term {
			longest = i + 1
		}
	}
	return longest
}
