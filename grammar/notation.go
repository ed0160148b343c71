package grammar

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Rule notation
//
// Rules are written one per line, alternatives separated by '|':
//
//     # comment
//     S       -> NP_SG V_SG S_PRIME
//     S_PRIME -> CONJ S |
//     N       -> 'iron man' | 'thor' | "black widow"
//
// Bare identifiers are non-terminals, quoted strings are terminals. An empty
// alternative denotes an epsilon-production.

const (
	tokEOF = iota
	tokNL
	tokID
	tokLit
	tokArrow
	tokBar
)

var tokenNames = map[int]string{
	tokEOF:   "end of rules",
	tokNL:    "end of line",
	tokID:    "non-terminal",
	tokLit:   "terminal",
	tokArrow: "'->'",
	tokBar:   "'|'",
}

var notationLexer *lexmachine.Lexer
var notationErr error
var lexerOnce sync.Once // monitors one-time creation of the notation lexer

func ruleLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`#[^\n]*`), skip)
		lexer.Add([]byte(`( |\t|\r)+`), skip)
		lexer.Add([]byte(`\n`), makeToken(tokNL))
		lexer.Add([]byte(`\-\>`), makeToken(tokArrow))
		lexer.Add([]byte(`\|`), makeToken(tokBar))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(tokID))
		lexer.Add([]byte(`'[^']*'`), makeToken(tokLit))
		lexer.Add([]byte(`\"[^"]*\"`), makeToken(tokLit))
		if notationErr = lexer.Compile(); notationErr != nil {
			tracer().Errorf("error compiling DFA for rule notation: %v", notationErr)
			return
		}
		notationLexer = lexer
	})
	return notationLexer, notationErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

type ruleToken struct {
	kind      int
	text      string
	line, col int
}

// lexRules splits rule text into tokens. It always appends an EOF token.
func lexRules(text string) ([]ruleToken, error) {
	lexer, err := ruleLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lexer.Scanner([]byte(text))
	if err != nil {
		return nil, err
	}
	var toks []ruleToken
	for tok, err, eof := scan.Next(); !eof; tok, err, eof = scan.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				line, col := lineCol(text, ui.FailTC)
				return nil, &NotationError{Line: line, Column: col,
					Msg: fmt.Sprintf("unexpected input %q", excerpt(text, ui.FailTC))}
			}
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		toks = append(toks, ruleToken{
			kind: t.Type,
			text: string(t.Lexeme),
			line: t.StartLine,
			col:  t.StartColumn,
		})
	}
	line, col := lineCol(text, len(text))
	toks = append(toks, ruleToken{kind: tokEOF, line: line, col: col})
	return toks, nil
}

func lineCol(text string, tc int) (int, int) {
	if tc > len(text) {
		tc = len(text)
	}
	before := text[:tc]
	line := strings.Count(before, "\n") + 1
	col := tc - strings.LastIndex(before, "\n")
	return line, col
}

func excerpt(text string, tc int) string {
	if tc >= len(text) {
		return ""
	}
	end := tc + 10
	if end > len(text) {
		end = len(text)
	}
	return text[tc:end]
}

// --- Reading rules ---------------------------------------------------------

// Build creates a grammar from rule strings in the notation described above.
// Every string may contain more than one line. The left hand side of the first
// rule is the start symbol.
//
// Build returns a *NotationError for rule text it cannot read, and an error wrapping
// ErrMalformedGrammar if the rules are readable but inconsistent.
func Build(name string, rules []string) (*Grammar, error) {
	toks, err := lexRules(strings.Join(rules, "\n"))
	if err != nil {
		return nil, err
	}
	b := NewGrammarBuilder(name)
	p := &notationParser{toks: toks, b: b}
	if err = p.parse(); err != nil {
		return nil, err
	}
	return b.Grammar()
}

type notationParser struct {
	toks []ruleToken
	pos  int
	b    *GrammarBuilder
}

func (p *notationParser) peek() ruleToken {
	return p.toks[p.pos]
}

func (p *notationParser) next() ruleToken {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *notationParser) expect(kind int) (ruleToken, error) {
	t := p.next()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s, found %s", tokenNames[kind], describe(t))
	}
	return t, nil
}

func (p *notationParser) errorf(t ruleToken, format string, args ...interface{}) error {
	return &NotationError{Line: t.line, Column: t.col, Msg: fmt.Sprintf(format, args...)}
}

func describe(t ruleToken) string {
	if t.kind == tokID || t.kind == tokLit {
		return fmt.Sprintf("%s %s", tokenNames[t.kind], t.text)
	}
	return tokenNames[t.kind]
}

// parse reads rules until EOF:
//
//     Rules ::= { Line }
//     Line  ::= nl | id '->' Alt { '|' Alt } ( nl | eof )
//     Alt   ::= { id | literal }
//
func (p *notationParser) parse() error {
	for p.peek().kind != tokEOF {
		if p.peek().kind == tokNL {
			p.next()
			continue
		}
		lhs, err := p.expect(tokID)
		if err != nil {
			return err
		}
		if _, err = p.expect(tokArrow); err != nil {
			return err
		}
		if err = p.alternatives(lhs.text); err != nil {
			return err
		}
	}
	return nil
}

func (p *notationParser) alternatives(lhs string) error {
	rb := p.b.LHS(lhs)
	for {
		t := p.next()
		switch t.kind {
		case tokID:
			rb.N(t.text)
		case tokLit:
			rb.T(t.text[1 : len(t.text)-1])
		case tokBar:
			rb.End()
			rb = p.b.LHS(lhs)
		case tokNL, tokEOF:
			rb.End()
			return nil
		default:
			return p.errorf(t, "unexpected %s in rule for %s", describe(t), lhs)
		}
	}
}
