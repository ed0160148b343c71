package lexicon

import (
	"sync"

	"github.com/npillmayer/herogram"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

const wordToken = 1

var wordLexer *lexmachine.Lexer
var lexerOnce sync.Once // monitors one-time creation of the word lexer

func lexer() *lexmachine.Lexer {
	lexerOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`( |\t|\n|\r)+`), skip)
		lx.Add([]byte(`[^ \t\n\r]+`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return s.Token(wordToken, string(m.Bytes), m), nil
		})
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			panic("cannot create word lexer")
		}
		wordLexer = lx
	})
	return wordLexer
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// word is a white space delimited part of the input, together with its
// byte offsets.
type word struct {
	text   string
	offset herogram.Span
}

// words splits normalized text at white space.
func words(text string) []word {
	scan, err := lexer().Scanner([]byte(text))
	if err != nil {
		tracer().Errorf("cannot scan input: %v", err)
		return nil
	}
	var ws []word
	tok, err, eof := scan.Next()
	for !eof {
		if err != nil {
			tracer().Errorf("scanner error: %v", err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				scan.TC = ui.FailTC
			}
		} else {
			t := tok.(*lexmachine.Token)
			ws = append(ws, word{
				text:   string(t.Lexeme),
				offset: herogram.MakeSpan(t.TC, t.TC+len(t.Lexeme)),
			})
		}
		tok, err, eof = scan.Next()
	}
	return ws
}
