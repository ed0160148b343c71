package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/herogram"
	"github.com/npillmayer/herogram/chart"
	"github.com/npillmayer/herogram/grammar"
	"github.com/npillmayer/herogram/lexicon"
	"github.com/npillmayer/herogram/render"
	"github.com/pterm/pterm"
)

// analyzer checks sentences against the superhero grammar and prints the
// results.
type analyzer struct {
	g      *grammar.Grammar
	tokens *lexicon.Tokenizer
	parser *chart.Parser
	out    io.Writer
	all    bool // print all trees instead of the first one
}

func newAnalyzer(out io.Writer, all bool) *analyzer {
	g := grammar.Superheroes()
	g.Dump() // only visible in debug mode
	return &analyzer{
		g:      g,
		tokens: lexicon.ForGrammar(g),
		parser: chart.NewParser(g),
		out:    out,
		all:    all,
	}
}

// analyze checks a sentence and prints either its parse trees or the tokens
// processed.
func (a *analyzer) analyze(sentence string) bool {
	tokens := a.tokens.Tokenize(sentence)
	tracer().Debugf("tokens = %v", tokens)
	trees := a.parser.Parse(tokens)
	if len(trees) == 0 {
		a.errorf("The sentence '%s' is NOT valid according to the grammar.", sentence)
		fmt.Fprintf(a.out, "Tokens processed: %s\n", tokenList(tokens))
		if unknown := a.unknownWords(tokens); len(unknown) > 0 {
			fmt.Fprintf(a.out, "Words not in the grammar: %s\n", strings.Join(unknown, ", "))
		}
		return false
	}
	pterm.Success.WithWriter(a.out).Printfln("The sentence '%s' is valid according to the grammar.", sentence)
	if len(trees) > 1 {
		fmt.Fprintf(a.out, "The sentence is ambiguous, it has %d parse trees.\n", len(trees))
	}
	if !a.all {
		trees = trees[:1]
	}
	for i, t := range trees {
		if len(trees) > 1 {
			fmt.Fprintf(a.out, "\n--- Tree #%d ---\n", i+1)
		}
		fmt.Fprintln(a.out, "\nParse Tree:")
		render.Indented(a.out, t)
		fmt.Fprintln(a.out, "\nSyntax Tree:")
		if err := render.Pretty(a.out, t); err != nil {
			tracer().Errorf("cannot render tree: %v", err)
		}
	}
	return true
}

func (a *analyzer) errorf(format string, args ...interface{}) {
	pterm.Error.WithWriter(a.out).Printfln(format, args...)
}

func (a *analyzer) unknownWords(tokens []herogram.Token) []string {
	var unknown []string
	for _, t := range tokens {
		if a.g.Terminal(t.Lexeme) == nil {
			unknown = append(unknown, t.Lexeme)
		}
	}
	return unknown
}

func tokenList(tokens []herogram.Token) string {
	quoted := make([]string, len(tokens))
	for i, l := range herogram.Lexemes(tokens) {
		quoted[i] = fmt.Sprintf("'%s'", l)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
