package chart

import (
	"github.com/npillmayer/herogram"
	"github.com/npillmayer/herogram/grammar"
	"github.com/npillmayer/herogram/tree"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// Parser is a chart parser for a grammar. It holds no parse state, therefore
// a single parser may be used for any number of parse runs, including concurrent
// ones.
type Parser struct {
	g        *grammar.Grammar
	maxTrees int
}

// Option configures a parser.
type Option func(p *Parser)

// MaxTrees limits the number of trees Parse will return for an ambiguous
// input. n ≤ 0 means no limit.
func MaxTrees(n int) Option {
	return func(p *Parser) {
		if n < 0 {
			n = 0
		}
		p.maxTrees = n
	}
}

// NewParser creates a chart parser for a grammar. The grammar must not be nil.
func NewParser(g *grammar.Grammar, opts ...Option) *Parser {
	if g == nil {
		panic("chart parser needs a grammar")
	}
	p := &Parser{g: g}
	if gconf.IsSet("herogram.maxtrees") {
		MaxTrees(gconf.GetInt("herogram.maxtrees"))(p)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Grammar returns the grammar of a parser.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.g
}

// Forest fills a chart for an input token sequence and returns the resulting
// parse forest. The forest is empty if the tokens are not a sentence of the
// grammar.
func (p *Parser) Forest(tokens []herogram.Token) *Forest {
	c := newChart(p.g, tokens)
	c.fill()
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		dumpChart(c)
	}
	f := &Forest{
		chart: c,
		root:  c.lookup(p.g.Start(), 0, len(tokens)),
	}
	tracer().Infof("chart for %d tokens has %d nodes with %d alternatives, accepted = %v",
		len(tokens), len(c.items), c.alts, f.Accepted())
	return f
}

// Parse returns every parse tree of an input token sequence, subject to option
// MaxTrees. If the tokens are not a sentence of the grammar, the result is
// empty. Rejecting an input is not an error.
func (p *Parser) Parse(tokens []herogram.Token) []*tree.Node {
	return p.Forest(tokens).Trees(p.maxTrees)
}

// Recognize is a predicate: are the tokens a sentence of the grammar?
// No trees are enumerated.
func (p *Parser) Recognize(tokens []herogram.Token) bool {
	return p.Forest(tokens).Accepted()
}

// Parse is a shortcut for creating a parser with default options and parsing
// a token sequence.
func Parse(g *grammar.Grammar, tokens []herogram.Token) []*tree.Node {
	return NewParser(g).Parse(tokens)
}
