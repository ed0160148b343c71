package chart

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/herogram"
	"github.com/npillmayer/herogram/grammar"
)

// An item is a node of the parse forest: a non-terminal which has been proven
// to derive the input tokens [from, to). It carries every distinct way in which
// the derivation may be done.
type item struct {
	sym  *grammar.Symbol
	from int
	to   int
	alts []*alternative
	sigs map[string]struct{}
}

func (it *item) span() herogram.Span {
	return herogram.MakeSpan(it.from, it.to)
}

func (it *item) String() string {
	return fmt.Sprintf("%s%s", it.sym.Name, it.span())
}

// An alternative is a packed node: one application of a rule, together with a
// child reference for every RHS symbol. Children for terminals reference an input
// position, children for non-terminals reference an item.
type alternative struct {
	rule     *grammar.Rule
	children []edge
}

type edge struct {
	item *item // nil for terminals
	pos  int   // input position of a terminal
}

func (alt *alternative) String() string {
	s := alt.rule.LHS.Name + " ➞"
	if len(alt.children) == 0 {
		return s + " ε"
	}
	for i, e := range alt.children {
		if e.item == nil {
			s += fmt.Sprintf(" %s(%d)", alt.rule.RHS()[i], e.pos)
		} else {
			s += " " + e.item.String()
		}
	}
	return s
}

type itemKey struct {
	sym  *grammar.Symbol
	from int
	to   int
}

type startKey struct {
	sym  *grammar.Symbol
	from int
}

// chart holds the items of a single parse run. It is not shared between
// parse runs.
type chart struct {
	g      *grammar.Grammar
	tokens []herogram.Token
	terms  []*grammar.Symbol // terminal matching the token at a position, or nil
	items  map[itemKey]*item
	starts map[startKey][]*item // items by start position, in order of creation
	yields map[*grammar.Rule][]int
	alts   int
}

func newChart(g *grammar.Grammar, tokens []herogram.Token) *chart {
	c := &chart{
		g:      g,
		tokens: make([]herogram.Token, len(tokens)),
		terms:  make([]*grammar.Symbol, len(tokens)),
		items:  make(map[itemKey]*item),
		starts: make(map[startKey][]*item),
		yields: make(map[*grammar.Rule][]int),
	}
	for i, tok := range tokens {
		tok.Pos = i
		c.tokens[i] = tok
		c.terms[i] = g.Terminal(tok.Lexeme)
	}
	return c
}

// fill processes all spans of the input, ordered by increasing length.
// When a span is processed, every shorter span is complete.
func (c *chart) fill() {
	n := len(c.tokens)
	for l := 0; l <= n; l++ {
		for from := 0; from+l <= n; from++ {
			c.complete(from, from+l)
		}
	}
}

// complete finds every alternative for every non-terminal over [from, to).
// Rules are applied repeatedly until no new alternative shows up, as items
// for the span itself may be input to other rules over the same span (chains of
// unit-rules, or rules with nullable symbols at the fringes).
func (c *chart) complete(from, to int) {
	l := to - from
	for changed := true; changed; {
		changed = false
		for _, r := range c.g.Rules() {
			if c.g.RuleMinYield(r) > l {
				continue
			}
			if l == 0 && !c.g.IsNullable(r.LHS) {
				continue
			}
			c.partitions(r, from, to, func(children []edge) {
				if c.record(r, from, to, children) {
					changed = true
				}
			})
		}
	}
}

// partitions calls yield for every way to split [from, to) into contiguous,
// possibly empty sub-spans, one per RHS symbol of r, such that each sub-span is
// derivable from its symbol. The children handed to yield must be copied if they
// are to be kept.
func (c *chart) partitions(r *grammar.Rule, from, to int, yield func([]edge)) {
	rhs := r.RHS()
	rest := c.suffixYields(r)
	children := make([]edge, len(rhs))
	var match func(i, pos int)
	match = func(i, pos int) {
		if i == len(rhs) {
			if pos == to {
				yield(children)
			}
			return
		}
		if rest[i] > to-pos {
			return
		}
		X := rhs[i]
		if X.IsTerminal() {
			if pos < to && c.terms[pos] == X {
				children[i] = edge{pos: pos}
				match(i+1, pos+1)
			}
			return
		}
		for _, it := range c.starts[startKey{X, pos}] {
			if it.to <= to && rest[i+1] <= to-it.to {
				children[i] = edge{item: it}
				match(i+1, it.to)
			}
		}
	}
	match(0, from)
}

// suffixYields returns, for every position i of the RHS of r, the minimal number
// of tokens the symbols X(i) … X(k) derive.
func (c *chart) suffixYields(r *grammar.Rule) []int {
	if ys, ok := c.yields[r]; ok {
		return ys
	}
	rhs := r.RHS()
	ys := make([]int, len(rhs)+1)
	for i := len(rhs) - 1; i >= 0; i-- {
		y := c.g.MinYield(rhs[i])
		if y >= grammar.Unproductive || ys[i+1] >= grammar.Unproductive {
			ys[i] = grammar.Unproductive
		} else {
			ys[i] = y + ys[i+1]
		}
	}
	c.yields[r] = ys
	return ys
}

// record adds an alternative for the LHS of r over [from, to), creating the
// item if necessary. It returns false if the alternative is already known.
func (c *chart) record(r *grammar.Rule, from, to int, children []edge) bool {
	key := itemKey{r.LHS, from, to}
	it, ok := c.items[key]
	if !ok {
		it = &item{sym: r.LHS, from: from, to: to, sigs: make(map[string]struct{})}
		c.items[key] = it
		sk := startKey{r.LHS, from}
		c.starts[sk] = append(c.starts[sk], it)
	}
	sig := signature(r, children)
	if _, dup := it.sigs[sig]; dup {
		return false
	}
	it.sigs[sig] = exists
	alt := &alternative{
		rule:     r,
		children: append([]edge(nil), children...),
	}
	it.alts = append(it.alts, alt)
	c.alts++
	tracer().Debugf("%s: %s", it.span(), alt)
	return true
}

// lookup returns the item for a non-terminal over [from, to), if any.
func (c *chart) lookup(A *grammar.Symbol, from, to int) *item {
	if A == nil {
		return nil
	}
	return c.items[itemKey{A, from, to}]
}

// --- Signatures ------------------------------------------------------------

// Alternatives of an item are told apart by their rule and the extent of their
// children. Items are unique per symbol and span, so this identifies a packed
// node completely.
type altSignature struct {
	Rule     int
	Children []childSignature
}

type childSignature struct {
	Sym  string
	From int
	To   int
}

func signature(r *grammar.Rule, children []edge) string {
	sig := altSignature{
		Rule:     r.Serial,
		Children: make([]childSignature, len(children)),
	}
	for i, e := range children {
		if e.item == nil {
			sig.Children[i] = childSignature{Sym: r.RHS()[i].Name, From: e.pos, To: e.pos + 1}
		} else {
			sig.Children[i] = childSignature{Sym: e.item.sym.Name, From: e.item.from, To: e.item.to}
		}
	}
	return string(structhash.Dump(sig, 1))
}
