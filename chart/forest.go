package chart

import (
	"github.com/npillmayer/herogram"
	"github.com/npillmayer/herogram/grammar"
	"github.com/npillmayer/herogram/tree"
)

// Forest is a shared packed parse forest, the result of filling a chart.
// Nodes of the forest are unique per non-terminal and span. A node reached by
// more than one derivation carries all of them as alternatives.
type Forest struct {
	chart *chart
	root  *item
}

// Accepted is a predicate: does the forest contain a derivation of the complete
// input from the start symbol?
func (f *Forest) Accepted() bool {
	return f != nil && f.root != nil
}

// Grammar returns the grammar the forest has been built for.
func (f *Forest) Grammar() *grammar.Grammar {
	return f.chart.g
}

// Tokens returns the input tokens of the forest, numbered contiguously.
func (f *Forest) Tokens() []herogram.Token {
	return f.chart.tokens
}

// Derives is a predicate: is non-terminal A derivable over input [from, to)?
func (f *Forest) Derives(A string, from, to int) bool {
	return f.chart.lookup(f.chart.g.NonTerminal(A), from, to) != nil
}

// Size returns the number of nodes and the number of packed alternatives of
// the forest, including nodes not reachable from the root.
func (f *Forest) Size() (nodes int, alternatives int) {
	return len(f.chart.items), f.chart.alts
}

// IsAmbiguous is true if a node reachable from the root has more than one
// alternative.
func (f *Forest) IsAmbiguous() bool {
	if !f.Accepted() {
		return false
	}
	seen := itemset{}
	var ambiguous func(*item) bool
	ambiguous = func(it *item) bool {
		if seen.contains(it) {
			return false
		}
		seen.add(it)
		if len(it.alts) > 1 {
			return true
		}
		for _, alt := range it.alts {
			for _, e := range alt.children {
				if e.item != nil && ambiguous(e.item) {
					return true
				}
			}
		}
		return false
	}
	return ambiguous(f.root)
}

// Trees enumerates parse trees of the forest, at most limit of them
// (limit ≤ 0 means all of them). Trees are returned in a deterministic order.
//
// Cyclic derivations (A ⇒+ A over the same span) are not unrolled: no tree
// contains a node for the same non-terminal and span twice on a path from the
// root. Every sentence still gets all of its cycle-free trees.
//
// Trees may share sub-trees.
func (f *Forest) Trees(limit int) []*tree.Node {
	if !f.Accepted() {
		return nil
	}
	e := newEnumerator(f.chart, limit)
	trees, _ := e.trees(f.root)
	tracer().Debugf("enumerated %d tree(s)", len(trees))
	return trees
}

// --- Tree enumeration ------------------------------------------------------

type enumerator struct {
	limit  int
	leaves []*tree.Node
	memo   map[*item][]*tree.Node
	onPath itemset
}

func newEnumerator(c *chart, limit int) *enumerator {
	e := &enumerator{
		limit:  limit,
		leaves: make([]*tree.Node, len(c.tokens)),
		memo:   make(map[*item][]*tree.Node),
		onPath: itemset{},
	}
	for i, tok := range c.tokens {
		e.leaves[i] = tree.NewLeaf(tok)
	}
	return e
}

func (e *enumerator) full(n int) bool {
	return e.limit > 0 && n >= e.limit
}

// trees returns the trees for an item. If enumeration has been cut short
// because of a cyclic derivation, cut is true and the result depends on the
// current path; it is not memoized then.
func (e *enumerator) trees(it *item) (trees []*tree.Node, cut bool) {
	if ts, ok := e.memo[it]; ok {
		return ts, false
	}
	e.onPath.add(it)
	defer e.onPath.delete(it)
	for _, alt := range it.alts {
		ts, c := e.expand(it, alt)
		cut = cut || c
		trees = append(trees, ts...)
		if e.full(len(trees)) {
			trees = trees[:e.limit]
			break
		}
	}
	if !cut {
		e.memo[it] = trees
	}
	return trees, cut
}

// expand builds the trees for one alternative of an item, i.e. the cartesian
// product of the trees of its children.
func (e *enumerator) expand(it *item, alt *alternative) ([]*tree.Node, bool) {
	cut := false
	combos := [][]*tree.Node{{}}
	for i, ch := range alt.children {
		var choices []*tree.Node
		switch {
		case ch.item == nil:
			choices = e.leaves[ch.pos : ch.pos+1]
		case e.onPath.contains(ch.item):
			return nil, true
		default:
			var c bool
			choices, c = e.trees(ch.item)
			cut = cut || c
		}
		if len(choices) == 0 {
			return nil, cut
		}
		next := make([][]*tree.Node, 0, len(combos)*len(choices))
	product:
		for _, prefix := range combos {
			for _, t := range choices {
				combo := make([]*tree.Node, i+1, len(alt.children))
				copy(combo, prefix)
				combo[i] = t
				next = append(next, combo)
				if e.full(len(next)) {
					break product
				}
			}
		}
		combos = next
	}
	trees := make([]*tree.Node, len(combos))
	for k, children := range combos {
		trees[k] = tree.NewInternal(it.sym.Name, alt.rule.Serial, it.span(), children...)
	}
	return trees, cut
}
