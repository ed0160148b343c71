package grammar

import (
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"
)

// Unproductive is the minimal yield of non-terminals which are not able to
// derive any string of terminals.
const Unproductive = math.MaxInt32

func (g *Grammar) analyze() {
	g.computeNullable()
	g.computeMinYield()
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		g.Dump()
	}
}

// computeNullable determines all nullable non-terminals. A non-terminal is nullable
// if it has an epsilon-rule, or a rule consisting of nullable non-terminals only.
//
// For every rule without terminals we count the RHS symbols not yet known to be
// nullable. Whenever a symbol turns out to be nullable, it is pushed onto a work
// stack; popping it decrements the counters of all rules using it.
func (g *Grammar) computeNullable() {
	g.nullable = make(map[*Symbol]bool)
	pending := make(map[*Rule]int)
	users := make(map[*Symbol][]*Rule)
	work := arraystack.New()
	markNullable := func(A *Symbol) {
		if !g.nullable[A] {
			g.nullable[A] = true
			work.Push(A)
		}
	}
	for _, r := range g.rules {
		if hasTerminal(r) {
			continue // can never derive ε
		}
		pending[r] = len(r.rhs)
		for _, sym := range r.rhs {
			users[sym] = append(users[sym], r)
		}
		if r.IsEps() {
			markNullable(r.LHS)
		}
	}
	for !work.Empty() {
		v, _ := work.Pop()
		A := v.(*Symbol)
		for _, r := range users[A] { // once per occurrence of A
			pending[r]--
			if pending[r] == 0 {
				markNullable(r.LHS)
			}
		}
	}
}

// computeMinYield determines the minimum number of tokens every non-terminal
// derives. Values only decrease, therefore iterating until nothing changes
// terminates.
func (g *Grammar) computeMinYield() {
	g.minYield = make(map[*Symbol]int)
	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			y := g.RuleMinYield(r)
			if y < g.MinYield(r.LHS) {
				g.minYield[r.LHS] = y
				changed = true
			}
		}
	}
}

func hasTerminal(r *Rule) bool {
	for _, sym := range r.rhs {
		if sym.IsTerminal() {
			return true
		}
	}
	return false
}
