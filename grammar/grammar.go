package grammar

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// --- Rules -----------------------------------------------------------------

// Rule is a type for rules of a grammar. Rules cannot be shared between grammars.
// A rule with an empty right hand side is an epsilon-production.
type Rule struct {
	Serial int     // order number of this rule within a grammar
	LHS    *Symbol // symbol of left hand side
	rhs    []*Symbol
}

// RHS returns the right hand side of a rule. Clients must not modify the slice.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// Len returns the number of symbols on the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEps is a predicate: is this an epsilon-production?
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s ➞ %v", r.LHS, r.rhs)
}

// sameAs compares LHS and RHS of two rules.
func (r *Rule) sameAs(other *Rule) bool {
	if r.LHS != other.LHS || len(r.rhs) != len(other.rhs) {
		return false
	}
	for i, s := range r.rhs {
		if s != other.rhs[i] {
			return false
		}
	}
	return true
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar. Create grammars with a GrammarBuilder or
// with Build. A Grammar is immutable after it has been built.
type Grammar struct {
	Name         string
	rules        []*Rule
	start        *Symbol
	nonterminals map[string]*Symbol
	terminals    map[string]*Symbol
	byLHS        map[*Symbol][]*Rule
	nullable     map[*Symbol]bool
	minYield     map[*Symbol]int
	termNames    *treeset.Set // sorted terminal names
	ntNames      *treeset.Set // sorted non-terminal names
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule gets a grammar rule by serial number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Rules returns all rules in serial order. Clients must not modify the slice.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// ProductionsFor returns all rules with A as their left hand side.
// For terminals and unknown symbols the result is empty.
func (g *Grammar) ProductionsFor(A *Symbol) []*Rule {
	return g.byLHS[A]
}

// IsNullable is a predicate: is A able to derive the empty string?
func (g *Grammar) IsNullable(A *Symbol) bool {
	return g.nullable[A]
}

// MinYield returns the minimum number of tokens A is able to derive. For terminals
// this is 1. Non-terminals which are unable to derive any terminal string at all
// return Unproductive.
func (g *Grammar) MinYield(A *Symbol) int {
	if A.IsTerminal() {
		return 1
	}
	if y, ok := g.minYield[A]; ok {
		return y
	}
	return Unproductive
}

// RuleMinYield returns the minimum number of tokens a rule is able to derive.
func (g *Grammar) RuleMinYield(r *Rule) int {
	sum := 0
	for _, sym := range r.rhs {
		y := g.MinYield(sym)
		if y == Unproductive {
			return Unproductive
		}
		sum += y
	}
	return sum
}

// SymbolByName gets a non-terminal or terminal by its name. Non-terminals are
// searched first.
func (g *Grammar) SymbolByName(name string) *Symbol {
	if A, ok := g.nonterminals[name]; ok {
		return A
	}
	return g.terminals[NormalizeTerminal(name)]
}

// NonTerminal gets a non-terminal by name.
func (g *Grammar) NonTerminal(name string) *Symbol {
	return g.nonterminals[name]
}

// Terminal gets a terminal for a literal. The literal is normalized first.
func (g *Grammar) Terminal(literal string) *Symbol {
	return g.terminals[NormalizeTerminal(literal)]
}

// Terminals returns the names of all terminals, sorted.
func (g *Grammar) Terminals() []string {
	return stringValues(g.termNames)
}

// NonTerminals returns the names of all non-terminals, sorted.
func (g *Grammar) NonTerminals() []string {
	return stringValues(g.ntNames)
}

// MultiWordTerminals returns the names of all terminals containing white space,
// sorted.
func (g *Grammar) MultiWordTerminals() []string {
	var mw []string
	for _, t := range g.Terminals() {
		if g.terminals[t].IsMultiWord() {
			mw = append(mw, t)
		}
	}
	return mw
}

// EachNonTerminal iterates over all non-terminals of the grammar in sorted order.
// Return values of the mapper function for all non-terminals are
// returned as an array.
func (g *Grammar) EachNonTerminal(mapper func(name string, N *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, name := range g.NonTerminals() {
		r = append(r, mapper(name, g.nonterminals[name]))
	}
	return r
}

// Dump is a debugging helper: dump symbols and rules to the trace.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol = %s", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s ::= %v", r.Serial, r.LHS, r.rhs)
	}
	g.EachNonTerminal(func(name string, N *Symbol) interface{} {
		tracer().Debugf("    %-10s nullable=%v, min-yield=%d", name, g.IsNullable(N), g.MinYield(N))
		return nil
	})
	tracer().Debugf("-------------------------------------------------------")
}

// String returns the rules in the grammar's own notation, one rule per line.
// Reading the output with Build results in an equivalent grammar.
func (g *Grammar) String() string {
	var b bytes.Buffer
	for _, r := range g.rules {
		b.WriteString(r.LHS.Name)
		b.WriteString(" ->")
		for _, sym := range r.rhs {
			b.WriteByte(' ')
			if sym.IsTerminal() && strings.Contains(sym.Name, "'") {
				fmt.Fprintf(&b, "\"%s\"", sym.Name)
			} else if sym.IsTerminal() {
				fmt.Fprintf(&b, "'%s'", sym.Name)
			} else {
				b.WriteString(sym.Name)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func stringValues(set *treeset.Set) []string {
	if set == nil {
		return nil
	}
	vals := set.Values()
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = v.(string)
	}
	return s
}
