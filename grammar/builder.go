package grammar

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// GrammarBuilder is used to construct a Grammar.
//
//    b := NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()  // S  ->  A 'a'
//    b.LHS("A").T("b").End()         // A  ->  'b'
//    b.LHS("A").Epsilon()            // A  ->
//    g, err := b.Grammar()
//
// Please refer to the examples of package grammar.
type GrammarBuilder struct {
	name         string
	startName    string
	rules        []*Rule
	nonterminals map[string]*Symbol
	terminals    map[string]*Symbol
	symcnt       int
	problems     []string
	g            *Grammar
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		name:         gname,
		nonterminals: make(map[string]*Symbol),
		terminals:    make(map[string]*Symbol),
	}
}

// SetStart sets the start symbol of the grammar. If not set, the left hand side
// of the first rule will be the start symbol.
func (gb *GrammarBuilder) SetStart(name string) *GrammarBuilder {
	gb.startName = name
	return gb
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	if strings.TrimSpace(name) == "" {
		gb.problem("empty name for left hand side of rule #%d", len(gb.rules))
	}
	lhs := gb.nonterminal(name)
	if gb.startName == "" {
		gb.startName = name
	}
	return &RuleBuilder{
		gb:   gb,
		rule: &Rule{LHS: lhs},
	}
}

func (gb *GrammarBuilder) nonterminal(name string) *Symbol {
	if A, ok := gb.nonterminals[name]; ok {
		return A
	}
	A := &Symbol{Name: name, Value: gb.symcnt}
	gb.symcnt++
	gb.nonterminals[name] = A
	return A
}

func (gb *GrammarBuilder) terminal(literal string) *Symbol {
	lit := NormalizeTerminal(literal)
	if t, ok := gb.terminals[lit]; ok {
		return t
	}
	t := &Symbol{Name: lit, Value: gb.symcnt, terminal: true}
	gb.symcnt++
	gb.terminals[lit] = t
	return t
}

func (gb *GrammarBuilder) problem(format string, args ...interface{}) {
	gb.problems = append(gb.problems, fmt.Sprintf(format, args...))
}

// append a rule, if there is no identical rule present.
func (gb *GrammarBuilder) appendRule(r *Rule) *Rule {
	for _, other := range gb.rules {
		if other.sameAs(r) {
			tracer().Debugf("ignoring duplicate rule %v", r)
			return other
		}
	}
	r.Serial = len(gb.rules)
	gb.rules = append(gb.rules, r)
	return r
}

// Grammar returns the grammar built so far and checks it for consistency.
// If the grammar is malformed, an error wrapping ErrMalformedGrammar is returned.
//
// Clients must not add rules after calling Grammar.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.g != nil {
		return gb.g, nil
	}
	g := &Grammar{
		Name:         gb.name,
		rules:        gb.rules,
		nonterminals: gb.nonterminals,
		terminals:    gb.terminals,
		byLHS:        make(map[*Symbol][]*Rule),
		termNames:    treeset.NewWithStringComparator(),
		ntNames:      treeset.NewWithStringComparator(),
	}
	for _, r := range g.rules {
		g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
	}
	for name := range gb.nonterminals {
		g.ntNames.Add(name)
	}
	for lit := range gb.terminals {
		g.termNames.Add(lit)
	}
	problems := append([]string(nil), gb.problems...)
	if len(g.rules) == 0 {
		problems = append(problems, "grammar has no rules")
	} else {
		g.start = gb.nonterminals[gb.startName]
		if g.start == nil || len(g.byLHS[g.start]) == 0 {
			problems = append(problems, fmt.Sprintf("start symbol %s is undefined", gb.startName))
		}
	}
	for _, name := range g.NonTerminals() {
		if len(g.byLHS[g.nonterminals[name]]) == 0 {
			problems = append(problems, fmt.Sprintf("non-terminal %s is used but never defined", name))
		}
	}
	for lit := range gb.terminals {
		if lit == "" {
			problems = append(problems, "empty terminal")
		} else if _, ok := gb.nonterminals[lit]; ok {
			problems = append(problems, fmt.Sprintf("%s is used as terminal and as non-terminal", lit))
		}
	}
	if len(problems) > 0 {
		tracer().Errorf("grammar %q is malformed", gb.name)
		return nil, &MalformedGrammarError{Grammar: gb.name, Problems: problems}
	}
	g.analyze()
	gb.g = g
	return g, nil
}

// --- Rules -----------------------------------------------------------------

// RuleBuilder is a builder type for rules.
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *Rule
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	if strings.TrimSpace(name) == "" {
		rb.gb.problem("empty non-terminal name in rule for %s", rb.rule.LHS)
	}
	rb.rule.rhs = append(rb.rule.rhs, rb.gb.nonterminal(name))
	return rb
}

// T appends a terminal to the builder. The literal will be normalized
// to lower case.
func (rb *RuleBuilder) T(literal string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rb.gb.terminal(literal))
	return rb
}

// End ends a rule and adds it to the grammar. If an identical rule already
// exists, no new rule is created and the existing one is returned.
func (rb *RuleBuilder) End() *Rule {
	return rb.gb.appendRule(rb.rule)
}

// Epsilon sets the right hand side of a rule to epsilon (empty) and ends it.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rule.rhs = nil
	return rb.gb.appendRule(rb.rule)
}
