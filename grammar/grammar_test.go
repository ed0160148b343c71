package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d").End()
	b.LHS("D").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Size() != 6 {
		t.Errorf("expected grammar to have 6 rules, has %d", g.Size())
	}
	if g.Start().Name != "S" {
		t.Errorf("expected start symbol to be S, is %v", g.Start())
	}
	if len(g.ProductionsFor(g.SymbolByName("B"))) != 2 {
		t.Errorf("expected B to have 2 productions")
	}
	if !g.Rule(3).IsEps() {
		t.Errorf("expected rule #3 to be an epsilon-production: %v", g.Rule(3))
	}
	if g.Terminal("A") != g.Terminal("a") || g.Terminal("a") == nil {
		t.Errorf("expected terminals to be case-normalized")
	}
}

func TestDuplicateRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	r1 := b.LHS("S").T("x").End()
	r2 := b.LHS("S").T("X").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if r1 != r2 || g.Size() != 1 {
		t.Errorf("expected duplicate rule to be ignored, grammar has %d rules", g.Size())
	}
}

func TestNullable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").N("B").End() // S ➞ A B
	b.LHS("A").N("B").N("C").End() // A ➞ B C     (mutually recursive with C)
	b.LHS("A").T("a").End()        // A ➞ a
	b.LHS("B").T("b").End()        // B ➞ b
	b.LHS("B").Epsilon()           // B ➞ ε
	b.LHS("C").N("A").End()        // C ➞ A
	b.LHS("C").Epsilon()           // C ➞ ε
	b.LHS("E").T("e").N("S").End() // E ➞ e S
	b.SetStart("S")
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []struct {
		name     string
		nullable bool
		yield    int
	}{
		{"S", true, 0},
		{"A", true, 0},
		{"B", true, 0},
		{"C", true, 0},
		{"E", false, 1},
	} {
		A := g.NonTerminal(x.name)
		if g.IsNullable(A) != x.nullable {
			t.Errorf("expected nullable(%s) = %v", x.name, x.nullable)
		}
		if g.MinYield(A) != x.yield {
			t.Errorf("expected min-yield(%s) = %d, is %d", x.name, x.yield, g.MinYield(A))
		}
	}
}

func TestNullableChainThroughTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").N("A").N("A").End()
	b.LHS("A").T("a").N("A").End()
	b.LHS("A").T("a").End()
	b.LHS("L").N("L").T("x").End() // unproductive
	b.LHS("S").N("L").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.IsNullable(g.Start()) {
		t.Errorf("expected S not to be nullable")
	}
	if y := g.MinYield(g.Start()); y != 3 {
		t.Errorf("expected min-yield(S) = 3, is %d", y)
	}
	if y := g.MinYield(g.NonTerminal("L")); y != Unproductive {
		t.Errorf("expected L to be unproductive, min-yield is %d", y)
	}
}

func TestMalformedUndefined(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").N("Z").End()
	b.LHS("A").T("a").End()
	_, err := b.Grammar()
	if err == nil {
		t.Fatalf("expected grammar with undefined non-terminal Z to be rejected")
	}
	if !errors.Is(err, ErrMalformedGrammar) {
		t.Errorf("expected error to be a malformed grammar error, is %v", err)
	}
	var merr *MalformedGrammarError
	if !errors.As(err, &merr) || len(merr.Problems) != 1 {
		t.Errorf("expected exactly one problem to be reported, have %v", err)
	}
	t.Logf("error = %v", err)
}

func TestMalformedStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("A").T("a").End()
	b.SetStart("S")
	if _, err := b.Grammar(); !errors.Is(err, ErrMalformedGrammar) {
		t.Errorf("expected grammar with undefined start symbol to be rejected, err = %v", err)
	}
	if _, err := NewGrammarBuilder("empty").Grammar(); !errors.Is(err, ErrMalformedGrammar) {
		t.Errorf("expected empty grammar to be rejected, err = %v", err)
	}
}

func TestMalformedNameClash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("hulk").End()
	b.LHS("hulk").T("Hulk").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrMalformedGrammar) {
		t.Errorf("expected name clash of terminal and non-terminal to be rejected, err = %v", err)
	}
}

func TestEachNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("B").N("A").End()
	b.LHS("B").T("iron   Man").End()
	b.LHS("A").T("thor").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	names := g.EachNonTerminal(func(name string, N *Symbol) interface{} {
		return N.Name
	})
	if len(names) != 3 || names[0] != "A" || names[2] != "S" {
		t.Errorf("expected sorted non-terminals [A B S], have %v", names)
	}
	mw := g.MultiWordTerminals()
	if len(mw) != 1 || mw[0] != "iron man" {
		t.Errorf("expected multi-word terminal 'iron man', have %v", mw)
	}
}
