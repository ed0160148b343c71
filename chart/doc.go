/*
Package chart implements a bottom-up chart parser for arbitrary context-free grammars.

The parser works on spans of input tokens. Spans are processed by increasing
length, starting with empty spans. For every span and every rule A ➞ X1 … Xk the
parser tries all ways to split the span into k contiguous (possibly empty)
sub-spans, such that sub-span i is derivable by Xi. Every successful split is
recorded as an alternative for A over the span. Spans are re-visited until no
more alternatives show up, which covers chains of unit-rules as well as rules
padded with nullable non-terminals.

Recording every alternative results in a shared packed parse forest: nodes for
a non-terminal over a span are unique, and ambiguous nodes carry more than one
alternative. Parse trees are enumerated from the forest on request.

    p := chart.NewParser(g)
    trees := p.Parse(tokens)    // empty if tokens are not a sentence of g

The chart is private to a single call of Parse, and grammars are read-only.
Therefore a Parser may be used by concurrent goroutines.

Complexity

The chart holds at most O(N² · |G|) nodes. Derivations which run in a cycle, i.e.
A ⇒+ A over the same span, are kept in the forest, but trees are enumerated
without repeating a node on a path from the root. The number of trees of an
ambiguous sentence may grow exponentially with the length of the input; clients
may limit it with option MaxTrees.

Configuration

The default tree limit is read from global configuration key "herogram.maxtrees"
(see package schuko/gconf). A value of 0 means no limit.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'herogram.chart'.
func tracer() tracing.Trace {
	return tracing.Select("herogram.chart")
}
