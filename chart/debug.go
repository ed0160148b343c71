package chart

import (
	"bytes"

	"github.com/npillmayer/herogram"
)

// dumpChart writes every item of a chart to the trace, ordered by span.
func dumpChart(c *chart) {
	n := len(c.tokens)
	tracer().Debugf("--- Chart for %v ------------------------------------", herogram.Lexemes(c.tokens))
	for from := 0; from <= n; from++ {
		for to := from; to <= n; to++ {
			dumpSpan(c, from, to)
		}
	}
}

func dumpSpan(c *chart, from, to int) {
	for _, A := range c.g.NonTerminals() {
		it := c.lookup(c.g.NonTerminal(A), from, to)
		if it == nil {
			continue
		}
		tracer().Debugf("%s %s", it.span(), altsString(it))
	}
}

func altsString(it *item) string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, alt := range it.alts {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(" | ")
		}
		b.WriteString(alt.String())
	}
	b.WriteString(" }")
	return b.String()
}
