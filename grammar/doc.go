/*
Package grammar implements context-free grammars for the chart parser.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals are
literal words; they are normalized to lower case. Grammars may contain
epsilon-productions.

Example:

    b := grammar.NewGrammarBuilder("G")
    b.LHS("S").N("NP").N("VP").End()      // S  ->  NP VP
    b.LHS("NP").T("iron man").End()       // NP ->  'iron man'
    b.LHS("VP").T("fights").N("O").End()  // VP ->  'fights' O
    b.LHS("O").T("thanos").End()          // O  ->  'thanos'
    b.LHS("O").Epsilon()                  // O  ->
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [NP VP]
   1: [NP] ::= [iron man]
   2: [VP] ::= [fights O]
   3: [O] ::= [thanos]
   4: [O] ::= []

The left hand side of the first rule is the start symbol, unless the client
calls SetStart.

Alternatively, grammars may be read from a textual rule notation
(see function Build):

    S   -> NP VP
    NP  -> 'iron man'
    VP  -> 'fights' O
    O   -> 'thanos' |

Static Grammar Analysis

After a grammar is complete, it is checked and analysed. Every non-terminal
used on a right hand side has to be defined by at least one rule, otherwise
building fails with an error wrapping ErrMalformedGrammar. Analysis determines
all nullable (epsilon-derivable) non-terminals and the minimal yield of every
non-terminal, i.e. the minimum number of input tokens it is able to derive.
Both are fixed-point computations, as nullability may be mutually recursive.

Grammars are immutable after construction and may be shared between
concurrently running parsers.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'herogram.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("herogram.grammar")
}
