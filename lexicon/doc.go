/*
Package lexicon splits raw sentences into tokens for the chart parser.

Input text is normalized to lower case and split into words at white space.
Consecutive words which together spell a registered multi-word term, e.g.
"iron man", are merged into a single token. If more than one term matches at a
position, the longest one wins. Words are never merged otherwise, and unknown
words are passed through unchanged: rejecting them is up to the parser.

    toks := lexicon.Tokenize("Iron Man defeats Thanos", g)
    // => "iron man", "defeats", "thanos"

Word splitting uses a lexmachine DFA.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexicon

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'herogram.lexicon'.
func tracer() tracing.Trace {
	return tracing.Select("herogram.lexicon")
}
