/*
Package render displays parse trees for humans.

Trees are rendered as an indented derivation listing, in bracket notation, or
as a box-drawing tree for terminals, using package pterm. All renderings visit
children left to right, and leaves show the lexeme of their token.

    Indented(os.Stdout, root)

prints

    S
      NP_SG
        N
          iron man
      …

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'herogram.render'.
func tracer() tracing.Trace {
	return tracing.Select("herogram.render")
}
