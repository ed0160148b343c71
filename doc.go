/*
Package herogram validates sentences against a small context-free grammar and
exposes every derivation tree of a valid sentence.

It is built around a general chart parser. Grammars may contain epsilon-productions,
unit productions and ambiguities; all of them are handled by the parser, and ambiguous
sentences result in more than one parse tree. Package structure is as follows:

■ grammar: Package grammar implements the grammar model, a builder, a reader for
a textual rule notation and the superhero grammar used by the command line tool.

■ lexicon: Package lexicon splits raw text into tokens, keeping multi-word terminals
like "iron man" together.

■ chart: Package chart implements a bottom-up span-based chart parser.

■ tree: Package tree contains the parse tree model.

■ render: Package render formats parse trees for display.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package herogram
