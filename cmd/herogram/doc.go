/*
Command herogram checks English sentences about superheroes against a
context-free grammar and displays their parse trees.

Usage:

    herogram                       interactive menu
    herogram demo                  check predefined valid and invalid sentences
    herogram check <sentence…>     check a single sentence, exit status 1 if rejected

Flags:

    -t, --trace <level>   trace level [Debug|Info|Error]
    -a, --all             print all parse trees of ambiguous sentences
        --max-trees <n>   maximum number of parse trees per sentence (0 = unlimited)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'herogram.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("herogram.cmd")
}
