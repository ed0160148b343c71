package grammar

import (
	"fmt"
	"strings"
)

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Symbols are unique within a grammar, thus they may be compared by identity.
type Symbol struct {
	Name     string // name of a non-terminal or normalized literal of a terminal
	Value    int    // serial number, unique within a grammar
	terminal bool
}

// IsTerminal returns true if this symbol represents a terminal.
func (sym *Symbol) IsTerminal() bool {
	return sym.terminal
}

// IsMultiWord is true for terminals spanning more than one word, e.g. "iron man".
func (sym *Symbol) IsMultiWord() bool {
	return sym.terminal && strings.Contains(sym.Name, " ")
}

func (sym *Symbol) String() string {
	if sym == nil {
		return "<nil>"
	}
	if sym.terminal {
		return fmt.Sprintf("'%s'", sym.Name)
	}
	return sym.Name
}

// NormalizeTerminal normalizes a terminal literal: it is converted to lower
// case and runs of white space are replaced by a single blank.
func NormalizeTerminal(literal string) string {
	return strings.Join(strings.Fields(strings.ToLower(literal)), " ")
}
