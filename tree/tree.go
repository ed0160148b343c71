/*
Package tree implements parse trees, as produced by the chart parser.

A parse tree is an ordered tree. Internal nodes carry the name of a non-terminal
and an ordered list of children, leaves carry exactly one input token. Nodes
do not link back to their parents. Concatenating the leaves of a tree from left
to right reproduces the input token sequence the tree has been derived from.

Trees produced for ambiguous sentences may share sub-trees. Trees are
immutable after creation, therefore sharing is not visible to clients.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/herogram"
)

// Kind tags a node as internal node or leaf.
type Kind uint8

// Nodes are either internal nodes or leaves.
const (
	Internal Kind = iota
	Leaf
)

func (k Kind) String() string {
	if k == Leaf {
		return "leaf"
	}
	return "internal"
}

// Node is a node of a parse tree.
type Node struct {
	Kind     Kind
	Label    string         // non-terminal name, or token lexeme for leaves
	Rule     int            // serial number of the grammar rule applied, -1 for leaves
	Token    herogram.Token // input token of a leaf
	Children []*Node        // ordered children of internal nodes
	span     herogram.Span
}

// NewInternal creates an internal node for a non-terminal, covering span.
// An internal node without children represents an epsilon-derivation; its span
// is empty.
func NewInternal(label string, rule int, span herogram.Span, children ...*Node) *Node {
	return &Node{
		Kind:     Internal,
		Label:    label,
		Rule:     rule,
		Children: children,
		span:     span,
	}
}

// NewLeaf creates a leaf for an input token.
func NewLeaf(tok herogram.Token) *Node {
	return &Node{
		Kind:  Leaf,
		Label: tok.Lexeme,
		Rule:  -1,
		Token: tok,
		span:  herogram.MakeSpan(tok.Pos, tok.Pos+1),
	}
}

// IsLeaf is a predicate: is n a leaf?
func (n *Node) IsLeaf() bool {
	return n.Kind == Leaf
}

// Span returns the span of input tokens a node covers.
func (n *Node) Span() herogram.Span {
	return n.span
}

// Leaves returns all leaves of a (sub-)tree, from left to right.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	var collect func(*Node)
	collect = func(n *Node) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
			return
		}
		for _, ch := range n.Children {
			collect(ch)
		}
	}
	collect(n)
	return leaves
}

// Yield returns the lexemes of all leaves of a (sub-)tree, from left to right.
func (n *Node) Yield() []string {
	leaves := n.Leaves()
	y := make([]string, len(leaves))
	for i, l := range leaves {
		y[i] = l.Token.Lexeme
	}
	return y
}

// Height returns the number of edges on the longest path from n to a leaf.
func (n *Node) Height() int {
	h := 0
	for _, ch := range n.Children {
		if hh := ch.Height() + 1; hh > h {
			h = hh
		}
	}
	return h
}

// Find returns all nodes of a (sub-)tree with a given label, in pre-order.
func (n *Node) Find(label string) []*Node {
	var found []*Node
	Walk(n, finder{label: label, found: &found})
	return found
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("%q%s", n.Label, n.span)
	}
	return fmt.Sprintf("%s%s", n.Label, n.span)
}

// --- Equality --------------------------------------------------------------

// Equal compares two trees structurally: internal nodes are equal if they carry
// the same label and their children are pairwise equal. Leaves are equal if their
// tokens are equal.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}
	if a.IsLeaf() {
		return a.Token.Lexeme == b.Token.Lexeme && a.Token.Pos == b.Token.Pos
	}
	if a.Label != b.Label || len(a.Children) != len(b.Children) {
		return false
	}
	for i, ch := range a.Children {
		if !Equal(ch, b.Children[i]) {
			return false
		}
	}
	return true
}

// Distinct removes structural duplicates from a list of trees. The order of
// the remaining trees is preserved.
func Distinct(trees []*Node) []*Node {
	var d []*Node
	for _, t := range trees {
		dup := false
		for _, other := range d {
			if Equal(t, other) {
				dup = true
				break
			}
		}
		if !dup {
			d = append(d, t)
		}
	}
	return d
}
