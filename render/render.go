package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/npillmayer/herogram/tree"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Line is a line of a derivation listing: the label of a node, and the depth
// of the node within the tree. The root is at depth 0.
type Line struct {
	Depth int
	Text  string
}

// Lines flattens a tree in pre-order, one line per node. Internal nodes show
// their non-terminal, leaves show their lexeme.
func Lines(root *tree.Node) []Line {
	if root == nil {
		return nil
	}
	c := &collector{}
	tree.Walk(root, c)
	return c.lines
}

type collector struct {
	lines []Line
}

func (c *collector) Enter(n *tree.Node, level int) bool {
	c.lines = append(c.lines, Line{Depth: level, Text: n.Label})
	return true
}

func (c *collector) Exit(*tree.Node, int) {}

func (c *collector) Leaf(n *tree.Node, level int) {
	c.lines = append(c.lines, Line{Depth: level, Text: n.Token.Lexeme})
}

// Indented writes a tree as a derivation listing, indenting every line by two
// spaces per level.
func Indented(w io.Writer, root *tree.Node) error {
	for _, l := range Lines(root) {
		if _, err := io.WriteString(w, strings.Repeat("  ", l.Depth)+l.Text+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// IndentedString returns the derivation listing of a tree as a string.
func IndentedString(root *tree.Node) string {
	var b bytes.Buffer
	Indented(&b, root)
	return b.String()
}

// Brackets returns a tree in bracket notation, e.g.
//
//    [S [NP_SG [N iron man]] [V_SG [V_S defeats] [V_OPT [NP_SG [N thanos]]]] [S_PRIME]]
//
func Brackets(root *tree.Node) string {
	if root == nil {
		return ""
	}
	b := &bracketer{}
	tree.Walk(root, b)
	return b.String()
}

type bracketer struct {
	strings.Builder
}

func (b *bracketer) Enter(n *tree.Node, level int) bool {
	if level > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte('[')
	b.WriteString(n.Label)
	return true
}

func (b *bracketer) Exit(*tree.Node, int) {
	b.WriteByte(']')
}

func (b *bracketer) Leaf(n *tree.Node, level int) {
	if level > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(n.Token.Lexeme)
}

// PTermTree converts a tree to a pterm tree. The resulting tree node is an
// unlabeled container with the root of the parse tree as its single child.
func PTermTree(root *tree.Node) pterm.TreeNode {
	ll := pterm.LeveledList{}
	for _, l := range Lines(root) {
		ll = append(ll, pterm.LeveledListItem{Level: l.Depth, Text: l.Text})
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return putils.TreeFromLeveledList(ll)
}

// Pretty writes a tree with box-drawing characters, using the default pterm tree
// printer.
func Pretty(w io.Writer, root *tree.Node) error {
	s, err := pterm.DefaultTree.WithRoot(PTermTree(root)).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
