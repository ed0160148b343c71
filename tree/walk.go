package tree

// Listener is a type for walking a parse tree.
//
// Enter is called for every internal node before its children are visited,
// and returns false if the children should be skipped. Exit is called for every
// internal node after its children have been visited. Leaf is called for leaves.
// level is the depth of the node, with the root at level 0.
type Listener interface {
	Enter(n *Node, level int) bool
	Exit(n *Node, level int)
	Leaf(n *Node, level int)
}

// Walk traverses a tree top-down and left to right, calling the listener's methods
// for every node.
func Walk(n *Node, listener Listener) {
	walk(n, listener, 0)
}

func walk(n *Node, listener Listener, level int) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		listener.Leaf(n, level)
		return
	}
	if listener.Enter(n, level) {
		for _, ch := range n.Children {
			walk(ch, listener, level+1)
		}
	}
	listener.Exit(n, level)
}

type finder struct {
	label string
	found *[]*Node
}

func (f finder) Enter(n *Node, level int) bool {
	if n.Label == f.label {
		*f.found = append(*f.found, n)
	}
	return true
}

func (f finder) Exit(*Node, int) {}

func (f finder) Leaf(n *Node, level int) {
	if n.Label == f.label {
		*f.found = append(*f.found, n)
	}
}
