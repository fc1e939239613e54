package tree

// Node is a node in an arbitrary-arity tree. It carries no payload: the only
// information is the ordered list of children. A node with no children is a
// leaf.
type Node struct {
	Children []*Node `json:"children,omitempty"`
}

// New returns a node with the given children in order.
func New(children ...*Node) *Node {
	return &Node{Children: children}
}

// Leaf returns a node with no children.
func Leaf() *Node {
	return &Node{}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Clone returns a deep copy of n. The copy shares no nodes with n, so either
// tree may be modified without affecting the other.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Walk visits n and its descendants in pre-order, passing each node and its
// depth (the root is at depth 0). Returning false from fn skips the node's
// subtree.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns the total number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Edges returns the number of parent-child edges in the tree, which is
// always Count()-1 for a non-empty tree.
func (n *Node) Edges() int {
	if n == nil {
		return 0
	}
	return n.Count() - 1
}

// Depth returns the number of levels in the tree. A single leaf has depth 1.
func (n *Node) Depth() int {
	depth := 0
	n.Walk(func(_ *Node, d int) bool {
		depth = max(depth, d+1)
		return true
	})
	return depth
}

// Leaves returns the number of childless nodes in the tree.
func (n *Node) Leaves() int {
	leaves := 0
	n.Walk(func(c *Node, _ int) bool {
		if c.IsLeaf() {
			leaves++
		}
		return true
	})
	return leaves
}

// MaxFanout returns the largest number of children any node in the tree has.
func (n *Node) MaxFanout() int {
	fanout := 0
	n.Walk(func(c *Node, _ int) bool {
		fanout = max(fanout, len(c.Children))
		return true
	})
	return fanout
}
