package scene

import "fmt"

// NodeID addresses a node inside a [Scene]. IDs are dense indexes assigned
// in creation order and stay valid for the lifetime of the scene.
type NodeID int

// None is the absent node. It is the identity element for the layout
// combinators and the parent of every root.
const None NodeID = -1

// Point is a position in canvas units. Y grows downwards.
type Point struct {
	X, Y float64
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

type node struct {
	shape    Shape
	pos      Point
	style    Style
	parent   NodeID
	children []NodeID
}

// Scene is an arena of drawable nodes. Each node has an optional shape, an
// absolute position, a style and an ordered list of children; insertion order
// is both z-order and traversal order.
//
// Every node has at most one parent. Moving a node between parents is an
// index relocation, so subtrees are never copied or shared.
//
// A Scene is not safe for concurrent mutation.
type Scene struct {
	nodes []node
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Len returns the number of nodes ever created in the scene, attached or not.
func (s *Scene) Len() int { return len(s.nodes) }

func (s *Scene) add(n node) NodeID {
	n.parent = None
	s.nodes = append(s.nodes, n)
	return NodeID(len(s.nodes) - 1)
}

// Group creates a node without a shape at the origin. Groups hold children
// for structure only and count as empty for the layout combinators.
func (s *Scene) Group() NodeID {
	return s.add(node{})
}

// Rect creates a width×height rectangle anchored at the origin.
func (s *Scene) Rect(width, height float64, style Style) NodeID {
	return s.add(node{shape: Rect{Width: width, Height: height}, style: style})
}

// Line creates a line segment from start to end. The node's position is
// start.
func (s *Scene) Line(start, end Point, style Style) NodeID {
	return s.add(node{shape: Line{DX: end.X - start.X, DY: end.Y - start.Y}, pos: start, style: style})
}

// Endpoints returns the absolute start and end of a line node. It reports
// false if the node is not a line.
func (s *Scene) Endpoints(id NodeID) (start, end Point, ok bool) {
	n := s.get(id)
	l, ok := n.shape.(Line)
	if !ok {
		return Point{}, Point{}, false
	}
	return n.pos, n.pos.Add(l.DX, l.DY), true
}

func (s *Scene) get(id NodeID) *node {
	if id < 0 || int(id) >= len(s.nodes) {
		panic(fmt.Sprintf("scene: node %d out of range [0,%d)", id, len(s.nodes)))
	}
	return &s.nodes[id]
}

// Shape returns the node's shape, or nil for groups.
func (s *Scene) Shape(id NodeID) Shape { return s.get(id).shape }

// HasShape reports whether the node carries a shape.
func (s *Scene) HasShape(id NodeID) bool { return s.get(id).shape != nil }

// IsEmpty reports whether id is [None] or a node without a shape. Empty
// operands are the identity for the layout combinators.
func (s *Scene) IsEmpty(id NodeID) bool {
	return id == None || !s.HasShape(id)
}

// Position returns the node's absolute position.
func (s *Scene) Position(id NodeID) Point { return s.get(id).pos }

// SetPosition moves a single node without touching its descendants.
func (s *Scene) SetPosition(id NodeID, p Point) { s.get(id).pos = p }

// Style returns the node's style.
func (s *Scene) Style(id NodeID) Style { return s.get(id).style }

// SetStyle replaces the node's style.
func (s *Scene) SetStyle(id NodeID, st Style) { s.get(id).style = st }

// Parent returns the node's parent, or [None] for a root.
func (s *Scene) Parent(id NodeID) NodeID { return s.get(id).parent }

// Children returns a copy of the node's child list in insertion order.
func (s *Scene) Children(id NodeID) []NodeID {
	return append([]NodeID(nil), s.get(id).children...)
}

// ChildCount returns the number of direct children.
func (s *Scene) ChildCount(id NodeID) int { return len(s.get(id).children) }

// Append attaches child as the last child of parent.
//
// Append panics if child already has a parent or if parent lies inside
// child's subtree; both would break the single-owner tree shape.
func (s *Scene) Append(parent, child NodeID) {
	p, c := s.get(parent), s.get(child)
	if c.parent != None {
		panic(fmt.Sprintf("scene: node %d already owned by %d", child, c.parent))
	}
	for a := parent; a != None; a = s.nodes[a].parent {
		if a == child {
			panic(fmt.Sprintf("scene: appending %d to %d would create a cycle", child, parent))
		}
	}
	c.parent = parent
	p.children = append(p.children, child)
}

// PopChild detaches and returns the last child of parent. It reports false
// if parent has no children.
func (s *Scene) PopChild(parent NodeID) (NodeID, bool) {
	p := s.get(parent)
	if len(p.children) == 0 {
		return None, false
	}
	last := p.children[len(p.children)-1]
	p.children = p.children[:len(p.children)-1]
	s.nodes[last].parent = None
	return last, true
}

// Walk visits root and its descendants in pre-order. Returning false from fn
// skips the node's subtree. Walking [None] visits nothing.
func (s *Scene) Walk(root NodeID, fn func(id NodeID) bool) {
	if root == None {
		return
	}
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(id) {
			continue
		}
		children := s.get(id).children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// Count returns the number of nodes in the subtree rooted at root.
func (s *Scene) Count(root NodeID) int {
	n := 0
	s.Walk(root, func(NodeID) bool {
		n++
		return true
	})
	return n
}
