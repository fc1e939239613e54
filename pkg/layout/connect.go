package layout

import "github.com/matzehuels/rendertree/pkg/scene"

// Connectors creates one line per (node, immediate child) pair reachable from
// root and returns a new shapeless group holding them. It reads positions
// only; nothing under root moves.
//
// Each line runs from (parent.X+offset, parent.Y+2*offset) to
// (child.X+offset, child.Y). With offset equal to half the rectangle side,
// that is from the bottom-center of the parent square to the top-center of
// the child square. Lines are emitted in pre-order, children in insertion
// order.
func Connectors(s *scene.Scene, root scene.NodeID, offset float64, style scene.Style) scene.NodeID {
	group := s.Group()
	s.Walk(root, func(id scene.NodeID) bool {
		p := s.Position(id)
		start := scene.Point{X: p.X + offset, Y: p.Y + 2*offset}
		for _, child := range s.Children(id) {
			c := s.Position(child)
			end := scene.Point{X: c.X + offset, Y: c.Y}
			s.Append(group, s.Line(start, end, style))
		}
		return true
	})
	return group
}

// CountEdges returns the number of (node, immediate child) pairs under root,
// which is the number of lines [Connectors] would create.
func CountEdges(s *scene.Scene, root scene.NodeID) int {
	if root == scene.None {
		return 0
	}
	return s.Count(root) - 1
}
