package layout

import "github.com/matzehuels/rendertree/pkg/scene"

// Translate moves id and every descendant by (dx, dy) in place. All nodes
// shift by the same delta, so the subtree keeps its shape.
func Translate(s *scene.Scene, id scene.NodeID, dx, dy float64) {
	s.Walk(id, func(n scene.NodeID) bool {
		s.SetPosition(n, s.Position(n).Add(dx, dy))
		return true
	})
}
