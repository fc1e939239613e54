package layout

import "github.com/matzehuels/rendertree/pkg/scene"

// CenterOnCanvas translates id so that its bounding-box center lands on
// (width/2 - side/2, height/2 - side/2). Rectangles are anchored at their
// top-left corner, so subtracting half the side length centers the drawn
// squares rather than their anchors.
//
// Applying it twice with the same arguments moves nothing the second time,
// up to floating-point rounding.
func CenterOnCanvas(s *scene.Scene, id scene.NodeID, width, height, side float64) {
	if id == scene.None {
		return
	}
	c := Center(s, id)
	tx := width/2 - side/2
	ty := height/2 - side/2
	Translate(s, id, tx-c.X, ty-c.Y)
}
