package layout

import "github.com/matzehuels/rendertree/pkg/scene"

// Align selects how [Beside] lines the right operand up vertically.
type Align int

const (
	// AlignCenter gives both bounding boxes the same vertical center.
	AlignCenter Align = iota
	// AlignTop gives both bounding boxes the same top.
	AlignTop
)

// String returns "center" or "top".
func (a Align) String() string {
	if a == AlignTop {
		return "top"
	}
	return "center"
}

// Beside places right to the right of left and makes it left's last child.
//
// right is translated rigidly so that its left bound sits offset units past
// left's right bound, with the vertical position chosen by align. The result
// is left, whose identity is preserved.
//
// If either operand is empty (see [scene.Scene.IsEmpty]) the other operand
// is returned unchanged: nothing moves and nothing is reparented.
func Beside(s *scene.Scene, left, right scene.NodeID, offset float64, align Align) scene.NodeID {
	if s.IsEmpty(right) {
		return left
	}
	if s.IsEmpty(left) {
		return right
	}

	lb, rb := BoundsOf(s, left), BoundsOf(s, right)

	dx := lb.Right - rb.Left + offset
	var dy float64
	switch align {
	case AlignTop:
		dy = lb.Top - rb.Top
	default:
		dy = lb.CenterY() - rb.CenterY()
	}

	Translate(s, right, dx, dy)
	s.Append(left, right)
	return left
}

// Above places top above base and returns top as the root of the combined
// subtree.
//
// top is translated rigidly so its horizontal center matches base's and its
// bottom bound sits offset units above base's top bound. Then up to depth
// children are popped from the end of base's child list and appended to top
// in the order they were removed, and finally base itself becomes top's last
// child.
//
// The reparenting undoes the nesting introduced by folding a row with
// [Beside]: folding n siblings leaves siblings 2..n as the trailing children
// of sibling 1. Passing depth = n-1 moves them back up so that every scene
// edge below top corresponds to a real parent-child edge. Callers that change
// how rows are folded must change depth accordingly.
//
// Empty operands short-circuit exactly as in [Beside]. A negative depth is
// treated as zero.
func Above(s *scene.Scene, base, top scene.NodeID, offset float64, depth int) scene.NodeID {
	if s.IsEmpty(top) {
		return base
	}
	if s.IsEmpty(base) {
		return top
	}

	bb, tb := BoundsOf(s, base), BoundsOf(s, top)

	dx := bb.CenterX() - tb.CenterX()
	dy := bb.Top - offset - tb.Bottom
	Translate(s, top, dx, dy)

	for range max(depth, 0) {
		child, ok := s.PopChild(base)
		if !ok {
			break
		}
		s.Append(top, child)
	}
	s.Append(top, base)
	return top
}
