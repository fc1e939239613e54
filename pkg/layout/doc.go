// Package layout positions the nodes of a tree on a 2-D canvas.
//
// # Overview
//
// A [tree.Node] is turned into a [scene.Scene] of square rectangles, one per
// tree node, plus a group of connector lines, one per parent-child edge. The
// algorithm is compositional: a subtree is laid out once, as a rigid unit,
// and only translated afterwards. Siblings never overlap because each sibling
// subtree is placed strictly to the right of the union of those before it.
//
// # Building Blocks
//
//   - [BoundsOf]: bounding box of a node and its descendants, nodes as points
//   - [Translate]: rigid move of a subtree
//   - [Center]: center of a subtree's bounding box
//   - [Beside]: place one subtree to the right of another (row)
//   - [Above]: place one subtree centered above another (stack)
//   - [CenterOnCanvas]: move the finished layout to the canvas center
//   - [Connectors]: generate parent-child lines from final positions
//
// [Beside] and [Above] treat [scene.None] and shapeless nodes as an identity
// element, which is what lets [Build] fold a child row starting from None.
//
// # Building a Layout
//
// [Compose] runs the whole pipeline for a tree in a fresh scene:
//
//	l := layout.Compose(tree.Example(), 512, 512)
//	fmt.Println(l.NodeCount(), l.LineCount()) // 30 29
//
// [Build] only lays out the rectangles, which is useful when the caller owns
// the scene:
//
//	s := scene.New()
//	root := layout.Build(s, t, layout.WithSideLen(10), layout.WithOffsets(15, 30))
//
// # Options
//
//   - [WithSideLen]: side of each square (default 20)
//   - [WithOffsets]: sibling gap and level gap (default 25, 50)
//   - [WithNodeStyle]: fill for internal nodes (default black)
//   - [WithLeafStyle]: fill for leaves (default RGB 128,0,0)
//   - [WithLineStyle]: connector stroke (default black, width 5)
//
// # Coordinates
//
// Y grows downwards. Rectangles are anchored at their top-left corner and
// [Bounds] only covers anchors, so the drawn extent of a layout is its bounds
// plus one side length to the right and bottom; see [Layout.Extent].
//
// Sinks in [render/sink] consume the [Layout] to produce SVG, PNG, PDF and
// JSON.
//
// [render/sink]: github.com/matzehuels/rendertree/pkg/render/sink
package layout
