package layout

import (
	"github.com/matzehuels/rendertree/pkg/scene"
	"github.com/matzehuels/rendertree/pkg/tree"
)

const (
	// DefaultSideLen is the side of every node square.
	DefaultSideLen = 20.0
	// DefaultXOffset is the horizontal gap between sibling subtrees.
	DefaultXOffset = 25.0
	// DefaultYOffset is the vertical gap between a parent and its children.
	DefaultYOffset = 50.0
	// DefaultLineWidth is the stroke width of connector lines.
	DefaultLineWidth = 5.0
)

// Options holds the geometry and styling used by [Build] and [Compose].
type Options struct {
	SideLen   float64
	XOffset   float64
	YOffset   float64
	NodeStyle scene.Style
	LeafStyle scene.Style
	LineStyle scene.Style
}

// DefaultOptions returns the options used when no [Option] is given.
func DefaultOptions() Options {
	return Options{
		SideLen:   DefaultSideLen,
		XOffset:   DefaultXOffset,
		YOffset:   DefaultYOffset,
		NodeStyle: scene.Filled(scene.Black),
		LeafStyle: scene.Filled(scene.LeafRed),
		LineStyle: scene.Stroked(DefaultLineWidth, scene.Black),
	}
}

// Option configures [Build] and [Compose].
type Option func(*Options)

// WithSideLen sets the side of each node square.
func WithSideLen(side float64) Option {
	return func(o *Options) { o.SideLen = side }
}

// WithOffsets sets the horizontal sibling gap and the vertical level gap.
func WithOffsets(x, y float64) Option {
	return func(o *Options) {
		o.XOffset = x
		o.YOffset = y
	}
}

// WithNodeStyle sets the style of nodes that have children.
func WithNodeStyle(st scene.Style) Option {
	return func(o *Options) { o.NodeStyle = st }
}

// WithLeafStyle sets the style of childless nodes.
func WithLeafStyle(st scene.Style) Option {
	return func(o *Options) { o.LeafStyle = st }
}

// WithLineStyle sets the connector style used by [Compose].
func WithLineStyle(st scene.Style) Option {
	return func(o *Options) { o.LineStyle = st }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Build lays out t inside s and returns the root of the resulting subtree.
//
// The tree is converted bottom-up. Each node becomes a square rectangle; its
// children's subtrees are folded left to right into a row with [Beside]
// (top-aligned, starting from [scene.None]), and the node's square is then
// placed centered above the row with [Above]. The reparenting depth passed to
// Above is max(0, len(children)-1), which restores the real parent-child
// structure after the row fold.
//
// After Build, every scene node under the returned root corresponds to exactly
// one tree node, and the scene children of a parent are its tree children in
// the order last, ..., second, first. Build reads t and never modifies it.
func Build(s *scene.Scene, t *tree.Node, opts ...Option) scene.NodeID {
	if t == nil {
		return scene.None
	}
	o := resolve(opts)
	return o.build(s, t)
}

func (o Options) build(s *scene.Scene, n *tree.Node) scene.NodeID {
	style := o.NodeStyle
	if n.IsLeaf() {
		style = o.LeafStyle
	}
	rect := s.Rect(o.SideLen, o.SideLen, style)

	row := scene.None
	for _, c := range n.Children {
		row = Beside(s, row, o.build(s, c), o.XOffset, AlignTop)
	}
	return Above(s, row, rect, o.YOffset, max(0, len(n.Children)-1))
}
