package layout_test

import (
	"fmt"

	"github.com/matzehuels/rendertree/pkg/layout"
	"github.com/matzehuels/rendertree/pkg/scene"
	"github.com/matzehuels/rendertree/pkg/tree"
)

func ExampleCompose() {
	l := layout.Compose(tree.Example(), 512, 512)

	fmt.Println("Rectangles:", l.NodeCount())
	fmt.Println("Lines:", l.LineCount())
	fmt.Println("Center:", layout.Center(l.Scene, l.Nodes))
	// Output:
	// Rectangles: 30
	// Lines: 29
	// Center: {246 246}
}

func ExampleBuild() {
	s := scene.New()
	root := layout.Build(s, tree.MustParse("(()())"))

	fmt.Println("Root:", s.Position(root))
	for _, c := range s.Children(root) {
		fmt.Println("Child:", s.Position(c))
	}
	// Output:
	// Root: {12.5 -50}
	// Child: {25 0}
	// Child: {0 0}
}

func ExampleBeside() {
	s := scene.New()
	left := s.Rect(20, 20, scene.Filled(scene.Black))
	right := s.Rect(20, 20, scene.Filled(scene.Black))

	row := layout.Beside(s, left, right, 25, layout.AlignTop)

	fmt.Println(row == left, s.Position(right))
	fmt.Println(layout.BoundsOf(s, row).Width())
	// Output:
	// true {25 0}
	// 25
}

func ExampleAbove() {
	s := scene.New()
	base := s.Rect(20, 20, scene.Filled(scene.LeafRed))
	top := s.Rect(20, 20, scene.Filled(scene.Black))

	root := layout.Above(s, base, top, 50, 0)

	fmt.Println(root == top, s.Position(top))
	fmt.Println(s.Children(top)[0] == base)
	// Output:
	// true {0 -50}
	// true
}
