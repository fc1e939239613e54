package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/rendertree/pkg/layout"
	"github.com/matzehuels/rendertree/pkg/render/sink"
	"github.com/matzehuels/rendertree/pkg/tree"
)

func ExampleRenderSVG() {
	l := layout.Compose(tree.MustParse("(()())"), 200, 200)
	svg := string(sink.RenderSVG(l, sink.WithClass(true)))

	fmt.Println("leaves:", strings.Count(svg, `class="leaf"`))
	fmt.Println("edges:", strings.Count(svg, `class="edge"`))
	// Output:
	// leaves: 2
	// edges: 2
}

func ExampleParseJSON() {
	l := layout.Compose(tree.Example(), 512, 512)
	data, _ := sink.RenderJSON(l)

	restored, err := sink.ParseJSON(data)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(restored.NodeCount(), restored.LineCount())
	// Output: 30 29
}
