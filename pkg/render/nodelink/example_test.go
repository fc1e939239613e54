package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/rendertree/pkg/render/nodelink"
	"github.com/matzehuels/rendertree/pkg/tree"
)

func ExampleToDOT() {
	fmt.Print(nodelink.ToDOT(tree.MustParse("(()())"), nodelink.Options{}))
	// Output:
	// digraph G {
	//   rankdir=TB;
	//   bgcolor="transparent";
	//   node [shape=box, style=filled, fillcolor="#000000", fontcolor=white, width=0.3, height=0.3, fixedsize=true, label=""];
	//   edge [arrowhead=none, penwidth=2];
	//   ranksep=0.5;
	//   nodesep=0.3;
	//
	//   n0;
	//   n1 [fillcolor="#800000"];
	//   n2 [fillcolor="#800000"];
	//
	//   n0 -> n1;
	//   n0 -> n2;
	// }
}
