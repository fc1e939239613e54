package tree

// exampleNotation is the demonstration tree: three subtrees under the root,
// 30 nodes over eight levels, with fan-out between one and four.
const exampleNotation = `(
	()
	(() (()()()) ())
	(
		((()()(((()()()()))()()())))
		()
		(()()()())
	)
)`

// Example returns the demonstration tree rendered by "rendertree example"
// and used when the CLI is run with --example. Each call returns a fresh copy.
func Example() *Node {
	return MustParse(exampleNotation)
}
