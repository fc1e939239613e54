// Package tree defines the abstract input of the layout: an ordered,
// arbitrary-arity tree whose nodes carry no payload.
//
// # Building Trees
//
// Trees are built directly with [New] and [Leaf]:
//
//	t := tree.New(
//	    tree.Leaf(),
//	    tree.New(tree.Leaf(), tree.Leaf()),
//	)
//
// or parsed from the compact parenthesised notation, where every node is a
// pair of parentheses enclosing its children:
//
//	t, err := tree.Parse("(()(()()))")
//
// # Serialization
//
// The JSON form nests "children" arrays; a leaf is an empty object:
//
//	{"children": [{}, {"children": [{}, {}]}]}
//
// [ReadJSON] and [ReadFile] decode it, [WriteJSON] and [WriteFile] encode it.
// Decoding validates the size limits from
// [github.com/matzehuels/rendertree/pkg/errors.ValidateTreeLimits].
//
// # Ownership
//
// The layout driver only reads a tree, so the same tree may be laid out any
// number of times. [Node.Clone] produces a fully independent copy for callers
// that want to edit one version while keeping another.
package tree
