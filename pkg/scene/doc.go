// Package scene provides the geometry primitives the layout works on: an
// arena-backed scene graph of rectangles, lines and shapeless groups.
//
// # Arena
//
// A [Scene] owns every node; callers hold [NodeID] indexes. Each node has
// exactly one parent at a time, enforced by [Scene.Append]. Reparenting is
// [Scene.PopChild] followed by Append on the new owner, which relocates an
// index instead of copying a subtree.
//
// # Positions
//
// Positions are absolute canvas coordinates, never relative to the parent.
// Moving a subtree therefore means shifting every node in it by the same
// delta; the layout package's Translate does exactly that.
//
// # Empty Nodes
//
// [None] and shapeless groups are "empty". The layout combinators treat an
// empty operand as an identity element and return the other operand
// untouched, which is how a row of siblings is folded from nothing.
package scene
