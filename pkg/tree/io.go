package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/rendertree/pkg/errors"
)

// ReadJSON decodes a JSON tree from r.
//
// The input must be a JSON object whose optional "children" array holds more
// node objects:
//
//	{"children": [{}, {"children": [{}]}]}
//
// ReadJSON returns an error with code [errors.ErrCodeInvalidTree] if the JSON
// is malformed or exceeds the size limits. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var n Node
	if err := dec.Decode(&n); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTree, err, "decode tree")
	}
	if err := validate(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// Unmarshal decodes a JSON tree from data. See [ReadJSON].
func Unmarshal(data []byte) (*Node, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ReadFile reads a JSON tree from the file at path.
func ReadFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes n as indented JSON and writes it to w.
// The output can be re-read with [ReadJSON].
func WriteJSON(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal returns the compact JSON encoding of n. Equal trees always produce
// identical bytes, which makes the output usable as a cache key input.
func Marshal(n *Node) ([]byte, error) {
	return json.Marshal(n)
}

// WriteFile writes n as JSON to the file at path.
func WriteFile(n *Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, n)
}

func validate(n *Node) error {
	var nilChild bool
	n.Walk(func(c *Node, _ int) bool {
		for _, cc := range c.Children {
			if cc == nil {
				nilChild = true
			}
		}
		return !nilChild
	})
	if nilChild {
		return errors.New(errors.ErrCodeInvalidTree, "tree contains a null child")
	}
	return errors.ValidateTreeLimits(n.Count(), n.Depth())
}
