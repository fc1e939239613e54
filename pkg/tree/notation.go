package tree

import (
	"strings"
	"unicode"

	"github.com/matzehuels/rendertree/pkg/errors"
)

// Parse reads a tree in compact parenthesised notation. Each node is written
// as "(" followed by its children and ")"; whitespace between tokens is
// ignored. "()" is a single leaf and "(()())" a root with two leaves.
//
// Errors have code [errors.ErrCodeInvalidTree] and report the byte offset
// of the offending character.
func Parse(s string) (*Node, error) {
	p := parser{src: s}
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, errors.New(errors.ErrCodeInvalidTree, "empty tree notation")
	}

	n, err := p.node(0)
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, errors.New(errors.ErrCodeInvalidTree, "unexpected %q at offset %d after root", p.src[p.pos], p.pos)
	}
	if err := validate(n); err != nil {
		return nil, err
	}
	return n, nil
}

// MustParse is like [Parse] but panics on malformed input. It is intended for
// literals in tests and examples.
func MustParse(s string) *Node {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns n in the compact notation accepted by [Parse].
func (n *Node) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node) format(b *strings.Builder) {
	b.WriteByte('(')
	for _, c := range n.Children {
		c.format(b)
	}
	b.WriteByte(')')
}

type parser struct {
	src string
	pos int
}

func (p *parser) node(depth int) (*Node, error) {
	if depth >= errors.MaxTreeDepth {
		return nil, errors.New(errors.ErrCodeInvalidTree, "tree too deep at offset %d (max %d levels)", p.pos, errors.MaxTreeDepth)
	}
	if p.pos >= len(p.src) || p.src[p.pos] != '(' {
		return nil, p.unexpected("'('")
	}
	p.pos++

	n := &Node{}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, errors.New(errors.ErrCodeInvalidTree, "unterminated node: missing ')' at end of input")
		}
		switch p.src[p.pos] {
		case ')':
			p.pos++
			return n, nil
		case '(':
			c, err := p.node(depth + 1)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, c)
		default:
			return nil, p.unexpected("'(' or ')'")
		}
	}
}

func (p *parser) unexpected(want string) error {
	if p.pos >= len(p.src) {
		return errors.New(errors.ErrCodeInvalidTree, "expected %s at end of input", want)
	}
	return errors.New(errors.ErrCodeInvalidTree, "expected %s, got %q at offset %d", want, p.src[p.pos], p.pos)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}
