// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tei

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

var (
	errUnclosed = errors.New("unclosed element")
	errEmpty    = errors.New("no elements")
)

// node is one element in a parsed XML document. Names and attributes
// are matched on their local part so the TEI namespace prefix never
// needs spelling out.
type node struct {
	name     string
	attrs    map[string]string
	text     string // character data directly inside this element
	children []*node
}

// parse builds a node tree from an XML document string.
func parse(doc string) (*node, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))

	root := &node{name: ""}
	stack := []*node{root}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: t.Name.Local}
			for _, a := range t.Attr {
				if n.attrs == nil {
					n.attrs = make(map[string]string, len(t.Attr))
				}
				n.attrs[a.Name.Local] = a.Value
			}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, n)
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			top := stack[len(stack)-1]
			top.text += string(t)
		}
	}

	if len(stack) != 1 {
		return nil, errUnclosed
	}
	if len(root.children) == 0 {
		return nil, errEmpty
	}
	return root, nil
}

// attr returns the named attribute value, or "".
func (n *node) attr(name string) string {
	return n.attrs[name]
}

// directText returns the element's own character data, trimmed.
func (n *node) directText() string {
	return strings.TrimSpace(n.text)
}

// allText concatenates the element's text and that of every
// descendant, in document order, and trims the result.
func (n *node) allText() string {
	var b strings.Builder
	n.collectText(&b)
	return strings.TrimSpace(b.String())
}

func (n *node) collectText(b *strings.Builder) {
	b.WriteString(n.text)
	for _, c := range n.children {
		c.collectText(b)
	}
}

// child returns the first direct child with the given local name.
func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// childrenNamed returns all direct children with the given local name.
func (n *node) childrenNamed(name string) []*node {
	var out []*node
	for _, c := range n.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// descendants returns every descendant element with the given local
// name, in document order. The receiver itself is not included.
func (n *node) descendants(name string) []*node {
	var out []*node
	for _, c := range n.children {
		if c.name == name {
			out = append(out, c)
		}
		out = append(out, c.descendants(name)...)
	}
	return out
}

// firstDescendant returns the first descendant with the given local
// name, or nil.
func (n *node) firstDescendant(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
		if d := c.firstDescendant(name); d != nil {
			return d
		}
	}
	return nil
}
