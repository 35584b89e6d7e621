// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dom implements typed traversal utilities over parsed HTML node
// trees. It provides the sibling-range extraction and fragment building
// primitives used to scope a wiki page down to a single heading's region.
package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNotHeading indicates that heading-relative sibling extraction was
// invoked on an element that is not an h1-h6 heading. This is a caller
// error rather than a property of the input markup.
var ErrNotHeading = errors.New("element is not a heading")

// headings lists the heading atoms by rank. headings[:r] are the headings
// of rank r and higher.
var headings = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// IsElement reports whether n is an element node with the given tag.
func IsElement(n *html.Node, a atom.Atom) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == a
}

// HeadingRank returns the heading rank (1-6) of an element node. ok is
// false if n is not a heading element.
func HeadingRank(n *html.Node) (int, bool) {
	if n == nil || n.Type != html.ElementNode {
		return 0, false
	}
	for i, h := range headings {
		if n.DataAtom == h {
			return i + 1, true
		}
	}
	return 0, false
}

// HasClass reports whether the element's class attribute contains the
// given class name.
func HasClass(n *html.Node, class string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// ID returns the element's id attribute value.
func ID(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == "id" {
			return a.Val
		}
	}
	return ""
}

// SiblingsUntil returns start followed by its following siblings, stopping
// before (and excluding) the first sibling element whose tag is in the stop
// set. If no sibling matches, all remaining siblings are returned.
func SiblingsUntil(start *html.Node, stop ...atom.Atom) []*html.Node {
	nodes := []*html.Node{start}
	for sib := start.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.ElementNode {
			stopped := false
			for _, a := range stop {
				if sib.DataAtom == a {
					stopped = true
					break
				}
			}
			if stopped {
				break
			}
		}
		nodes = append(nodes, sib)
	}
	return nodes
}

// HeadingSiblings returns start followed by its following siblings up to,
// but not including, the next heading of the same or higher rank. It
// returns ErrNotHeading if start is not a heading element.
func HeadingSiblings(start *html.Node) ([]*html.Node, error) {
	rank, ok := HeadingRank(start)
	if !ok {
		return nil, fmt.Errorf("%w: <%s>", ErrNotHeading, start.Data)
	}
	return SiblingsUntil(start, headings[:rank]...), nil
}

// Clone returns a deep copy of n detached from its document.
func Clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(Clone(child))
	}
	return c
}

// Fragment builds a new independent document node containing deep copies
// of the given nodes in order. Mutating the fragment does not affect the
// source document and vice versa.
func Fragment(nodes []*html.Node) *html.Node {
	frag := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		frag.AppendChild(Clone(n))
	}
	return frag
}

// Children returns the direct child nodes of n, including text nodes.
func Children(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// Text returns the concatenated text content of n and its descendants.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// FindFirst returns the first node in document order, starting at root,
// for which pred returns true, or nil if there is none.
func FindFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if pred(n) {
			found = n
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return found
}

// FindAll returns all nodes in document order, starting at root, for which
// pred returns true.
func FindAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if pred(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// FindAfter returns the first node matching pred that follows marker in
// document order. The marker's own subtree is not searched.
func FindAfter(root, marker *html.Node, pred func(*html.Node) bool) *html.Node {
	seen := false
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n == marker {
			seen = true
			return false
		}
		if seen && pred(n) {
			found = n
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return found
}
