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

package dom_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ianlewis/go-wiktionary/internal/dom"
)

// parseBody parses markup and returns the document's <body> element.
func parseBody(t *testing.T, markup string) *html.Node {
	t.Helper()

	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	body := dom.FindFirst(root, func(n *html.Node) bool {
		return dom.IsElement(n, atom.Body)
	})
	if body == nil {
		t.Fatalf("no <body> in %q", markup)
	}
	return body
}

// nthElement returns the nth element child (zero-based) of parent.
func nthElement(t *testing.T, parent *html.Node, n int) *html.Node {
	t.Helper()

	i := 0
	for _, c := range dom.Children(parent) {
		if c.Type != html.ElementNode {
			continue
		}
		if i == n {
			return c
		}
		i++
	}
	t.Fatalf("no element child %d", n)
	return nil
}

// tagNames maps nodes to their tag names for readable diffs.
func tagNames(nodes []*html.Node) []string {
	var names []string
	for _, n := range nodes {
		switch n.Type {
		case html.ElementNode:
			names = append(names, n.Data)
		case html.TextNode:
			names = append(names, "#text")
		default:
			names = append(names, "#other")
		}
	}
	return names
}

func TestHeadingSiblings(t *testing.T) {
	t.Parallel()

	markup := "<h1>a</h1><h2>b</h2><h3>c</h3><p>d</p><h3>e</h3><h2>f</h2>"

	tests := []struct {
		name  string
		start int

		expected []string
	}{
		{
			name:  "h2 stops before next h2",
			start: 1,

			expected: []string{"h2", "h3", "p", "h3"},
		},
		{
			name:  "h3 stops before next h3",
			start: 2,

			expected: []string{"h3", "p"},
		},
		{
			name:  "no stop returns tail",
			start: 5,

			expected: []string{"h2"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			body := parseBody(t, markup)
			start := nthElement(t, body, test.start)

			siblings, err := dom.HeadingSiblings(start)
			if err != nil {
				t.Fatalf("HeadingSiblings: %v", err)
			}

			if diff := cmp.Diff(test.expected, tagNames(siblings)); diff != "" {
				t.Fatalf("HeadingSiblings (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestHeadingSiblings_notHeading(t *testing.T) {
	t.Parallel()

	body := parseBody(t, "<p>a</p><h2>b</h2>")
	start := nthElement(t, body, 0)

	if _, err := dom.HeadingSiblings(start); !errors.Is(err, dom.ErrNotHeading) {
		t.Fatalf("HeadingSiblings: expected ErrNotHeading, got %v", err)
	}
}

// TestHeadingSiblings_idempotent checks that extracting a region, building
// a fragment from it, and re-running extraction on the fragment's heading
// yields the same number of nodes.
func TestHeadingSiblings_idempotent(t *testing.T) {
	t.Parallel()

	body := parseBody(t, "<h2>a</h2><p>b</p><ol><li>c</li></ol><h2>d</h2>")
	start := nthElement(t, body, 0)

	siblings, err := dom.HeadingSiblings(start)
	if err != nil {
		t.Fatalf("HeadingSiblings: %v", err)
	}

	frag := dom.Fragment(siblings)
	again, err := dom.HeadingSiblings(frag.FirstChild)
	if err != nil {
		t.Fatalf("HeadingSiblings on fragment: %v", err)
	}

	if got, want := len(again), len(siblings); got != want {
		t.Fatalf("HeadingSiblings on fragment: got %d nodes, want %d", got, want)
	}
}

func TestSiblingsUntil(t *testing.T) {
	t.Parallel()

	body := parseBody(t, "<h3>a</h3><p>b</p><ul><li>c</li></ul><table><tbody><tr><td>d</td></tr></tbody></table><p>e</p>")
	start := nthElement(t, body, 0)

	siblings := dom.SiblingsUntil(start, atom.Table)

	expected := []string{"h3", "p", "ul"}
	if diff := cmp.Diff(expected, tagNames(siblings)); diff != "" {
		t.Fatalf("SiblingsUntil (-want, +got):\n%s", diff)
	}
}

func TestFragment_independent(t *testing.T) {
	t.Parallel()

	body := parseBody(t, "<h2>title</h2><p>text</p>")
	frag := dom.Fragment(dom.Children(body))

	// Mutating the source must not affect the fragment.
	body.FirstChild.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: " changed",
	})

	if got, want := dom.Text(frag), "titletext"; got != want {
		t.Fatalf("Text: got %q, want %q", got, want)
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	body := parseBody(t, "<p>to <a>forget</a> (<a>be</a> forgotten)</p>")

	if got, want := dom.Text(body), "to forget (be forgotten)"; got != want {
		t.Fatalf("Text: got %q, want %q", got, want)
	}
}

func TestHasClass(t *testing.T) {
	t.Parallel()

	body := parseBody(t, `<strong class="Latn headword" lang="es">olvidar</strong>`)
	strong := nthElement(t, body, 0)

	if !dom.HasClass(strong, "headword") {
		t.Fatalf("HasClass: expected headword class on %v", strong.Data)
	}
	if dom.HasClass(strong, "head") {
		t.Fatalf("HasClass: unexpected match on class prefix")
	}
}

func TestFindAfter(t *testing.T) {
	t.Parallel()

	body := parseBody(t, `<div class="target"><p>inside</p></div><h4>marker</h4><div class="target"><p>after</p></div>`)
	marker := nthElement(t, body, 1)

	found := dom.FindAfter(body, marker, func(n *html.Node) bool {
		return dom.HasClass(n, "target")
	})
	if found == nil {
		t.Fatalf("FindAfter: no node found")
	}
	if got, want := dom.Text(found), "after"; got != want {
		t.Fatalf("FindAfter: got %q, want %q", got, want)
	}
}

func TestFindAfter_skipsMarkerSubtree(t *testing.T) {
	t.Parallel()

	body := parseBody(t, `<h4>marker<span class="target">inside</span></h4><span class="target">after</span>`)
	marker := nthElement(t, body, 0)

	found := dom.FindAfter(body, marker, func(n *html.Node) bool {
		return dom.HasClass(n, "target")
	})
	if found == nil {
		t.Fatalf("FindAfter: no node found")
	}
	if got, want := dom.Text(found), "after"; got != want {
		t.Fatalf("FindAfter: got %q, want %q", got, want)
	}
}

func TestHeadingRank(t *testing.T) {
	t.Parallel()

	body := parseBody(t, "<h4>a</h4><p>b</p>")

	rank, ok := dom.HeadingRank(nthElement(t, body, 0))
	if !ok || rank != 4 {
		t.Fatalf("HeadingRank: got (%d, %v), want (4, true)", rank, ok)
	}

	if _, ok := dom.HeadingRank(nthElement(t, body, 1)); ok {
		t.Fatalf("HeadingRank: <p> is not a heading")
	}
}
