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

package wiktionary

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ianlewis/go-wiktionary/conjugation"
	"github.com/ianlewis/go-wiktionary/internal/dom"
	"github.com/ianlewis/go-wiktionary/internal/folding"
)

// Class names used as markers in Wiktionary entry markup.
const (
	headlineClass = "mw-headline"
	headwordClass = "headword"
	genderClass   = "gender"
	navFrameClass = "NavFrame"
)

// conjugationHeading is the text marking a section's conjugation
// subheading.
const conjugationHeading = "Conjugation"

// Definition is one numbered sense of a word within a section.
type Definition struct {
	// Text is the rendered sense text with nested usage examples and
	// synonym lists excluded.
	Text string
}

// LeadExtra is one parenthetical attribute following a section's headword,
// such as an inflected form or a plural.
type LeadExtra struct {
	// Attribute is the attribute label, e.g. "first-person singular
	// present".
	Attribute string

	// Value is the attribute's value, e.g. "olvido". It is empty for
	// bare attributes that carry no value.
	Value string
}

// Section is one part-of-speech (or other) subdivision of a LanguageEntry,
// scoped to one third-level heading's region. Sections are constructed
// only by LanguageEntry, which makes nested sections unrepresentable.
//
// A section is a definition section if and only if it yields at least one
// Definition.
type Section struct {
	entry *LanguageEntry

	// root is an independent fragment holding copies of the region's
	// elements, starting with the section's heading.
	root *html.Node
}

// Entry returns the owning language entry.
func (s *Section) Entry() *LanguageEntry {
	return s.entry
}

func (s *Section) query() *goquery.Document {
	return goquery.NewDocumentFromNode(s.root)
}

// Title returns the text of the section's heading label.
func (s *Section) Title() string {
	return folding.Fold(s.query().Find("." + headlineClass).First().Text())
}

// leadParagraph returns the section's lead paragraph, the first <p>
// element in the fragment, or nil if the section has none.
func (s *Section) leadParagraph() *html.Node {
	return dom.FindFirst(s.root, func(n *html.Node) bool {
		return dom.IsElement(n, atom.P)
	})
}

// Lead returns the text of the section's lead paragraph, or "" if the
// section has no lead paragraph.
func (s *Section) Lead() string {
	p := s.leadParagraph()
	if p == nil {
		return ""
	}
	return folding.Fold(dom.Text(p))
}

// Headword returns the section's headword: the text of the first element
// carrying the headword marker in the lead paragraph. It returns "" if
// the section has no lead paragraph or no marked headword.
func (s *Section) Headword() string {
	hw := s.headwordNode()
	if hw == nil {
		return ""
	}
	return folding.Fold(dom.Text(hw))
}

func (s *Section) headwordNode() *html.Node {
	p := s.leadParagraph()
	if p == nil {
		return nil
	}
	return dom.FindFirst(p, func(n *html.Node) bool {
		return dom.HasClass(n, headwordClass)
	})
}

// Gender returns the grammatical gender from the lead paragraph, or "" if
// absent. Absence is a normal state for non-noun sections.
func (s *Section) Gender() string {
	p := s.leadParagraph()
	if p == nil {
		return ""
	}
	g := dom.FindFirst(p, func(n *html.Node) bool {
		return dom.HasClass(n, genderClass)
	})
	if g == nil {
		return ""
	}
	return folding.Fold(dom.Text(g))
}

// LeadExtras returns the parenthetical attributes following the headword
// in the lead paragraph.
//
// The lead's parenthetical is free-form text, so this is deliberate
// pattern matching over one observed markup convention rather than
// semantic parsing: starting from the first "("-prefixed text node after
// the headword, each following italic sibling is an attribute label and
// the bold sibling following it (before the next italic) is its value.
func (s *Section) LeadExtras() []LeadExtra {
	hw := s.headwordNode()
	if hw == nil {
		return nil
	}

	var open *html.Node
	for sib := hw.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.TextNode && strings.HasPrefix(strings.TrimSpace(sib.Data), "(") {
			open = sib
			break
		}
	}
	if open == nil {
		return nil
	}

	var extras []LeadExtra
	for sib := open.NextSibling; sib != nil; sib = sib.NextSibling {
		if !dom.IsElement(sib, atom.I) {
			continue
		}
		extra := LeadExtra{
			Attribute: folding.Fold(dom.Text(sib)),
		}
		for v := sib.NextSibling; v != nil; v = v.NextSibling {
			if dom.IsElement(v, atom.I) {
				break
			}
			if dom.IsElement(v, atom.B) {
				extra.Value = folding.Fold(dom.Text(v))
				break
			}
		}
		extras = append(extras, extra)
	}
	return extras
}

// Definitions returns the section's definitions: one per list item of the
// section's top-level ordered lists, in document order. Nested
// description lists and unordered lists carry usage examples and synonyms
// and are excluded from the definition text.
func (s *Section) Definitions() []Definition {
	var definitions []Definition
	for _, child := range dom.Children(s.root) {
		if !dom.IsElement(child, atom.Ol) {
			continue
		}
		for _, item := range dom.Children(child) {
			if !dom.IsElement(item, atom.Li) {
				continue
			}
			definitions = append(definitions, Definition{
				Text: definitionText(item),
			})
		}
	}
	return definitions
}

// definitionText renders one definition list item, excluding nested
// description lists and unordered lists.
func definitionText(item *html.Node) string {
	var b strings.Builder
	for _, child := range dom.Children(item) {
		if dom.IsElement(child, atom.Dl) || dom.IsElement(child, atom.Ul) {
			continue
		}
		b.WriteString(dom.Text(child))
	}
	return folding.Fold(b.String())
}

// HasDefinitions reports whether the section yields at least one
// definition.
func (s *Section) HasDefinitions() bool {
	return len(s.Definitions()) > 0
}

// Conjugation returns the section's parsed conjugation table, or (nil,
// nil) if the section has none. Absence is a normal state; a present
// table that does not match the expected layout is an error.
func (s *Section) Conjugation() (*conjugation.Table, error) {
	heading := dom.FindFirst(s.root, func(n *html.Node) bool {
		rank, ok := dom.HeadingRank(n)
		return ok && rank == sectionHeadingRank+1 &&
			strings.Contains(dom.Text(n), conjugationHeading)
	})
	if heading == nil {
		return nil, nil
	}

	container := dom.FindAfter(s.root, heading, func(n *html.Node) bool {
		return dom.IsElement(n, atom.Div) && dom.HasClass(n, navFrameClass)
	})
	if container == nil {
		return nil, nil
	}

	table, err := conjugation.Parse(container)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", s.Title(), err)
	}
	return table, nil
}

// Dict returns the section as a JSON-compatible mapping. A section with
// no definitions returns an empty mapping.
func (s *Section) Dict() (map[string]any, error) {
	definitions := s.Definitions()
	if len(definitions) == 0 {
		return map[string]any{}, nil
	}

	defs := make([]map[string]any, 0, len(definitions))
	for _, d := range definitions {
		defs = append(defs, map[string]any{"text": d.Text})
	}

	extras := []map[string]any{}
	for _, e := range s.LeadExtras() {
		extra := map[string]any{"attribute": e.Attribute}
		if e.Value != "" {
			extra["value"] = e.Value
		}
		extras = append(extras, extra)
	}

	d := map[string]any{
		"part_of_speech": s.Title(),
		"word":           s.Headword(),
		"extras":         extras,
		"definitions":    defs,
	}

	table, err := s.Conjugation()
	if err != nil {
		return nil, err
	}
	if table != nil {
		d["conjugation"] = table.Dict()
	}

	return d, nil
}

// String returns a string representation of the Section.
func (s *Section) String() string {
	return fmt.Sprintf("%s → %q", s.entry, s.Title())
}
