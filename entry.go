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

	"golang.org/x/net/html"

	"github.com/ianlewis/go-wiktionary/internal/dom"
)

// sectionHeadingRank is the heading rank under which Wiktionary places an
// entry's part-of-speech and other sections.
const sectionHeadingRank = 3

// LanguageEntry is the portion of a Page scoped to one language's heading
// region. Every element in the entry's fragment originates from that
// single region of the owning page.
type LanguageEntry struct {
	page     *Page
	language string

	// root is an independent fragment holding copies of the region's
	// elements.
	root *html.Node
}

// Page returns the owning page.
func (e *LanguageEntry) Page() *Page {
	return e.page
}

// Language returns the language the entry was extracted for.
func (e *LanguageEntry) Language() string {
	return e.language
}

// Sections returns the entry's sections, one per third-level heading, in
// document order.
func (e *LanguageEntry) Sections() []*Section {
	var sections []*Section
	subheadings := dom.FindAll(e.root, func(n *html.Node) bool {
		rank, ok := dom.HeadingRank(n)
		return ok && rank == sectionHeadingRank
	})
	for _, h := range subheadings {
		// Subheadings are headings by construction, so extraction cannot
		// fail.
		region, err := dom.HeadingSiblings(h)
		if err != nil {
			continue
		}
		sections = append(sections, &Section{
			entry: e,
			root:  dom.Fragment(region),
		})
	}
	return sections
}

// Section returns the first section with the given title. It returns
// ErrSectionNotFound if no section matches.
func (e *LanguageEntry) Section(title string) (*Section, error) {
	for _, s := range e.Sections() {
		if s.Title() == title {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, title)
}

// DefinitionSections returns the sections that yield at least one
// definition.
func (e *LanguageEntry) DefinitionSections() []*Section {
	var sections []*Section
	for _, s := range e.Sections() {
		if s.HasDefinitions() {
			sections = append(sections, s)
		}
	}
	return sections
}

// Definitions returns all definitions of the entry's definition sections
// concatenated in document order.
func (e *LanguageEntry) Definitions() []Definition {
	var definitions []Definition
	for _, s := range e.DefinitionSections() {
		definitions = append(definitions, s.Definitions()...)
	}
	return definitions
}

// Contains reports whether the entry's fragment markup contains the
// substring s.
func (e *LanguageEntry) Contains(s string) bool {
	markup, err := e.HTML()
	if err != nil {
		return false
	}
	return strings.Contains(markup, s)
}

// HTML renders the entry's fragment back to markup.
func (e *LanguageEntry) HTML() (string, error) {
	var b strings.Builder
	for c := e.root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("rendering entry for %q: %w", e.language, err)
		}
	}
	return b.String(), nil
}

// String returns a string representation of the LanguageEntry.
func (e *LanguageEntry) String() string {
	return fmt.Sprintf("%s → %q", e.page, e.language)
}
