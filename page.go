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
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/ianlewis/go-wiktionary/internal/dom"
)

// Options are options for fetching a Page.
type Options struct {
	// Revision is the page revision (oldid) to fetch. Zero fetches the
	// current article.
	Revision int64

	// Fetcher performs the HTTP fetch. Defaults to NewHTTPFetcher().
	Fetcher Fetcher
}

// DefaultOptions are the default options for NewPage.
var DefaultOptions = &Options{}

// Page is the Wiktionary page for one (word, revision) pair. The page
// markup is fetched once at construction and is immutable afterwards; all
// derived views (entries, sections) are computed from copies of its tree.
type Page struct {
	word     string
	revision int64
	markup   string
	root     *html.Node
}

// NewPage fetches the page for the given word. It returns ErrPageNotFound
// if the word has no page.
func NewPage(ctx context.Context, word string, opts *Options) (*Page, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = NewHTTPFetcher()
	}

	pageURL := ArticleURL(word)
	if opts.Revision != 0 {
		pageURL = RevisionURL(word, opts.Revision)
	}

	markup, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if strings.Contains(markup, missingEntryMarker) {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, word)
	}

	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing page for %q: %w", word, err)
	}

	return &Page{
		word:     word,
		revision: opts.Revision,
		markup:   markup,
		root:     root,
	}, nil
}

// Word returns the word the page was fetched for.
func (p *Page) Word() string {
	return p.word
}

// Revision returns the fetched revision. Zero means the current article.
func (p *Page) Revision() int64 {
	return p.revision
}

// Contains reports whether the raw page markup contains the substring s.
func (p *Page) Contains(s string) bool {
	return strings.Contains(p.markup, s)
}

// Equal reports whether two pages are structurally equal: same word, same
// revision, same underlying markup.
func (p *Page) Equal(o *Page) bool {
	if o == nil {
		return false
	}
	return p.word == o.word && p.revision == o.revision && p.markup == o.markup
}

// String returns a string representation of the Page.
func (p *Page) String() string {
	if p.revision == 0 {
		return fmt.Sprintf("Page(%q)", p.word)
	}
	return fmt.Sprintf("Page(%q, revision=%d)", p.word, p.revision)
}

// Entry returns the page's entry for the given language. The language
// must match a heading anchor id exactly (case-sensitive). Entry returns
// ErrEntryNotFound if the page has no such anchor and ErrUnexpectedMarkup
// if the anchor is not enclosed in a second-level heading, which would
// mean the site's page structure no longer matches this package's
// assumptions.
func (p *Page) Entry(language string) (*LanguageEntry, error) {
	anchor := dom.FindFirst(p.root, func(n *html.Node) bool {
		return dom.ID(n) == language
	})
	if anchor == nil {
		return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, language)
	}

	heading := anchor.Parent
	rank, ok := dom.HeadingRank(heading)
	if !ok || rank != languageHeadingRank {
		return nil, fmt.Errorf("%w: anchor %q is not enclosed in an <h2> heading", ErrUnexpectedMarkup, language)
	}

	// The heading is known to be a heading, so extraction cannot fail.
	region, err := dom.HeadingSiblings(heading)
	if err != nil {
		return nil, err
	}

	return &LanguageEntry{
		page:     p,
		language: language,
		root:     dom.Fragment(region),
	}, nil
}

// languageHeadingRank is the heading rank under which Wiktionary places
// language entries.
const languageHeadingRank = 2
