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
	"errors"

	"github.com/ianlewis/go-wiktionary/internal/dom"
)

var (
	// ErrPageNotFound indicates that the word has no Wiktionary page at
	// all: the fetched markup contains the site's missing-entry marker.
	ErrPageNotFound = errors.New("no Wiktionary page found")

	// ErrEntryNotFound indicates that the page exists but has no entry
	// for the requested language.
	ErrEntryNotFound = errors.New("no language entry found on Wiktionary page")

	// ErrSectionNotFound indicates that a section lookup by title found
	// no matching section. It is returned only by the by-title lookup,
	// never by iteration.
	ErrSectionNotFound = errors.New("no section with title")

	// ErrUnexpectedMarkup indicates that the page markup violates a
	// structural assumption this package is written against, such as a
	// language anchor not enclosed in a second-level heading. It signals
	// an upstream markup layout change, not bad input.
	ErrUnexpectedMarkup = errors.New("unexpected page markup")

	// ErrInvalidElement indicates that sibling-range extraction was
	// invoked on an element that is not a heading. This is a caller
	// error.
	ErrInvalidElement = dom.ErrNotHeading
)
