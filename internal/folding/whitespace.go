// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding normalizes text extracted from wiki markup. Extracted
// text nodes carry the source document's formatting whitespace as well as
// non-breaking spaces (U+00A0) used by wiki templates; folding reduces both
// to plain single spaces.
package folding

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// WhitespaceFolder is a [transform.Transformer] that trims leading and
// trailing whitespace and replaces each internal whitespace span with a
// single ASCII space. unicode.IsSpace covers U+00A0, so non-breaking
// spaces fold like any other whitespace.
type WhitespaceFolder struct {
	// emitted is true once a non-whitespace rune has been written.
	emitted bool

	// pending is true while skipping over a whitespace span that may turn
	// out to be internal.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (f *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(r) {
			// A span is only pending if text has already been emitted;
			// leading whitespace is dropped outright.
			f.pending = f.emitted
			nSrc += size
			continue
		}

		// A pending span followed by more text is internal; emit one space.
		if f.pending {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}

		// r could be utf8.RuneError, whose encoded length differs from
		// size, so re-measure instead of reusing size.
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		f.emitted = true
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *WhitespaceFolder) Reset() {
	*f = WhitespaceFolder{}
}

// Fold returns s with surrounding whitespace removed and internal
// whitespace spans folded to single spaces.
func Fold(s string) string {
	folded, _, err := transform.String(&WhitespaceFolder{}, s)
	if err != nil {
		// transform errors are short-buffer conditions that
		// transform.String handles internally; fall back to a plain trim.
		return strings.TrimSpace(s)
	}
	return folded
}
