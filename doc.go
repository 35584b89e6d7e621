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

// Package wiktionary extracts structured lexicographic data from English
// Wiktionary pages.
//
// A lookup proceeds in stages:
//  1. A Page fetches the raw page markup for one (word, revision) pair.
//  2. Page.Entry scopes the page to the region under one language's
//     second-level heading.
//  3. The LanguageEntry splits its region into Sections, one per
//     third-level heading (typically one per part of speech).
//  4. Each Section parses its own lead line, parenthetical attributes,
//     definition list and, for verbs, conjugation table on demand.
//
// The markup being parsed is unversioned, community-edited HTML. The
// extraction logic therefore matches one observed structural convention
// (heading anchors, headword/gender markers, the fixed conjugation table
// layout) and reports deviations as errors instead of guessing.
package wiktionary
