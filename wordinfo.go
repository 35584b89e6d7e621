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
)

// WordInfo is the consumer-facing view of one word's entry in one
// language.
type WordInfo struct {
	entry *LanguageEntry
}

// Lookup fetches the page for a word and returns the WordInfo for its
// entry in the given language.
func Lookup(ctx context.Context, word, language string, opts *Options) (*WordInfo, error) {
	page, err := NewPage(ctx, word, opts)
	if err != nil {
		return nil, err
	}
	entry, err := page.Entry(language)
	if err != nil {
		return nil, err
	}
	return &WordInfo{entry: entry}, nil
}

// Entry returns the underlying language entry.
func (w *WordInfo) Entry() *LanguageEntry {
	return w.entry
}

// Word returns the looked-up word.
func (w *WordInfo) Word() string {
	return w.entry.Page().Word()
}

// Language returns the looked-up language.
func (w *WordInfo) Language() string {
	return w.entry.Language()
}

// DefinitionStrings returns the flat, order-preserving list of definition
// texts across the entry's definition sections.
func (w *WordInfo) DefinitionStrings() []string {
	definitions := w.entry.Definitions()
	strs := make([]string, 0, len(definitions))
	for _, d := range definitions {
		strs = append(strs, d.Text)
	}
	return strs
}

// Output returns a human-readable multiline string with definitions
// listed under their part of speech.
func (w *WordInfo) Output() string {
	var outputs []string
	for _, s := range w.entry.DefinitionSections() {
		var defs []string
		for _, d := range s.Definitions() {
			defs = append(defs, d.Text)
		}
		outputs = append(outputs, fmt.Sprintf("%s: %s\n%s", s.Title(), s.Lead(), renderList(defs)))
	}
	return strings.Join(outputs, "\n\n")
}

// CompactOutput returns a human-readable multiline string with the word
// followed by all definitions, one per line.
func (w *WordInfo) CompactOutput() string {
	lines := append([]string{w.Word()}, renderLines(w.DefinitionStrings())...)
	return strings.Join(lines, "\n")
}

// Dict returns the word info as a JSON-compatible nested mapping with the
// word, language, and one mapping per definition section.
func (w *WordInfo) Dict() (map[string]any, error) {
	sections := w.entry.DefinitionSections()
	sectionDicts := make([]map[string]any, 0, len(sections))
	for _, s := range sections {
		d, err := s.Dict()
		if err != nil {
			return nil, err
		}
		sectionDicts = append(sectionDicts, d)
	}
	return map[string]any{
		"word":                w.Word(),
		"language":            w.Language(),
		"definition_sections": sectionDicts,
	}, nil
}

// renderLines prefixes each string with a list bullet.
func renderLines(strs []string) []string {
	lines := make([]string, 0, len(strs))
	for _, s := range strs {
		lines = append(lines, "- "+s)
	}
	return lines
}

// renderList renders strings as a bulleted multiline list.
func renderList(strs []string) string {
	return strings.Join(renderLines(strs), "\n")
}
