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

package wiktionary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	wiktionary "github.com/ianlewis/go-wiktionary"
	"github.com/ianlewis/go-wiktionary/internal/testutil"
)

// lookup fetches a fixture word's info, failing the test on error.
func lookup(t *testing.T, word string, revision int64, language string) *wiktionary.WordInfo {
	t.Helper()

	info, err := wiktionary.Lookup(context.Background(), word, language, &wiktionary.Options{
		Revision: revision,
		Fetcher:  &testutil.StaticFetcher{Pages: fixtures()},
	})
	if err != nil {
		t.Fatalf("Lookup(%q, %q): %v", word, language, err)
	}
	return info
}

func TestLookup(t *testing.T) {
	t.Parallel()

	info := lookup(t, "olvidar", 0, "Spanish")

	if got, want := info.Word(), "olvidar"; got != want {
		t.Errorf("Word: got %q, want %q", got, want)
	}
	if got, want := info.Language(), "Spanish"; got != want {
		t.Errorf("Language: got %q, want %q", got, want)
	}
	if got, want := info.Entry().Language(), "Spanish"; got != want {
		t.Errorf("Entry: got language %q, want %q", got, want)
	}
}

func TestLookup_pageNotFound(t *testing.T) {
	t.Parallel()

	_, err := wiktionary.Lookup(context.Background(), "empleadoooo", "Spanish", &wiktionary.Options{
		Fetcher: &testutil.StaticFetcher{Pages: fixtures()},
	})
	if !errors.Is(err, wiktionary.ErrPageNotFound) {
		t.Fatalf("Lookup: expected ErrPageNotFound, got %v", err)
	}
}

func TestLookup_entryNotFound(t *testing.T) {
	t.Parallel()

	_, err := wiktionary.Lookup(context.Background(), "kauppa", "Spanish", &wiktionary.Options{
		Fetcher: &testutil.StaticFetcher{Pages: fixtures()},
	})
	if !errors.Is(err, wiktionary.ErrEntryNotFound) {
		t.Fatalf("Lookup: expected ErrEntryNotFound, got %v", err)
	}
}

func TestWordInfo_DefinitionStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		word     string
		revision int64
		language string

		expected []string
	}{
		{
			name:     "olvidar",
			word:     "olvidar",
			language: "Spanish",

			expected: []string{
				"(transitive) to forget (be forgotten by)",
				"(reflexive, intransitive) to forget, elude, escape",
				"(with de, reflexive, intransitive) to forget, to leave behind",
			},
		},
		{
			name:     "empleado at revision",
			word:     "empleado",
			revision: 62175311,
			language: "Spanish",

			expected: []string{
				"employed",
				"employee",
				"Masculine singular past participle of emplear.",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			info := lookup(t, test.word, test.revision, test.language)
			if diff := cmp.Diff(test.expected, info.DefinitionStrings()); diff != "" {
				t.Fatalf("DefinitionStrings (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestWordInfo_Output(t *testing.T) {
	t.Parallel()

	info := lookup(t, "olvidar", 0, "Spanish")

	expected := "Verb: olvidar (first-person singular present olvido, " +
		"first-person singular preterite olvidé, past participle olvidado)\n" +
		"- (transitive) to forget (be forgotten by)\n" +
		"- (reflexive, intransitive) to forget, elude, escape\n" +
		"- (with de, reflexive, intransitive) to forget, to leave behind"
	if got, want := info.Output(), expected; got != want {
		t.Fatalf("Output: got %q, want %q", got, want)
	}
}

func TestWordInfo_Output_multipleSections(t *testing.T) {
	t.Parallel()

	info := lookup(t, "empleado", 62175311, "Spanish")

	expected := "Adjective: empleado (feminine singular empleada, " +
		"masculine plural empleados, feminine plural empleadas)\n" +
		"- employed\n" +
		"\n" +
		"Noun: empleado m (plural empleados, feminine empleada, feminine plural empleadas)\n" +
		"- employee\n" +
		"\n" +
		"Participle: empleado (feminine empleada)\n" +
		"- Masculine singular past participle of emplear."
	if got, want := info.Output(), expected; got != want {
		t.Fatalf("Output: got %q, want %q", got, want)
	}
}

func TestWordInfo_CompactOutput(t *testing.T) {
	t.Parallel()

	info := lookup(t, "olvidar", 0, "Spanish")

	expected := "olvidar\n" +
		"- (transitive) to forget (be forgotten by)\n" +
		"- (reflexive, intransitive) to forget, elude, escape\n" +
		"- (with de, reflexive, intransitive) to forget, to leave behind"
	if got, want := info.CompactOutput(), expected; got != want {
		t.Fatalf("CompactOutput: got %q, want %q", got, want)
	}
}

func TestWordInfo_Dict(t *testing.T) {
	t.Parallel()

	info := lookup(t, "empleado", 62175311, "Spanish")

	d, err := info.Dict()
	if err != nil {
		t.Fatalf("Dict: %v", err)
	}

	if got, want := d["word"], any("empleado"); got != want {
		t.Errorf("word: got %v, want %v", got, want)
	}
	if got, want := d["language"], any("Spanish"); got != want {
		t.Errorf("language: got %v, want %v", got, want)
	}

	sections, ok := d["definition_sections"].([]map[string]any)
	if !ok {
		t.Fatalf("definition_sections: missing from dict")
	}
	if got, want := len(sections), 3; got != want {
		t.Fatalf("definition_sections: got %d sections, want %d", got, want)
	}
	if got, want := sections[1]["part_of_speech"], any("Noun"); got != want {
		t.Errorf("definition_sections[1] part_of_speech: got %v, want %v", got, want)
	}
}
