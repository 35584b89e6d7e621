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
	"testing"

	wiktionary "github.com/ianlewis/go-wiktionary"
	"github.com/ianlewis/go-wiktionary/internal/testutil"
)

// fixtures maps fixture URLs to page markup for the words used across the
// package's tests.
func fixtures() map[string]string {
	return map[string]string{
		wiktionary.ArticleURL("olvidar"):             testutil.OlvidarPage(),
		wiktionary.RevisionURL("empleado", 62175311): testutil.EmpleadoPage(),
		wiktionary.ArticleURL("kauppa"):              testutil.KauppaPage(),
		wiktionary.ArticleURL("empleadoooo"):         testutil.MissingPage("empleadoooo"),
	}
}

// fetchPage fetches a fixture page, failing the test on error.
func fetchPage(t *testing.T, word string, revision int64) *wiktionary.Page {
	t.Helper()

	page, err := wiktionary.NewPage(context.Background(), word, &wiktionary.Options{
		Revision: revision,
		Fetcher:  &testutil.StaticFetcher{Pages: fixtures()},
	})
	if err != nil {
		t.Fatalf("NewPage(%q): %v", word, err)
	}
	return page
}

// fetchSection fetches a fixture page and returns one section of one
// language entry, failing the test on error.
func fetchSection(t *testing.T, word string, revision int64, language, title string) *wiktionary.Section {
	t.Helper()

	entry, err := fetchPage(t, word, revision).Entry(language)
	if err != nil {
		t.Fatalf("Entry(%q): %v", language, err)
	}
	section, err := entry.Section(title)
	if err != nil {
		t.Fatalf("Section(%q): %v", title, err)
	}
	return section
}

// fetchCustom builds a page from inline markup registered under the
// word's article URL.
func fetchCustom(t *testing.T, word, markup string) *wiktionary.Page {
	t.Helper()

	page, err := wiktionary.NewPage(context.Background(), word, &wiktionary.Options{
		Fetcher: &testutil.StaticFetcher{
			Pages: map[string]string{
				wiktionary.ArticleURL(word): markup,
			},
		},
	})
	if err != nil {
		t.Fatalf("NewPage(%q): %v", word, err)
	}
	return page
}
