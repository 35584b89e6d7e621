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

// Package testutil provides Wiktionary-shaped page fixtures and fetch
// fakes for tests.
package testutil

import (
	"context"
	"fmt"
)

// StaticFetcher is a Fetcher serving fixture markup keyed by URL.
type StaticFetcher struct {
	Pages map[string]string
}

// Fetch returns the fixture registered for the given URL.
func (f *StaticFetcher) Fetch(_ context.Context, url string) (string, error) {
	page, ok := f.Pages[url]
	if !ok {
		return "", fmt.Errorf("no fixture registered for %q", url)
	}
	return page, nil
}
