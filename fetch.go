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
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hashicorp/go-retryablehttp"
)

const baseURL = "https://en.wiktionary.org"

// missingEntryMarker is the text Wiktionary serves on pages for words
// that have no entry. The page for a missing word is a normal HTML page,
// so absence is sniffed from the content rather than the response status.
const missingEntryMarker = "Wiktionary does not yet have an entry for"

// Fetcher retrieves raw page markup from a URL. Implementations own HTTP
// execution, retries and timeouts; URL construction and missing-entry
// detection belong to this package.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ArticleURL returns the URL of the current revision of a word's page.
func ArticleURL(word string) string {
	return baseURL + "/wiki/" + url.PathEscape(word)
}

// RevisionURL returns the URL of a specific revision (oldid) of a word's
// page.
func RevisionURL(word string, revision int64) string {
	v := url.Values{}
	v.Set("title", word)
	v.Set("oldid", strconv.FormatInt(revision, 10))
	return baseURL + "/w/index.php?" + v.Encode()
}

// HTTPFetcher is a Fetcher backed by a retrying HTTP client.
type HTTPFetcher struct {
	client *retryablehttp.Client
}

// NewHTTPFetcher returns a Fetcher with default retry behavior.
func NewHTTPFetcher() *HTTPFetcher {
	client := retryablehttp.NewClient()
	client.Logger = nil
	return &HTTPFetcher{
		client: client,
	}
}

// Fetch implements [Fetcher.Fetch]. The response body is returned for any
// non-5xx status: Wiktionary serves missing-entry pages with a 404 status
// and the body is still the content to sniff.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request for %q: %w", pageURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %q: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return "", fmt.Errorf("fetching %q: status %s", pageURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", pageURL, err)
	}
	return string(body), nil
}
