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

package folding_test

import (
	"testing"

	"github.com/ianlewis/go-wiktionary/internal/folding"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string

		expected string
	}{
		{
			name:  "empty",
			input: "",

			expected: "",
		},
		{
			name:  "already folded",
			input: "to forget",

			expected: "to forget",
		},
		{
			name:  "surrounding whitespace",
			input: "  olvidar\n",

			expected: "olvidar",
		},
		{
			name:  "internal span",
			input: "to \n\t forget",

			expected: "to forget",
		},
		{
			name:  "non-breaking space",
			input: "no\u00a0olvides",

			expected: "no olvides",
		},
		{
			name:  "only whitespace",
			input: "  \t\n ",

			expected: "",
		},
		{
			name:  "multiple spans",
			input: "\tto   forget ,  elude ",

			expected: "to forget , elude",
		},
		{
			name:  "multibyte runes",
			input: "  olvidé  las  llaves  ",

			expected: "olvidé las llaves",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got, want := folding.Fold(test.input), test.expected; got != want {
				t.Fatalf("Fold(%q): got %q, want %q", test.input, got, want)
			}
		})
	}
}
