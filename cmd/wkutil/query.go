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

package main

import (
	"encoding/json"
	"fmt"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	wiktionary "github.com/ianlewis/go-wiktionary"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Look up a word's definitions",
	ArgsUsage: "WORD",
	Description: `Look up a word's definitions in one language's entry.

The default output is the word followed by its definitions, one per line.`,
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:    "long",
			Usage:   "list definitions under their part of speech",
			Aliases: []string{"L"},
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print the full entry data as JSON",
		},
		&cli.BoolFlag{
			Name:  "entry",
			Usage: "print the entire entry as text",
		},
	}, lookupFlags...),
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected exactly one word argument", ErrFlagParse)
		}
		word := c.Args().First()

		info, err := wiktionary.Lookup(c.Context, word, c.String("language"), &wiktionary.Options{
			Revision: c.Int64("revision"),
		})
		if err != nil {
			return fmt.Errorf("looking up %q: %w", word, err)
		}

		switch {
		case c.Bool("json"):
			d, err := info.Dict()
			if err != nil {
				return fmt.Errorf("rendering %q: %w", word, err)
			}
			out, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return fmt.Errorf("rendering %q: %w", word, err)
			}
			fmt.Fprintln(c.App.Writer, string(out))

		case c.Bool("entry"):
			markup, err := info.Entry().HTML()
			if err != nil {
				return fmt.Errorf("rendering %q: %w", word, err)
			}
			fmt.Fprintln(c.App.Writer, html2text.HTML2Text(markup))

		case c.Bool("long"):
			fmt.Fprintln(c.App.Writer, info.Output())

		default:
			fmt.Fprintln(c.App.Writer, info.CompactOutput())
		}

		return nil
	},
}
