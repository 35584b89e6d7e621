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

// wkutil looks up words on Wiktionary from the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newWiktionaryApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)

		if errors.Is(err, ErrFlagParse) {
			os.Exit(ExitCodeFlagParseError)
		}
		os.Exit(ExitCodeUnknownError)
	}
}

// lookupFlags are the flags shared by commands that fetch a word's page.
var lookupFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "language",
		Usage:   "look up the entry for `LANGUAGE`",
		Aliases: []string{"l"},
		Value:   "Spanish",
	},
	&cli.Int64Flag{
		Name:    "revision",
		Usage:   "fetch page revision `REVISION` instead of the current article",
		Aliases: []string{"r"},
	},
}
