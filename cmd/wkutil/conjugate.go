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
	"fmt"
	"sort"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	wiktionary "github.com/ianlewis/go-wiktionary"
	"github.com/ianlewis/go-wiktionary/conjugation"
)

var conjugateCommand = &cli.Command{
	Name:      "conjugate",
	Usage:     "Print a verb's conjugation table",
	ArgsUsage: "WORD",
	Description: `Print the conjugation table from a verb's entry.

Second-person cells with regional variants print as "tú/vos".`,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "section",
			Usage: "read the conjugation from section `TITLE`",
			Value: "Verb",
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

		section, err := info.Entry().Section(c.String("section"))
		if err != nil {
			return fmt.Errorf("looking up %q: %w", word, err)
		}

		conj, err := section.Conjugation()
		if err != nil {
			return fmt.Errorf("looking up %q: %w", word, err)
		}
		if conj == nil {
			return fmt.Errorf("%w: no conjugation table for %q", ErrWkutil, word)
		}

		fmt.Fprintf(c.App.Writer, "infinitive: %s\n", conj.Infinitive)
		fmt.Fprintf(c.App.Writer, "gerund:     %s\n", conj.Gerund)
		for _, number := range sortedKeys(conj.PastParticiple) {
			forms := conj.PastParticiple[number]
			fmt.Fprintf(c.App.Writer, "past participle (%s): %s, %s\n",
				number, forms["masculine"], forms["feminine"])
		}

		moods := []struct {
			name  string
			forms map[string]conjugation.Persons
		}{
			{"indicative", conj.Indicative},
			{"subjunctive", conj.Subjunctive},
			{"imperative", conj.Imperative},
		}
		for _, mood := range moods {
			fmt.Fprintln(c.App.Writer)
			printMood(c, mood.name, mood.forms)
		}

		return nil
	},
}

// personColumns are the person/number codes in table column order.
var personColumns = []string{"s1", "s2", "s3", "pl1", "pl2", "pl3"}

func printMood(c *cli.Context, name string, forms map[string]conjugation.Persons) {
	tbl := table.New(name, "yo", "tú/vos", "él/ella", "nosotros", "vosotros", "ellos")
	tbl.WithWriter(c.App.Writer)

	for _, tense := range sortedKeys(forms) {
		row := []any{tense}
		for _, code := range personColumns {
			row = append(row, formatCell(forms[tense][code]))
		}
		tbl.AddRow(row...)
	}

	tbl.Print()
}

func formatCell(cell *conjugation.Cell) string {
	switch {
	case cell == nil:
		return "-"
	case cell.Dual():
		return cell.Tu + "/" + cell.Vos
	default:
		return cell.Form
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
