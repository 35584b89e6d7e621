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

package conjugation

import (
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/ianlewis/go-wiktionary/internal/folding"
)

// ErrTableLayout indicates that the conjugation table does not match the
// expected fixed row and cell layout. This is a hard failure: it means the
// upstream markup no longer matches the layout version this parser was
// written against and must not be silently defaulted.
var ErrTableLayout = errors.New("unexpected conjugation table layout")

// Fixed row indices of the Spanish verb conjugation table. Rows between
// the listed indices are column header or spacer rows.
const (
	rowInfinitive = 0
	rowGerund     = 1

	rowParticipleFirst = 3
	rowParticipleLast  = 4

	rowIndicativeFirst = 8
	rowIndicativeLast  = 12

	rowSubjunctiveFirst = 15
	rowSubjunctiveLast  = 18

	rowImperativeFirst = 21
	rowImperativeLast  = 22

	rowCount = 23
)

// personCodes are the person/number column codes of an inflected tense row
// in column order.
var personCodes = []string{"s1", "s2", "s3", "pl1", "pl2", "pl3"}

// genderCodes are the column codes of a past participle row in column
// order.
var genderCodes = []string{"masculine", "feminine"}

// Cell is a single inflected form. A cell holds either one form valid for
// all registers or a pair of regional second-person forms.
type Cell struct {
	// Form is the single-register form. It is empty when the cell carries
	// regional variants.
	Form string

	// Tu and Vos are the regional second-person variants. They are set
	// only when Form is empty.
	Tu  string
	Vos string
}

// Dual reports whether the cell carries regional variants.
func (c *Cell) Dual() bool {
	return c.Tu != "" || c.Vos != ""
}

// Persons maps a person/number code (s1, s2, s3, pl1, pl2, pl3) to its
// form. A nil value means the form does not exist for that person, such as
// the first-person singular imperative.
type Persons map[string]*Cell

// Table holds the verb forms of one conjugation table.
type Table struct {
	Infinitive string
	Gerund     string

	// PastParticiple maps grammatical number (singular, plural) to gender
	// (masculine, feminine) to form.
	PastParticiple map[string]map[string]string

	// Indicative, Subjunctive and Imperative map tense names, as written
	// in the table's row headers, to person forms.
	Indicative  map[string]Persons
	Subjunctive map[string]Persons
	Imperative  map[string]Persons
}

// Parse parses the conjugation table found under the given table container
// node. The table layout is matched by fixed row index, not by header
// text; see the row index constants. Parse returns an error wrapping
// ErrTableLayout if the table deviates from that layout.
func Parse(container *html.Node) (*Table, error) {
	doc := goquery.NewDocumentFromNode(container)
	rows := doc.Find("tr")
	if rows.Length() < rowCount {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrTableLayout, rows.Length(), rowCount)
	}

	t := &Table{
		PastParticiple: map[string]map[string]string{},
		Indicative:     map[string]Persons{},
		Subjunctive:    map[string]Persons{},
		Imperative:     map[string]Persons{},
	}

	var err error
	if t.Infinitive, err = simpleRow(rows, rowInfinitive); err != nil {
		return nil, err
	}
	if t.Gerund, err = simpleRow(rows, rowGerund); err != nil {
		return nil, err
	}

	for i := rowParticipleFirst; i <= rowParticipleLast; i++ {
		number, forms, err := participleRow(rows, i)
		if err != nil {
			return nil, err
		}
		t.PastParticiple[number] = forms
	}

	moods := []struct {
		forms       map[string]Persons
		first, last int
	}{
		{t.Indicative, rowIndicativeFirst, rowIndicativeLast},
		{t.Subjunctive, rowSubjunctiveFirst, rowSubjunctiveLast},
		{t.Imperative, rowImperativeFirst, rowImperativeLast},
	}
	for _, m := range moods {
		for i := m.first; i <= m.last; i++ {
			tense, persons, err := tenseRow(rows, i)
			if err != nil {
				return nil, err
			}
			m.forms[tense] = persons
		}
	}

	return t, nil
}

// simpleRow parses a row holding a single uninflected form (infinitive,
// gerund).
func simpleRow(rows *goquery.Selection, i int) (string, error) {
	cells := rows.Eq(i).Find("td")
	if cells.Length() != 1 {
		return "", fmt.Errorf("%w: row %d has %d data cells, want 1", ErrTableLayout, i, cells.Length())
	}
	return folding.Fold(cells.Text()), nil
}

// participleRow parses one past participle row. The row header is the
// grammatical number and the data cells are the masculine and feminine
// forms.
func participleRow(rows *goquery.Selection, i int) (string, map[string]string, error) {
	row := rows.Eq(i)
	header := row.Find("th")
	if header.Length() == 0 {
		return "", nil, fmt.Errorf("%w: row %d has no header cell", ErrTableLayout, i)
	}
	cells := row.Find("td")
	if cells.Length() != len(genderCodes) {
		return "", nil, fmt.Errorf("%w: row %d has %d data cells, want %d", ErrTableLayout, i, cells.Length(), len(genderCodes))
	}

	forms := map[string]string{}
	cells.Each(func(j int, cell *goquery.Selection) {
		forms[genderCodes[j]] = folding.Fold(cell.Text())
	})
	return folding.Fold(header.First().Text()), forms, nil
}

// tenseRow parses one inflected tense row. The row header is the tense
// name and the data cells are zipped against personCodes in column order.
func tenseRow(rows *goquery.Selection, i int) (string, Persons, error) {
	row := rows.Eq(i)
	header := row.Find("th")
	if header.Length() == 0 {
		return "", nil, fmt.Errorf("%w: row %d has no header cell", ErrTableLayout, i)
	}
	cells := row.Find("td")
	if cells.Length() != len(personCodes) {
		return "", nil, fmt.Errorf("%w: row %d has %d data cells, want %d", ErrTableLayout, i, cells.Length(), len(personCodes))
	}

	persons := Persons{}
	cells.Each(func(j int, cell *goquery.Selection) {
		persons[personCodes[j]] = parseCell(cell)
	})
	return folding.Fold(header.First().Text()), persons, nil
}

// parseCell parses one form cell. A cell with a single span holds one
// form; a cell with two or more spans holds the tú and vos variants; a
// cell with no spans, or a single empty span, holds no form.
func parseCell(cell *goquery.Selection) *Cell {
	spans := cell.Find("span")
	switch {
	case spans.Length() == 0:
		return nil
	case spans.Length() == 1:
		form := folding.Fold(spans.Text())
		if form == "" {
			return nil
		}
		return &Cell{Form: form}
	default:
		return &Cell{
			Tu:  folding.Fold(spans.Eq(0).Text()),
			Vos: folding.Fold(spans.Eq(1).Text()),
		}
	}
}

// Dict returns the table as a JSON-compatible nested mapping. Inflected
// forms render as a string, a {tú, vos} mapping, or null.
func (t *Table) Dict() map[string]any {
	return map[string]any{
		"infinitive":      t.Infinitive,
		"gerund":          t.Gerund,
		"past participle": t.participleDict(),
		"indicative":      moodDict(t.Indicative),
		"subjunctive":     moodDict(t.Subjunctive),
		"imperative":      moodDict(t.Imperative),
	}
}

func (t *Table) participleDict() map[string]any {
	d := map[string]any{}
	for number, forms := range t.PastParticiple {
		genders := map[string]any{}
		for gender, form := range forms {
			genders[gender] = form
		}
		d[number] = genders
	}
	return d
}

func moodDict(mood map[string]Persons) map[string]any {
	d := map[string]any{}
	for tense, persons := range mood {
		p := map[string]any{}
		for code, cell := range persons {
			switch {
			case cell == nil:
				p[code] = nil
			case cell.Dual():
				p[code] = map[string]any{"tú": cell.Tu, "vos": cell.Vos}
			default:
				p[code] = cell.Form
			}
		}
		d[tense] = p
	}
	return d
}
