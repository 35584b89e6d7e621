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

package testutil

import (
	"strings"
)

// FormCell returns one data cell holding a single form.
func FormCell(form string) string {
	return `<td><span class="Latn" lang="es">` + form + `</span></td>`
}

// DualCell returns one data cell holding tú and vos variants.
func DualCell(tu, vos string) string {
	return `<td><span class="Latn" lang="es">` + tu + `</span><br><span class="Latn" lang="es">` + vos + `</span></td>`
}

// EmptyCell returns one data cell holding no form.
func EmptyCell() string {
	return `<td></td>`
}

// SimpleRow returns a row holding a single uninflected form.
func SimpleRow(name, form string) string {
	return `<tr><th colspan="2">` + name + `</th><td colspan="6"><span class="Latn" lang="es">` + form + `</span></td></tr>`
}

// ParticipleRow returns a past participle row with masculine and feminine
// forms.
func ParticipleRow(number, masculine, feminine string) string {
	return `<tr><th>` + number + `</th><td colspan="3">` + masculine + `</td><td colspan="3">` + feminine + `</td></tr>`
}

// TenseRow returns an inflected tense row from pre-rendered cells.
func TenseRow(name string, cells ...string) string {
	return `<tr><th>` + name + `</th>` + strings.Join(cells, "") + `</tr>`
}

// HeaderRow returns a column header row.
func HeaderRow(cols ...string) string {
	var b strings.Builder
	b.WriteString(`<tr>`)
	for _, c := range cols {
		b.WriteString(`<th>` + c + `</th>`)
	}
	b.WriteString(`</tr>`)
	return b.String()
}

// SpacerRow returns a decorative spacer row.
func SpacerRow() string {
	return `<tr class="roa-spacer"><td colspan="8">&nbsp;</td></tr>`
}

// NavFrame wraps table rows in the navigation frame div that marks a
// conjugation table.
func NavFrame(title string, rows ...string) string {
	return `<div class="NavFrame"><div class="NavHead">` + title + `</div>` +
		`<div class="NavContent"><table class="roa-inflection-table">` +
		strings.Join(rows, "") +
		`</table></div></div>`
}

// TenseCells zips single forms into data cells, one per person.
func TenseCells(forms ...string) []string {
	cells := make([]string, 0, len(forms))
	for _, f := range forms {
		cells = append(cells, FormCell(f))
	}
	return cells
}

// OlvidarConjugationRows returns the 23 rows of the conjugation table for
// "olvidar" in the fixed layout the parser expects.
func OlvidarConjugationRows() []string {
	return []string{
		// 0-1: uninflected forms.
		SimpleRow("infinitive", "olvidar"),
		SimpleRow("gerund", "olvidando"),
		// 2-4: past participle.
		HeaderRow("past participle", "masculine", "feminine"),
		ParticipleRow("singular", "olvidado", "olvidada"),
		ParticipleRow("plural", "olvidados", "olvidadas"),
		// 5-7: person headers and indicative mood header.
		HeaderRow("", "singular", "plural"),
		HeaderRow("", "1st person", "2nd person", "3rd person", "1st person", "2nd person", "3rd person"),
		HeaderRow("indicative", "yo", "tú/vos", "él/ella/usted", "nosotros/-as", "vosotros/-as", "ellos/-as/ustedes"),
		// 8-12: indicative.
		TenseRow("present",
			FormCell("olvido"),
			DualCell("olvidas", "olvidás"),
			FormCell("olvida"),
			FormCell("olvidamos"),
			FormCell("olvidáis"),
			FormCell("olvidan"),
		),
		TenseRow("imperfect", TenseCells("olvidaba", "olvidabas", "olvidaba", "olvidábamos", "olvidabais", "olvidaban")...),
		TenseRow("preterite", TenseCells("olvidé", "olvidaste", "olvidó", "olvidamos", "olvidasteis", "olvidaron")...),
		TenseRow("future", TenseCells("olvidaré", "olvidarás", "olvidará", "olvidaremos", "olvidaréis", "olvidarán")...),
		TenseRow("conditional", TenseCells("olvidaría", "olvidarías", "olvidaría", "olvidaríamos", "olvidaríais", "olvidarían")...),
		// 13-14: spacer and subjunctive mood header.
		SpacerRow(),
		HeaderRow("subjunctive", "yo", "tú/vos", "él/ella/usted", "nosotros/-as", "vosotros/-as", "ellos/-as/ustedes"),
		// 15-18: subjunctive.
		TenseRow("present",
			FormCell("olvide"),
			DualCell("olvides", "olvidés"),
			FormCell("olvide"),
			FormCell("olvidemos"),
			FormCell("olvidéis"),
			FormCell("olviden"),
		),
		TenseRow("imperfect (ra)", TenseCells("olvidara", "olvidaras", "olvidara", "olvidáramos", "olvidarais", "olvidaran")...),
		TenseRow("imperfect (se)", TenseCells("olvidase", "olvidases", "olvidase", "olvidásemos", "olvidaseis", "olvidasen")...),
		TenseRow("future", TenseCells("olvidare", "olvidares", "olvidare", "olvidáremos", "olvidareis", "olvidaren")...),
		// 19-20: spacer and imperative mood header.
		SpacerRow(),
		HeaderRow("imperative", "yo", "tú/vos", "él/ella/usted", "nosotros/-as", "vosotros/-as", "ellos/-as/ustedes"),
		// 21-22: imperative.
		TenseRow("affirmative",
			EmptyCell(),
			DualCell("olvida", "olvidá"),
			FormCell("olvide"),
			FormCell("olvidemos"),
			FormCell("olvidad"),
			FormCell("olviden"),
		),
		TenseRow("negative",
			EmptyCell(),
			FormCell("no olvides"),
			FormCell("no olvide"),
			FormCell("no olvidemos"),
			FormCell("no olvidéis"),
			FormCell("no olviden"),
		),
	}
}

// OlvidarNavFrame returns the complete conjugation table fixture for
// "olvidar".
func OlvidarNavFrame() string {
	return NavFrame("Conjugation of olvidar", OlvidarConjugationRows()...)
}
