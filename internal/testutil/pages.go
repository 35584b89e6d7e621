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

// Heading returns a wiki heading of the given level with a headline
// anchor.
func Heading(level int, id, text string) string {
	tag := [...]string{"h1", "h2", "h3", "h4", "h5", "h6"}[level-1]
	return "<" + tag + `><span class="mw-headline" id="` + id + `">` + text + `</span></` + tag + ">"
}

// Wrap wraps wiki body content in a minimal page document.
func Wrap(title, content string) string {
	return `<!DOCTYPE html><html><head><title>` + title + ` - Wiktionary</title></head>` +
		`<body><div class="mw-parser-output">` + content + `</div></body></html>`
}

// MissingPage returns the page served for a word with no entry.
func MissingPage(word string) string {
	return Wrap(word, `<p>Wiktionary does not yet have an entry for <i><strong class="selflink">`+word+`</strong></i>.</p>`)
}

// OlvidarPage returns a page fixture for the Spanish verb "olvidar" with
// a preceding Galician entry and a full conjugation table.
func OlvidarPage() string {
	return Wrap("olvidar",
		Heading(2, "Galician", "Galician")+
			Heading(3, "Verb_2", "Verb")+
			`<p><strong class="Latn headword" lang="gl">olvidar</strong></p>`+
			`<ol><li>to <a href="/wiki/forget">forget</a> <span class="gloss">(galego)</span></li></ol>`+
			Heading(2, "Spanish", "Spanish")+
			Heading(3, "Etymology", "Etymology")+
			`<p>From <i>Vulgar Latin</i> <i lang="la">*oblitare</i>.</p>`+
			Heading(3, "Pronunciation", "Pronunciation")+
			`<ul><li>IPA: <span class="IPA">/olbiˈdaɾ/</span></li></ul>`+
			Heading(3, "Verb", "Verb")+
			`<p><strong class="Latn headword" lang="es">olvidar</strong> (<i>first-person singular present</i> <b>olvido</b>, <i>first-person singular preterite</i> <b>olvidé</b>, <i>past participle</i> <b>olvidado</b>)</p>`+
			`<ol>`+
			`<li><span class="ib-brac">(</span><span class="ib-content">transitive</span><span class="ib-brac">)</span> to <a href="/wiki/forget">forget</a> (<a href="/wiki/be">be</a> <a href="/wiki/forgotten">forgotten</a> by)<dl><dd><i><a href="/wiki/olvidar">Olvidé</a> las llaves.</i></dd><dd>I forgot the keys.</dd></dl></li>`+
			`<li><span class="ib-brac">(</span><span class="ib-content">reflexive, intransitive</span><span class="ib-brac">)</span> to <a href="/wiki/forget">forget</a>, <a href="/wiki/elude">elude</a>, <a href="/wiki/escape">escape</a><ul><li>Synonym: <a href="/wiki/escaparse">escaparse</a></li></ul></li>`+
			`<li><span class="ib-brac">(</span><span class="ib-content">with de, reflexive, intransitive</span><span class="ib-brac">)</span> to <a href="/wiki/forget">forget</a>, to <a href="/wiki/leave">leave</a> <a href="/wiki/behind">behind</a></li>`+
			`</ol>`+
			Heading(4, "Conjugation", "Conjugation")+
			OlvidarNavFrame()+
			Heading(3, "Further_reading", "Further reading")+
			`<ul><li><a href="#">“olvidar”</a> in <i>Diccionario de la lengua española</i></li></ul>`)
}

// EmpleadoPage returns a page fixture for "empleado" with adjective, noun
// and participle sections.
func EmpleadoPage() string {
	return Wrap("empleado",
		Heading(2, "Spanish", "Spanish")+
			Heading(3, "Etymology", "Etymology")+
			`<p>Past participle of <i lang="es">emplear</i>.</p>`+
			Heading(3, "Adjective", "Adjective")+
			`<p><strong class="Latn headword" lang="es">empleado</strong> (<i>feminine singular</i> <b>empleada</b>, <i>masculine plural</i> <b>empleados</b>, <i>feminine plural</i> <b>empleadas</b>)</p>`+
			`<ol><li><a href="/wiki/employed">employed</a></li></ol>`+
			Heading(3, "Noun", "Noun")+
			`<p><strong class="Latn headword" lang="es">empleado</strong> <span class="gender"><abbr title="masculine gender">m</abbr></span> (<i>plural</i> <b>empleados</b>, <i>feminine</i> <b>empleada</b>, <i>feminine plural</i> <b>empleadas</b>)</p>`+
			`<ol><li><a href="/wiki/employee">employee</a></li></ol>`+
			Heading(3, "Participle", "Participle")+
			`<p><strong class="Latn headword" lang="es">empleado</strong> (<i>feminine</i> <b>empleada</b>)</p>`+
			`<ol><li>Masculine singular past participle of <i><a href="/wiki/emplear">emplear</a></i>.</li></ol>`)
}

// KauppaPage returns a page fixture for the Finnish word "kauppa", which
// has no Spanish entry.
func KauppaPage() string {
	return Wrap("kauppa",
		Heading(2, "Finnish", "Finnish")+
			Heading(3, "Noun", "Noun")+
			`<p><strong class="Latn headword" lang="fi">kauppa</strong></p>`+
			`<ol><li><a href="/wiki/shop">shop</a>, <a href="/wiki/store">store</a></li><li><a href="/wiki/trade">trade</a>, <a href="/wiki/commerce">commerce</a></li></ol>`)
}
