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

// Package conjugation parses the fixed-layout conjugation table of a
// Spanish verb entry into a nested mapping of verb forms.
//
// The parser matches one specific table layout by fixed row index:
//
//	row 0      infinitive
//	row 1      gerund
//	rows 3-4   past participle (singular/plural rows, masculine/feminine columns)
//	rows 8-12  indicative (present, imperfect, preterite, future, conditional)
//	rows 15-18 subjunctive (present, imperfect (ra), imperfect (se), future)
//	rows 21-22 imperative (affirmative, negative)
//
// The layout is the one produced for regular Spanish verbs. Irregular or
// partial tables (fewer rows, merged cells) are unsupported input and are
// reported as ErrTableLayout errors rather than guessed at.
package conjugation
