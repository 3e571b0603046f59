// Copyright 2026 The sidediff Authors
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

package sidediff

import (
	"strings"

	"github.com/twopane/sidediff/internal/config"
)

// Kind classifies a line record or a span.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Equal  Kind = iota // Present in both inputs.
	Delete             // Present only in the left input.
	Insert             // Present only in the right input.
	Modify             // Changed in place; line records only, never spans.
)

// Span is a run of characters within a modified line.
//
//   - For Equal, the text appears on both sides of the record.
//   - For Delete, the text appears only in the left line.
//   - For Insert, the text appears only in the right line.
//
// Consecutive spans of a side never share a kind, and concatenating the texts of a side's
// spans reproduces that side's line exactly.
type Span struct {
	Kind Kind
	Text string
}

// Line is a single row of a side-by-side alignment.
//
//   - For Equal and Modify, Left and Right hold the line text of each side.
//   - For Delete, only Left is set.
//   - For Insert, only Right is set.
//
// LeftNum and RightNum are 1-based line numbers; 0 means no line exists on that side for
// this record. LeftSpans and RightSpans are populated by [WithSpans] for Modify records and
// are nil otherwise.
type Line struct {
	Kind        Kind
	Left, Right string
	LeftNum     int
	RightNum    int
	LeftSpans   []Span
	RightSpans  []Span
}

// Lines compares two texts line by line and returns their alignment.
//
// Line endings are normalized before splitting, so "\r\n" and "\r" never show up as
// differences. An empty input counts as zero lines, not as one empty line. Every line of
// both inputs appears in exactly one record, and within each side the line numbers of the
// returned records increase from 1 without gaps.
//
// The following options are supported: [Threshold], [Precise]
func Lines(x, y string, opts ...Option) []Line {
	cfg := config.FromOptions(opts, config.Threshold|config.Precise)
	lines := align(splitLines(x), splitLines(y), cfg)
	number(lines)
	return lines
}

// Stats reports how many records of each kind lines contains.
func Stats(lines []Line) (equal, modified, deleted, inserted int) {
	for i := range lines {
		switch lines[i].Kind {
		case Equal:
			equal++
		case Modify:
			modified++
		case Delete:
			deleted++
		case Insert:
			inserted++
		}
	}
	return equal, modified, deleted, inserted
}

// splitLines normalizes line endings and splits s into lines. An empty string yields no
// lines so that comparing "no file" against "empty file" produces an empty diff.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// number assigns 1-based line numbers, one running counter per side, incremented exactly
// once per record that carries that side's text.
func number(lines []Line) {
	ln, rn := 0, 0
	for i := range lines {
		switch lines[i].Kind {
		case Equal, Modify:
			ln++
			rn++
			lines[i].LeftNum, lines[i].RightNum = ln, rn
		case Delete:
			ln++
			lines[i].LeftNum = ln
		case Insert:
			rn++
			lines[i].RightNum = rn
		}
	}
}
