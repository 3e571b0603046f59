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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mgutz/ansi"
	"github.com/twopane/sidediff"
)

// Markers in the gutter between line number and text.
const (
	markEqual  = ' '
	markDelete = '-'
	markInsert = '+'
	markModify = '~'
)

var (
	colorDelete = ansi.ColorCode("red")
	colorInsert = ansi.ColorCode("green")
	colorChange = ansi.ColorCode("yellow")
	colorFaint  = ansi.ColorCode("240")
	colorReset  = ansi.ColorCode("reset")
)

// renderer writes alignment records as two padded text columns.
type renderer struct {
	w     *bufio.Writer
	pane  int // text width of one pane, excluding number and marker
	color bool
}

func newRenderer(w io.Writer, width int, color bool) *renderer {
	// Each pane carries a 4-digit line number, a marker, and a space; 3 columns separate
	// the panes.
	pane := max(10, (width-3)/2-6)
	return &renderer{w: bufio.NewWriter(w), pane: pane, color: color}
}

func (r *renderer) render(lines []sidediff.Line) error {
	for _, l := range lines {
		var lm, rm rune
		switch l.Kind {
		case sidediff.Equal:
			lm, rm = markEqual, markEqual
		case sidediff.Delete:
			lm, rm = markDelete, markEqual
		case sidediff.Insert:
			lm, rm = markEqual, markInsert
		case sidediff.Modify:
			lm, rm = markModify, markModify
		}
		left := r.pad(l.Left, l.LeftSpans, sidediff.Delete)
		right := r.pad(l.Right, l.RightSpans, sidediff.Insert)
		fmt.Fprintf(r.w, "%s%c %s | %s%c %s\n",
			r.num(l.LeftNum), lm, left, r.num(l.RightNum), rm, right)
	}
	return r.w.Flush()
}

// num formats a 1-based line number, or blanks for an absent side.
func (r *renderer) num(n int) string {
	if n == 0 {
		return "    "
	}
	s := fmt.Sprintf("%4d", n)
	if r.color {
		return colorFaint + s + colorReset
	}
	return s
}

// pad truncates or pads text to the pane width, highlighting the spans of the given kind
// when color is on. Escape sequences never count towards the width.
func (r *renderer) pad(text string, spans []sidediff.Span, hot sidediff.Kind) string {
	if !r.color || len(spans) == 0 {
		return runewidth.FillRight(runewidth.Truncate(text, r.pane, "…"), r.pane)
	}

	var sb strings.Builder
	width := 0
	for _, s := range spans {
		t := s.Text
		if width+runewidth.StringWidth(t) > r.pane {
			t = runewidth.Truncate(t, r.pane-width, "…")
		}
		if s.Kind == hot {
			sb.WriteString(colorSpan(hot))
			sb.WriteString(t)
			sb.WriteString(colorReset)
		} else {
			sb.WriteString(t)
		}
		width += runewidth.StringWidth(t)
		if width >= r.pane {
			break
		}
	}
	sb.WriteString(strings.Repeat(" ", max(0, r.pane-width)))
	return sb.String()
}

func colorSpan(kind sidediff.Kind) string {
	switch kind {
	case sidediff.Delete:
		return colorDelete
	case sidediff.Insert:
		return colorInsert
	default:
		return colorChange
	}
}
