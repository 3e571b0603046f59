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
	"github.com/twopane/sidediff/internal/lcs"
	"github.com/twopane/sidediff/internal/tokenize"
)

// WithSpans returns a copy of lines in which every Modify record carries character-level
// spans for both sides. Records of other kinds pass through unchanged.
//
// Each side is split into alternating whitespace and word tokens, the token sequences are
// matched, and unmatched tokens become Delete spans on the left and Insert spans on the
// right. Concatenating a side's span texts always reproduces that side's line exactly.
func WithSpans(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].Kind != Modify {
			continue
		}
		out[i].LeftSpans, out[i].RightSpans = spans(out[i].Left, out[i].Right)
	}
	return out
}

// spans computes the per-side span sequences for one modified line pair.
func spans(left, right string) (ls, rs []Span) {
	lt := tokenize.Split(left)
	rt := tokenize.Split(right)

	var lb, rb spanBuilder
	if len(lt)*len(rt) > maxMatchCells {
		// Degenerate single-line blowup; keep the reconstruction invariant and give up on
		// intra-line detail.
		lb.append(Delete, left)
		rb.append(Insert, right)
		return lb.spans, rb.spans
	}

	li, ri := 0, 0
	for _, p := range lcs.Pairs(lt, rt) {
		for ; li < p.X; li++ {
			lb.append(Delete, lt[li])
		}
		for ; ri < p.Y; ri++ {
			rb.append(Insert, rt[ri])
		}
		lb.append(Equal, lt[li])
		rb.append(Equal, rt[ri])
		li++
		ri++
	}
	for ; li < len(lt); li++ {
		lb.append(Delete, lt[li])
	}
	for ; ri < len(rt); ri++ {
		rb.append(Insert, rt[ri])
	}
	return lb.spans, rb.spans
}

// spanBuilder accumulates spans, extending the last span instead of appending when the kind
// repeats, so that consecutive spans never share a kind.
type spanBuilder struct {
	spans []Span
}

func (b *spanBuilder) append(kind Kind, text string) {
	if n := len(b.spans); n > 0 && b.spans[n-1].Kind == kind {
		b.spans[n-1].Text += text
		return
	}
	b.spans = append(b.spans, Span{Kind: kind, Text: text})
}
