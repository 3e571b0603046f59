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
	"cmp"
	"slices"

	"github.com/twopane/sidediff/internal/anchor"
	"github.com/twopane/sidediff/internal/config"
	"github.com/twopane/sidediff/internal/lcs"
	"github.com/twopane/sidediff/internal/similarity"
)

// Caps for the quadratic passes on pathological inputs. Regions above these limits degrade
// to plain deletions and insertions instead; the output shape invariants hold regardless.
// [Precise] disables both.
const (
	maxMatchCells = 1 << 22 // sequence-matcher DP cells per region
	maxPairCells  = 1 << 16 // similarity scores per unmatched block
)

// align recursively aligns x and y: anchor on lines unique to both sides, emit the anchors
// as matches, and recurse into the regions between them. Regions without anchors are matched
// by a plain LCS instead.
func align(x, y []string, cfg config.Config) []Line {
	anchors := anchor.Select(x, y)
	if len(anchors) == 0 {
		return alignLCS(x, y, cfg)
	}
	var out []Line
	px, py := 0, 0
	for _, a := range anchors {
		out = append(out, align(x[px:a.X], y[py:a.Y], cfg)...)
		out = append(out, Line{Kind: Equal, Left: x[a.X], Right: y[a.Y]})
		px, py = a.X+1, a.Y+1
	}
	return append(out, align(x[px:], y[py:], cfg)...)
}

// alignLCS matches a region without anchors using the sequence matcher directly. The gaps
// between matches are handed to reconcile, there is no further recursion.
func alignLCS(x, y []string, cfg config.Config) []Line {
	var pairs []lcs.Pair
	if cfg.Precise || len(x)*len(y) <= maxMatchCells {
		pairs = lcs.Pairs(x, y)
	}
	var out []Line
	px, py := 0, 0
	for _, p := range pairs {
		out = append(out, reconcile(x[px:p.X], y[py:p.Y], cfg)...)
		out = append(out, Line{Kind: Equal, Left: x[p.X], Right: y[p.Y]})
		px, py = p.X+1, p.Y+1
	}
	return append(out, reconcile(x[px:], y[py:], cfg)...)
}

// reconcile classifies a block of unmatched lines. Similar delete/insert pairs become
// Modify records; whatever remains is emitted as plain deletions and insertions, in
// left-index order with deletions first within each gap.
func reconcile(x, y []string, cfg config.Config) []Line {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}

	type cand struct {
		x, y  int
		score float64
	}
	var cands []cand
	if len(x) > 0 && len(y) > 0 && (cfg.Precise || len(x)*len(y) <= maxPairCells) {
		for i := range x {
			for j := range y {
				if s := similarity.Score(x[i], y[j]); s > cfg.Threshold {
					cands = append(cands, cand{i, j, s})
				}
			}
		}
	}

	// Greedy maximum-weight matching: best score first, indexes break ties so the result is
	// deterministic. Accepted pairs are then replayed in left-index order.
	slices.SortFunc(cands, func(a, b cand) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		}
		return cmp.Compare(a.y, b.y)
	})
	usedX := make([]bool, len(x))
	usedY := make([]bool, len(y))
	var accepted []cand
	for _, c := range cands {
		if usedX[c.x] || usedY[c.y] {
			continue
		}
		usedX[c.x], usedY[c.y] = true, true
		accepted = append(accepted, c)
	}
	slices.SortFunc(accepted, func(a, b cand) int { return cmp.Compare(a.x, b.x) })

	// Pairs accepted on score alone may cross, and a crossing pair would emit the right-hand
	// lines out of input order. Keep the pairs that extend a strictly increasing y sequence
	// and demote the rest back to a deletion and an insertion.
	kept := accepted[:0]
	lastY := -1
	for _, c := range accepted {
		if c.y <= lastY {
			usedX[c.x], usedY[c.y] = false, false
			continue
		}
		kept = append(kept, c)
		lastY = c.y
	}
	accepted = kept

	out := make([]Line, 0, len(x)+len(y)-len(accepted))
	xi, yi := 0, 0
	for _, c := range accepted {
		for ; xi < c.x; xi++ {
			out = append(out, Line{Kind: Delete, Left: x[xi]})
		}
		for ; yi < c.y; yi++ {
			out = append(out, Line{Kind: Insert, Right: y[yi]})
		}
		out = append(out, Line{Kind: Modify, Left: x[c.x], Right: y[c.y]})
		xi, yi = c.x+1, c.y+1
	}
	for ; xi < len(x); xi++ {
		out = append(out, Line{Kind: Delete, Left: x[xi]})
	}
	for ; yi < len(y); yi++ {
		out = append(out, Line{Kind: Insert, Right: y[yi]})
	}
	return out
}
