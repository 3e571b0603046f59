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

// Package anchor selects alignment anchors from lines that are unique in both inputs.
//
// An anchor is a position pair asserted to correspond between the two line slices. Only
// lines that occur exactly once in x and exactly once in y qualify: a repeated line could
// anchor the wrong occurrences and misalign everything around it. The longest increasing
// subsequence of the candidates' y positions is the largest set of anchors consistent with a
// non-crossing left-to-right correspondence. This is what makes the alignment tolerant to
// moved blocks: a block that moved wholesale still lines up through its unique interior
// lines even though its absolute position changed.
package anchor

// Anchor is a position pair (X into x, Y into y) asserted to correspond.
type Anchor struct {
	X, Y int
}

// Select returns anchors for aligning x and y, strictly increasing in both coordinates. It
// returns nil when no line is unique to both inputs; callers are expected to fall back to a
// plain subsequence match for such regions.
func Select(x, y []string) []Anchor {
	posY := positions(y)
	posX := positions(x)

	// Candidates are collected in x order, so they are already sorted by X.
	var cands []Anchor
	for i, line := range x {
		if len(posX[line]) != 1 {
			continue
		}
		if py := posY[line]; len(py) == 1 {
			cands = append(cands, Anchor{X: i, Y: py[0]})
		}
	}
	if len(cands) == 0 {
		return nil
	}

	// Longest increasing subsequence of the Y values, O(n²) with predecessor links. The
	// strict comparisons keep the result deterministic: among equally long chains the one
	// ending earliest wins.
	length := make([]int, len(cands))
	prev := make([]int, len(cands))
	best := 0
	for i := range cands {
		length[i], prev[i] = 1, -1
		for j := range i {
			if cands[j].Y < cands[i].Y && length[j]+1 > length[i] {
				length[i] = length[j] + 1
				prev[i] = j
			}
		}
		if length[i] > length[best] {
			best = i
		}
	}

	out := make([]Anchor, length[best])
	for i, k := length[best]-1, best; k >= 0; i, k = i-1, prev[k] {
		out[i] = cands[k]
	}
	return out
}

// positions maps each line to the list of indices it occurs at.
func positions(lines []string) map[string][]int {
	m := make(map[string][]int, len(lines))
	for i, s := range lines {
		m[s] = append(m[s], i)
	}
	return m
}
