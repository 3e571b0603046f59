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

// Package similarity scores how alike two lines of text are.
//
// The score is a ranking signal for deciding whether a deleted line and an inserted line
// should be displayed as a single modified line. It is not a string distance: cheap exact and
// trimmed comparisons short-circuit the common cases, short strings are scored by edit
// distance, and longer strings by positional word overlap and common prefix. The constants
// below are tuned policy carried by the alignment output, not tunable knobs.
package similarity

import (
	"strings"
	"unicode/utf8"
)

// Thresholds for the word-overlap scoring of long strings.
const (
	shortMax  = 3  // max trimmed length for the case-folded short-string rule
	editMax   = 10 // max trimmed length for pure edit-distance scoring
	wordFuzz  = 2  // max edit distance for two words to still count as similar
	wordAlike = 0.7
	trimmedEq = 0.95
	foldedEq  = 0.9
)

// Score returns a similarity score for a and b in [0, 1]. Equal strings score 1, an empty
// string against anything else scores 0.
func Score(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	ta, tb := strings.TrimSpace(a), strings.TrimSpace(b)
	if ta == tb {
		return trimmedEq
	}
	la, lb := utf8.RuneCountInString(ta), utf8.RuneCountInString(tb)
	if la <= shortMax && lb <= shortMax && strings.EqualFold(ta, tb) {
		return foldedEq
	}
	longest := max(la, lb)
	if longest <= editMax {
		return 1 - float64(Levenshtein(ta, tb))/float64(longest)
	}

	// Long strings: score positional word overlap and keep the better of that and the
	// common-prefix ratio, so that a changed suffix on a long line still ranks high.
	wa, wb := strings.Fields(ta), strings.Fields(tb)
	var sum float64
	for i := 0; i < min(len(wa), len(wb)); i++ {
		switch {
		case wa[i] == wb[i]:
			sum += 1
		case strings.EqualFold(wa[i], wb[i]) || Levenshtein(wa[i], wb[i]) <= wordFuzz:
			sum += wordAlike
		}
	}
	wordScore := sum / float64(max(len(wa), len(wb)))
	prefixScore := float64(commonPrefixLen(ta, tb)) / float64(longest)
	return max(wordScore, prefixScore)
}

// Levenshtein returns the edit distance between a and b: the minimum number of unit-cost
// rune insertions, deletions, and substitutions that transform a into b.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(ra)+1)
	row := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		row[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			row[i] = min(prev[i]+1, row[i-1]+1, prev[i-1]+cost)
		}
		prev, row = row, prev
	}
	return prev[len(ra)]
}

// commonPrefixLen returns the length in runes of the common prefix of a and b.
func commonPrefixLen(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := min(len(ra), len(rb))
	i := 0
	for i < n && ra[i] == rb[i] {
		i++
	}
	return i
}
