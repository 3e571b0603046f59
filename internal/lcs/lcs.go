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

// Package lcs computes a longest common subsequence of two slices.
//
// The matcher is a classic dynamic program over the table
//
//	dp[i][j] = dp[i-1][j-1] + 1               if x[i-1] == y[j-1]
//	dp[i][j] = max(dp[i-1][j], dp[i][j-1])    otherwise
//
// followed by a backtracking pass from dp[m][n] that recovers the matched index pairs. The
// result is a true LCS: among all strictly increasing pairings of equal elements it has
// maximum length. This costs O(m·n) time and space, which is fine for the line and token
// counts this module is built for; there is deliberately no banding or linear-space variant.
//
// The backtracking pass resolves ties by skipping y elements first. This places every match
// at the smallest y index that still admits a maximum-length result, so that when an element
// occurs several times on the right-hand side the earliest occurrence wins. Callers align
// text around these matches and depend on this bias, it is not incidental.
package lcs

import "slices"

// Pair is a pair of indices (X into x, Y into y) whose elements match.
type Pair struct {
	X, Y int
}

// Pairs returns a longest common subsequence of x and y as index pairs. The pairs are
// strictly increasing in both X and Y.
func Pairs[T comparable](x, y []T) []Pair {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return nil
	}

	stride := n + 1
	dp := make([]int, (m+1)*stride)
	for i := 1; i <= m; i++ {
		prev := dp[(i-1)*stride:]
		row := dp[i*stride:]
		for j := 1; j <= n; j++ {
			if x[i-1] == y[j-1] {
				row[j] = prev[j-1] + 1
			} else {
				row[j] = max(prev[j], row[j-1])
			}
		}
	}

	if dp[m*stride+n] == 0 {
		return nil
	}

	// Backtrack from the bottom-right corner. A match is only taken when neither skipping
	// an element of y nor of x preserves the subsequence length; checking y first implements
	// the smallest-y tie-break documented above.
	pairs := make([]Pair, 0, dp[m*stride+n])
	i, j := m, n
	for i > 0 && j > 0 {
		v := dp[i*stride+j]
		switch {
		case dp[i*stride+j-1] == v:
			j--
		case dp[(i-1)*stride+j] == v:
			i--
		default:
			pairs = append(pairs, Pair{i - 1, j - 1})
			i--
			j--
		}
	}
	slices.Reverse(pairs)
	return pairs
}
