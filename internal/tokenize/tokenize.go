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

// Package tokenize splits a line of text into alternating runs of whitespace and
// non-whitespace characters.
package tokenize

import "unicode"

// Split splits s into maximal runs of whitespace and non-whitespace characters in the order
// they occur. Concatenating the result reproduces s exactly. A string that contains only one
// class of characters, including the empty string, yields a single token equal to s.
func Split(s string) []string {
	if s == "" {
		return []string{s}
	}
	var toks []string
	start := 0
	var inSpace bool
	for i, r := range s {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			toks = append(toks, s[start:i])
			start = i
			inSpace = space
		}
	}
	return append(toks, s[start:])
}
