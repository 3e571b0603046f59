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

// Package sidediff aligns two versions of a text for side-by-side display.
//
// [Lines] computes a line-level alignment of two strings: an ordered sequence of records
// classified as equal, inserted, deleted, or modified, covering every line of both inputs
// exactly once. [WithSpans] refines modified records with character-level spans suitable for
// intra-line highlighting.
//
// The alignment anchors on lines that are unique to both inputs and recurses between the
// anchors (patience diff), falling back to a longest-common-subsequence match for regions
// without anchors. Leftover deletions and insertions are paired into modifications by a
// string-similarity heuristic. The result favors a readable correspondence that tolerates
// moved blocks over a minimal edit script.
//
// Both functions are pure: they hold no state, perform no I/O, and return identical results
// for identical inputs. Callers embedding them in an interactive refresh loop should treat a
// call as a single synchronous unit of up to quadratic cost in the input size.
package sidediff
