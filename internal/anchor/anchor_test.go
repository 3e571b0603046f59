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

package anchor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []Anchor
	}{
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: nil,
		},
		{
			name: "identical",
			x:    []string{"a", "b", "c"},
			y:    []string{"a", "b", "c"},
			want: []Anchor{{0, 0}, {1, 1}, {2, 2}},
		},
		{
			name: "no-unique-lines",
			x:    []string{"a", "a", "b", "b"},
			y:    []string{"a", "b", "a", "b"},
			want: nil,
		},
		{
			name: "repeats-excluded",
			x:    []string{"dup", "unique", "dup"},
			y:    []string{"dup", "unique", "dup"},
			want: []Anchor{{1, 1}},
		},
		{
			name: "one-sided-repeat-excluded",
			x:    []string{"a", "b"},
			y:    []string{"a", "b", "a"},
			want: []Anchor{{1, 1}},
		},
		{
			name: "insertion-shift",
			x:    []string{"a", "b", "c"},
			y:    []string{"new", "a", "b", "c"},
			want: []Anchor{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name: "moved-block",
			x:    []string{"a", "b", "c", "d", "e", "f"},
			y:    []string{"d", "e", "f", "a", "b", "c"},
			// Two consistent chains of length 3 exist; the earlier-ending one wins.
			want: []Anchor{{0, 3}, {1, 4}, {2, 5}},
		},
		{
			name: "crossing-pair-dropped",
			x:    []string{"a", "b"},
			y:    []string{"b", "a"},
			want: []Anchor{{0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Select(...) result is different (-want, +got):\n%s", diff)
			}
			for i := 1; i < len(got); i++ {
				if got[i].X <= got[i-1].X || got[i].Y <= got[i-1].Y {
					t.Errorf("anchors not strictly increasing: %v after %v", got[i], got[i-1])
				}
			}
		})
	}
}
