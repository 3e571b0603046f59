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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWithSpans(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		wantLeft    []Span
		wantRight   []Span
	}{
		{
			name:  "word-inserted",
			left:  "hello world",
			right: "hello brave world",
			wantLeft: []Span{
				{Equal, "hello world"},
			},
			wantRight: []Span{
				{Equal, "hello "},
				{Insert, "brave "},
				{Equal, "world"},
			},
		},
		{
			name:  "word-changed",
			left:  "foo bar baz",
			right: "foo qux baz",
			wantLeft: []Span{
				{Equal, "foo "},
				{Delete, "bar"},
				{Equal, " baz"},
			},
			wantRight: []Span{
				{Equal, "foo "},
				{Insert, "qux"},
				{Equal, " baz"},
			},
		},
		{
			name:  "nothing-in-common",
			left:  "aaa",
			right: "bbb",
			wantLeft: []Span{
				{Delete, "aaa"},
			},
			wantRight: []Span{
				{Insert, "bbb"},
			},
		},
		{
			name:  "indentation-changed",
			left:  "\treturn nil",
			right: "        return nil",
			wantLeft: []Span{
				{Delete, "\t"},
				{Equal, "return nil"},
			},
			wantRight: []Span{
				{Insert, "        "},
				{Equal, "return nil"},
			},
		},
		{
			name:  "trailing-words-removed",
			left:  "one two three four",
			right: "one two",
			wantLeft: []Span{
				{Equal, "one two"},
				{Delete, " three four"},
			},
			wantRight: []Span{
				{Equal, "one two"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []Line{{Kind: Modify, Left: tt.left, Right: tt.right, LeftNum: 1, RightNum: 1}}
			got := WithSpans(in)

			want := []Line{{
				Kind: Modify, Left: tt.left, Right: tt.right, LeftNum: 1, RightNum: 1,
				LeftSpans: tt.wantLeft, RightSpans: tt.wantRight,
			}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("WithSpans(...) result is different (-want, +got):\n%s", diff)
			}
			checkSpans(t, got)

			if in[0].LeftSpans != nil || in[0].RightSpans != nil {
				t.Errorf("WithSpans mutated its input: %+v", in[0])
			}
		})
	}
}

func TestWithSpansPassthrough(t *testing.T) {
	in := Lines("a\nb\nc", "a\nB\nd")
	got := WithSpans(in)

	if len(got) != len(in) {
		t.Fatalf("WithSpans changed the record count: %d != %d", len(got), len(in))
	}
	for i := range got {
		if got[i].Kind != Modify {
			if diff := cmp.Diff(in[i], got[i]); diff != "" {
				t.Errorf("non-Modify record %d changed (-want, +got):\n%s", i, diff)
			}
			continue
		}
		if got[i].LeftSpans == nil || got[i].RightSpans == nil {
			t.Errorf("Modify record %d has no spans: %+v", i, got[i])
		}
	}
	checkSpans(t, got)
}

// checkSpans verifies the span invariants for every Modify record: reconstruction of both
// sides and no two consecutive spans of the same kind.
func checkSpans(t *testing.T, lines []Line) {
	t.Helper()
	for _, l := range lines {
		if l.Kind != Modify {
			continue
		}
		for side, spans := range map[string][]Span{"left": l.LeftSpans, "right": l.RightSpans} {
			var sb strings.Builder
			for i, s := range spans {
				sb.WriteString(s.Text)
				if i > 0 && spans[i-1].Kind == s.Kind {
					t.Errorf("%s spans of %+v contain consecutive %v spans", side, l, s.Kind)
				}
				switch {
				case s.Kind == Delete && side == "right",
					s.Kind == Insert && side == "left",
					s.Kind == Modify:
					t.Errorf("%s spans of %+v contain invalid span kind %v", side, l, s.Kind)
				}
			}
			want := l.Left
			if side == "right" {
				want = l.Right
			}
			if sb.String() != want {
				t.Errorf("%s spans of %+v reconstruct to %q, want %q", side, l, sb.String(), want)
			}
		}
	}
}
