//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package marks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func listOf(lines ...int) *List {
	l := NewList()
	for _, line := range lines {
		l.Toggle(line)
	}
	return l
}

func TestToggleKeepsOrder(t *testing.T) {
	l := listOf(9, 2, 5, 7)
	if diff := cmp.Diff([]int{2, 5, 7, 9}, l.Lines()); diff != "" {
		t.Errorf("unexpected marks (-want +got):\n%s", diff)
	}
	l.Toggle(7)
	if diff := cmp.Diff([]int{2, 5, 9}, l.Lines()); diff != "" {
		t.Errorf("unexpected marks after removal (-want +got):\n%s", diff)
	}
	if l.Contains(7) || !l.Contains(5) {
		t.Errorf("Contains disagrees with %v", l.Lines())
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	for _, lines := range [][]int{{}, {0}, {3, 4}, {1, 10, 100}} {
		for _, line := range []int{0, 1, 4, 50, 100, 101} {
			l := listOf(lines...)
			before := l.Lines()
			l.Toggle(line)
			l.Toggle(line)
			if diff := cmp.Diff(before, l.Lines()); diff != "" {
				t.Errorf("toggle(%d) twice on %v changed marks (-want +got):\n%s", line, lines, diff)
			}
		}
	}
}

func TestNavigation(t *testing.T) {
	l := listOf(2, 5, 9)
	tests := []struct {
		line int
		next int
		prev int
	}{
		{line: 0, next: 2, prev: 9},
		{line: 2, next: 5, prev: 9},
		{line: 3, next: 5, prev: 2},
		{line: 5, next: 9, prev: 2},
		{line: 9, next: 2, prev: 5},
		{line: 12, next: 2, prev: 9},
	}
	for _, tt := range tests {
		if next, ok := l.NextAfter(tt.line); !ok || next != tt.next {
			t.Errorf("NextAfter(%d) = %d, %v; want %d", tt.line, next, ok, tt.next)
		}
		if prev, ok := l.PrevBefore(tt.line); !ok || prev != tt.prev {
			t.Errorf("PrevBefore(%d) = %d, %v; want %d", tt.line, prev, ok, tt.prev)
		}
	}
}

func TestEmptyList(t *testing.T) {
	l := NewList()
	if _, ok := l.NextAfter(3); ok {
		t.Errorf("NextAfter on an empty list should find nothing")
	}
	if _, ok := l.PrevBefore(3); ok {
		t.Errorf("PrevBefore on an empty list should find nothing")
	}
}

func TestSingleMarkIsItsOwnNeighbor(t *testing.T) {
	l := listOf(4)
	for _, line := range []int{0, 4, 8} {
		next, _ := l.NextAfter(line)
		prev, _ := l.PrevBefore(line)
		if next != 4 || prev != 4 {
			t.Errorf("line %d: next=%d prev=%d, want 4 and 4", line, next, prev)
		}
	}
}

func TestNextAndPreviousDiffer(t *testing.T) {
	l := listOf(1, 4, 6, 20)
	for line := 0; line < 25; line++ {
		next, _ := l.NextAfter(line)
		prev, _ := l.PrevBefore(line)
		if next == prev {
			t.Errorf("line %d: next and previous are both %d", line, next)
		}
	}
	// with two marks, lines between them still see distinct neighbors
	l = listOf(3, 8)
	for _, line := range []int{0, 5, 10} {
		next, _ := l.NextAfter(line)
		prev, _ := l.PrevBefore(line)
		if next == prev {
			t.Errorf("line %d: next and previous are both %d", line, next)
		}
	}
}

func TestClear(t *testing.T) {
	l := listOf(1, 2, 3)
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Clear left %d marks", l.Len())
	}
}
