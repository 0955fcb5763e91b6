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

// Package marks keeps the bookmarked lines of a document.
package marks

import "sort"

// A List is an ascending set of distinct line numbers.
type List struct {
	lines []int
}

func NewList() *List {
	return &List{lines: make([]int, 0)}
}

// Toggle removes line if it is marked and marks it otherwise.
func (l *List) Toggle(line int) {
	i := sort.SearchInts(l.lines, line)
	if i < len(l.lines) && l.lines[i] == line {
		l.lines = append(l.lines[:i], l.lines[i+1:]...)
		return
	}
	l.lines = append(l.lines, 0)
	copy(l.lines[i+1:], l.lines[i:])
	l.lines[i] = line
}

// NextAfter returns the first mark after line, wrapping around to the first mark.
func (l *List) NextAfter(line int) (int, bool) {
	if len(l.lines) == 0 {
		return 0, false
	}
	i := sort.SearchInts(l.lines, line+1)
	if i == len(l.lines) {
		return l.lines[0], true
	}
	return l.lines[i], true
}

// PrevBefore returns the last mark before line, wrapping around to the last mark.
func (l *List) PrevBefore(line int) (int, bool) {
	if len(l.lines) == 0 {
		return 0, false
	}
	i := sort.SearchInts(l.lines, line)
	if i == 0 {
		return l.lines[len(l.lines)-1], true
	}
	return l.lines[i-1], true
}

func (l *List) Contains(line int) bool {
	i := sort.SearchInts(l.lines, line)
	return i < len(l.lines) && l.lines[i] == line
}

func (l *List) Len() int {
	return len(l.lines)
}

// Lines returns a copy of the marked lines in ascending order.
func (l *List) Lines() []int {
	lines := make([]int, len(l.lines))
	copy(lines, l.lines)
	return lines
}

func (l *List) Clear() {
	l.lines = l.lines[:0]
}
