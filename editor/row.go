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
package editor

import (
	gott "github.com/timburks/coder/types"
)

// A row of text in the editor
type Row struct {
	Text   []rune
	Colors []gott.Color
}

// Tabs are kept as they are; replace-tabs converts them on request.
func NewRow(text string) *Row {
	r := &Row{}
	r.setText([]rune(text))
	return r
}

func (r *Row) setText(text []rune) {
	r.Text = text
	r.Colors = make([]gott.Color, len(r.Text))
}

func (r *Row) GetText() []rune {
	return r.Text
}

func (r *Row) GetColors() []gott.Color {
	return r.Colors
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// inserts text at col, clipping col to the row
func (r *Row) Insert(col int, text []rune) {
	col = clipToRange(col, 0, len(r.Text))
	line := make([]rune, 0, len(r.Text)+len(text))
	line = append(line, r.Text[0:col]...)
	line = append(line, text...)
	line = append(line, r.Text[col:]...)
	r.setText(line)
}

// deletes the characters in [start,end) and returns them
func (r *Row) Delete(start, end int) []rune {
	start = clipToRange(start, 0, len(r.Text))
	end = clipToRange(end, start, len(r.Text))
	deleted := make([]rune, end-start)
	copy(deleted, r.Text[start:end])
	line := make([]rune, 0, len(r.Text)-len(deleted))
	line = append(line, r.Text[0:start]...)
	line = append(line, r.Text[end:]...)
	r.setText(line)
	return deleted
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col < len(r.Text) {
		after := string(r.Text[col:])
		r.setText(r.Text[0:col])
		return NewRow(after)
	}
	return NewRow("")
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	line := make([]rune, 0, len(r.Text)+len(other.Text))
	line = append(line, r.Text...)
	line = append(line, other.Text...)
	r.setText(line)
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.Text) {
		return string(r.Text[col:])
	}
	return ""
}

func clipToRange(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
