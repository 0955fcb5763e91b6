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
	"strings"

	gott "github.com/timburks/coder/types"
)

// A Buffer holds the rows of a document. It always has at least one row.
type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.LoadBytes(nil)
	return b
}

func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

func (b *Buffer) Bytes() []byte {
	return []byte(b.String())
}

func (b *Buffer) String() string {
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(string(row.Text))
	}
	return s.String()
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetRowText(i int) string {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].String()
	}
	return ""
}

func (b *Buffer) GetRowColors(i int) []gott.Color {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].GetColors()
	}
	return nil
}

// Clip moves p to the nearest valid position in the buffer.
func (b *Buffer) Clip(p gott.Point) gott.Point {
	p.Row = clipToRange(p.Row, 0, len(b.rows)-1)
	p.Col = clipToRange(p.Col, 0, b.rows[p.Row].Length())
	return p
}

// InsertText inserts text at p and returns the position just after it.
func (b *Buffer) InsertText(p gott.Point, text string) gott.Point {
	p = b.Clip(p)
	lines := strings.Split(text, "\n")
	row := b.rows[p.Row]
	if len(lines) == 1 {
		inserted := []rune(lines[0])
		row.Insert(p.Col, inserted)
		return gott.Point{Row: p.Row, Col: p.Col + len(inserted)}
	}
	tail := row.Split(p.Col)
	row.Insert(p.Col, []rune(lines[0]))
	added := make([]*Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		added = append(added, NewRow(line))
	}
	last := added[len(added)-1]
	end := gott.Point{Row: p.Row + len(added), Col: last.Length()}
	last.Join(tail)

	rows := make([]*Row, 0, len(b.rows)+len(added))
	rows = append(rows, b.rows[:p.Row+1]...)
	rows = append(rows, added...)
	rows = append(rows, b.rows[p.Row+1:]...)
	b.rows = rows
	return end
}

// DeleteText removes the text between start and end and returns it.
func (b *Buffer) DeleteText(start, end gott.Point) string {
	start = b.Clip(start)
	end = b.Clip(end)
	if end.Before(start) {
		start, end = end, start
	}
	if start.Row == end.Row {
		return string(b.rows[start.Row].Delete(start.Col, end.Col))
	}
	deleted := b.TextRange(start, end)
	first := b.rows[start.Row]
	first.Delete(start.Col, first.Length())
	last := b.rows[end.Row]
	last.Delete(0, end.Col)
	first.Join(last)
	b.rows = append(b.rows[:start.Row+1], b.rows[end.Row+1:]...)
	return deleted
}

// TextRange returns the text between start and end.
func (b *Buffer) TextRange(start, end gott.Point) string {
	start = b.Clip(start)
	end = b.Clip(end)
	if end.Before(start) {
		start, end = end, start
	}
	if start.Row == end.Row {
		return string(b.rows[start.Row].Text[start.Col:end.Col])
	}
	var s strings.Builder
	s.WriteString(string(b.rows[start.Row].Text[start.Col:]))
	for i := start.Row + 1; i < end.Row; i++ {
		s.WriteString("\n")
		s.WriteString(string(b.rows[i].Text))
	}
	s.WriteString("\n")
	s.WriteString(string(b.rows[end.Row].Text[:end.Col]))
	return s.String()
}

func (b *Buffer) TextAfter(row, col int) string {
	if row >= 0 && row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

// FirstPositionInRowAtOrAfterCol returns the column of the first match of
// text in row that starts at or after col, or -1.
func (b *Buffer) FirstPositionInRowAtOrAfterCol(row, col int, text string) int {
	if row < 0 || row >= len(b.rows) || text == "" {
		return -1
	}
	line := b.rows[row].Text
	col = clipToRange(col, 0, len(line))
	i := strings.Index(string(line[col:]), text)
	if i < 0 {
		return -1
	}
	return col + len([]rune(string(line[col:])[:i]))
}

// LastPositionInRowBeforeCol returns the column of the last match of text
// in row that ends at or before col, or -1.
func (b *Buffer) LastPositionInRowBeforeCol(row, col int, text string) int {
	if row < 0 || row >= len(b.rows) || text == "" {
		return -1
	}
	line := b.rows[row].Text
	col = clipToRange(col, 0, len(line))
	prefix := string(line[:col])
	i := strings.LastIndex(prefix, text)
	if i < 0 {
		return -1
	}
	return len([]rune(prefix[:i]))
}
