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
	"fmt"
	"path/filepath"

	"github.com/timburks/coder/config"
	"github.com/timburks/coder/marks"
	gott "github.com/timburks/coder/types"
)

// This is the number of the last tab created. Use it to uniquely number tabs.
var lastTabNumber = -1

// TabState describes where a document is in its lifecycle.
type TabState int

const (
	StateEmpty TabState = iota
	StateLoaded
	StateDirty
	StateSaved
	StateClosed
)

func (s TabState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateDirty:
		return "dirty"
	case StateSaved:
		return "saved"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// A Tab holds one open document: its buffer, cursor, selection and marks.
// All changes to the buffer go through InsertText, DeleteText and SetText,
// which keep the cursor and selection in place and mark the tab dirty.
type Tab struct {
	config      *config.Config
	number      int
	name        string // fixed display name, used by tabs without files
	fileName    string
	buffer      *Buffer
	cursor      gott.Point
	anchor      gott.Point // other end of the selection
	selecting   bool
	offset      gott.Size // display offset
	marks       *marks.List
	dirty       bool
	saved       bool
	readOnly    bool
	closed      bool
	highlighter *Highlighter
	highlighted bool
	undo        []gott.Operation // inverses of the operations performed on this tab
}

func NewTab(c *config.Config) *Tab {
	lastTabNumber++
	return &Tab{
		config: c,
		number: lastTabNumber,
		buffer: NewBuffer(),
		marks:  marks.NewList(),
	}
}

func (t *Tab) GetNumber() int {
	return t.number
}

func (t *Tab) GetName() string {
	if t.name != "" {
		return t.name
	}
	if t.fileName != "" {
		return filepath.Base(t.fileName)
	}
	return "New Document"
}

func (t *Tab) GetLabel() string {
	if t.dirty {
		return t.GetName() + " *"
	}
	return t.GetName()
}

func (t *Tab) GetFileName() string {
	return t.fileName
}

func (t *Tab) SetFileName(name string) {
	t.fileName = name
	t.highlighter = NewHighlighter(name, t.config.Language(name), t.config.Style())
	t.highlighted = false
}

func (t *Tab) SetNameAndReadOnly(name string, readOnly bool) {
	t.name = name
	t.readOnly = readOnly
}

func (t *Tab) GetStatus() string {
	return fmt.Sprintf("%s       Line: %d  Col: %d", t.fileName, t.cursor.Row+1, t.cursor.Col+1)
}

func (t *Tab) IsDirty() bool {
	return t.dirty
}

func (t *Tab) IsReadOnly() bool {
	return t.readOnly
}

func (t *Tab) State() TabState {
	switch {
	case t.closed:
		return StateClosed
	case t.dirty:
		return StateDirty
	case t.fileName == "":
		return StateEmpty
	case t.saved:
		return StateSaved
	default:
		return StateLoaded
	}
}

// Load replaces the document with bytes read from fileName.
func (t *Tab) Load(bytes []byte, fileName string, dirty bool) {
	t.buffer.LoadBytes(bytes)
	t.cursor = gott.Point{}
	t.anchor = gott.Point{}
	t.selecting = false
	t.offset = gott.Size{}
	t.marks.Clear()
	t.SetFileName(fileName)
	t.dirty = dirty
	t.saved = false
	t.undo = nil
}

func (t *Tab) markSaved(fileName string) {
	if fileName != t.fileName {
		t.SetFileName(fileName)
	}
	t.dirty = false
	t.saved = true
}

// changed is called after every modification of the buffer.
func (t *Tab) changed() {
	t.dirty = true
	t.highlighted = false
}

// Text

func (t *Tab) GetRowCount() int {
	return t.buffer.GetRowCount()
}

func (t *Tab) GetRowText(row int) string {
	return t.buffer.GetRowText(row)
}

func (t *Tab) GetCursor() gott.Point {
	return t.cursor
}

func (t *Tab) SetCursor(cursor gott.Point) {
	t.cursor = t.buffer.Clip(cursor)
}

func (t *Tab) GetSelection() (gott.Point, gott.Point, bool) {
	if !t.selecting || t.anchor == t.cursor {
		return gott.Point{}, gott.Point{}, false
	}
	if t.cursor.Before(t.anchor) {
		return t.cursor, t.anchor, true
	}
	return t.anchor, t.cursor, true
}

func (t *Tab) InsertText(at gott.Point, text string) gott.Point {
	at = t.buffer.Clip(at)
	if text == "" {
		return at
	}
	end := t.buffer.InsertText(at, text)
	t.cursor = shiftForInsert(t.cursor, at, end)
	t.anchor = shiftForInsert(t.anchor, at, end)
	t.changed()
	return end
}

func (t *Tab) DeleteText(start, end gott.Point) string {
	start = t.buffer.Clip(start)
	end = t.buffer.Clip(end)
	if end.Before(start) {
		start, end = end, start
	}
	if start == end {
		return ""
	}
	deleted := t.buffer.DeleteText(start, end)
	t.cursor = shiftForDelete(t.cursor, start, end)
	t.anchor = shiftForDelete(t.anchor, start, end)
	t.changed()
	return deleted
}

func (t *Tab) GetText() string {
	return t.buffer.String()
}

func (t *Tab) SetText(text string) {
	t.buffer.LoadBytes([]byte(text))
	t.cursor = t.buffer.Clip(t.cursor)
	t.anchor = t.buffer.Clip(t.anchor)
	t.changed()
}

func (t *Tab) Bytes() []byte {
	return t.buffer.Bytes()
}

// Positions after an insertion point move with the inserted text.
func shiftForInsert(q, at, end gott.Point) gott.Point {
	if q.Before(at) {
		return q
	}
	if q.Row == at.Row {
		return gott.Point{Row: end.Row, Col: end.Col + q.Col - at.Col}
	}
	q.Row += end.Row - at.Row
	return q
}

// Positions inside a deleted range collapse to its start.
func shiftForDelete(q, start, end gott.Point) gott.Point {
	if !start.Before(q) {
		return q
	}
	if q.Before(end) {
		return start
	}
	if q.Row == end.Row {
		return gott.Point{Row: start.Row, Col: start.Col + q.Col - end.Col}
	}
	q.Row -= end.Row - start.Row
	return q
}

// Display

func (t *Tab) GetRowColors(row int) []gott.Color {
	if !t.highlighted {
		if t.highlighter != nil {
			t.highlighter.Highlight(t.buffer)
		}
		t.highlighted = true
	}
	return t.buffer.GetRowColors(row)
}

// Scroll recomputes the display offset to keep the cursor onscreen.
func (t *Tab) Scroll(size gott.Size) gott.Size {
	if t.cursor.Row < t.offset.Rows {
		// scroll up
		t.offset.Rows = t.cursor.Row
	}
	if size.Rows > 0 && t.cursor.Row-t.offset.Rows >= size.Rows {
		// scroll down
		t.offset.Rows = t.cursor.Row - size.Rows + 1
	}
	if t.cursor.Col < t.offset.Cols {
		// scroll left
		t.offset.Cols = t.cursor.Col
	}
	if size.Cols > 0 && t.cursor.Col-t.offset.Cols >= size.Cols {
		// scroll right
		t.offset.Cols = t.cursor.Col - size.Cols + 1
	}
	return t.offset
}

// Selection

func (t *Tab) Select(start, end gott.Point) {
	t.anchor = t.buffer.Clip(start)
	t.cursor = t.buffer.Clip(end)
	t.selecting = true
}

// ToggleSelection starts a selection at the cursor or drops the current one.
func (t *Tab) ToggleSelection() {
	if t.selecting {
		t.selecting = false
		return
	}
	t.anchor = t.cursor
	t.selecting = true
}

func (t *Tab) ClearSelection() {
	t.selecting = false
}

func (t *Tab) GetSelectedText() string {
	start, end, ok := t.GetSelection()
	if !ok {
		return ""
	}
	return t.buffer.TextRange(start, end)
}

// Marks

func (t *Tab) IsMarked(row int) bool {
	return t.marks.Contains(row)
}

func (t *Tab) GetMarks() []int {
	return t.marks.Lines()
}

func (t *Tab) ToggleMark() {
	t.marks.Toggle(t.cursor.Row)
}

func (t *Tab) NextMark() {
	if row, ok := t.marks.NextAfter(t.cursor.Row); ok {
		t.moveToMark(row)
	}
}

func (t *Tab) PreviousMark() {
	if row, ok := t.marks.PrevBefore(t.cursor.Row); ok {
		t.moveToMark(row)
	}
}

func (t *Tab) moveToMark(row int) {
	t.selecting = false
	t.SetCursor(gott.Point{Row: row, Col: 0})
}

// Movement

func (t *Tab) MoveCursor(direction int, multiplier int) {
	for i := 0; i < multiplier; i++ {
		rowLength := t.buffer.GetRowLength(t.cursor.Row)
		switch direction {
		case gott.MoveLeft:
			if t.cursor.Col > 0 {
				t.cursor.Col--
			} else if t.cursor.Row > 0 {
				t.cursor.Row--
				t.cursor.Col = t.buffer.GetRowLength(t.cursor.Row)
			}
		case gott.MoveRight:
			if t.cursor.Col < rowLength {
				t.cursor.Col++
			} else if t.cursor.Row < t.buffer.GetRowCount()-1 {
				t.cursor.Row++
				t.cursor.Col = 0
			}
		case gott.MoveUp:
			if t.cursor.Row > 0 {
				t.cursor.Row--
			}
		case gott.MoveDown:
			if t.cursor.Row < t.buffer.GetRowCount()-1 {
				t.cursor.Row++
			}
		}
		// don't go past the end of the current line
		t.cursor = t.buffer.Clip(t.cursor)
	}
}

func (t *Tab) MoveToBeginningOfLine() {
	t.cursor.Col = 0
}

func (t *Tab) MoveToEndOfLine() {
	t.cursor.Col = t.buffer.GetRowLength(t.cursor.Row)
}
