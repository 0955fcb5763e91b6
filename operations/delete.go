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
package operations

import (
	"github.com/timburks/coder/edit"
	gott "github.com/timburks/coder/types"
)

// Backspace deletes the indent unit before the cursor as a whole, or else
// the selection, or else the single character before the cursor.
type Backspace struct {
	operation
}

func (op *Backspace) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, multiplier)
	deleted := ""
	for i := 0; i < op.Multiplier; i++ {
		if start, end, ok := t.GetSelection(); ok {
			t.ClearSelection()
			deleted = t.DeleteText(start, end) + deleted
			t.SetCursor(start)
			continue
		}
		end := t.GetCursor()
		if end.Col == 0 && end.Row == 0 {
			break
		}
		if edit.BackspaceTab(t) {
			deleted = edit.IndentUnit + deleted
			continue
		}
		start := gott.Point{Row: end.Row, Col: end.Col - 1}
		if end.Col == 0 {
			start = gott.Point{Row: end.Row - 1, Col: len([]rune(t.GetRowText(end.Row - 1)))}
		}
		deleted = t.DeleteText(start, end) + deleted
	}
	return reinsert(&op.operation, t, deleted)
}

// DeleteCharacter deletes the selection or the character after the cursor.
type DeleteCharacter struct {
	operation
}

func (op *DeleteCharacter) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, multiplier)
	deleted := ""
	for i := 0; i < op.Multiplier; i++ {
		if start, end, ok := t.GetSelection(); ok {
			t.ClearSelection()
			deleted += t.DeleteText(start, end)
			t.SetCursor(start)
			continue
		}
		cursor := t.GetCursor()
		next := gott.Point{Row: cursor.Row, Col: cursor.Col + 1}
		if cursor.Col >= len([]rune(t.GetRowText(cursor.Row))) {
			if cursor.Row >= t.GetRowCount()-1 {
				break
			}
			next = gott.Point{Row: cursor.Row + 1, Col: 0}
		}
		deleted += t.DeleteText(cursor, next)
	}
	inverse := reinsert(&op.operation, t, deleted)
	if inverse != nil {
		// put the cursor back where the deletion happened
		return &cursorAfter{Operation: inverse, Cursor: t.GetCursor()}
	}
	return nil
}

// DeleteSelection deletes the selected text.
type DeleteSelection struct {
	operation
}

func (op *DeleteSelection) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, multiplier)
	start, end, ok := t.GetSelection()
	if !ok {
		return nil
	}
	t.ClearSelection()
	deleted := t.DeleteText(start, end)
	t.SetCursor(start)
	return reinsert(&op.operation, t, deleted)
}

// reinsert returns an operation that inserts deleted at the cursor.
func reinsert(op *operation, t gott.Tab, deleted string) gott.Operation {
	if deleted == "" {
		return nil
	}
	inverse := &InsertText{Text: deleted}
	inverse.copyForUndo(op)
	inverse.Cursor = t.GetCursor()
	return inverse
}

// cursorAfter performs an operation and then moves the cursor.
type cursorAfter struct {
	gott.Operation
	Cursor gott.Point
}

func (op *cursorAfter) Perform(e gott.Editor, multiplier int) gott.Operation {
	inverse := op.Operation.Perform(e, multiplier)
	e.GetActiveTab().SetCursor(op.Cursor)
	return inverse
}
