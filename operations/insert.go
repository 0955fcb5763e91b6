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
	"strings"

	gott "github.com/timburks/coder/types"
)

// InsertText inserts text at the cursor, replacing the selection if there is one.
type InsertText struct {
	operation
	Text string
}

func (op *InsertText) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, multiplier)
	text := strings.Repeat(op.Text, op.Multiplier)
	if text == "" {
		return nil
	}
	if start, end, ok := t.GetSelection(); ok {
		before := t.GetText()
		t.ClearSelection()
		t.DeleteText(start, end)
		t.SetCursor(t.InsertText(start, text))
		inverse := &Restore{Text: before}
		inverse.copyForUndo(&op.operation)
		return inverse
	}
	start := t.GetCursor()
	end := t.InsertText(start, text)
	t.SetCursor(end)
	inverse := &DeleteText{Start: start, End: end}
	inverse.copyForUndo(&op.operation)
	return inverse
}

// DeleteText deletes the text between Start and End.
type DeleteText struct {
	operation
	Start gott.Point
	End   gott.Point
}

func (op *DeleteText) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, multiplier)
	deleted := t.DeleteText(op.Start, op.End)
	t.SetCursor(op.Start)
	if deleted == "" {
		return nil
	}
	inverse := &InsertText{Text: deleted}
	inverse.copyForUndo(&op.operation)
	inverse.Cursor = op.Start
	return inverse
}

// Coalesce extends previous to cover op when both undo typing on the same
// line and op continues where previous ended.
func (op *DeleteText) Coalesce(previous gott.Operation) bool {
	p, ok := previous.(*DeleteText)
	if !ok {
		return false
	}
	// only single characters typed one after another are merged
	if op.Start.Row != op.End.Row || op.End.Col-op.Start.Col != 1 {
		return false
	}
	if p.End != op.Start || p.Start.Row != p.End.Row {
		return false
	}
	p.End = op.End
	return true
}
