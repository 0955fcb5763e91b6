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

// Replace replaces the text between Start and End and leaves the cursor
// after the replacement.
type Replace struct {
	operation
	Start gott.Point
	End   gott.Point
	Text  string
}

func (op *Replace) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, 1)
	t.ClearSelection()
	deleted := t.DeleteText(op.Start, op.End)
	end := t.InsertText(op.Start, op.Text)
	if op.Undo {
		t.SetCursor(op.Cursor)
	} else {
		t.SetCursor(end)
	}
	if deleted == "" && op.Text == "" {
		return nil
	}
	inverse := &Replace{Start: op.Start, End: end, Text: deleted}
	inverse.copyForUndo(&op.operation)
	return inverse
}

// ReplaceAll replaces every occurrence of Find in the active tab.
// Count is set to the number of replacements made.
type ReplaceAll struct {
	operation
	Find        string
	Replacement string
	Count       int
}

func (op *ReplaceAll) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, 1)
	op.Count = 0
	if op.Find == "" {
		return nil
	}
	return op.restoring(t, func() {
		text := t.GetText()
		op.Count = strings.Count(text, op.Find)
		if op.Count > 0 {
			t.ClearSelection()
			t.SetText(strings.ReplaceAll(text, op.Find, op.Replacement))
		}
	})
}
