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
	gott "github.com/timburks/coder/types"
)

type operation struct {
	Cursor     gott.Point
	Multiplier int
	Undo       bool
}

func (op *operation) init(t gott.Tab, multiplier int) {
	if op.Undo {
		t.SetCursor(op.Cursor)
	} else {
		op.Cursor = t.GetCursor()
		if op.Multiplier == 0 {
			op.Multiplier = multiplier
		}
	}
	if op.Multiplier < 1 {
		op.Multiplier = 1
	}
}

func (op *operation) copyForUndo(other *operation) {
	op.Cursor = other.Cursor
	op.Multiplier = 1
	op.Undo = true
}

// restoring runs edit Multiplier times and returns a Restore of the
// previous text, or nil if edit changed nothing.
func (op *operation) restoring(t gott.Tab, edit func()) gott.Operation {
	before := t.GetText()
	for i := 0; i < op.Multiplier; i++ {
		edit()
	}
	if t.GetText() == before {
		return nil
	}
	inverse := &Restore{Text: before}
	inverse.copyForUndo(op)
	return inverse
}

// Restore puts back the whole text of a tab.
type Restore struct {
	operation
	Text string
}

func (op *Restore) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	t.ClearSelection()
	t.SetText(op.Text)
	t.SetCursor(op.Cursor)
	return nil
}
