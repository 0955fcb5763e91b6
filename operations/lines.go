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

// Indent indents the selected lines or inserts an indent unit at the cursor.
// Reverse unindents.
type Indent struct {
	operation
	Reverse bool
}

func (op *Indent) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, multiplier)
	return op.restoring(t, func() { edit.Indent(t, op.Reverse) })
}

type Autoindent struct {
	operation
}

func (op *Autoindent) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, multiplier)
	if start, end, ok := t.GetSelection(); ok {
		// a new line replaces the selection
		t.ClearSelection()
		before := t.GetText()
		t.DeleteText(start, end)
		for i := 0; i < op.Multiplier; i++ {
			edit.Autoindent(t)
		}
		inverse := &Restore{Text: before}
		inverse.copyForUndo(&op.operation)
		return inverse
	}
	return op.restoring(t, func() { edit.Autoindent(t) })
}

type ToggleComment struct {
	operation
}

func (op *ToggleComment) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, multiplier)
	return op.restoring(t, func() { edit.ToggleComment(t) })
}

type ReplaceTabs struct {
	operation
}

func (op *ReplaceTabs) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, 1)
	return op.restoring(t, func() { edit.ReplaceTabs(t) })
}

type NormalizeLineEndings struct {
	operation
}

func (op *NormalizeLineEndings) Perform(e gott.Editor, multiplier int) gott.Operation {
	t := e.GetActiveTab()
	op.init(t, 1)
	return op.restoring(t, func() { edit.NormalizeLineEndings(t) })
}
