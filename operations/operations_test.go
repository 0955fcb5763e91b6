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
package operations_test

import (
	"testing"

	"github.com/timburks/coder/config"
	"github.com/timburks/coder/editor"
	"github.com/timburks/coder/operations"
	gott "github.com/timburks/coder/types"
)

const source = `THE GETTYSBURG ADDRESS:

Four score and seven years ago our fathers brought forth on this
continent a new nation, conceived in liberty and dedicated to the
proposition that all men are created equal.
`

func setup(t *testing.T) *editor.Editor {
	e := editor.NewEditor(config.Default())
	e.ActiveTab().Load([]byte(source), "", false)
	return e
}

// undo everything and check that the original text is back
func final(t *testing.T, e *editor.Editor, undos int) {
	for i := 0; i < undos; i++ {
		e.PerformUndo()
	}
	if text := e.ActiveTab().GetText(); text != source {
		t.Errorf("Undo did not restore the text, got:\n%s", text)
	}
}

func TestInsert(t *testing.T) {
	e := setup(t)
	e.ActiveTab().SetCursor(gott.Point{Row: 1, Col: 0})
	e.Perform(&operations.InsertText{Text: "hello, world!"}, 1)
	expected := "hello, world!"
	if row := e.ActiveTab().GetRowText(1); row != expected {
		t.Errorf("Unexpected row after insertion: '%s'", row)
	}
	if cursor := e.ActiveTab().GetCursor(); cursor != (gott.Point{Row: 1, Col: 13}) {
		t.Errorf("Unexpected cursor after insertion: %+v", cursor)
	}
	e.ActiveTab().SetCursor(gott.Point{Row: 0, Col: 4})
	e.Perform(&operations.InsertText{Text: "BIG LEAGUE "}, 1)
	expected = "THE BIG LEAGUE GETTYSBURG ADDRESS:"
	if row := e.ActiveTab().GetRowText(0); row != expected {
		t.Errorf("Unexpected row after insertion: '%s'", row)
	}
	e.ActiveTab().SetCursor(gott.Point{Row: 2, Col: 0})
	e.Perform(&operations.InsertText{Text: "ab\n"}, 3)
	expected = "ab"
	for row := 2; row < 5; row++ {
		if text := e.ActiveTab().GetRowText(row); text != expected {
			t.Errorf("Unexpected row %d after multiple insertion: '%s'", row, text)
		}
	}
	final(t, e, 3)
}

func TestTypingUndoesAsOneStep(t *testing.T) {
	e := setup(t)
	e.ActiveTab().SetCursor(gott.Point{Row: 1, Col: 0})
	for _, c := range "typed" {
		e.Perform(&operations.InsertText{Text: string(c)}, 1)
	}
	if row := e.ActiveTab().GetRowText(1); row != "typed" {
		t.Errorf("Unexpected row after typing: '%s'", row)
	}
	final(t, e, 1)
}

func TestInsertReplacesSelection(t *testing.T) {
	e := setup(t)
	tab := e.ActiveTab()
	tab.Select(gott.Point{Row: 0, Col: 4}, gott.Point{Row: 0, Col: 14})
	e.Perform(&operations.InsertText{Text: "LINCOLN"}, 1)
	expected := "THE LINCOLN ADDRESS:"
	if row := tab.GetRowText(0); row != expected {
		t.Errorf("Unexpected row after insertion: '%s'", row)
	}
	final(t, e, 1)
}

func TestBackspace(t *testing.T) {
	e := setup(t)
	tab := e.ActiveTab()
	tab.SetCursor(gott.Point{Row: 2, Col: 10})
	e.Perform(&operations.Backspace{}, 5)
	expected := "Four  and seven years ago our fathers brought forth on this"
	if row := tab.GetRowText(2); row != expected {
		t.Errorf("Unexpected row after backspace: '%s'", row)
	}
	final(t, e, 1)

	// at the start of a line, backspace joins it to the previous one
	tab.SetCursor(gott.Point{Row: 3, Col: 0})
	e.Perform(&operations.Backspace{}, 1)
	if rows := tab.GetRowCount(); rows != 5 {
		t.Errorf("Invalid row count after join: %d", rows)
	}
	if cursor := tab.GetCursor(); cursor.Row != 2 || cursor.Col != 64 {
		t.Errorf("Unexpected cursor after join: %+v", cursor)
	}
	final(t, e, 1)
}

func TestBackspaceCollapsesIndent(t *testing.T) {
	e := editor.NewEditor(config.Default())
	tab := e.ActiveTab()
	tab.Load([]byte("def f():\n        return 1"), "", false)
	tab.SetCursor(gott.Point{Row: 1, Col: 8})
	e.Perform(&operations.Backspace{}, 1)
	if row := tab.GetRowText(1); row != "    return 1" {
		t.Errorf("Unexpected row after backspace: '%s'", row)
	}
	e.PerformUndo()
	if row := tab.GetRowText(1); row != "        return 1" {
		t.Errorf("Unexpected row after undo: '%s'", row)
	}
}

func TestBackspaceAtStartOfDocument(t *testing.T) {
	e := setup(t)
	e.Perform(&operations.Backspace{}, 3)
	if text := e.ActiveTab().GetText(); text != source {
		t.Errorf("Backspace at the start changed the text")
	}
	e.PerformUndo()
	if text := e.ActiveTab().GetText(); text != source {
		t.Errorf("Undo after a no-op changed the text")
	}
}

func TestDeleteCharacter(t *testing.T) {
	e := setup(t)
	tab := e.ActiveTab()
	tab.SetCursor(gott.Point{Row: 2, Col: 0})
	e.Perform(&operations.DeleteCharacter{}, 27)
	expected := "ago our fathers brought forth on this"
	if row := tab.GetRowText(2); row != expected {
		t.Errorf("Unexpected remainder after deletion: '%s'", row)
	}
	final(t, e, 1)
	if cursor := tab.GetCursor(); cursor != (gott.Point{Row: 2, Col: 0}) {
		t.Errorf("Unexpected cursor after undo: %+v", cursor)
	}
}

func TestDeleteSelection(t *testing.T) {
	e := setup(t)
	tab := e.ActiveTab()
	tab.Select(gott.Point{Row: 2, Col: 5}, gott.Point{Row: 4, Col: 0})
	e.Perform(&operations.DeleteSelection{}, 1)
	expected := "Four proposition that all men are created equal."
	if row := tab.GetRowText(2); row != expected {
		t.Errorf("Unexpected row after deletion: '%s'", row)
	}
	final(t, e, 1)
}

func TestLineEdits(t *testing.T) {
	e := setup(t)
	tab := e.ActiveTab()
	tab.Select(gott.Point{Row: 2, Col: 0}, gott.Point{Row: 4, Col: 0})
	e.Perform(&operations.Indent{}, 1)
	e.Perform(&operations.ToggleComment{}, 1)
	for row := 2; row <= 4; row++ {
		if text := tab.GetRowText(row); text[:5] != "#    " {
			t.Errorf("Unexpected row %d after indent and comment: '%s'", row, text)
		}
	}
	tab.ClearSelection()
	tab.SetCursor(gott.Point{Row: 0, Col: 34})
	e.Perform(&operations.Autoindent{}, 1)
	if text := tab.GetRowText(1); text != "    " {
		t.Errorf("Unexpected autoindent: '%s'", text)
	}
	final(t, e, 3)
}

func TestIndentRepeats(t *testing.T) {
	e := setup(t)
	tab := e.ActiveTab()
	tab.SetCursor(gott.Point{Row: 1, Col: 0})
	e.Perform(&operations.Indent{}, 3)
	if text := tab.GetRowText(1); text != "            " {
		t.Errorf("Unexpected row after indent: '%s'", text)
	}
	e.Perform(&operations.Indent{Reverse: true}, 2)
	if text := tab.GetRowText(1); text != "    " {
		t.Errorf("Unexpected row after unindent: '%s'", text)
	}
	final(t, e, 2)
}

func TestReplaceTabsAndLineEndings(t *testing.T) {
	e := editor.NewEditor(config.Default())
	tab := e.ActiveTab()
	tab.Load([]byte("a\tb\r\nc"), "", false)
	e.Perform(&operations.ReplaceTabs{}, 1)
	e.Perform(&operations.NormalizeLineEndings{}, 1)
	if text := tab.GetText(); text != "a    b\nc" {
		t.Errorf("Unexpected text: %q", text)
	}
	e.PerformUndo()
	e.PerformUndo()
	if text := tab.GetText(); text != "a\tb\r\nc" {
		t.Errorf("Unexpected text after undo: %q", text)
	}
}

func TestReplace(t *testing.T) {
	e := setup(t)
	tab := e.ActiveTab()
	e.Perform(&operations.Replace{
		Start: gott.Point{Row: 2, Col: 5},
		End:   gott.Point{Row: 2, Col: 10},
		Text:  "dozen",
	}, 1)
	expected := "Four dozen and seven years ago our fathers brought forth on this"
	if row := tab.GetRowText(2); row != expected {
		t.Errorf("Unexpected row after replace: '%s'", row)
	}
	if cursor := tab.GetCursor(); cursor != (gott.Point{Row: 2, Col: 10}) {
		t.Errorf("Unexpected cursor after replace: %+v", cursor)
	}
	final(t, e, 1)
}

func TestReplaceAll(t *testing.T) {
	e := setup(t)
	op := &operations.ReplaceAll{Find: "an", Replacement: "AN"}
	e.Perform(op, 1)
	if op.Count != 2 {
		t.Errorf("Unexpected replacement count: %d", op.Count)
	}
	final(t, e, 1)
}

func TestReadOnlyTabIsNotChanged(t *testing.T) {
	e := setup(t)
	tab := e.ActiveTab()
	tab.SetNameAndReadOnly("*output*", true)
	e.Perform(&operations.InsertText{Text: "x"}, 1)
	e.Perform(&operations.ReplaceTabs{}, 1)
	if text := tab.GetText(); text != source {
		t.Errorf("Read-only tab was changed")
	}
}
