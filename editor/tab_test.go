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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/timburks/coder/config"
	gott "github.com/timburks/coder/types"
)

func TestTabStates(t *testing.T) {
	tab := NewTab(config.Default())
	if s := tab.State(); s != StateEmpty {
		t.Fatalf("new tab is %s", s)
	}
	tab.InsertText(gott.Point{}, "x")
	if s := tab.State(); s != StateDirty {
		t.Errorf("edited new tab is %s", s)
	}
	tab.Load([]byte("print(1)\n"), "/tmp/a.py", false)
	if s := tab.State(); s != StateLoaded {
		t.Errorf("loaded tab is %s", s)
	}
	tab.InsertText(gott.Point{}, "#")
	if s := tab.State(); s != StateDirty {
		t.Errorf("edited tab is %s", s)
	}
	tab.markSaved("/tmp/b.py")
	if s := tab.State(); s != StateSaved {
		t.Errorf("saved tab is %s", s)
	}
	if tab.GetFileName() != "/tmp/b.py" || tab.GetName() != "b.py" {
		t.Errorf("saved tab is named %q (%s)", tab.GetName(), tab.GetFileName())
	}
	tab.DeleteText(gott.Point{}, gott.Point{Col: 1})
	if s := tab.State(); s != StateDirty {
		t.Errorf("edited saved tab is %s", s)
	}
	tab.closed = true
	if s := tab.State(); s != StateClosed {
		t.Errorf("closed tab is %s", s)
	}
}

func TestLoadResetsTab(t *testing.T) {
	tab := NewTab(config.Default())
	tab.Load([]byte("a\nb\nc\nd"), "/tmp/x.txt", false)
	tab.SetCursor(gott.Point{Row: 2, Col: 1})
	tab.ToggleMark()
	tab.ToggleSelection()
	tab.InsertText(gott.Point{Row: 3, Col: 1}, "!")
	tab.Load([]byte("new"), "/tmp/y.txt", false)
	if tab.GetCursor() != (gott.Point{}) {
		t.Errorf("cursor at %+v after load", tab.GetCursor())
	}
	if len(tab.GetMarks()) != 0 {
		t.Errorf("marks %v after load", tab.GetMarks())
	}
	if _, _, ok := tab.GetSelection(); ok {
		t.Errorf("selection survived load")
	}
	if tab.IsDirty() {
		t.Errorf("tab is dirty after load")
	}
}

func TestLabelAndStatus(t *testing.T) {
	tab := NewTab(config.Default())
	if got := tab.GetLabel(); got != "New Document" {
		t.Errorf("label is %q", got)
	}
	tab.Load([]byte("one\ntwo"), "/tmp/notes.txt", false)
	tab.SetCursor(gott.Point{Row: 1, Col: 2})
	if got := tab.GetStatus(); got != "/tmp/notes.txt       Line: 2  Col: 3" {
		t.Errorf("status is %q", got)
	}
	tab.InsertText(tab.GetCursor(), "!")
	if got := tab.GetLabel(); got != "notes.txt *" {
		t.Errorf("label is %q", got)
	}
}

func TestPositionsMoveWithEdits(t *testing.T) {
	tab := NewTab(config.Default())
	tab.Load([]byte("hello world"), "", false)
	tab.Select(gott.Point{Row: 0, Col: 6}, gott.Point{Row: 0, Col: 11})

	// text inserted before the selection moves it
	tab.InsertText(gott.Point{Row: 0, Col: 0}, "well\n")
	start, end, ok := tab.GetSelection()
	if !ok || start != (gott.Point{Row: 1, Col: 6}) || end != (gott.Point{Row: 1, Col: 11}) {
		t.Errorf("selection is %+v-%+v", start, end)
	}
	if got := tab.GetSelectedText(); got != "world" {
		t.Errorf("selected %q", got)
	}

	// text deleted before the selection moves it back
	tab.DeleteText(gott.Point{Row: 0, Col: 4}, gott.Point{Row: 1, Col: 0})
	start, end, _ = tab.GetSelection()
	if start != (gott.Point{Row: 0, Col: 10}) || end != (gott.Point{Row: 0, Col: 15}) {
		t.Errorf("selection is %+v-%+v", start, end)
	}

	// positions inside a deleted range collapse to its start
	tab.DeleteText(gott.Point{Row: 0, Col: 8}, gott.Point{Row: 0, Col: 12})
	if got := tab.GetCursor(); got != (gott.Point{Row: 0, Col: 11}) {
		t.Errorf("cursor at %+v", got)
	}
	start, _, _ = tab.GetSelection()
	if start != (gott.Point{Row: 0, Col: 8}) {
		t.Errorf("selection starts at %+v", start)
	}
}

func TestMarkNavigation(t *testing.T) {
	tab := NewTab(config.Default())
	tab.Load([]byte("0\n1\n2\n3\n4\n5\n6\n7\n8\n9"), "", false)
	for _, row := range []int{9, 2, 5} {
		tab.SetCursor(gott.Point{Row: row, Col: 1})
		tab.ToggleMark()
	}
	if diff := cmp.Diff([]int{2, 5, 9}, tab.GetMarks()); diff != "" {
		t.Errorf("unexpected marks (-want +got):\n%s", diff)
	}
	tab.SetCursor(gott.Point{Row: 5, Col: 1})
	tab.NextMark()
	if got := tab.GetCursor(); got != (gott.Point{Row: 9, Col: 0}) {
		t.Errorf("next mark moved to %+v", got)
	}
	tab.NextMark()
	if got := tab.GetCursor(); got != (gott.Point{Row: 2, Col: 0}) {
		t.Errorf("next mark wrapped to %+v", got)
	}
	tab.PreviousMark()
	if got := tab.GetCursor(); got != (gott.Point{Row: 9, Col: 0}) {
		t.Errorf("previous mark wrapped to %+v", got)
	}
	if !tab.IsMarked(9) || tab.IsMarked(8) {
		t.Errorf("IsMarked disagrees with %v", tab.GetMarks())
	}
}

func TestMoveCursor(t *testing.T) {
	tab := NewTab(config.Default())
	tab.Load([]byte("long line\nab\nlonger line"), "", false)
	tab.SetCursor(gott.Point{Row: 0, Col: 8})
	tab.MoveCursor(gott.MoveDown, 1)
	if got := tab.GetCursor(); got != (gott.Point{Row: 1, Col: 2}) {
		t.Errorf("cursor at %+v after moving down", got)
	}
	tab.MoveCursor(gott.MoveRight, 1)
	if got := tab.GetCursor(); got != (gott.Point{Row: 2, Col: 0}) {
		t.Errorf("cursor at %+v after moving right past the end", got)
	}
	tab.MoveCursor(gott.MoveLeft, 1)
	if got := tab.GetCursor(); got != (gott.Point{Row: 1, Col: 2}) {
		t.Errorf("cursor at %+v after moving left past the start", got)
	}
	tab.MoveCursor(gott.MoveUp, 10)
	tab.MoveToEndOfLine()
	if got := tab.GetCursor(); got != (gott.Point{Row: 0, Col: 9}) {
		t.Errorf("cursor at %+v", got)
	}
}

func TestScroll(t *testing.T) {
	tab := NewTab(config.Default())
	tab.Load([]byte("0\n1\n2\n3\n4\n5\n6\n7\n8\n9"), "", false)
	tab.SetCursor(gott.Point{Row: 7})
	if offset := tab.Scroll(gott.Size{Rows: 5, Cols: 10}); offset.Rows != 3 {
		t.Errorf("offset is %+v", offset)
	}
	tab.SetCursor(gott.Point{Row: 1})
	if offset := tab.Scroll(gott.Size{Rows: 5, Cols: 10}); offset.Rows != 1 {
		t.Errorf("offset is %+v", offset)
	}
}

func TestHighlighting(t *testing.T) {
	tab := NewTab(config.Default())
	tab.Load([]byte("def f():\n    return 1\n"), "/tmp/script.py", false)
	colors := tab.GetRowColors(0)
	if len(colors) != len("def f():") {
		t.Fatalf("got %d colors for %d characters", len(colors), len("def f():"))
	}
	if colors[0] == gott.ColorDefault {
		t.Errorf("keyword was not colored")
	}
	plain := NewTab(config.Default())
	plain.Load([]byte("def f():"), "/tmp/notes.unknownext", false)
	for _, c := range plain.GetRowColors(0) {
		if c != gott.ColorDefault {
			t.Errorf("unknown file type was colored")
			break
		}
	}
}

func TestHighlightingKeepsCarriageReturnsInRow(t *testing.T) {
	tab := NewTab(config.Default())
	tab.Load([]byte("x = 1\r# note\ndef f():"), "/tmp/script.py", false)
	reference := NewTab(config.Default())
	reference.Load([]byte("def f():"), "/tmp/script.py", false)
	if diff := cmp.Diff(reference.GetRowColors(0), tab.GetRowColors(1)); diff != "" {
		t.Errorf("second row colors differ (-want +got):\n%s", diff)
	}
}
