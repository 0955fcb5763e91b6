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

// Package edit implements the line editing functions of coder: indent,
// unindent, autoindent, comment toggling, tab-collapsing backspace and
// tab replacement. They work on any types.Text and never fail.
package edit

import (
	"strings"

	gott "github.com/timburks/coder/types"
)

// IndentUnit is inserted for each level of indentation.
// Files depend on it staying four spaces.
const IndentUnit = "    "

const indentWidth = len(IndentUnit)

const commentPrefix = '#'

// Indent indents the selected lines, or inserts an indent unit at the cursor.
// With reverse set, it removes one indent unit instead.
func Indent(t gott.Text, reverse bool) {
	if start, end, ok := t.GetSelection(); ok {
		for row := start.Row; row <= end.Row; row++ {
			if reverse {
				if strings.HasPrefix(t.GetRowText(row), IndentUnit) {
					t.DeleteText(gott.Point{Row: row, Col: 0}, gott.Point{Row: row, Col: indentWidth})
				}
			} else {
				t.InsertText(gott.Point{Row: row, Col: 0}, IndentUnit)
			}
		}
		return
	}
	cursor := t.GetCursor()
	if reverse {
		if unitBeforeCursor(t, cursor) {
			t.DeleteText(gott.Point{Row: cursor.Row, Col: cursor.Col - indentWidth}, cursor)
		}
		return
	}
	t.InsertText(cursor, IndentUnit)
}

// Autoindent starts a new line indented like the one above it,
// one unit deeper if that line ends with a colon.
func Autoindent(t gott.Text) {
	t.InsertText(t.GetCursor(), "\n")
	cursor := t.GetCursor()
	if cursor.Row == 0 {
		return
	}
	above := []rune(t.GetRowText(cursor.Row - 1))
	if len(above) == 0 {
		return
	}
	spaces := 0
	for _, c := range above {
		if c != ' ' {
			break
		}
		spaces++
	}
	if above[len(above)-1] == ':' {
		spaces += indentWidth
	}
	if spaces > 0 {
		t.InsertText(cursor, strings.Repeat(" ", spaces))
	}
}

// ToggleComment comments or uncomments the selected lines, or the cursor line.
func ToggleComment(t gott.Text) {
	start, end, ok := t.GetSelection()
	if !ok {
		start = t.GetCursor()
		end = start
	}
	for row := start.Row; row <= end.Row; row++ {
		text := []rune(t.GetRowText(row))
		// every row counts a line terminator, the last row included
		if len(text)+1 >= 2 && text[0] == commentPrefix {
			t.DeleteText(gott.Point{Row: row, Col: 0}, gott.Point{Row: row, Col: 1})
		} else {
			t.InsertText(gott.Point{Row: row, Col: 0}, string(commentPrefix))
		}
	}
}

// BackspaceTab deletes a whole indent unit before the cursor.
// It returns false when the caller should perform an ordinary backspace.
func BackspaceTab(t gott.Text) bool {
	if _, _, ok := t.GetSelection(); ok {
		return false
	}
	cursor := t.GetCursor()
	if !unitBeforeCursor(t, cursor) {
		return false
	}
	t.DeleteText(gott.Point{Row: cursor.Row, Col: cursor.Col - indentWidth}, cursor)
	return true
}

// ReplaceTabs replaces every tab in the text with an indent unit.
func ReplaceTabs(t gott.Text) {
	text := t.GetText()
	if !strings.Contains(text, "\t") {
		return
	}
	t.SetText(strings.ReplaceAll(text, "\t", IndentUnit))
}

// NormalizeLineEndings converts CRLF and CR line endings to LF.
func NormalizeLineEndings(t gott.Text) {
	text := t.GetText()
	if !strings.Contains(text, "\r") {
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	t.SetText(strings.ReplaceAll(text, "\r", "\n"))
}

func unitBeforeCursor(t gott.Text, cursor gott.Point) bool {
	col := cursor.Col - indentWidth
	if col < 0 {
		return false
	}
	text := []rune(t.GetRowText(cursor.Row))
	if cursor.Col > len(text) {
		return false
	}
	return string(text[col:cursor.Col]) == IndentUnit
}
