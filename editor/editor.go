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
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/timburks/coder/config"
	"github.com/timburks/coder/operations"
	gott "github.com/timburks/coder/types"
)

// The Editor owns the open tabs and routes commands to the active one.
type Editor struct {
	config    *config.Config
	tabs      []*Tab
	active    int
	size      gott.Size // size of editing area
	clipboard Clipboard
	pasteText string // used when the system clipboard is unavailable
}

// coalescer is implemented by inverses that can merge into the previous one.
type coalescer interface {
	Coalesce(previous gott.Operation) bool
}

func NewEditor(c *config.Config) *Editor {
	e := &Editor{
		config:    c,
		clipboard: systemClipboard{},
	}
	e.tabs = append(e.tabs, NewTab(c))
	return e
}

// SetClipboard replaces the system clipboard.
func (e *Editor) SetClipboard(c Clipboard) {
	e.clipboard = c
}

func (e *Editor) ActiveTab() *Tab {
	return e.tabs[e.active]
}

func (e *Editor) GetActiveTab() gott.Tab {
	return e.tabs[e.active]
}

func (e *Editor) GetTab(index int) gott.Tab {
	if index < 0 || index >= len(e.tabs) {
		return nil
	}
	return e.tabs[index]
}

func (e *Editor) GetTabCount() int {
	return len(e.tabs)
}

func (e *Editor) GetActiveIndex() int {
	return e.active
}

// Undo

func (e *Editor) Perform(op gott.Operation, multiplier int) {
	t := e.ActiveTab()
	if t.IsReadOnly() {
		return
	}
	// perform the operation
	inverse := op.Perform(e, multiplier)
	if inverse == nil {
		return
	}
	// save the inverse of the operation for undo
	if c, ok := inverse.(coalescer); ok && len(t.undo) > 0 && c.Coalesce(t.undo[len(t.undo)-1]) {
		return
	}
	t.undo = append(t.undo, inverse)
	if limit := e.config.UndoLimit(); limit > 0 && len(t.undo) > limit {
		t.undo = t.undo[len(t.undo)-limit:]
	}
}

func (e *Editor) PerformUndo() {
	t := e.ActiveTab()
	if len(t.undo) > 0 {
		last := len(t.undo) - 1
		undo := t.undo[last]
		t.undo = t.undo[0:last]
		t.ClearSelection()
		undo.Perform(e, 0)
	}
}

// Tabs

func (e *Editor) NewTab() gott.Tab {
	return e.newTab()
}

func (e *Editor) newTab() *Tab {
	t := NewTab(e.config)
	e.tabs = append(e.tabs, t)
	e.active = len(e.tabs) - 1
	return t
}

// CloseTab closes the active tab. A tab with unsaved changes is only
// closed when force is set.
func (e *Editor) CloseTab(force bool) error {
	t := e.ActiveTab()
	if t.IsDirty() && !t.IsReadOnly() && !force {
		return fmt.Errorf("%w: %s", ErrUnsavedChanges, t.GetName())
	}
	e.removeTab(e.active)
	return nil
}

func (e *Editor) removeTab(index int) {
	e.tabs[index].closed = true
	e.tabs = append(e.tabs[:index], e.tabs[index+1:]...)
	if len(e.tabs) == 0 {
		e.tabs = append(e.tabs, NewTab(e.config))
	}
	if e.active >= len(e.tabs) {
		e.active = len(e.tabs) - 1
	}
}

func (e *Editor) SelectTab(index int) error {
	if index < 0 || index >= len(e.tabs) {
		return fmt.Errorf("no tab exists for index %d", index)
	}
	e.active = index
	return nil
}

func (e *Editor) NextTab() {
	e.active = (e.active + 1) % len(e.tabs)
}

func (e *Editor) PreviousTab() {
	e.active = (e.active + len(e.tabs) - 1) % len(e.tabs)
}

func (e *Editor) HasUnsavedChanges() bool {
	for _, t := range e.tabs {
		if t.IsDirty() && !t.IsReadOnly() {
			return true
		}
	}
	return false
}

// Files

// Open shows path in a tab. An already open file is selected, a pristine
// active tab is reused, otherwise the file is loaded into a new tab.
func (e *Editor) Open(path string) error {
	path = filepath.Clean(path)
	for i, t := range e.tabs {
		if t.fileName == path {
			e.active = i
			return nil
		}
	}
	t := e.ActiveTab()
	if t.State() == StateEmpty && t.name == "" {
		return e.LoadFile(t, path)
	}
	previous := e.active
	t = e.newTab()
	if err := e.LoadFile(t, path); err != nil {
		e.removeTab(e.active)
		e.active = previous
		return err
	}
	return nil
}

// LoadFile reads path into t. A missing file gives an empty, dirty
// document that will be created when saved.
func (e *Editor) LoadFile(t *Tab, path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("%s does not exist, starting a new file", path)
		t.Load(nil, path, true)
		return nil
	}
	if err != nil {
		log.Printf("failed to read %s: %v", path, err)
		return fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}
	t.Load(b, path, false)
	return nil
}

func (e *Editor) Save() error {
	t := e.ActiveTab()
	if t.IsReadOnly() {
		return ErrReadOnly
	}
	if t.fileName == "" {
		return ErrNoFileName
	}
	return e.SaveTab(t, t.fileName)
}

func (e *Editor) SaveAs(path string) error {
	t := e.ActiveTab()
	if t.IsReadOnly() {
		return ErrReadOnly
	}
	if path == "" {
		return ErrNoFileName
	}
	return e.SaveTab(t, filepath.Clean(path))
}

// SaveTab writes t to path. Go files are formatted first; the tab only
// takes the formatted text once it is on disk.
func (e *Editor) SaveTab(t *Tab, path string) error {
	b := t.Bytes()
	out := b
	if e.config.FormatGo() && strings.HasSuffix(path, ".go") {
		if formatted, err := Gofmt(path, b); err == nil {
			out = formatted
		}
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		log.Printf("failed to write %s: %v", path, err)
		return fmt.Errorf("%w: %w", ErrFileNotWritable, err)
	}
	if string(out) != string(b) {
		cursor := t.cursor
		t.SetText(string(out))
		t.SetCursor(cursor)
		// the old inverses no longer apply to the formatted text
		t.undo = nil
	}
	t.markSaved(path)
	return nil
}

// Clipboard

func (e *Editor) Copy() error {
	text := e.ActiveTab().GetSelectedText()
	if text == "" {
		return nil
	}
	e.pasteText = text
	if err := e.clipboard.WriteAll(text); err != nil {
		log.Printf("clipboard write failed: %v", err)
	}
	return nil
}

func (e *Editor) Cut() error {
	t := e.ActiveTab()
	if t.IsReadOnly() {
		return ErrReadOnly
	}
	if err := e.Copy(); err != nil {
		return err
	}
	e.Perform(&operations.DeleteSelection{}, 1)
	return nil
}

func (e *Editor) Paste() error {
	if e.ActiveTab().IsReadOnly() {
		return ErrReadOnly
	}
	e.Perform(&operations.Paste{}, 1)
	return nil
}

// GetPasteText prefers the system clipboard over the last copied text.
func (e *Editor) GetPasteText() string {
	if text, err := e.clipboard.ReadAll(); err == nil && text != "" {
		return text
	}
	return e.pasteText
}

// Search

// Find selects the next occurrence of text after the selection or cursor,
// wrapping around the end of the document.
func (e *Editor) Find(text string) bool {
	t := e.ActiveTab()
	from := t.cursor
	if _, end, ok := t.GetSelection(); ok {
		from = end
	}
	start, ok := search(t.buffer, text, from)
	if !ok {
		return false
	}
	t.Select(start, gott.Point{Row: start.Row, Col: start.Col + len([]rune(text))})
	return true
}

// Replace replaces the occurrence of find at or after the selection or
// cursor and selects the next one.
func (e *Editor) Replace(find string, replacement string) bool {
	t := e.ActiveTab()
	if t.IsReadOnly() {
		return false
	}
	from := t.cursor
	if start, _, ok := t.GetSelection(); ok {
		from = start
	}
	start, ok := search(t.buffer, find, from)
	if !ok {
		return false
	}
	e.Perform(&operations.Replace{
		Start: start,
		End:   gott.Point{Row: start.Row, Col: start.Col + len([]rune(find))},
		Text:  replacement,
	}, 1)
	e.Find(find)
	return true
}

func (e *Editor) ReplaceAll(find string, replacement string) int {
	op := &operations.ReplaceAll{Find: find, Replacement: replacement}
	e.Perform(op, 1)
	return op.Count
}

// search looks for text starting at from and wrapping around the buffer.
func search(b *Buffer, text string, from gott.Point) (gott.Point, bool) {
	if text == "" || strings.Contains(text, "\n") {
		return gott.Point{}, false
	}
	rows := b.GetRowCount()
	for i := 0; i <= rows; i++ {
		row := (from.Row + i) % rows
		col := 0
		if i == 0 {
			col = from.Col
		}
		if c := b.FirstPositionInRowAtOrAfterCol(row, col, text); c >= 0 {
			return gott.Point{Row: row, Col: c}, true
		}
	}
	return gott.Point{}, false
}

// GotoLine moves to a 1-based line number. Anything else is ignored.
func (e *Editor) GotoLine(text string) bool {
	t := e.ActiveTab()
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > t.GetRowCount() {
		return false
	}
	t.ClearSelection()
	t.SetCursor(gott.Point{Row: n - 1, Col: 0})
	return true
}

// View

func (e *Editor) PageUp(multiplier int) {
	e.ActiveTab().MoveCursor(gott.MoveUp, e.pageSize()*max(multiplier, 1))
}

func (e *Editor) PageDown(multiplier int) {
	e.ActiveTab().MoveCursor(gott.MoveDown, e.pageSize()*max(multiplier, 1))
}

func (e *Editor) pageSize() int {
	return max(e.size.Rows, 1)
}

func (e *Editor) SetSize(s gott.Size) {
	e.size = s
}

func (e *Editor) GetSize() gott.Size {
	return e.size
}
