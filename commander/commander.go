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
package commander

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/coder/editor"
	"github.com/timburks/coder/operations"
	gott "github.com/timburks/coder/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor      gott.Editor
	mode        int    // editor mode
	debug       bool   // debug mode displays information about events (key codes, etc)
	promptText  string // text being typed into the current prompt
	findText    string // last find entry
	replaceText string // last replacement entry
	gotoText    string // last goto line entry
	lispText    string // last lisp command
	savePath    string // path waiting for an overwrite confirmation
	message     string // status message
}

// Keys in edit mode that evaluate a lisp expression.
var editBindings = map[gott.Key]string{
	gott.KeyCtrlN:      "(new-tab)",
	gott.KeyCtrlS:      "(save-file)",
	gott.KeyCtrlW:      "(close-tab)",
	gott.KeyCtrlQ:      "(quit)",
	gott.KeyCtrlX:      "(cut-selection)",
	gott.KeyCtrlC:      "(copy-selection)",
	gott.KeyCtrlV:      "(paste)",
	gott.KeyCtrlZ:      "(undo)",
	gott.KeyCtrlL:      "(find-next)",
	gott.KeyF5:         "(run-script)",
	gott.KeyCtrlD:      "(toggle-comment)",
	gott.KeyCtrlT:      "(replace-tabs)",
	gott.KeyF2:         "(toggle-mark)",
	gott.KeyF3:         "(next-mark)",
	gott.KeyF4:         "(previous-mark)",
	gott.KeyF7:         "(previous-tab)",
	gott.KeyF8:         "(next-tab)",
	gott.KeyCtrlSpace:  "(toggle-selection)",
	gott.KeyTab:        "(indent)",
	gott.KeyCtrlU:      "(unindent)",
	gott.KeyEnter:      "(autoindent)",
	gott.KeyBackspace:  "(backspace)",
	gott.KeyDelete:     "(delete-character)",
	gott.KeyArrowUp:    "(up)",
	gott.KeyArrowDown:  "(down)",
	gott.KeyArrowLeft:  "(left)",
	gott.KeyArrowRight: "(right)",
	gott.KeyHome:       "(beginning-of-line)",
	gott.KeyEnd:        "(end-of-line)",
	gott.KeyPgup:       "(page-up)",
	gott.KeyPgdn:       "(page-down)",
}

// current is the commander that lisp primitives act on.
var current *Commander

func NewCommander(e gott.Editor) *Commander {
	c := &Commander{editor: e, mode: gott.ModeEdit}
	current = c
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		log.Printf("event=%+v", event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	switch c.mode {
	case gott.ModeEdit:
		c.message = ""
		return c.ProcessKeyEditMode(event)
	case gott.ModeConfirmClose, gott.ModeConfirmQuit, gott.ModeConfirmOverwrite:
		return c.ProcessKeyConfirmMode(event)
	case gott.ModeQuit:
		return nil
	default:
		return c.ProcessKeyPromptMode(event)
	}
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != gott.KeyNone {
		switch key {
		case gott.KeyEsc:
			c.editor.GetActiveTab().ClearSelection()
		case gott.KeyCtrlO:
			c.startPrompt(gott.ModeOpen, "")
		case gott.KeyCtrlF:
			c.startPrompt(gott.ModeFind, c.findText)
		case gott.KeyCtrlR:
			c.startPrompt(gott.ModeReplaceFind, c.findText)
		case gott.KeyCtrlG:
			c.startPrompt(gott.ModeGoto, c.gotoText)
		case gott.KeyCtrlE:
			c.startPrompt(gott.ModeLisp, c.lispText)
		case gott.KeySpace:
			c.perform(&operations.InsertText{Text: " "})
		default:
			if command, ok := editBindings[key]; ok {
				c.eval(command)
			}
		}
		return nil
	}
	if ch != 0 {
		c.perform(&operations.InsertText{Text: string(ch)})
	}
	return nil
}

// perform performs an undoable operation on the active tab.
func (c *Commander) perform(op gott.Operation) error {
	if c.editor.GetActiveTab().IsReadOnly() {
		c.message = editor.ErrReadOnly.Error()
		return editor.ErrReadOnly
	}
	c.editor.Perform(op, 1)
	return nil
}

// eval evaluates a bound command and shows any error in the message bar.
func (c *Commander) eval(command string) {
	if _, err := c.ParseEval(command); err != nil {
		c.message = err.Error()
	}
}

func (c *Commander) startPrompt(mode int, text string) {
	c.mode = mode
	c.promptText = text
}

func (c *Commander) ProcessKeyPromptMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != gott.KeyNone {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			c.finishPrompt()
		case gott.KeyBackspace:
			if r := []rune(c.promptText); len(r) > 0 {
				c.promptText = string(r[0 : len(r)-1])
			}
		case gott.KeySpace:
			c.promptText += " "
		case gott.KeyTab:
			c.promptText += "\t"
		}
		return nil
	}
	if ch != 0 {
		c.promptText += string(ch)
	}
	return nil
}

// finishPrompt acts on the entered text. Find and replace prompts stay
// open so that enter repeats them.
func (c *Commander) finishPrompt() {
	text := c.promptText
	mode := c.mode
	c.mode = gott.ModeEdit
	switch mode {
	case gott.ModeOpen:
		if text != "" {
			c.report(c.editor.Open(text))
		}
	case gott.ModeSaveAs:
		c.saveAs(text)
	case gott.ModeFind:
		c.findText = text
		c.find()
		c.mode = gott.ModeFind
	case gott.ModeReplaceFind:
		c.findText = text
		c.startPrompt(gott.ModeReplaceWith, c.replaceText)
	case gott.ModeReplaceWith:
		c.replaceText = text
		c.replace()
		c.mode = gott.ModeReplaceWith
	case gott.ModeGoto:
		c.gotoText = text
		c.editor.GotoLine(text)
	case gott.ModeLisp:
		c.lispText = text
		result, err := c.ParseEval(text)
		if err != nil {
			c.message = err.Error()
		} else {
			c.message = result
		}
	}
}

func (c *Commander) ProcessKeyConfirmMode(event *gott.Event) error {
	mode := c.mode
	c.mode = gott.ModeEdit
	if event.Ch != 'y' && event.Ch != 'Y' {
		c.message = ""
		return nil
	}
	switch mode {
	case gott.ModeConfirmClose:
		c.report(c.editor.CloseTab(true))
	case gott.ModeConfirmQuit:
		c.mode = gott.ModeQuit
	case gott.ModeConfirmOverwrite:
		c.writeFile(c.savePath)
	}
	return nil
}

func (c *Commander) report(err error) {
	if err != nil {
		c.message = err.Error()
	}
}

func (c *Commander) find() bool {
	if !c.editor.Find(c.findText) {
		c.message = fmt.Sprintf("%q not found", c.findText)
		return false
	}
	c.message = ""
	return true
}

func (c *Commander) replace() bool {
	if c.editor.GetActiveTab().IsReadOnly() {
		c.message = editor.ErrReadOnly.Error()
		return false
	}
	if !c.editor.Replace(c.findText, c.replaceText) {
		c.message = fmt.Sprintf("%q not found", c.findText)
		return false
	}
	c.message = ""
	return true
}

// save saves the active tab, asking for a name when it has none.
func (c *Commander) save() error {
	if c.editor.GetActiveTab().GetFileName() == "" {
		c.startPrompt(gott.ModeSaveAs, "")
		return nil
	}
	err := c.editor.Save()
	if err == nil {
		c.message = "Saved " + c.editor.GetActiveTab().GetFileName()
	}
	return err
}

// saveAs asks before overwriting a different existing file.
func (c *Commander) saveAs(path string) {
	if path == "" {
		return
	}
	path = filepath.Clean(path)
	if path != c.editor.GetActiveTab().GetFileName() {
		if _, err := os.Stat(path); err == nil {
			c.savePath = path
			c.mode = gott.ModeConfirmOverwrite
			return
		}
	}
	c.writeFile(path)
}

func (c *Commander) writeFile(path string) {
	if err := c.editor.SaveAs(path); err != nil {
		c.message = err.Error()
		return
	}
	c.message = "Saved " + path
}

// closeTab closes the active tab, asking first when it has unsaved changes.
func (c *Commander) closeTab(force bool) error {
	err := c.editor.CloseTab(force)
	if errors.Is(err, editor.ErrUnsavedChanges) {
		c.mode = gott.ModeConfirmClose
		return nil
	}
	return err
}

// quit stops the editor, asking first when there are unsaved changes.
func (c *Commander) quit() {
	if c.editor.HasUnsavedChanges() {
		c.mode = gott.ModeConfirmQuit
		return
	}
	c.mode = gott.ModeQuit
}

// GetMessageBarText returns the prompt or message, keeping the end of
// text that is longer than length.
func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.mode {
	case gott.ModeOpen:
		line = "Open: " + c.promptText
	case gott.ModeSaveAs:
		line = "Save as: " + c.promptText
	case gott.ModeFind:
		line = "Find: " + c.promptText
	case gott.ModeReplaceFind:
		line = "Replace: " + c.promptText
	case gott.ModeReplaceWith:
		line = fmt.Sprintf("Replace %q with: %s", c.findText, c.promptText)
	case gott.ModeGoto:
		line = "Go to line: " + c.promptText
	case gott.ModeLisp:
		line = "> " + c.promptText
	case gott.ModeConfirmClose:
		line = "Close tab with unsaved changes? (y/n)"
	case gott.ModeConfirmQuit:
		line = "There are unsaved changes, quit anyway? (y/n)"
	case gott.ModeConfirmOverwrite:
		line = fmt.Sprintf("%s exists, overwrite? (y/n)", c.savePath)
	default:
		line = c.message
	}
	if r := []rune(line); length >= 0 && len(r) > length {
		line = string(r[len(r)-length:])
	}
	return line
}
