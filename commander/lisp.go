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
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/steelseries/golisp"
	"github.com/timburks/coder/operations"
	gott "github.com/timburks/coder/types"
)

var errNoCommander = errors.New("no editor is running")

func init() {
	golisp.Global.BindTo(golisp.SymbolWithName("INDENT-WIDTH"), golisp.IntegerWithValue(4))

	// editing
	defineOperation("indent", func() gott.Operation { return &operations.Indent{} })
	defineOperation("unindent", func() gott.Operation { return &operations.Indent{Reverse: true} })
	defineOperation("autoindent", func() gott.Operation { return &operations.Autoindent{} })
	defineOperation("toggle-comment", func() gott.Operation { return &operations.ToggleComment{} })
	defineOperation("backspace", func() gott.Operation { return &operations.Backspace{} })
	defineOperation("delete-character", func() gott.Operation { return &operations.DeleteCharacter{} })
	defineOperation("replace-tabs", func() gott.Operation { return &operations.ReplaceTabs{} })
	defineOperation("convert-line-endings", func() gott.Operation { return &operations.NormalizeLineEndings{} })
	golisp.MakePrimitiveFunction("insert-text", "1", InsertTextImpl)
	defineCommand("undo", func(c *Commander, n int) error {
		for i := 0; i < n; i++ {
			c.editor.PerformUndo()
		}
		return nil
	})

	// marks
	defineCommand("toggle-mark", func(c *Commander, n int) error {
		c.editor.GetActiveTab().ToggleMark()
		return nil
	})
	defineCommand("next-mark", func(c *Commander, n int) error {
		c.editor.GetActiveTab().NextMark()
		return nil
	})
	defineCommand("previous-mark", func(c *Commander, n int) error {
		c.editor.GetActiveTab().PreviousMark()
		return nil
	})

	// tabs and files
	defineCommand("new-tab", func(c *Commander, n int) error {
		c.editor.NewTab()
		return nil
	})
	golisp.MakePrimitiveFunction("close-tab", "0|1", CloseTabImpl)
	defineCommand("next-tab", func(c *Commander, n int) error {
		for i := 0; i < n; i++ {
			c.editor.NextTab()
		}
		return nil
	})
	defineCommand("previous-tab", func(c *Commander, n int) error {
		for i := 0; i < n; i++ {
			c.editor.PreviousTab()
		}
		return nil
	})
	golisp.MakePrimitiveFunction("select-tab", "1", SelectTabImpl)
	defineStringCommand("open-file", func(c *Commander, path string) error {
		return c.editor.Open(path)
	})
	defineCommand("save-file", func(c *Commander, n int) error {
		return c.save()
	})
	defineStringCommand("save-file-as", func(c *Commander, path string) error {
		return c.editor.SaveAs(path)
	})

	// search
	golisp.MakePrimitiveFunction("find-text", "1", FindTextImpl)
	defineCommand("find-next", func(c *Commander, n int) error {
		if c.findText == "" {
			c.startPrompt(gott.ModeFind, "")
			return nil
		}
		c.find()
		return nil
	})
	golisp.MakePrimitiveFunction("replace-text", "2", ReplaceTextImpl)
	golisp.MakePrimitiveFunction("replace-all", "2", ReplaceAllImpl)
	golisp.MakePrimitiveFunction("goto-line", "1", GotoLineImpl)

	// clipboard
	defineCommand("cut-selection", func(c *Commander, n int) error {
		return c.editor.Cut()
	})
	defineCommand("copy-selection", func(c *Commander, n int) error {
		return c.editor.Copy()
	})
	defineCommand("paste", func(c *Commander, n int) error {
		return c.editor.Paste()
	})

	// movement and selection
	defineCommand("toggle-selection", func(c *Commander, n int) error {
		c.editor.GetActiveTab().ToggleSelection()
		return nil
	})
	defineMove("up", gott.MoveUp)
	defineMove("down", gott.MoveDown)
	defineMove("left", gott.MoveLeft)
	defineMove("right", gott.MoveRight)
	defineCommand("beginning-of-line", func(c *Commander, n int) error {
		c.editor.GetActiveTab().MoveToBeginningOfLine()
		return nil
	})
	defineCommand("end-of-line", func(c *Commander, n int) error {
		c.editor.GetActiveTab().MoveToEndOfLine()
		return nil
	})
	defineCommand("page-up", func(c *Commander, n int) error {
		c.editor.PageUp(n)
		return nil
	})
	defineCommand("page-down", func(c *Commander, n int) error {
		c.editor.PageDown(n)
		return nil
	})

	// other
	defineCommand("run-script", func(c *Commander, n int) error {
		return c.editor.Run(context.Background())
	})
	defineCommand("quit", func(c *Commander, n int) error {
		c.quit()
		return nil
	})
	golisp.MakePrimitiveFunction("cursor", "0", CursorImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", BufferTextImpl)
}

// defineCommand binds a primitive taking an optional repeat count.
func defineCommand(name string, f func(c *Commander, n int) error) {
	golisp.MakePrimitiveFunction(name, "0|1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if current == nil {
			return nil, errNoCommander
		}
		n, err := countArgument(name, args)
		if err != nil {
			return nil, err
		}
		return nil, f(current, n)
	})
}

func defineOperation(name string, f func() gott.Operation) {
	golisp.MakePrimitiveFunction(name, "0|1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if current == nil {
			return nil, errNoCommander
		}
		n, err := countArgument(name, args)
		if err != nil {
			return nil, err
		}
		if current.editor.GetActiveTab().IsReadOnly() {
			return nil, errReadOnly(name)
		}
		current.editor.Perform(f(), n)
		return nil, nil
	})
}

func defineMove(name string, direction int) {
	defineCommand(name, func(c *Commander, n int) error {
		c.editor.GetActiveTab().MoveCursor(direction, n)
		return nil
	})
}

func defineStringCommand(name string, f func(c *Commander, s string) error) {
	golisp.MakePrimitiveFunction(name, "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if current == nil {
			return nil, errNoCommander
		}
		s, err := stringArgument(name, golisp.Car(args))
		if err != nil {
			return nil, err
		}
		return nil, f(current, s)
	})
}

func countArgument(name string, args *golisp.Data) (int, error) {
	if args == nil {
		return 1, nil
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return 0, fmt.Errorf("%s requires an integer argument", name)
	}
	n := int(golisp.IntegerValue(val))
	if n < 1 {
		n = 1
	}
	return n, nil
}

func stringArgument(name string, val *golisp.Data) (string, error) {
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

func errReadOnly(name string) error {
	return fmt.Errorf("%s: tab is read-only", name)
}

func InsertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoCommander
	}
	text, err := stringArgument("insert-text", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	if current.editor.GetActiveTab().IsReadOnly() {
		return nil, errReadOnly("insert-text")
	}
	current.editor.Perform(&operations.InsertText{Text: text}, 1)
	return nil, nil
}

func CloseTabImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoCommander
	}
	force := args != nil && golisp.BooleanP(golisp.Car(args)) && golisp.BooleanValue(golisp.Car(args))
	return nil, current.closeTab(force)
}

func SelectTabImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoCommander
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("select-tab requires an integer argument")
	}
	return nil, current.editor.SelectTab(int(golisp.IntegerValue(val)))
}

func FindTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoCommander
	}
	text, err := stringArgument("find-text", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	current.findText = text
	return golisp.BooleanWithValue(current.editor.Find(text)), nil
}

func ReplaceTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoCommander
	}
	find, err := stringArgument("replace-text", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	replacement, err := stringArgument("replace-text", golisp.Cadr(args))
	if err != nil {
		return nil, err
	}
	current.findText = find
	current.replaceText = replacement
	return golisp.BooleanWithValue(current.editor.Replace(find, replacement)), nil
}

func ReplaceAllImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoCommander
	}
	find, err := stringArgument("replace-all", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	replacement, err := stringArgument("replace-all", golisp.Cadr(args))
	if err != nil {
		return nil, err
	}
	n := current.editor.ReplaceAll(find, replacement)
	return golisp.IntegerWithValue(int64(n)), nil
}

func GotoLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoCommander
	}
	val := golisp.Car(args)
	var text string
	if golisp.IntegerP(val) {
		text = strconv.FormatInt(golisp.IntegerValue(val), 10)
	} else if golisp.StringP(val) {
		text = golisp.StringValue(val)
	} else {
		return nil, errors.New("goto-line requires a line number")
	}
	current.gotoText = text
	return golisp.BooleanWithValue(current.editor.GotoLine(text)), nil
}

// CursorImpl returns the 1-based line and column of the cursor.
func CursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoCommander
	}
	cursor := current.editor.GetActiveTab().GetCursor()
	return golisp.StringWithValue(fmt.Sprintf("%d,%d", cursor.Row+1, cursor.Col+1)), nil
}

func BufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoCommander
	}
	return golisp.StringWithValue(current.editor.GetActiveTab().GetText()), nil
}

// ParseEval evaluates a lisp expression and returns its printed value.
func (c *Commander) ParseEval(command string) (string, error) {
	current = c
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	return golisp.String(value), nil
}

// ParseEvalFile evaluates every expression in a script file.
func (c *Commander) ParseEvalFile(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return c.ParseEval("(begin " + string(b) + "\n)")
}
