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

// Package types holds the constants and interfaces shared by the
// editor, commander, operations and screen packages.
package types

import "context"

// Editor modes
const (
	ModeEdit             = 0
	ModeOpen             = 1
	ModeSaveAs           = 2
	ModeFind             = 3
	ModeReplaceFind      = 4
	ModeReplaceWith      = 5
	ModeGoto             = 6
	ModeLisp             = 7
	ModeConfirmClose     = 8
	ModeConfirmQuit      = 9
	ModeConfirmOverwrite = 10
	ModeQuit             = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventOther  = 2
)

// Modifiers
const (
	ModNone = 0
	ModAlt  = 1
)

type Key int

// Keys. KeyNone is zero so that character events can be recognized by a zero key.
const (
	KeyNone Key = iota
	KeyUnsupported
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF7
	KeyF8
	KeyCtrlSpace
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlZ
)

// Colors are terminal 256-color attributes; zero is the terminal default.
type Color int

const (
	ColorDefault Color = 0x00
	ColorWhite   Color = 0x08
	ColorBlack   Color = 0x01
)

type Point struct {
	Row int
	Col int
}

// Before reports whether p comes strictly before q in reading order.
func (p Point) Before(q Point) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

type Event struct {
	Type int
	Key  Key
	Ch   rune
	Mod  int
}

// Text is the buffer capability that line-edit operations work against.
// Positions are row/column pairs counted in runes.
type Text interface {
	GetRowCount() int
	GetRowText(row int) string
	GetCursor() Point
	SetCursor(cursor Point)
	// GetSelection returns the ordered bounds of a non-empty selection.
	GetSelection() (start Point, end Point, ok bool)
	InsertText(at Point, text string) Point
	DeleteText(start Point, end Point) string
	GetText() string
	SetText(text string)
}

// A Tab is one open document.
type Tab interface {
	Text
	GetNumber() int
	GetName() string
	GetLabel() string
	GetFileName() string
	GetStatus() string
	IsDirty() bool
	IsReadOnly() bool
	GetRowColors(row int) []Color
	IsMarked(row int) bool
	Scroll(size Size) Size
	Select(start Point, end Point)
	ToggleSelection()
	ClearSelection()
	GetSelectedText() string
	ToggleMark()
	NextMark()
	PreviousMark()
	MoveCursor(direction int, multiplier int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	Bytes() []byte
}

type Editor interface {
	GetActiveTab() Tab
	GetTab(index int) Tab
	GetTabCount() int
	GetActiveIndex() int

	Perform(op Operation, multiplier int)
	PerformUndo()

	NewTab() Tab
	CloseTab(force bool) error
	SelectTab(index int) error
	NextTab()
	PreviousTab()
	HasUnsavedChanges() bool

	Open(path string) error
	Save() error
	SaveAs(path string) error

	Cut() error
	Copy() error
	Paste() error
	GetPasteText() string

	Find(text string) bool
	Replace(find string, replacement string) bool
	ReplaceAll(find string, replacement string) int
	GotoLine(text string) bool

	PageUp(multiplier int)
	PageDown(multiplier int)
	SetSize(size Size)

	Run(ctx context.Context) error
}

// An Operation performs itself and returns its inverse, or nil when
// there is nothing to undo.
type Operation interface {
	Perform(e Editor, multiplier int) Operation
}

type Commander interface {
	GetMode() int
	GetMessageBarText(length int) string
}

type Display interface {
	SetCell(col int, row int, c rune, fg Color, bg Color)
	SetCursor(p Point)
}
