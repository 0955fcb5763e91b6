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
package screen

import (
	"log"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	gott "github.com/timburks/coder/types"
)

const tabWidth = 8

// Colors used for the parts of the screen that are not syntax colored.
const (
	colorBar       = gott.ColorWhite
	colorText      = gott.ColorDefault
	colorMarked    = gott.Color(0xED) // dark gray
	colorSelection = gott.Color(0x12) // dark blue
)

// The Screen draws the state of an Editor.
type Screen struct {
	size gott.Size // screen size
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

// Render draws the tab bar, the active tab, the status bar and the message bar.
func (s *Screen) Render(e gott.Editor, c gott.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()

	textSize := gott.Size{Rows: s.size.Rows - 3, Cols: s.size.Cols}
	if textSize.Rows < 1 {
		textSize.Rows = 1
	}
	e.SetSize(textSize)

	t := e.GetActiveTab()
	offset := t.Scroll(textSize)
	s.RenderTabBar(e)
	cursor := Render(t, gott.Rect{Origin: gott.Point{Row: 1}, Size: textSize}, offset, s)
	s.RenderStatusBar(t)
	s.RenderMessageBar(c)
	if c.GetMode() == gott.ModeEdit {
		s.SetCursor(cursor)
	}
	termbox.Flush()
}

func (s *Screen) SetCell(col int, row int, c rune, fg gott.Color, bg gott.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(fg), termbox.Attribute(bg))
}

func (s *Screen) SetCursor(p gott.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

// Render draws the visible rows of a tab into a rectangle of the display
// and returns the screen position of the cursor.
func Render(t gott.Tab, r gott.Rect, offset gott.Size, d gott.Display) gott.Point {
	cursor := t.GetCursor()
	selectionStart, selectionEnd, selecting := t.GetSelection()
	screenCursor := r.Origin
	for i := 0; i < r.Size.Rows; i++ {
		row := i + offset.Rows
		y := r.Origin.Row + i
		if row >= t.GetRowCount() {
			break
		}
		text := []rune(t.GetRowText(row))
		colors := t.GetRowColors(row)
		background := colorText
		if t.IsMarked(row) {
			background = colorMarked
			for x := 0; x < r.Size.Cols; x++ {
				d.SetCell(r.Origin.Col+x, y, ' ', colorText, background)
			}
		}
		start := columnOf(text, offset.Cols)
		column := 0
		for col, c := range text {
			width := cellWidth(c, column)
			x := column - start
			column += width
			if row == cursor.Row && col == cursor.Col {
				screenCursor = gott.Point{Row: y, Col: r.Origin.Col + x}
			}
			if x < 0 || x >= r.Size.Cols {
				continue
			}
			fg := colorText
			if col < len(colors) {
				fg = colors[col]
			}
			bg := background
			p := gott.Point{Row: row, Col: col}
			if selecting && !p.Before(selectionStart) && p.Before(selectionEnd) {
				bg = colorSelection
			}
			if c == '\t' {
				for w := 0; w < width && x+w < r.Size.Cols; w++ {
					d.SetCell(r.Origin.Col+x+w, y, ' ', fg, bg)
				}
				continue
			}
			d.SetCell(r.Origin.Col+x, y, c, fg, bg)
		}
		if row == cursor.Row && cursor.Col >= len(text) {
			screenCursor = gott.Point{Row: y, Col: r.Origin.Col + column - start}
		}
	}
	return screenCursor
}

// columnOf returns the display column of the rune at index col.
func columnOf(text []rune, col int) int {
	x := 0
	for i := 0; i < col && i < len(text); i++ {
		x += cellWidth(text[i], x)
	}
	return x
}

func cellWidth(c rune, x int) int {
	if c == '\t' {
		return tabWidth - x%tabWidth
	}
	if w := runewidth.RuneWidth(c); w > 0 {
		return w
	}
	return 1
}

func (s *Screen) RenderTabBar(e gott.Editor) {
	x := 0
	for i := 0; i < e.GetTabCount(); i++ {
		label := " " + e.GetTab(i).GetLabel() + " "
		fg, bg := colorBar, gott.ColorBlack
		if i == e.GetActiveIndex() {
			fg, bg = gott.ColorBlack, colorBar
		}
		x = s.drawText(x, 0, label, fg, bg)
		x = s.drawText(x, 0, "|", colorBar, gott.ColorBlack)
	}
}

func (s *Screen) RenderStatusBar(t gott.Tab) {
	text := " " + t.GetStatus()
	if t.IsReadOnly() {
		text += "  [read-only]"
	}
	if pad := s.size.Cols - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	s.drawText(0, s.size.Rows-2, text, gott.ColorBlack, colorBar)
}

func (s *Screen) RenderMessageBar(c gott.Commander) {
	line := c.GetMessageBarText(s.size.Cols - 1)
	x := s.drawText(0, s.size.Rows-1, line, colorBar, gott.ColorDefault)
	if c.GetMode() != gott.ModeEdit {
		termbox.SetCursor(x, s.size.Rows-1)
	}
}

// drawText draws text starting at x and returns the column after it.
func (s *Screen) drawText(x, y int, text string, fg, bg gott.Color) int {
	for _, c := range text {
		if x >= s.size.Cols {
			break
		}
		s.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
	return x
}

func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &gott.Event{Type: gott.EventResize}
	case termbox.EventKey:
		return convertEvent(event)
	default:
		return &gott.Event{Type: gott.EventOther}
	}
}

func convertEvent(event termbox.Event) *gott.Event {
	e := &gott.Event{Type: gott.EventKey, Ch: event.Ch}
	if event.Mod&termbox.ModAlt != 0 {
		e.Mod = gott.ModAlt
	}
	if event.Ch == 0 {
		e.Key = key(event.Key)
	}
	return e
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyCtrlSpace:
		return gott.KeyCtrlSpace
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyDelete:
		return gott.KeyDelete
	case termbox.KeyCtrlC:
		return gott.KeyCtrlC
	case termbox.KeyCtrlD:
		return gott.KeyCtrlD
	case termbox.KeyCtrlE:
		return gott.KeyCtrlE
	case termbox.KeyCtrlF:
		return gott.KeyCtrlF
	case termbox.KeyCtrlG:
		return gott.KeyCtrlG
	case termbox.KeyCtrlL:
		return gott.KeyCtrlL
	case termbox.KeyCtrlN:
		return gott.KeyCtrlN
	case termbox.KeyCtrlO:
		return gott.KeyCtrlO
	case termbox.KeyCtrlQ:
		return gott.KeyCtrlQ
	case termbox.KeyCtrlR:
		return gott.KeyCtrlR
	case termbox.KeyCtrlS:
		return gott.KeyCtrlS
	case termbox.KeyCtrlT:
		return gott.KeyCtrlT
	case termbox.KeyCtrlU:
		return gott.KeyCtrlU
	case termbox.KeyCtrlV:
		return gott.KeyCtrlV
	case termbox.KeyCtrlW:
		return gott.KeyCtrlW
	case termbox.KeyCtrlX:
		return gott.KeyCtrlX
	case termbox.KeyCtrlZ:
		return gott.KeyCtrlZ
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyF2:
		return gott.KeyF2
	case termbox.KeyF3:
		return gott.KeyF3
	case termbox.KeyF4:
		return gott.KeyF4
	case termbox.KeyF5:
		return gott.KeyF5
	case termbox.KeyF7:
		return gott.KeyF7
	case termbox.KeyF8:
		return gott.KeyF8
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	default:
		return gott.KeyUnsupported
	}
}
