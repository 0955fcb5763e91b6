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
	"log"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	gott "github.com/timburks/coder/types"
)

// The Highlighter colors the rows of a buffer using a chroma lexer.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewHighlighter returns nil when no lexer knows the language or filename.
func NewHighlighter(filename, language, style string) *Highlighter {
	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	}
	if lexer == nil && filename != "" {
		lexer = lexers.Match(filename)
	}
	if lexer == nil {
		return nil
	}
	return &Highlighter{
		lexer: chroma.Coalesce(lexer),
		style: styles.Get(style),
	}
}

func (h *Highlighter) Highlight(b *Buffer) {
	for _, r := range b.rows {
		colors := r.GetColors()
		for j := range colors {
			colors[j] = gott.ColorDefault
		}
	}

	// rows split on \n only, so a lone \r must stay inside its row
	iterator, err := h.lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, b.String())
	if err != nil {
		log.Printf("highlighting failed: %v", err)
		return
	}
	row, col := 0, 0
	for _, token := range iterator.Tokens() {
		color := colorForEntry(h.style.Get(token.Type))
		for _, c := range token.Value {
			if c == '\n' {
				row++
				col = 0
				continue
			}
			if row < len(b.rows) {
				colors := b.rows[row].GetColors()
				if col < len(colors) {
					colors[col] = color
				}
			}
			col++
		}
	}
}

// colorForEntry maps a style colour onto the 6x6x6 cube of a 256-color terminal.
func colorForEntry(entry chroma.StyleEntry) gott.Color {
	if !entry.Colour.IsSet() {
		return gott.ColorDefault
	}
	return colorForRGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
}

func colorForRGB(r, g, b uint8) gott.Color {
	level := func(v uint8) int {
		return (int(v)*5 + 127) / 255
	}
	index := 16 + 36*level(r) + 6*level(g) + level(b)
	// 256-color attributes are offset by one so that zero stays the default
	return gott.Color(index + 1)
}
