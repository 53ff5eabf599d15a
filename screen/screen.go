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

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	jott "github.com/timburks/jott/types"
)

// abortCharacter cancels a pending character read. Esc aborts too.
const abortCharacter = termbox.KeyCtrlG

// The Screen draws the state of an Editor on a terminal.
type Screen struct {
	size jott.Size // screen size
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

func (s *Screen) Render(e jott.Editor, c jott.Commander) {
	s.Clear()
	var screenSize jott.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	// reserve the last row for the message bar
	editSize := screenSize
	editSize.Rows -= 1
	e.SetSize(editSize)

	e.Render(s)
	s.RenderMessageBar(e, c)
	e.PositionCursor(s)
	s.Flush()
}

func (s *Screen) RenderMessageBar(e jott.Editor, c jott.Commander) {
	var line string
	switch c.GetMode() {
	case jott.ModeCommand:
		line += ":" + c.GetCommand()
	case jott.ModeLisp:
		line += c.GetLispText()
	default:
		line += c.GetMessage()
		if line == "" {
			line = e.GetMessage()
		}
	}
	line = runewidth.Truncate(line, s.size.Cols, "")
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, rune(ch), termbox.ColorWhite, termbox.ColorBlack)
	}
}

// jott.Display

func (s *Screen) Size() jott.Size {
	cols, rows := termbox.Size()
	return jott.Size{Rows: rows, Cols: cols}
}

func (s *Screen) SetCell(col int, row int, c rune, color jott.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(color), 0x01)
}

func (s *Screen) SetCellReversed(col int, row int, c rune, color jott.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(color), termbox.ColorWhite)
}

func (s *Screen) SetCursor(p jott.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func (s *Screen) Clear() {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
}

func (s *Screen) Flush() {
	termbox.Flush()
}

// ReadCharacter shows a prompt on the message bar and blocks for one
// keypress. Esc and the abort character cancel the read.
func (s *Screen) ReadCharacter(prompt string) (rune, bool) {
	cols, rows := termbox.Size()
	text := runewidth.Truncate(prompt, cols, "")
	for x, ch := range text {
		termbox.SetCell(x, rows-1, rune(ch), termbox.ColorBlack, termbox.ColorWhite)
	}
	termbox.Flush()
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			if event.Ch != 0 {
				return event.Ch, true
			}
			switch event.Key {
			case termbox.KeyEsc, abortCharacter:
				return 0, false
			case termbox.KeySpace:
				return ' ', true
			}
		case termbox.EventResize:
			termbox.Flush()
		}
	}
}

func (s *Screen) GetNextEvent() *jott.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &jott.Event{
		Type: int(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) jott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return jott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return jott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return jott.KeyArrowRight
	case termbox.KeyArrowUp:
		return jott.KeyArrowUp
	case termbox.KeyBackspace2:
		return jott.KeyBackspace2
	case termbox.KeyCtrlG:
		return jott.KeyCtrlG
	case termbox.KeyEnd:
		return jott.KeyEnd
	case termbox.KeyEnter:
		return jott.KeyEnter
	case termbox.KeyEsc:
		return jott.KeyEsc
	case termbox.KeyHome:
		return jott.KeyHome
	case termbox.KeyPgdn:
		return jott.KeyPgdn
	case termbox.KeyPgup:
		return jott.KeyPgup
	case termbox.KeySpace:
		return jott.KeySpace
	case termbox.KeyTab:
		return jott.KeyTab
	default:
		return jott.KeyUnsupported
	}
}
