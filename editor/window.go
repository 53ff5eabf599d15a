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
	"fmt"

	"github.com/mattn/go-runewidth"

	jott "github.com/timburks/jott/types"
)

// This is the number of the last window created. Use it to uniquely number windows.
var lastWindowNumber = -1

// A Window manages a rectangular area onscreen showing a view of a
// buffer. Each window has its own cursor position and display offset.
// During a jump, one window is created per saved point and carries a
// marker character that is drawn over the marked cell.
type Window struct {
	buffer *Buffer
	number int
	origin jott.Point
	size   jott.Size
	cursor jott.Point // cursor position
	offset jott.Size  // display offset
	marker rune       // point name drawn at the cursor cell, 0 for none
}

func NewWindow() *Window {
	lastWindowNumber++
	w := &Window{}
	w.number = lastWindowNumber
	w.buffer = NewBuffer()
	return w
}

func (w *Window) GetBuffer() jott.Buffer {
	return w.buffer
}

func (w *Window) GetIndex() int {
	return w.number
}

func (w *Window) SetRect(r jott.Rect) {
	w.origin = r.Origin
	w.size = r.Size
}

func (w *Window) GetCursor() jott.Point {
	return w.cursor
}

func (w *Window) SetCursor(cursor jott.Point) {
	w.cursor = cursor
}

// ShowLocation aims the window at a location in a buffer and sets the
// marker character drawn there.
func (w *Window) ShowLocation(location jott.Location, marker rune) {
	if b, ok := location.Buffer.(*Buffer); ok && b != nil {
		w.buffer = b
	}
	w.cursor = location.Pos
	w.marker = marker
	w.KeepCursorInRow()
}

// draw the window contents in its area with the current offset into the buffer
func (w *Window) Render(display jott.Display) {
	w.adjustDisplayOffsetForScrolling()

	b := w.buffer
	for i := 0; i < w.size.Rows-1; i++ {
		var line string
		if (i + w.offset.Rows) < len(b.rows) {
			line = b.rows[i+w.offset.Rows].GetString()
			if w.offset.Cols < len(line) {
				line = line[w.offset.Cols:]
			} else {
				line = ""
			}
		} else {
			line = "~"
		}
		// truncate line to fit the window
		if len(line) > w.size.Cols {
			line = line[0:w.size.Cols]
		}
		for j, c := range line {
			display.SetCell(j+w.origin.Col, i+w.origin.Row, rune(c), jott.ColorWhite)
		}
	}

	if w.marker != 0 {
		w.renderMarker(display)
	}

	// Draw the info bar as a single line at the bottom of the window.
	infoText := w.computeInfoBarText(w.size.Cols)
	infoRow := w.origin.Row + w.size.Rows - 1
	for x, ch := range infoText {
		display.SetCellReversed(x+w.origin.Col, infoRow, rune(ch), jott.ColorBlack)
	}
}

// Draw the marker character over the cell at the window's cursor.
func (w *Window) renderMarker(display jott.Display) {
	col := w.cursor.Col - w.offset.Cols
	row := w.cursor.Row - w.offset.Rows
	if col < 0 || col >= w.size.Cols || row < 0 || row >= w.size.Rows-1 {
		return
	}
	display.SetCellReversed(col+w.origin.Col, row+w.origin.Row, w.marker, jott.ColorWhite)
}

// Compute the text to display on the info bar.
func (w *Window) computeInfoBarText(length int) string {
	b := w.buffer
	finalText := fmt.Sprintf(" %d/%d ", w.cursor.Row+1, b.GetRowCount())
	var text string
	if w.marker != 0 {
		text = fmt.Sprintf("%c> %s ", w.marker, b.GetName())
	} else {
		text = fmt.Sprintf("%d> %s ", w.GetIndex(), b.GetName())
	}
	if b.ReadOnly {
		text = text + "(read-only) "
	}
	text = runewidth.Truncate(text, length-len(finalText), "")
	for len(text) <= length-len(finalText)-1 {
		text = text + "."
	}
	text += finalText
	return text
}

// Recompute the display offset to keep the cursor onscreen.
func (w *Window) adjustDisplayOffsetForScrolling() {
	if w.cursor.Row < w.offset.Rows {
		// scroll up
		w.offset.Rows = w.cursor.Row
	}
	// reserve the last row for the info bar
	textRows := w.size.Rows - 1
	if w.cursor.Row-w.offset.Rows >= textRows {
		// scroll down
		w.offset.Rows = w.cursor.Row - textRows + 1
	}
	if w.cursor.Col < w.offset.Cols {
		// scroll left
		w.offset.Cols = w.cursor.Col
	}
	if w.cursor.Col-w.offset.Cols >= w.size.Cols {
		// scroll right
		w.offset.Cols = w.cursor.Col - w.size.Cols + 1
	}
}

func (w *Window) SetCursorForDisplay(d jott.Display) {
	d.SetCursor(jott.Point{
		Col: w.cursor.Col - w.offset.Cols + w.origin.Col,
		Row: w.cursor.Row - w.offset.Rows + w.origin.Row,
	})
}

func (w *Window) MoveCursor(direction int, multiplier int) {
	for i := 0; i < multiplier; i++ {
		switch direction {
		case jott.MoveLeft:
			if w.cursor.Col > 0 {
				w.cursor.Col--
			}
		case jott.MoveRight:
			if w.cursor.Row < w.buffer.GetRowCount() {
				rowLength := w.buffer.GetRowLength(w.cursor.Row)
				if w.cursor.Col < rowLength-1 {
					w.cursor.Col++
				}
			}
		case jott.MoveUp:
			if w.cursor.Row > 0 {
				w.cursor.Row--
			}
		case jott.MoveDown:
			if w.cursor.Row < w.buffer.GetRowCount()-1 {
				w.cursor.Row++
			}
		}
		// don't go past the end of the current line
		if w.cursor.Row < w.buffer.GetRowCount() {
			rowLength := w.buffer.GetRowLength(w.cursor.Row)
			if w.cursor.Col > rowLength-1 {
				w.cursor.Col = rowLength - 1
				if w.cursor.Col < 0 {
					w.cursor.Col = 0
				}
			}
		}
	}
}

func (w *Window) MoveToBeginningOfLine() {
	w.cursor.Col = 0
}

func (w *Window) MoveToEndOfLine() {
	w.cursor.Col = 0
	if w.cursor.Row < w.buffer.GetRowCount() {
		w.cursor.Col = w.buffer.GetRowLength(w.cursor.Row) - 1
		if w.cursor.Col < 0 {
			w.cursor.Col = 0
		}
	}
}

func (w *Window) PageUp(multiplier int) {
	// move to the top of the screen
	w.cursor.Row = w.offset.Rows
	for m := 0; m < multiplier; m++ {
		// move up by a page
		w.MoveCursor(jott.MoveUp, w.size.Rows)
	}
}

func (w *Window) PageDown(multiplier int) {
	// move to the bottom of the screen
	w.cursor.Row = min(
		w.offset.Rows+w.size.Rows-1,
		w.buffer.GetRowCount()-1)
	for m := 0; m < multiplier; m++ {
		// move down by a page
		w.MoveCursor(jott.MoveDown, w.size.Rows)
	}
}

func (w *Window) KeepCursorInRow() {
	if w.buffer.GetRowCount() == 0 {
		w.cursor.Col = 0
	} else {
		if w.cursor.Row >= w.buffer.GetRowCount() {
			w.cursor.Row = w.buffer.GetRowCount() - 1
		}
		if w.cursor.Row < 0 {
			w.cursor.Row = 0
		}
		lastIndexInRow := w.buffer.rows[w.cursor.Row].Length() - 1
		if w.cursor.Col > lastIndexInRow {
			w.cursor.Col = lastIndexInRow
		}
		if w.cursor.Col < 0 {
			w.cursor.Col = 0
		}
	}
}

func (w *Window) AppendBlankRow() {
	w.buffer.rows = append(w.buffer.rows, NewRow(""))
}

func (w *Window) InsertLineAboveCursor() {
	w.AppendBlankRow()
	copy(w.buffer.rows[w.cursor.Row+1:], w.buffer.rows[w.cursor.Row:])
	w.buffer.rows[w.cursor.Row] = NewRow("")
	w.cursor.Col = 0
}

func (w *Window) InsertLineBelowCursor() {
	w.AppendBlankRow()
	copy(w.buffer.rows[w.cursor.Row+2:], w.buffer.rows[w.cursor.Row+1:])
	w.buffer.rows[w.cursor.Row+1] = NewRow("")
	w.cursor.Row += 1
	w.cursor.Col = 0
}

func (w *Window) InsertChar(c rune, insert jott.InsertOperation) {
	if insert != nil {
		insert.AddCharacter(c)
	}
	if c == '\n' {
		w.InsertRow()
		w.cursor.Row++
		w.cursor.Col = 0
		return
	}
	// if the cursor is past the number of rows, add a row
	for w.cursor.Row >= w.buffer.GetRowCount() {
		w.AppendBlankRow()
	}
	w.buffer.InsertCharacter(w.cursor.Row, w.cursor.Col, c)
	w.cursor.Col += 1
}

func (w *Window) InsertRow() {
	if w.cursor.Row >= w.buffer.GetRowCount() {
		// we should never get here
		w.AppendBlankRow()
	} else {
		newRow := w.buffer.rows[w.cursor.Row].Split(w.cursor.Col)
		i := w.cursor.Row + 1
		// add a dummy row at the end of the Rows slice
		w.AppendBlankRow()
		// move rows to make room for the one we are adding
		copy(w.buffer.rows[i+1:], w.buffer.rows[i:])
		// add the new row
		w.buffer.rows[i] = newRow
	}
}

func (w *Window) BackspaceChar(insert jott.InsertOperation) rune {
	if w.buffer.GetRowCount() == 0 {
		return rune(0)
	}
	if insert == nil || insert.Length() == 0 {
		return rune(0)
	}
	insert.DeleteCharacter()
	if w.cursor.Col > 0 {
		c := w.buffer.rows[w.cursor.Row].DeleteChar(w.cursor.Col - 1)
		w.cursor.Col--
		return c
	} else if w.cursor.Row > 0 {
		// remove the current row and join it with the previous one
		oldRowText := w.buffer.rows[w.cursor.Row].Text
		var newCursor jott.Point
		newCursor.Col = len(w.buffer.rows[w.cursor.Row-1].Text)
		w.buffer.rows[w.cursor.Row-1].Text = append(w.buffer.rows[w.cursor.Row-1].Text, oldRowText...)
		w.buffer.DeleteRow(w.cursor.Row)
		w.cursor.Row--
		w.cursor.Col = newCursor.Col
		return rune('\n')
	}
	return rune(0)
}

func (w *Window) ReplaceCharacterAtCursor(cursor jott.Point, c rune) rune {
	if cursor.Row >= w.buffer.GetRowCount() {
		return 0
	}
	return w.buffer.rows[cursor.Row].ReplaceChar(cursor.Col, c)
}

func (w *Window) JoinRow(multiplier int) []jott.Point {
	if w.buffer.GetRowCount() == 0 {
		return nil
	}
	// remove the next row and join it with this one
	insertions := make([]jott.Point, 0)
	for i := 0; i < multiplier; i++ {
		if w.cursor.Row+1 >= w.buffer.GetRowCount() {
			break
		}
		oldRowText := w.buffer.rows[w.cursor.Row+1].Text
		var newCursor jott.Point
		newCursor.Col = len(w.buffer.rows[w.cursor.Row].Text)
		w.buffer.rows[w.cursor.Row].Text = append(w.buffer.rows[w.cursor.Row].Text, oldRowText...)
		w.buffer.rows = append(w.buffer.rows[0:w.cursor.Row+1], w.buffer.rows[w.cursor.Row+2:]...)
		w.cursor.Col = newCursor.Col
		insertions = append(insertions, w.cursor)
	}
	return insertions
}

func (w *Window) DeleteRowsAtCursor(multiplier int) string {
	deletedText := ""
	for i := 0; i < multiplier; i++ {
		row := w.cursor.Row
		if row < w.buffer.GetRowCount() {
			if i > 0 {
				deletedText += "\n"
			}
			deletedText += string(w.buffer.rows[row].Text)
			w.buffer.rows = append(w.buffer.rows[0:row], w.buffer.rows[row+1:]...)
		} else {
			break
		}
	}
	w.cursor.Row = clipToRange(w.cursor.Row, 0, w.buffer.GetRowCount()-1)
	return deletedText
}

func (w *Window) DeleteCharactersAtCursor(multiplier int, joinLines bool, finallyDeleteRow bool) string {
	deletedText := w.buffer.DeleteCharacters(w.cursor.Row, w.cursor.Col, multiplier, joinLines)
	if w.buffer.GetRowCount() > 0 {
		if w.cursor.Col > w.buffer.rows[w.cursor.Row].Length()-1 {
			w.cursor.Col--
		}
		if w.cursor.Col < 0 {
			w.cursor.Col = 0
		}
	}
	if finallyDeleteRow && w.buffer.GetRowCount() > 0 {
		w.buffer.DeleteRow(w.cursor.Row)
	}
	return deletedText
}

func (w *Window) InsertText(text string, position int, insert jott.InsertOperation) (jott.Point, int) {
	if w.buffer.GetRowCount() == 0 {
		w.AppendBlankRow()
	}
	switch position {
	case jott.InsertAtCursor:
		break
	case jott.InsertAfterCursor:
		w.cursor.Col++
		w.cursor.Col = clipToRange(w.cursor.Col, 0, w.buffer.rows[w.cursor.Row].Length())
	case jott.InsertAtStartOfLine:
		w.cursor.Col = 0
	case jott.InsertAfterEndOfLine:
		w.cursor.Col = w.buffer.rows[w.cursor.Row].Length()
	case jott.InsertAtNewLineBelowCursor:
		w.InsertLineBelowCursor()
	case jott.InsertAtNewLineAboveCursor:
		w.InsertLineAboveCursor()
	}
	var mode int
	if text != "" {
		r := w.cursor.Row
		c := w.cursor.Col
		for _, ch := range text {
			w.InsertChar(ch, insert)
		}
		w.cursor.Row = r
		w.cursor.Col = c
		mode = jott.ModeEdit
	} else {
		mode = jott.ModeInsert
	}
	return w.cursor, mode
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
