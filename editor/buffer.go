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
	"strings"

	jott "github.com/timburks/jott/types"
)

// This is the number of the last buffer created. Use it to uniquely number buffers.
var lastBufferNumber = -1

// A Buffer represents a file being edited.
type Buffer struct {
	number   int
	Name     string
	rows     []*Row
	fileName string
	ReadOnly bool
}

func NewBuffer() *Buffer {
	lastBufferNumber++
	b := &Buffer{}
	b.number = lastBufferNumber
	b.rows = make([]*Row, 0)
	return b
}

func (b *Buffer) GetIndex() int {
	return b.number
}

func (b *Buffer) GetName() string {
	return b.Name
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
	b.Name = name
}

func (b *Buffer) LoadBytes(bytes []byte) {
	s := string(bytes)
	lines := strings.Split(s, "\n")
	b.rows = make([]*Row, 0)
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

func (b *Buffer) Bytes() []byte {
	var s string
	for i, row := range b.rows {
		if i > 0 {
			s += "\n"
		}
		s += string(row.Text)
	}
	return []byte(s)
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetCharacterAtCursor(cursor jott.Point) rune {
	if cursor.Row < len(b.rows) {
		row := b.rows[cursor.Row]
		if cursor.Col < row.Length() && cursor.Col >= 0 {
			return row.Text[cursor.Col]
		}
	}
	return rune(0)
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	if row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

func (b *Buffer) DeleteRow(row int) {
	if row < len(b.rows) {
		b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	}
}

func (b *Buffer) DeleteCharacters(row int, col int, count int, joinLines bool) string {
	deletedText := ""
	if b.GetRowCount() == 0 {
		return deletedText
	}
	for i := 0; i < count; i++ {
		if col < b.rows[row].Length() {
			c := b.rows[row].DeleteChar(col)
			deletedText += string(c)
		} else if joinLines && row < b.GetRowCount()-1 {
			// join next row to current row
			nextRow := b.rows[row+1]
			b.rows[row].Join(nextRow)
			// remove next row
			b.DeleteRow(row + 1)
			deletedText += "\n"
		}
	}
	return deletedText
}
