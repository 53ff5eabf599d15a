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

// Package types holds the structures and interfaces that are shared by
// the packages of jott. Collaborating components refer to each other
// through these interfaces so that each can be replaced in tests.
package types

// Editor modes
const (
	ModeEdit    = 0
	ModeInsert  = 1
	ModeCommand = 2
	ModeLisp    = 3
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Insert positions
const (
	InsertAtCursor             = 0
	InsertAfterCursor          = 1
	InsertAtStartOfLine        = 2
	InsertAfterEndOfLine       = 3
	InsertAtNewLineBelowCursor = 4
	InsertAtNewLineAboveCursor = 5
)

// Event types, matching the order used by termbox.
const (
	EventKey = iota
	EventResize
	EventMouse
	EventError
)

// A Key identifies a non-character keypress.
type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace2
	KeyCtrlG
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
)

// An Event describes a keypress or terminal state change.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// A Color describes the attribute used to draw a cell.
type Color uint16

const (
	ColorDefault Color = 0
	ColorBlack   Color = 1
	ColorWhite   Color = 8
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// A Location names a position in a document: the buffer being edited
// and the last-known cursor position within it. The buffer reference
// is non-owning; buffer lifetimes belong to the editor.
type Location struct {
	Buffer Buffer
	Pos    Point
}

// A Display is a grid of character cells that the editor draws into.
type Display interface {
	Size() Size
	SetCell(col, row int, c rune, color Color)
	SetCellReversed(col, row int, c rune, color Color)
	SetCursor(p Point)
}

// A Terminal is a display that can also be cleared, flushed, and read
// from. The screen package provides the termbox implementation.
type Terminal interface {
	Display
	Clear()
	Flush()
	// ReadCharacter blocks for a single keypress. It returns the
	// character and true, or zero and false if the read was aborted.
	ReadCharacter(prompt string) (rune, bool)
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetBuffer() Buffer
	GetMessage() string

	Render(display Display)
	PositionCursor(display Display)

	MoveCursor(direction int, multiplier int)
	PageUp(multiplier int)
	PageDown(multiplier int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	KeepCursorInRow()

	InsertChar(c rune)
	BackspaceChar() rune
	CloseInsert()
	InsertText(text string, position int) (Point, int)
	ReplaceCharacterAtCursor(cursor Point, c rune) rune
	JoinRow(multiplier int) []Point
	DeleteRowsAtCursor(multiplier int) string
	DeleteCharactersAtCursor(multiplier int, joinLines bool, finallyDeleteRow bool) string
	SetInsertOperation(insert InsertOperation)
	GetInsertOperation() InsertOperation

	Perform(op Operation, multiplier int)
	PerformUndo()
	Repeat()

	ReadFile(path string) error
	WriteFile(path string) error
	Bytes() []byte
	SelectBuffer(number int) error
	Gofmt(filename string, inputBytes []byte) (outputBytes []byte, err error)

	SavePoint() (rune, error)
	ClearPoints() rune
	JumpToPoint() error
	PointCount() int
	PointNames() string
}

type Buffer interface {
	GetName() string
	GetFileName() string
	GetRowCount() int
	GetRowLength(i int) int
	TextAfter(row, col int) string
	LoadBytes(bytes []byte)
	Bytes() []byte
}

type Operation interface {
	Perform(e Editor, multiplier int) Operation // performs the operation and returns its inverse
}

type InsertOperation interface {
	Operation
	AddCharacter(c rune)
	DeleteCharacter()
	Close()
	Length() int
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetCommand() string
	GetLispText() string
	GetMessage() string
}
