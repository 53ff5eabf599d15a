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
	"os"

	"github.com/timburks/jott/jump"
	"github.com/timburks/jott/layout"
	"github.com/timburks/jott/points"
	jott "github.com/timburks/jott/types"
)

// The Editor manages the editing of text in buffers and the windows
// that view them. Ordinarily one window fills the screen; during a
// jump the editor tiles the screen with one window per saved point.
// The editor owns the point registry and provides the display services
// that the jump package requires.
type Editor struct {
	buffers  []*Buffer
	windows  []*Window        // current layout, row-major
	active   int              // index of the focused window
	plan     layout.Plan      // grid plan for the current layout, empty for one window
	size     jott.Size        // size of the editing area
	display  jott.Terminal    // used for jump-time rendering and reads, may be nil
	registry *points.Registry // saved points for this session
	message  string           // reported errors, shown on the message bar

	previous jott.Operation       // last operation performed, available to repeat
	undo     []jott.Operation     // stack of operations to undo
	insert   jott.InsertOperation // when in insert mode, the current insert operation
}

func NewEditor() *Editor {
	e := &Editor{}
	w := NewWindow()
	e.buffers = []*Buffer{w.buffer}
	e.windows = []*Window{w}
	e.registry = points.NewRegistry()
	// establish the initial current point
	e.registry.Clear(e.CurrentLocation())
	return e
}

// SetDisplay attaches the terminal used for jump-time rendering and
// character reads.
func (e *Editor) SetDisplay(display jott.Terminal) {
	e.display = display
}

// Registry exposes the point registry for scripting and tests.
func (e *Editor) Registry() *points.Registry {
	return e.registry
}

func (e *Editor) window() *Window {
	return e.windows[e.active]
}

func (e *Editor) SetSize(s jott.Size) {
	e.size = s
	e.layoutWindows()
}

func (e *Editor) layoutWindows() {
	area := jott.Rect{Size: e.size}
	if len(e.windows) == 1 {
		e.windows[0].SetRect(area)
		return
	}
	rects := e.plan.Tile(area)
	for i, w := range e.windows {
		if i < len(rects) {
			w.SetRect(rects[i])
		}
	}
}

// Render draws every window of the current layout.
func (e *Editor) Render(display jott.Display) {
	for _, w := range e.windows {
		w.Render(display)
	}
}

// PositionCursor places the display cursor in the focused window.
func (e *Editor) PositionCursor(display jott.Display) {
	e.window().SetCursorForDisplay(display)
}

func (e *Editor) GetMessage() string {
	return e.message
}

// file handling

func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	buffer := e.window().buffer
	if buffer.GetRowCount() > 0 || buffer.GetFileName() != "" {
		buffer = NewBuffer()
		e.buffers = append(e.buffers, buffer)
		e.window().buffer = buffer
		e.window().cursor = jott.Point{}
	}
	buffer.LoadBytes(b)
	buffer.SetFileName(path)
	return nil
}

func (e *Editor) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	b := e.Bytes()
	if isGoFile(path) {
		out, err := Gofmt(e.window().buffer.GetFileName(), b)
		if err == nil {
			f.Write(out)
			return nil
		}
	}
	f.Write(b)
	return nil
}

func (e *Editor) Bytes() []byte {
	return e.window().buffer.Bytes()
}

func (e *Editor) GetBuffer() jott.Buffer {
	return e.window().buffer
}

func (e *Editor) SelectBuffer(number int) error {
	for _, b := range e.buffers {
		if b.number == number {
			e.window().buffer = b
			e.window().cursor = jott.Point{}
			e.window().offset = jott.Size{}
			return nil
		}
	}
	return fmt.Errorf("no buffer numbered %d", number)
}

// operations

func (e *Editor) Perform(op jott.Operation, multiplier int) {
	// perform the operation
	inverse := op.Perform(e, multiplier)
	// save the operation for repeats
	e.previous = op
	// save the inverse of the operation for undo
	if inverse != nil {
		e.undo = append(e.undo, inverse)
	}
}

func (e *Editor) Repeat() {
	if e.previous != nil {
		inverse := e.previous.Perform(e, 0)
		if inverse != nil {
			e.undo = append(e.undo, inverse)
		}
	}
}

func (e *Editor) PerformUndo() {
	if len(e.undo) > 0 {
		last := len(e.undo) - 1
		undo := e.undo[last]
		e.undo = e.undo[0:last]
		undo.Perform(e, 0)
	}
}

func (e *Editor) SetInsertOperation(insert jott.InsertOperation) {
	e.insert = insert
}

func (e *Editor) GetInsertOperation() jott.InsertOperation {
	return e.insert
}

func (e *Editor) CloseInsert() {
	if e.insert != nil {
		e.insert.Close()
		e.insert = nil
	}
}

// editing primitives, delegated to the focused window

func (e *Editor) GetCursor() jott.Point {
	return e.window().cursor
}

func (e *Editor) SetCursor(cursor jott.Point) {
	e.window().cursor = cursor
}

func (e *Editor) MoveCursor(direction int, multiplier int) {
	e.window().MoveCursor(direction, multiplier)
}

func (e *Editor) PageUp(multiplier int) {
	e.window().PageUp(multiplier)
}

func (e *Editor) PageDown(multiplier int) {
	e.window().PageDown(multiplier)
}

func (e *Editor) MoveToBeginningOfLine() {
	e.window().MoveToBeginningOfLine()
}

func (e *Editor) MoveToEndOfLine() {
	e.window().MoveToEndOfLine()
}

func (e *Editor) KeepCursorInRow() {
	e.window().KeepCursorInRow()
}

func (e *Editor) InsertChar(c rune) {
	e.window().InsertChar(c, e.insert)
}

func (e *Editor) BackspaceChar() rune {
	return e.window().BackspaceChar(e.insert)
}

func (e *Editor) InsertText(text string, position int) (jott.Point, int) {
	return e.window().InsertText(text, position, e.insert)
}

func (e *Editor) ReplaceCharacterAtCursor(cursor jott.Point, c rune) rune {
	return e.window().ReplaceCharacterAtCursor(cursor, c)
}

func (e *Editor) JoinRow(multiplier int) []jott.Point {
	return e.window().JoinRow(multiplier)
}

func (e *Editor) DeleteRowsAtCursor(multiplier int) string {
	return e.window().DeleteRowsAtCursor(multiplier)
}

func (e *Editor) DeleteCharactersAtCursor(multiplier int, joinLines bool, finallyDeleteRow bool) string {
	return e.window().DeleteCharactersAtCursor(multiplier, joinLines, finallyDeleteRow)
}

// point commands

// SavePoint bookmarks the current cursor position. The new point
// becomes current and its single-character name is returned.
func (e *Editor) SavePoint() (rune, error) {
	p, err := e.registry.Save(e.CurrentLocation())
	if err != nil {
		return 0, err
	}
	return p.Name, nil
}

// ClearPoints discards every saved point and bookmarks the current
// cursor position as a fresh point.
func (e *Editor) ClearPoints() rune {
	return e.registry.Clear(e.CurrentLocation()).Name
}

// JumpToPoint runs an interactive jump among the saved points.
func (e *Editor) JumpToPoint() error {
	return jump.Jump(e.registry, e)
}

func (e *Editor) PointCount() int {
	return e.registry.Count()
}

// PointNames returns the names of the saved points in alphabet order.
func (e *Editor) PointNames() string {
	names := ""
	for _, p := range e.registry.Points() {
		names += string(p.Name)
	}
	return names
}

// jump.Host

func (e *Editor) CurrentLocation() jott.Location {
	w := e.window()
	return jott.Location{Buffer: w.buffer, Pos: w.cursor}
}

// A windowConfiguration is a snapshot of the editor's window layout.
type windowConfiguration struct {
	windows []*Window
	active  int
	plan    layout.Plan
}

func (e *Editor) SaveConfiguration() jump.Configuration {
	windows := make([]*Window, len(e.windows))
	copy(windows, e.windows)
	return &windowConfiguration{windows: windows, active: e.active, plan: e.plan}
}

func (e *Editor) RestoreConfiguration(c jump.Configuration) {
	saved, ok := c.(*windowConfiguration)
	if !ok {
		return
	}
	e.windows = saved.windows
	e.active = saved.active
	e.plan = saved.plan
	e.layoutWindows()
}

// SplitGrid replaces the window layout with a grid of fresh windows,
// one per view of the plan, in row-major order.
func (e *Editor) SplitGrid(plan layout.Plan) {
	buffer := e.window().buffer
	rects := plan.Tile(jott.Rect{Size: e.size})
	windows := make([]*Window, 0, len(rects))
	for _, r := range rects {
		w := NewWindow()
		w.buffer = buffer
		w.SetRect(r)
		windows = append(windows, w)
	}
	if len(windows) == 0 {
		return
	}
	e.windows = windows
	e.active = 0
	e.plan = plan
}

// ShowPoint aims the numbered view at a point's location and marks it.
func (e *Editor) ShowPoint(view int, location jott.Location, name rune) {
	if view < 0 || view >= len(e.windows) {
		return
	}
	e.windows[view].ShowLocation(location, name)
}

// FocusLocation moves the focused window to a location.
func (e *Editor) FocusLocation(location jott.Location) {
	e.window().ShowLocation(location, 0)
}

// ReadCharacter renders the current layout and blocks for a single
// keypress. Without an attached display the read is aborted, which
// cancels the jump.
func (e *Editor) ReadCharacter(prompt string) (rune, bool) {
	if e.display == nil {
		return 0, false
	}
	e.display.Clear()
	e.Render(e.display)
	return e.display.ReadCharacter(prompt)
}

// ReportError surfaces a non-fatal message to the user.
func (e *Editor) ReportError(message string) {
	e.message = message
}
