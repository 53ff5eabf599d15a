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
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/timburks/jott/operations"
	jott "github.com/timburks/jott/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor     jott.Editor
	mode       int    // editor mode
	debug      bool   // debug mode displays information about events (key codes, etc)
	editKeys   string // multi-key command in progress
	command    string // command as it is being typed on the command line
	lispText   string // lisp command as it is being typed
	message    string // status message
	multiplier string // multiplier string as it is being entered
}

func NewCommander(e jott.Editor) *Commander {
	c := &Commander{editor: e, mode: jott.ModeEdit}
	bind(e)
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != jott.ModeQuit
}

func (c *Commander) ProcessEvent(event *jott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case jott.EventKey:
		return c.ProcessKey(event)
	case jott.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *jott.Event) error {
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *jott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch

	// multikey commands have highest precedence
	if len(c.editKeys) > 0 {
		switch c.editKeys {
		case "r":
			if key == jott.KeySpace {
				e.Perform(&operations.ReplaceCharacter{Character: ' '}, c.Multiplier())
			} else if ch != 0 {
				e.Perform(&operations.ReplaceCharacter{Character: ch}, c.Multiplier())
			}
		}
		c.editKeys = ""
		return nil
	}
	if key != 0 {
		switch key {
		case jott.KeyEsc:
			break
		case jott.KeyPgup:
			e.PageUp(c.Multiplier())
		case jott.KeyPgdn:
			e.PageDown(c.Multiplier())
		case jott.KeyHome:
			e.MoveToBeginningOfLine()
		case jott.KeyEnd:
			e.MoveToEndOfLine()
		case jott.KeyArrowUp:
			e.MoveCursor(jott.MoveUp, c.Multiplier())
		case jott.KeyArrowDown:
			e.MoveCursor(jott.MoveDown, c.Multiplier())
		case jott.KeyArrowLeft:
			e.MoveCursor(jott.MoveLeft, c.Multiplier())
		case jott.KeyArrowRight:
			e.MoveCursor(jott.MoveRight, c.Multiplier())
		}
	}
	if ch != 0 {
		switch ch {
		//
		// command multipliers are saved when operations are created
		//
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.multiplier += string(ch)
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = jott.ModeCommand
			c.command = ""
		//
		// lisp commands go to the message bar
		//
		case '(':
			c.mode = jott.ModeLisp
			c.lispText = "("
		//
		// cursor movement
		//
		case 'h':
			e.MoveCursor(jott.MoveLeft, c.Multiplier())
		case 'j':
			e.MoveCursor(jott.MoveDown, c.Multiplier())
		case 'k':
			e.MoveCursor(jott.MoveUp, c.Multiplier())
		case 'l':
			e.MoveCursor(jott.MoveRight, c.Multiplier())
		//
		// point commands
		//
		case 'm': // save a point at the cursor
			c.SavePoint()
		case '\'': // jump to a saved point
			c.JumpToPoint()
		case 'M': // clear the saved points
			name := e.ClearPoints()
			c.message = fmt.Sprintf("cleared points, saved point '%c'", name)
		//
		// "performed" operations are saved for undo and repetition
		//
		case 'i':
			e.Perform(&operations.Insert{Position: jott.InsertAtCursor, Commander: c}, c.Multiplier())
		case 'a':
			e.Perform(&operations.Insert{Position: jott.InsertAfterCursor, Commander: c}, c.Multiplier())
		case 'I':
			e.Perform(&operations.Insert{Position: jott.InsertAtStartOfLine, Commander: c}, c.Multiplier())
		case 'A':
			e.Perform(&operations.Insert{Position: jott.InsertAfterEndOfLine, Commander: c}, c.Multiplier())
		case 'o':
			e.Perform(&operations.Insert{Position: jott.InsertAtNewLineBelowCursor, Commander: c}, c.Multiplier())
		case 'O':
			e.Perform(&operations.Insert{Position: jott.InsertAtNewLineAboveCursor, Commander: c}, c.Multiplier())
		case 'x':
			e.Perform(&operations.DeleteCharacter{}, c.Multiplier())
		case 'd':
			e.Perform(&operations.DeleteRow{}, c.Multiplier())
		case 'J':
			e.Perform(&operations.JoinLine{}, c.Multiplier())
		case 'r':
			c.editKeys = "r"
		//
		// undo
		//
		case 'u':
			e.PerformUndo()
		//
		// repeat
		//
		case '.':
			e.Repeat()
		}
	}
	return nil
}

// SavePoint bookmarks the cursor position and reports the chosen name.
func (c *Commander) SavePoint() {
	name, err := c.editor.SavePoint()
	if err != nil {
		c.message = err.Error()
		return
	}
	c.message = fmt.Sprintf("saved point '%c'", name)
}

// JumpToPoint runs an interactive jump among the saved points.
func (c *Commander) JumpToPoint() {
	c.message = ""
	if err := c.editor.JumpToPoint(); err != nil {
		// already surfaced to the user; log it for debugging
		log.Printf("jump: %v", err)
	}
}

func (c *Commander) ProcessKeyInsertMode(event *jott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case jott.KeyEsc: // end an insert operation.
			e.CloseInsert()
			c.mode = jott.ModeEdit
			e.KeepCursorInRow()
		case jott.KeyBackspace2:
			e.BackspaceChar()
		case jott.KeyTab:
			e.InsertChar(' ')
			for {
				if e.GetCursor().Col%8 == 0 {
					break
				}
				e.InsertChar(' ')
			}
		case jott.KeyEnter:
			e.InsertChar('\n')
		case jott.KeySpace:
			e.InsertChar(' ')
		}
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *jott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case jott.KeyEsc:
			c.mode = jott.ModeEdit
		case jott.KeyEnter:
			c.PerformCommand()
		case jott.KeyBackspace2:
			if len(c.command) > 0 {
				c.command = c.command[0 : len(c.command)-1]
			}
		case jott.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *jott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case jott.KeyEsc:
			c.mode = jott.ModeEdit
		case jott.KeyEnter:
			c.message = c.ParseEval(c.lispText)
			c.mode = jott.ModeEdit
		case jott.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case jott.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKey(event *jott.Event) error {
	var err error
	switch c.mode {
	case jott.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case jott.ModeInsert:
		err = c.ProcessKeyInsertMode(event)
	case jott.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case jott.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

func (c *Commander) PerformCommand() {

	e := c.editor

	parts := strings.Split(c.command, " ")
	if len(parts) > 0 {

		i, err := strconv.ParseInt(parts[0], 10, 64)
		if err == nil {
			newRow := int(i - 1)
			if newRow > e.GetBuffer().GetRowCount()-1 {
				newRow = e.GetBuffer().GetRowCount() - 1
			}
			if newRow < 0 {
				newRow = 0
			}
			cursor := e.GetCursor()
			cursor.Row = newRow
			cursor.Col = 0
			e.SetCursor(cursor)
		}
		switch parts[0] {
		case "q":
			c.mode = jott.ModeQuit
			return
		case "r":
			if len(parts) == 2 {
				filename := parts[1]
				e.ReadFile(filename)
			}
		case "debug":
			if len(parts) == 2 {
				if parts[1] == "on" {
					c.debug = true
				} else if parts[1] == "off" {
					c.debug = false
					c.message = ""
				}
			}
		case "w":
			var filename string
			if len(parts) == 2 {
				filename = parts[1]
			} else {
				filename = e.GetBuffer().GetFileName()
			}
			e.WriteFile(filename)
		case "wq":
			var filename string
			if len(parts) == 2 {
				filename = parts[1]
			} else {
				filename = e.GetBuffer().GetFileName()
			}
			e.WriteFile(filename)
			c.mode = jott.ModeQuit
			return
		case "fmt":
			out, err := e.Gofmt(e.GetBuffer().GetFileName(), e.Bytes())
			if err == nil {
				e.GetBuffer().LoadBytes(out)
			}
		case "$":
			newRow := e.GetBuffer().GetRowCount() - 1
			if newRow < 0 {
				newRow = 0
			}
			cursor := e.GetCursor()
			cursor.Row = newRow
			cursor.Col = 0
			e.SetCursor(cursor)
		case "buffer":
			if len(parts) > 1 {
				number, err := strconv.Atoi(parts[1])
				if err == nil {
					err = e.SelectBuffer(number)
					if err != nil {
						c.message = err.Error()
					} else {
						c.message = ""
					}
				} else {
					c.message = err.Error()
				}
			}
		case "points":
			c.message = fmt.Sprintf("%d point(s): %s", e.PointCount(), e.PointNames())
		default:
			c.message = ""
		}
	}
	c.command = ""
	c.mode = jott.ModeEdit
}

func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplier, 10, 64)
	if err != nil {
		c.multiplier = ""
		return 1
	}
	c.multiplier = ""
	return int(i)
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}
