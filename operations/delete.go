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
package operations

import (
	jott "github.com/timburks/jott/types"
)

// DeleteCharacter deletes characters at the cursor. When performed as
// an undo it also rejoins lines that the forward operation split.
type DeleteCharacter struct {
	operation
	FinallyDeleteRow bool
}

func (op *DeleteCharacter) Perform(e jott.Editor, multiplier int) jott.Operation {
	op.init(e, multiplier)

	deletedText := e.DeleteCharactersAtCursor(op.Multiplier, op.Undo, op.FinallyDeleteRow)

	inverse := &Insert{Position: jott.InsertAtCursor, Text: deletedText}
	inverse.copyForUndo(&op.operation)
	return inverse
}

// DeleteRow deletes rows at the cursor.
type DeleteRow struct {
	operation
}

func (op *DeleteRow) Perform(e jott.Editor, multiplier int) jott.Operation {
	op.init(e, multiplier)

	deletedText := e.DeleteRowsAtCursor(op.Multiplier)
	if deletedText == "" {
		return nil
	}
	inverse := &Insert{Position: jott.InsertAtNewLineAboveCursor, Text: deletedText}
	inverse.copyForUndo(&op.operation)
	return inverse
}
