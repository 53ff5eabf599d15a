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

// Sequence performs a list of operations as one unit.
type Sequence struct {
	operation
	Operations []jott.Operation
}

func (op *Sequence) Perform(e jott.Editor, multiplier int) jott.Operation {
	op.init(e, multiplier)
	inverses := make([]jott.Operation, 0, len(op.Operations))
	for _, o := range op.Operations {
		if inverse := o.Perform(e, 1); inverse != nil {
			inverses = append(inverses, inverse)
		}
	}
	if len(inverses) == 0 {
		return nil
	}
	// undo in reverse order
	for i, j := 0, len(inverses)-1; i < j; i, j = i+1, j-1 {
		inverses[i], inverses[j] = inverses[j], inverses[i]
	}
	inverse := &Sequence{Operations: inverses}
	inverse.copyForUndo(&op.operation)
	return inverse
}
