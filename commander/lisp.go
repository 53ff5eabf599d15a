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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/steelseries/golisp"

	"github.com/timburks/jott/layout"
	jott "github.com/timburks/jott/types"
)

// The lisp primitives are registered globally, so they reach the
// editor through this package variable. There is one commander per
// session.
var boundEditor jott.Editor

var primitivesRegistered = false

// bind connects the lisp primitives to an editor.
func bind(e jott.Editor) {
	boundEditor = e
	if primitivesRegistered {
		return
	}
	primitivesRegistered = true
	golisp.MakePrimitiveFunction("save-point", "0", savePointImpl)
	golisp.MakePrimitiveFunction("jump-to-point", "0", jumpToPointImpl)
	golisp.MakePrimitiveFunction("clear-points", "0", clearPointsImpl)
	golisp.MakePrimitiveFunction("point-count", "0", pointCountImpl)
	golisp.MakePrimitiveFunction("point-names", "0", pointNamesImpl)
	golisp.MakePrimitiveFunction("grid-plan", "1", gridPlanImpl)
}

func savePointImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	name, err := boundEditor.SavePoint()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(string(name)), nil
}

func jumpToPointImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if err := boundEditor.JumpToPoint(); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(boundEditor.PointNames()), nil
}

func clearPointsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	name := boundEditor.ClearPoints()
	return golisp.StringWithValue(string(name)), nil
}

func pointCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(boundEditor.PointCount())), nil
}

func pointNamesImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(boundEditor.PointNames()), nil
}

// gridPlanImpl exposes the grid planner: (grid-plan 5) => "3 2", the
// column counts of each row of a 5-view grid.
func gridPlanImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	var n int
	switch {
	case golisp.IntegerP(val):
		n = int(golisp.IntegerValue(val))
	case golisp.FloatP(val):
		n = int(golisp.FloatValue(val))
	default:
		return nil, errors.New("grid-plan requires a numeric argument")
	}
	if n < 1 {
		return nil, errors.New("grid-plan requires a positive argument")
	}
	plan := layout.NewPlan(n)
	cols := make([]string, 0, len(plan.Cols))
	for _, c := range plan.Cols {
		cols = append(cols, fmt.Sprintf("%d", c))
	}
	return golisp.StringWithValue(strings.Join(cols, " ")), nil
}

// ParseEval evaluates a lisp expression and returns its printed value.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates a file of lisp expressions.
func (c *Commander) ParseEvalFile(path string) string {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	return c.ParseEval(string(bytes))
}
