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

// Package layout computes near-square grids of sub-views. A plan
// describes how to divide a display into n views; tiling converts a
// plan into concrete screen rectangles. Plans are pure values and are
// independent of any rendering code.
package layout

import (
	"math"

	jott "github.com/timburks/jott/types"
)

// A Plan describes a grid: the number of rows and the number of
// columns in each row. The column counts always sum to the number of
// views the plan was built for.
type Plan struct {
	Rows int
	Cols []int
}

// NewPlan computes the grid for n views. The row count is the square
// root of n rounded to the nearest integer (math.Round; a tie at .5
// cannot occur because the square root of an integer is never exactly
// halfway). Each row is filled at the full width, the ceiling of
// n/rows, until the cumulative capacity passes n; the overflow is
// trimmed from the later rows. A row whose quota is entirely absorbed
// by the overflow has zero columns and contributes no view.
func NewPlan(n int) Plan {
	if n < 1 {
		return Plan{}
	}
	rows := int(math.Round(math.Sqrt(float64(n))))
	cols := (n + rows - 1) / rows
	plan := Plan{Rows: rows, Cols: make([]int, 0, rows)}
	for r := 0; r < rows; r++ {
		c := cols
		if over := cols*(r+1) - n; over > 0 {
			c -= over
		}
		if c < 0 {
			c = 0
		}
		plan.Cols = append(plan.Cols, c)
	}
	return plan
}

// Count returns the number of views in the plan.
func (plan Plan) Count() int {
	n := 0
	for _, c := range plan.Cols {
		n += c
	}
	return n
}

// Tile computes a rectangle for each view of the plan, in row-major
// order within the given area. Heights and widths are divided as
// evenly as possible, with any remainder going to the earlier rows and
// columns. Rows with zero columns take no space.
func (plan Plan) Tile(area jott.Rect) []jott.Rect {
	rows := 0
	for _, c := range plan.Cols {
		if c > 0 {
			rows++
		}
	}
	if rows == 0 {
		return nil
	}
	rects := make([]jott.Rect, 0, plan.Count())
	height := area.Size.Rows / rows
	extraRows := area.Size.Rows % rows
	top := area.Origin.Row
	row := 0
	for _, cols := range plan.Cols {
		if cols == 0 {
			continue
		}
		h := height
		if row < extraRows {
			h++
		}
		width := area.Size.Cols / cols
		extraCols := area.Size.Cols % cols
		left := area.Origin.Col
		for c := 0; c < cols; c++ {
			w := width
			if c < extraCols {
				w++
			}
			rects = append(rects, jott.Rect{
				Origin: jott.Point{Row: top, Col: left},
				Size:   jott.Size{Rows: h, Cols: w},
			})
			left += w
		}
		top += h
		row++
	}
	return rects
}
