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
package layout

import (
	"math"
	"testing"

	jott "github.com/timburks/jott/types"
)

func equalCols(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPlanGoldenCases(t *testing.T) {
	cases := []struct {
		n    int
		rows int
		cols []int
	}{
		{1, 1, []int{1}},
		{2, 1, []int{2}},
		{3, 2, []int{2, 1}},
		{4, 2, []int{2, 2}},
		{5, 2, []int{3, 2}},
		{7, 3, []int{3, 3, 1}},
		{9, 3, []int{3, 3, 3}},
		{12, 3, []int{4, 4, 4}},
		{13, 4, []int{4, 4, 4, 1}},
		{36, 6, []int{6, 6, 6, 6, 6, 6}},
	}
	for _, c := range cases {
		plan := NewPlan(c.n)
		if plan.Rows != c.rows {
			t.Errorf("plan(%d): unexpected row count %d", c.n, plan.Rows)
		}
		if !equalCols(plan.Cols, c.cols) {
			t.Errorf("plan(%d): unexpected columns %v", c.n, plan.Cols)
		}
	}
}

func TestPlanInvariants(t *testing.T) {
	for n := 1; n <= 36; n++ {
		plan := NewPlan(n)
		if plan.Count() != n {
			t.Errorf("plan(%d): columns sum to %d", n, plan.Count())
		}
		expectedRows := int(math.Round(math.Sqrt(float64(n))))
		if plan.Rows != expectedRows {
			t.Errorf("plan(%d): unexpected row count %d", n, plan.Rows)
		}
		for r := 1; r < len(plan.Cols); r++ {
			if plan.Cols[r] > plan.Cols[r-1] {
				t.Errorf("plan(%d): row %d wider than row %d", n, r, r-1)
			}
		}
	}
}

func TestPlanEmpty(t *testing.T) {
	for _, n := range []int{0, -1} {
		plan := NewPlan(n)
		if plan.Rows != 0 || len(plan.Cols) != 0 {
			t.Errorf("plan(%d): expected an empty plan, got %+v", n, plan)
		}
		if rects := plan.Tile(jott.Rect{Size: jott.Size{Rows: 24, Cols: 80}}); rects != nil {
			t.Errorf("plan(%d): expected no rectangles, got %d", n, len(rects))
		}
	}
}

func TestTileCoversArea(t *testing.T) {
	area := jott.Rect{Origin: jott.Point{Row: 0, Col: 0}, Size: jott.Size{Rows: 24, Cols: 80}}
	for n := 1; n <= 36; n++ {
		plan := NewPlan(n)
		rects := plan.Tile(area)
		if len(rects) != n {
			t.Errorf("tile(%d): expected %d rectangles, got %d", n, n, len(rects))
			continue
		}
		// every cell of the area is covered by exactly one rectangle
		covered := make([][]int, area.Size.Rows)
		for i := range covered {
			covered[i] = make([]int, area.Size.Cols)
		}
		for _, r := range rects {
			for y := r.Origin.Row; y < r.Origin.Row+r.Size.Rows; y++ {
				for x := r.Origin.Col; x < r.Origin.Col+r.Size.Cols; x++ {
					covered[y][x]++
				}
			}
		}
		for y := range covered {
			for x := range covered[y] {
				if covered[y][x] != 1 {
					t.Fatalf("tile(%d): cell %d,%d covered %d times", n, y, x, covered[y][x])
				}
			}
		}
	}
}

func TestTileRowMajorOrder(t *testing.T) {
	area := jott.Rect{Size: jott.Size{Rows: 24, Cols: 80}}
	rects := NewPlan(5).Tile(area)
	for i := 1; i < len(rects); i++ {
		prev, next := rects[i-1], rects[i]
		if next.Origin.Row < prev.Origin.Row {
			t.Errorf("rectangle %d is above rectangle %d", i, i-1)
		}
		if next.Origin.Row == prev.Origin.Row && next.Origin.Col <= prev.Origin.Col {
			t.Errorf("rectangle %d is left of rectangle %d", i, i-1)
		}
	}
	// the second row of a five-view grid has two views
	if rects[3].Origin.Row != 12 || rects[3].Origin.Col != 0 {
		t.Errorf("unexpected origin for view 3: %+v", rects[3].Origin)
	}
	if rects[4].Origin.Row != 12 || rects[4].Origin.Col != 40 {
		t.Errorf("unexpected origin for view 4: %+v", rects[4].Origin)
	}
}
