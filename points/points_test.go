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
package points

import (
	"testing"

	jott "github.com/timburks/jott/types"
)

func at(row, col int) jott.Location {
	return jott.Location{Pos: jott.Point{Row: row, Col: col}}
}

func TestNamingSequence(t *testing.T) {
	r := NewRegistry()
	for i, name := range Names {
		p, err := r.Save(at(i, 0))
		if err != nil {
			t.Fatalf("Save failed at %d: %+v", i, err)
		}
		if p.Name != name {
			t.Errorf("unexpected name '%c' for point %d", p.Name, i)
		}
		if r.Current() != p {
			t.Errorf("point '%c' did not become current", name)
		}
	}
	if r.Count() != len(Names) {
		t.Errorf("unexpected count %d", r.Count())
	}
}

func TestCapacity(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < len(Names); i++ {
		if _, err := r.Save(at(i, 0)); err != nil {
			t.Fatalf("Save failed at %d: %+v", i, err)
		}
	}
	current := r.Current()
	_, err := r.Save(at(99, 0))
	if err != ErrCapacityExceeded {
		t.Errorf("expected ErrCapacityExceeded, got %+v", err)
	}
	if r.Count() != len(Names) {
		t.Errorf("failed save changed the count to %d", r.Count())
	}
	if r.Current() != current {
		t.Errorf("failed save changed the current point")
	}
}

func TestLowestFreeNameReused(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 5; i++ { // a b c d e
		r.Save(at(i, 0))
	}
	r.Clear(at(9, 9))
	p, err := r.Save(at(10, 0))
	if err != nil {
		t.Fatalf("Save failed: %+v", err)
	}
	if p.Name != 'b' {
		t.Errorf("expected name 'b' after clear, got '%c'", p.Name)
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 10; i++ {
		r.Save(at(i, 0))
	}
	p := r.Clear(at(3, 4))
	if p.Name != 'a' {
		t.Errorf("unexpected name '%c' for the fresh point", p.Name)
	}
	if r.Count() != 1 {
		t.Errorf("unexpected count %d after clear", r.Count())
	}
	if r.Current() != p {
		t.Errorf("fresh point is not current")
	}
	// clearing a registry holding one point leaves an equivalent state
	p = r.Clear(at(3, 4))
	if p.Name != 'a' || r.Count() != 1 || r.Current() != p {
		t.Errorf("second clear left name '%c' count %d", p.Name, r.Count())
	}
}

func TestUpdateCurrentLocation(t *testing.T) {
	r := NewRegistry()
	if err := r.UpdateCurrentLocation(at(1, 1)); err != ErrNoCurrentPoint {
		t.Errorf("expected ErrNoCurrentPoint, got %+v", err)
	}
	p, _ := r.Save(at(0, 0))
	if err := r.UpdateCurrentLocation(at(7, 3)); err != nil {
		t.Fatalf("UpdateCurrentLocation failed: %+v", err)
	}
	if p.Location.Pos.Row != 7 || p.Location.Pos.Col != 3 {
		t.Errorf("unexpected location %+v", p.Location.Pos)
	}
}

func TestSetCurrent(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Save(at(0, 0))
	b, _ := r.Save(at(1, 0))
	if r.Current() != b {
		t.Fatalf("expected '%c' to be current", b.Name)
	}
	r.SetCurrent(a)
	if r.Current() != a {
		t.Errorf("SetCurrent did not take effect")
	}
}

func TestPointsOrder(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 8; i++ {
		r.Save(at(i, 0))
	}
	list := r.Points()
	if len(list) != 8 {
		t.Fatalf("unexpected point count %d", len(list))
	}
	for i, p := range list {
		if p.Name != rune(Names[i]) {
			t.Errorf("point %d is named '%c'", i, p.Name)
		}
	}
}
