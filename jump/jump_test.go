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
package jump

import (
	"testing"

	"github.com/timburks/jott/layout"
	"github.com/timburks/jott/points"
	jott "github.com/timburks/jott/types"
)

// testHost records the calls a jump makes so tests can check their
// order and arguments.
type testHost struct {
	location jott.Location
	ch       rune
	ok       bool

	calls    []string
	plan     layout.Plan
	shown    map[rune]int
	focused  *jott.Location
	reported string
}

func newTestHost(ch rune, ok bool) *testHost {
	return &testHost{ch: ch, ok: ok, shown: make(map[rune]int)}
}

func (h *testHost) CurrentLocation() jott.Location {
	return h.location
}

func (h *testHost) SaveConfiguration() Configuration {
	h.calls = append(h.calls, "save")
	return "saved"
}

func (h *testHost) RestoreConfiguration(c Configuration) {
	if c != Configuration("saved") {
		h.calls = append(h.calls, "restore-bad")
		return
	}
	h.calls = append(h.calls, "restore")
}

func (h *testHost) SplitGrid(plan layout.Plan) {
	h.calls = append(h.calls, "split")
	h.plan = plan
}

func (h *testHost) ShowPoint(view int, location jott.Location, name rune) {
	h.calls = append(h.calls, "show")
	h.shown[name] = view
}

func (h *testHost) FocusLocation(location jott.Location) {
	h.calls = append(h.calls, "focus")
	h.focused = &location
}

func (h *testHost) ReadCharacter(prompt string) (rune, bool) {
	h.calls = append(h.calls, "read")
	return h.ch, h.ok
}

func (h *testHost) ReportError(message string) {
	h.reported = message
}

func registryWithPoints(n int) *points.Registry {
	r := points.NewRegistry()
	for i := 0; i < n; i++ {
		r.Save(jott.Location{Pos: jott.Point{Row: i * 10, Col: i}})
	}
	return r
}

func TestJumpRequiresTwoPoints(t *testing.T) {
	for n := 0; n <= 1; n++ {
		host := newTestHost('a', true)
		r := registryWithPoints(n)
		if err := Jump(r, host); err != nil {
			t.Errorf("jump with %d points failed: %+v", n, err)
		}
		if len(host.calls) != 0 {
			t.Errorf("jump with %d points touched the host: %v", n, host.calls)
		}
	}
}

func TestJumpResolution(t *testing.T) {
	host := newTestHost('a', true)
	host.location = jott.Location{Pos: jott.Point{Row: 42, Col: 7}}
	r := registryWithPoints(3)
	if err := Jump(r, host); err != nil {
		t.Fatalf("jump failed: %+v", err)
	}
	expected := []string{"save", "split", "show", "show", "show", "read", "restore", "focus"}
	if len(host.calls) != len(expected) {
		t.Fatalf("unexpected calls: %v", host.calls)
	}
	for i := range expected {
		if host.calls[i] != expected[i] {
			t.Fatalf("unexpected calls: %v", host.calls)
		}
	}
	// the live cursor was pinned to the point that was current
	c, _ := r.Get('c')
	if c.Location.Pos.Row != 42 || c.Location.Pos.Col != 7 {
		t.Errorf("current point was not updated: %+v", c.Location.Pos)
	}
	// the named point became current and was focused
	a, _ := r.Get('a')
	if r.Current() != a {
		t.Errorf("point 'a' did not become current")
	}
	if host.focused == nil || host.focused.Pos != a.Location.Pos {
		t.Errorf("unexpected focus %+v", host.focused)
	}
	// one view per point, in alphabet order
	if host.plan.Count() != 3 {
		t.Errorf("unexpected plan %+v", host.plan)
	}
	for i, name := range "abc" {
		if host.shown[name] != i {
			t.Errorf("point '%c' shown in view %d", name, host.shown[name])
		}
	}
}

func TestJumpAbort(t *testing.T) {
	host := newTestHost(0, false)
	r := registryWithPoints(3)
	current := r.Current()
	if err := Jump(r, host); err != nil {
		t.Fatalf("aborted jump failed: %+v", err)
	}
	if host.calls[len(host.calls)-1] != "restore" {
		t.Errorf("aborted jump did not restore: %v", host.calls)
	}
	if host.focused != nil {
		t.Errorf("aborted jump moved the focus")
	}
	if r.Current() != current {
		t.Errorf("aborted jump changed the current point")
	}
	if host.reported != "" {
		t.Errorf("aborted jump reported: %s", host.reported)
	}
}

func TestJumpUnknownPoint(t *testing.T) {
	host := newTestHost('z', true)
	r := registryWithPoints(3)
	current := r.Current()
	err := Jump(r, host)
	if err != ErrUnknownPoint {
		t.Fatalf("expected ErrUnknownPoint, got %+v", err)
	}
	if host.reported == "" {
		t.Errorf("unknown point was not reported")
	}
	if host.calls[len(host.calls)-1] != "restore" {
		t.Errorf("failed jump did not restore: %v", host.calls)
	}
	if r.Current() != current {
		t.Errorf("failed jump changed the current point")
	}
}

func TestJumpRestoresBeforeFocus(t *testing.T) {
	host := newTestHost('b', true)
	r := registryWithPoints(2)
	if err := Jump(r, host); err != nil {
		t.Fatalf("jump failed: %+v", err)
	}
	restore, focus := -1, -1
	for i, call := range host.calls {
		switch call {
		case "restore":
			restore = i
		case "focus":
			focus = i
		}
	}
	if restore == -1 || focus == -1 || restore > focus {
		t.Errorf("focus did not follow restore: %v", host.calls)
	}
}
