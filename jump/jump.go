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

// Package jump selects a destination among saved points. A jump tiles
// the display into one view per point, marks each point with its name
// character, and reads one character to pick a destination. Display
// work is delegated to a Host, implemented by the editor.
package jump

import (
	"errors"
	"fmt"

	"github.com/timburks/jott/layout"
	"github.com/timburks/jott/points"
	jott "github.com/timburks/jott/types"
)

// ErrUnknownPoint is returned when the selection character names no
// live point. It is user-visible and non-fatal; the host has already
// been told to report it when Jump returns it.
var ErrUnknownPoint = errors.New("no point with that name")

// A Configuration is an opaque snapshot of the host's display layout.
type Configuration interface{}

// A Host provides the display services a jump needs. Each method is a
// thin call into the hosting editor; none of them can fail.
type Host interface {
	CurrentLocation() jott.Location
	SaveConfiguration() Configuration
	RestoreConfiguration(c Configuration)
	SplitGrid(plan layout.Plan)
	ShowPoint(view int, location jott.Location, name rune)
	FocusLocation(location jott.Location)
	ReadCharacter(prompt string) (rune, bool)
	ReportError(message string)
}

// Jump runs one interactive point selection. With one point or none
// there is nowhere to go and nothing happens. Otherwise the current
// point is pinned to the live cursor, the display is split into a grid
// with each view showing one point in alphabet order, and a single
// character is read. A character naming a live point makes that point
// current and focuses its location; the abort character cancels
// silently; anything else reports ErrUnknownPoint. The pre-jump
// display configuration is restored on every path.
func Jump(r *points.Registry, host Host) error {
	if r.Count() <= 1 {
		return nil
	}
	if err := r.UpdateCurrentLocation(host.CurrentLocation()); err != nil {
		return err
	}
	saved := host.SaveConfiguration()
	host.SplitGrid(layout.NewPlan(r.Count()))
	for i, p := range r.Points() {
		host.ShowPoint(i, p.Location, p.Name)
	}
	ch, ok := host.ReadCharacter("jump to point: ")
	host.RestoreConfiguration(saved)
	if !ok {
		return nil
	}
	p, found := r.Get(ch)
	if !found {
		host.ReportError(fmt.Sprintf("no point named '%c'", ch))
		return ErrUnknownPoint
	}
	r.SetCurrent(p)
	host.FocusLocation(p.Location)
	return nil
}
