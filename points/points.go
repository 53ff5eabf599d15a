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

// Package points keeps a registry of named cursor positions. Each
// point is named by a single character drawn from a fixed alphabet, so
// a registry holds at most 36 points. One point, the current point,
// shadows the live cursor; it is moved on save and on jump.
package points

import (
	"errors"

	jott "github.com/timburks/jott/types"
)

// Names is the alphabet of point names, in assignment order. A new
// point always takes the first name with no live point, so names are
// reused as soon as they are freed and the low end of the alphabet is
// always preferred.
const Names = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	// ErrCapacityExceeded is returned by Save when every name is in use.
	ErrCapacityExceeded = errors.New("all point names are in use")
	// ErrNoCurrentPoint reports a broken invariant: the registry has
	// been used before Clear or Save established a current point.
	ErrNoCurrentPoint = errors.New("no current point")
)

// A Point is a named, trackable cursor location.
type Point struct {
	Name     rune
	Location jott.Location
}

// A Registry owns the live points for one editor session. It is not
// safe for concurrent use; the editor drives it from a single
// interactive loop.
type Registry struct {
	points  map[rune]*Point
	current *Point
}

func NewRegistry() *Registry {
	return &Registry{points: make(map[rune]*Point)}
}

// Clear discards every point and saves a fresh one at the given
// location, which becomes current. The fresh point is always named by
// the first character of the alphabet.
func (r *Registry) Clear(location jott.Location) *Point {
	r.points = make(map[rune]*Point)
	r.current = nil
	p, _ := r.Save(location) // cannot fail with an empty registry
	return p
}

// Save creates a point at the given location under the first free name
// and makes it current. If the registry is full it returns
// ErrCapacityExceeded and changes nothing.
func (r *Registry) Save(location jott.Location) (*Point, error) {
	name, ok := r.freeName()
	if !ok {
		return nil, ErrCapacityExceeded
	}
	p := &Point{Name: name, Location: location}
	r.points[name] = p
	r.current = p
	return p, nil
}

// Get looks up a point by name. Absence is a normal outcome.
func (r *Registry) Get(name rune) (*Point, bool) {
	p, ok := r.points[name]
	return p, ok
}

func (r *Registry) Count() int {
	return len(r.points)
}

// Current returns the point shadowing the live cursor, or nil if no
// point has been saved yet.
func (r *Registry) Current() *Point {
	return r.current
}

// SetCurrent reassigns the current point. The point must already be in
// the registry; ownership does not change.
func (r *Registry) SetCurrent(p *Point) {
	r.current = p
}

// UpdateCurrentLocation overwrites the current point's stored location
// with the live cursor position.
func (r *Registry) UpdateCurrentLocation(location jott.Location) error {
	if r.current == nil {
		return ErrNoCurrentPoint
	}
	r.current.Location = location
	return nil
}

// Points returns the live points in alphabet order.
func (r *Registry) Points() []*Point {
	list := make([]*Point, 0, len(r.points))
	for _, name := range Names {
		if p, ok := r.points[name]; ok {
			list = append(list, p)
		}
	}
	return list
}

func (r *Registry) freeName() (rune, bool) {
	for _, name := range Names {
		if _, used := r.points[name]; !used {
			return name, true
		}
	}
	return 0, false
}
