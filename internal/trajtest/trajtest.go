// Package trajtest provides a concrete in-memory trajectory used by the
// test suites. The detector itself only ever sees the conflict.Trajectory
// interface.
package trajtest

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/roverline/traffic/conflict"
	"github.com/roverline/traffic/geometry"
)

// Route is an append-only waypoint sequence implementing
// conflict.Trajectory. Waypoints must be appended in increasing time order.
type Route struct {
	id        string
	mapName   string
	waypoints []conflict.Waypoint
}

// NewRoute returns an empty route on the given map with a fresh identifier.
func NewRoute(mapName string) *Route {
	return &Route{id: uuid.NewString(), mapName: mapName}
}

// ID returns the route's unique identifier.
func (r *Route) ID() string { return r.id }

// Append adds a waypoint and returns the route for chaining.
func (r *Route) Append(at time.Time, pos, vel [3]float64, p conflict.Profile) *Route {
	r.waypoints = append(r.waypoints, conflict.Waypoint{
		Time:     at,
		Position: pos,
		Velocity: vel,
		Profile:  p,
	})
	return r
}

func (r *Route) Len() int        { return len(r.waypoints) }
func (r *Route) MapName() string { return r.mapName }

func (r *Route) StartTime() time.Time {
	if len(r.waypoints) == 0 {
		return time.Time{}
	}
	return r.waypoints[0].Time
}

func (r *Route) FinishTime() time.Time {
	if len(r.waypoints) == 0 {
		return time.Time{}
	}
	return r.waypoints[len(r.waypoints)-1].Time
}

func (r *Route) At(i int) conflict.Waypoint { return r.waypoints[i] }

func (r *Route) Find(at time.Time) int {
	return sort.Search(len(r.waypoints), func(i int) bool {
		return !r.waypoints[i].Time.Before(at)
	})
}

// Line builds a two-waypoint route moving in a straight line at constant
// velocity from one x/y position to another.
func Line(mapName string, from, to [2]float64, start time.Time, dur time.Duration, p conflict.Profile) *Route {
	vx := (to[0] - from[0]) / dur.Seconds()
	vy := (to[1] - from[1]) / dur.Seconds()
	vel := [3]float64{vx, vy, 0}
	return NewRoute(mapName).
		Append(start, [3]float64{from[0], from[1], 0}, vel, p).
		Append(start.Add(dur), [3]float64{to[0], to[1], 0}, vel, p)
}

type profile struct {
	shape geometry.ConvexShape
}

func (p profile) Shape() geometry.ConvexShape { return p.shape }

// Profile wraps a convex shape as a conflict.Profile.
func Profile(shape geometry.ConvexShape) conflict.Profile {
	return profile{shape: shape}
}

// CountingProfile counts how often the detector asks for the shape, for
// tests asserting that a phase was skipped entirely.
type CountingProfile struct {
	Wrapped conflict.Profile
	Calls   int
}

func (p *CountingProfile) Shape() geometry.ConvexShape {
	p.Calls++
	return p.Wrapped.Shape()
}
