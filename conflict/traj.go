package conflict

import (
	"time"

	"github.com/roverline/traffic/geometry"
	"github.com/roverline/traffic/internal/spline"
)

// Trajectory is the read-only view of a time-parameterized motion that the
// detector consumes. The sequence is ordered by strictly increasing
// waypoint time; each waypoint closes the motion segment from its
// predecessor. Implementations are owned by the caller and must not be
// mutated while a query reads them.
type Trajectory interface {
	// Len returns the number of waypoints.
	Len() int

	// MapName identifies the frame the trajectory is defined on.
	// Trajectories on different maps never conflict.
	MapName() string

	// StartTime is the time of the first waypoint.
	StartTime() time.Time

	// FinishTime is the time of the last waypoint.
	FinishTime() time.Time

	// At returns waypoint i, 0 <= i < Len().
	At(i int) Waypoint

	// Find returns the index of the first waypoint whose time is not
	// before t: the waypoint closing the segment active at t. Callers only
	// invoke it with t inside [StartTime, FinishTime].
	Find(t time.Time) int
}

// Waypoint carries one sample of a trajectory: absolute time, position and
// velocity on the x, y and heading axes, and the shape profile in effect
// for the segment the waypoint closes. A nil profile is only acceptable on
// waypoints that never reach a collision check.
type Waypoint struct {
	Time     time.Time
	Position [3]float64
	Velocity [3]float64
	Profile  Profile
}

// Profile exposes the shape swept along a trajectory segment. Profile
// shapes must be convex; composite shapes are only accepted on static
// regions.
type Profile interface {
	Shape() geometry.ConvexShape
}

// segmentSpline builds the motion segment closed by waypoint i.
func segmentSpline(t Trajectory, i int) spline.Spline {
	return spline.New(knot(t.At(i-1)), knot(t.At(i)))
}

func knot(w Waypoint) spline.Knot {
	return spline.Knot{Time: w.Time, Position: w.Position, Velocity: w.Velocity}
}

// segmentShape returns the convex shape for the segment closed by waypoint
// i, or the missing-profile validation error.
func segmentShape(t Trajectory, i int) (geometry.ConvexShape, error) {
	w := t.At(i)
	if w.Profile == nil {
		return nil, errMissingProfile(w.Time)
	}
	shape := w.Profile.Shape()
	if shape == nil {
		return nil, errMissingProfile(w.Time)
	}
	return shape, nil
}

func laterOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}

func earlierOf(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
