// Package conflict detects whether two time-parameterized trajectories, or
// a trajectory and a static spacetime region, will physically collide, and
// when. Every entry point is a pure function of its inputs: nothing is
// cached between calls, so independent queries may run concurrently as long
// as the caller does not mutate a trajectory while a query reads it.
//
// A pair query runs a cheap broad phase first — per-segment swept bounding
// boxes walked in temporal lock-step — and only invokes the exact
// continuous-collision narrow phase when the boxes overlap. The broad phase
// is conservative: it can over-report but never misses a true conflict.
package conflict

import (
	"time"
)

// Data records one detected conflict: the absolute time of first contact
// and the two trajectory segments involved, identified by the index of the
// waypoint closing each segment. Values are only produced by the detection
// walk, so every Data in the wild corresponds to an actual contact.
type Data struct {
	time time.Time
	segA int
	segB int
}

func newData(at time.Time, segA, segB int) Data {
	return Data{time: at, segA: segA, segB: segB}
}

// Time returns the absolute time of first contact. It always lies within
// the overlapping time window of the two inputs.
func (d Data) Time() time.Time { return d.time }

// SegmentA identifies the colliding segment of the first trajectory.
func (d Data) SegmentA() int { return d.segA }

// SegmentB identifies the colliding segment of the second trajectory.
func (d Data) SegmentB() int { return d.segB }

// Between returns every conflict between the two trajectories in walk
// order, which is monotonic in time. With quitAfterOne set it returns as
// soon as the first conflict is found.
//
// It fails with *InvalidTrajectoryError if either trajectory has fewer than
// two waypoints, or if a segment reaches a collision check without a shape
// profile.
func Between(a, b Trajectory, quitAfterOne bool) ([]Data, error) {
	possible, err := Possible(a, b)
	if err != nil {
		return nil, err
	}
	if !possible {
		return nil, nil
	}
	return narrowPhase(a, b, quitAfterOne)
}
