// Package ccd is the continuous-collision backend used by the conflict
// detector. It resolves the exact time of first contact between two moving
// convex shapes over a normalized [0,1] time window using conservative
// advancement: the separation between the shapes is measured with a GJK
// distance solver, and the window parameter is advanced by steps that are
// provably collision-free until contact is reached or the window ends.
//
// The detector only depends on the Object/Request/Collide surface, so the
// backend can be swapped for another continuous-collision implementation
// that honours the same time-of-contact semantics.
package ccd

import (
	"fmt"

	"github.com/roverline/traffic/geometry"
)

// Motion describes a rigid motion over a normalized [0,1] window.
type Motion interface {
	// PoseAt returns the body pose at window parameter u in [0,1].
	PoseAt(u float64) geometry.Pose

	// DisplacementBound returns an upper bound on the distance any point
	// within reach of the body origin can travel across the whole window.
	DisplacementBound(reach float64) float64
}

type staticMotion struct {
	pose geometry.Pose
}

// StaticMotion returns a zero motion holding the given pose for the whole
// window, used for stationary regions.
func StaticMotion(pose geometry.Pose) Motion {
	return staticMotion{pose: pose}
}

func (m staticMotion) PoseAt(float64) geometry.Pose      { return m.pose }
func (m staticMotion) DisplacementBound(float64) float64 { return 0 }

// Object pairs a convex collision geometry with its motion over the
// queried window.
type Object struct {
	Geometry geometry.Convex
	Motion   Motion
}

// Request carries the solver tuning for one collision query. The zero value
// is invalid; start from DefaultRequest.
type Request struct {
	// Tolerance is the separation below which the shapes are considered
	// in contact.
	Tolerance float64

	// MaxIterations caps the number of advancement steps.
	MaxIterations int

	// MinStep is a floor on each advancement step so the solver always
	// terminates, at the cost of a bounded overshoot near contact.
	MinStep float64
}

// DefaultRequest returns the solver tuning used by the conflict detector.
func DefaultRequest() Request {
	return Request{
		Tolerance:     1e-6,
		MaxIterations: 256,
		MinStep:       1e-9,
	}
}

// Validate checks the request parameters for internal consistency.
func (r Request) Validate() error {
	if r.Tolerance <= 0 {
		return fmt.Errorf("ccd: tolerance must be positive, got %g", r.Tolerance)
	}
	if r.MaxIterations <= 0 {
		return fmt.Errorf("ccd: max iterations must be positive, got %d", r.MaxIterations)
	}
	if r.MinStep <= 0 {
		return fmt.Errorf("ccd: min step must be positive, got %g", r.MinStep)
	}
	return nil
}

// Result reports the outcome of a collision query. TimeOfContact is the
// normalized [0,1] fraction of the queried window at which the shapes first
// touch, and is only meaningful when Hit is true.
type Result struct {
	Hit           bool
	TimeOfContact float64
}

// Collide resolves whether the two objects come into contact anywhere over
// the [0,1] window and, if so, when.
func Collide(a, b Object, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	// The relative displacement of any pair of surface points over the
	// whole window cannot exceed the sum of both bodies' bounds, so a
	// separation of d cannot close in less than d/mu of the window.
	mu := a.Motion.DisplacementBound(a.Geometry.BoundingRadius()) +
		b.Motion.DisplacementBound(b.Geometry.BoundingRadius())

	u := 0.0
	for i := 0; i < req.MaxIterations; i++ {
		d := separation(a, b, u)
		if d <= req.Tolerance {
			return Result{Hit: true, TimeOfContact: u}, nil
		}
		if mu <= req.Tolerance {
			// No relative motion to speak of: the shapes stay separated.
			return Result{}, nil
		}
		step := d / mu
		if step < req.MinStep {
			step = req.MinStep
		}
		u += step
		if u >= 1 {
			return Result{}, nil
		}
	}

	// Iteration cap reached while still separated.
	return Result{}, nil
}

// separation returns the distance between the two shape surfaces at window
// parameter u, negative-free: contact and penetration both report as <= 0
// once the margins are accounted for.
func separation(a, b Object, u float64) float64 {
	pa := a.Motion.PoseAt(u)
	pb := b.Motion.PoseAt(u)
	return gjkDistance(a.Geometry, pa, b.Geometry, pb) - a.Geometry.Margin() - b.Geometry.Margin()
}
