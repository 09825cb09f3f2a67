// Package spline wraps one interval between two consecutive trajectory
// waypoints as a closed-form cubic motion over normalized time. Segments
// are cheap value types rebuilt on demand; nothing here is cached between
// queries.
package spline

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/roverline/traffic/geometry"
)

// Knot is the per-waypoint data a segment is fitted to: absolute time plus
// position and velocity on the x, y and heading axes.
type Knot struct {
	Time     time.Time
	Position [3]float64
	Velocity [3]float64
}

// Spline is a cubic Hermite segment between two knots, parameterized by
// normalized time in [0,1]. Coefficients are stored per axis in ascending
// order: constant, linear, quadratic, cubic.
type Spline struct {
	coeffs [3][4]float64
	start  time.Time
	finish time.Time
}

// New fits a segment to the motion between two consecutive knots. Knot
// velocities are in units per second; they are rescaled to the normalized
// parameterization using the segment duration.
func New(prev, next Knot) Spline {
	delta := next.Time.Sub(prev.Time).Seconds()
	s := Spline{start: prev.Time, finish: next.Time}
	for axis := 0; axis < 3; axis++ {
		p0 := prev.Position[axis]
		p1 := next.Position[axis]
		v0 := prev.Velocity[axis] * delta
		v1 := next.Velocity[axis] * delta
		s.coeffs[axis] = [4]float64{
			p0,
			v0,
			-3*p0 + 3*p1 - 2*v0 - v1,
			2*p0 - 2*p1 + v0 + v1,
		}
	}
	return s
}

// StartTime returns the absolute time at which the segment begins.
func (s Spline) StartTime() time.Time { return s.start }

// FinishTime returns the absolute time at which the segment ends.
func (s Spline) FinishTime() time.Time { return s.finish }

// Evaluate returns the x, y and heading values at normalized time t.
func (s Spline) Evaluate(t float64) [3]float64 {
	return [3]float64{
		evaluate(s.coeffs[0], t),
		evaluate(s.coeffs[1], t),
		evaluate(s.coeffs[2], t),
	}
}

func evaluate(c [4]float64, t float64) float64 {
	return c[0] + t*(c[1]+t*(c[2]+t*c[3]))
}

// derivativeBound dominates |d/dt| of the polynomial over [0,1].
func derivativeBound(c [4]float64) float64 {
	return math.Abs(c[1]) + 2*math.Abs(c[2]) + 3*math.Abs(c[3])
}

// Motion is the segment's rigid motion restricted to an absolute
// sub-interval, in the continuous-collision backend's representation: poses
// over a normalized [0,1] window. This is the sole bridge between segments
// and the collision solver.
type Motion struct {
	spline Spline
	offset float64
	scale  float64
}

// Motion restricts the segment to [begin, end], which must lie within
// [StartTime, FinishTime].
func (s Spline) Motion(begin, end time.Time) *Motion {
	total := s.finish.Sub(s.start).Seconds()
	if total <= 0 {
		// Zero-duration segment: hold the starting pose.
		return &Motion{spline: s}
	}
	return &Motion{
		spline: s,
		offset: begin.Sub(s.start).Seconds() / total,
		scale:  end.Sub(begin).Seconds() / total,
	}
}

// PoseAt returns the body pose at window parameter u in [0,1].
func (m *Motion) PoseAt(u float64) geometry.Pose {
	p := m.spline.Evaluate(m.offset + u*m.scale)
	return geometry.Pose{
		Translation: r2.Vec{X: p[0], Y: p[1]},
		Rotation:    p[2],
	}
}

// DisplacementBound returns an upper bound on the distance any point within
// reach of the body origin travels across the window: the translational
// speed bound plus the rotational sweep at full reach.
func (m *Motion) DisplacementBound(reach float64) float64 {
	bx := derivativeBound(m.spline.coeffs[0]) * m.scale
	by := derivativeBound(m.spline.coeffs[1]) * m.scale
	bw := derivativeBound(m.spline.coeffs[2]) * m.scale
	return math.Hypot(bx, by) + bw*reach
}
