// Package geometry provides the shape vocabulary consumed by the conflict
// detector: convex collision primitives described by support functions,
// profile shapes with a characteristic length for conservative bounding,
// and rigid 2D poses.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Pose is a rigid 2D transform: a counter-clockwise rotation in radians
// followed by a translation.
type Pose struct {
	Translation r2.Vec
	Rotation    float64
}

// Transform maps a point from the pose's local frame into the world frame.
func (p Pose) Transform(v r2.Vec) r2.Vec {
	sin, cos := math.Sincos(p.Rotation)
	return r2.Vec{
		X: cos*v.X - sin*v.Y + p.Translation.X,
		Y: sin*v.X + cos*v.Y + p.Translation.Y,
	}
}

// InverseRotate maps a world-frame direction into the pose's local frame.
func (p Pose) InverseRotate(v r2.Vec) r2.Vec {
	sin, cos := math.Sincos(-p.Rotation)
	return r2.Vec{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}

// Convex is a collision primitive in the form the continuous-collision
// solver consumes: a support function over the shape's local frame plus a
// spherical margin swept around the supported hull. A circle is a zero
// point with a margin equal to its radius; a box is a four-corner hull
// with no margin.
type Convex interface {
	// Support returns the furthest point of the hull along dir, in the
	// shape's local frame. dir need not be normalized and is never zero.
	Support(dir r2.Vec) r2.Vec

	// Margin is the radius swept around the supported hull.
	Margin() float64

	// BoundingRadius is the maximum distance from the local origin to any
	// point of the shape, margin included.
	BoundingRadius() float64
}

// Shape is what a trajectory profile or a spacetime region carries. A shape
// may decompose into several convex primitives; all of them participate in
// collision checks.
type Shape interface {
	// CharacteristicLength is the shape's maximum reach from its reference
	// point. It is non-negative and is used to inflate swept bounding
	// boxes so they conservatively contain the shape, not just its
	// reference trajectory.
	CharacteristicLength() float64

	// Collisions returns every convex primitive making up the shape.
	Collisions() []Convex
}

// ConvexShape is a shape made of exactly one convex primitive. Trajectory
// profiles must be convex; composite shapes are only accepted for static
// regions.
type ConvexShape interface {
	Shape
	Collision() Convex
}

// Circle is a disc of radius R centred on its reference point.
type Circle struct {
	R float64
}

func (c Circle) Support(r2.Vec) r2.Vec         { return r2.Vec{} }
func (c Circle) Margin() float64               { return c.R }
func (c Circle) BoundingRadius() float64       { return c.R }
func (c Circle) CharacteristicLength() float64 { return c.R }
func (c Circle) Collision() Convex             { return c }
func (c Circle) Collisions() []Convex          { return []Convex{c} }

// Box is an axis-aligned rectangle in its local frame, centred on its
// reference point. Rotation is applied through the pose it is queried with.
type Box struct {
	Width  float64
	Height float64
}

func (b Box) Support(dir r2.Vec) r2.Vec {
	v := r2.Vec{X: b.Width / 2, Y: b.Height / 2}
	if dir.X < 0 {
		v.X = -v.X
	}
	if dir.Y < 0 {
		v.Y = -v.Y
	}
	return v
}

func (b Box) Margin() float64 { return 0 }

func (b Box) BoundingRadius() float64 {
	return math.Hypot(b.Width, b.Height) / 2
}

func (b Box) CharacteristicLength() float64 { return b.BoundingRadius() }
func (b Box) Collision() Convex             { return b }
func (b Box) Collisions() []Convex          { return []Convex{b} }

// Group combines several shapes into one composite shape, e.g. a no-go
// region assembled from multiple primitives.
type Group []Shape

func (g Group) CharacteristicLength() float64 {
	var max float64
	for _, s := range g {
		if l := s.CharacteristicLength(); l > max {
			max = l
		}
	}
	return max
}

func (g Group) Collisions() []Convex {
	var all []Convex
	for _, s := range g {
		all = append(all, s.Collisions()...)
	}
	return all
}
