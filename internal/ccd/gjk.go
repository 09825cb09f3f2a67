package ccd

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/roverline/traffic/geometry"
)

// gjkDistance computes the distance between the support hulls of two posed
// convex shapes (margins excluded) by running the GJK distance subalgorithm
// on their Minkowski difference. The simplex is at most a triangle in 2D;
// when it encloses the origin the hulls overlap and the distance is zero.
//
// Termination follows the standard support-plane bound: once the latest
// support point makes no meaningful progress toward the origin, the current
// witness point is within a relative epsilon of the true distance.

const (
	gjkEps      = 1e-12
	gjkRelative = 1e-9
	gjkMaxIters = 64
)

func gjkDistance(a geometry.Convex, pa geometry.Pose, b geometry.Convex, pb geometry.Pose) float64 {
	dir := pa.Translation.Sub(pb.Translation)
	if r2.Norm2(dir) < gjkEps {
		dir = r2.Vec{X: 1}
	}

	v := minkowskiSupport(a, pa, b, pb, dir)
	simplex := []r2.Vec{v}

	for i := 0; i < gjkMaxIters; i++ {
		dist2 := r2.Norm2(v)
		if dist2 < gjkEps {
			return 0
		}

		w := minkowskiSupport(a, pa, b, pb, v.Scale(-1))
		if dist2-v.Dot(w) <= gjkRelative*dist2 {
			// w cannot get meaningfully closer to the origin than v.
			break
		}

		simplex = append(simplex, w)
		v, simplex = closestToOrigin(simplex)
	}

	return r2.Norm(v)
}

// worldSupport evaluates the shape's support function against a world-frame
// direction by rotating the direction into the shape's local frame and
// transforming the supporting point back out.
func worldSupport(c geometry.Convex, pose geometry.Pose, dir r2.Vec) r2.Vec {
	return pose.Transform(c.Support(pose.InverseRotate(dir)))
}

// minkowskiSupport is the support of A minus B along dir.
func minkowskiSupport(a geometry.Convex, pa geometry.Pose, b geometry.Convex, pb geometry.Pose, dir r2.Vec) r2.Vec {
	return worldSupport(a, pa, dir).Sub(worldSupport(b, pb, dir.Scale(-1)))
}

// closestToOrigin returns the point of the simplex closest to the origin
// and the minimal supporting feature of that point.
func closestToOrigin(s []r2.Vec) (r2.Vec, []r2.Vec) {
	switch len(s) {
	case 1:
		return s[0], s
	case 2:
		return closestOnSegment(s[0], s[1])
	default:
		return closestOnTriangle(s[0], s[1], s[2])
	}
}

func closestOnSegment(a, b r2.Vec) (r2.Vec, []r2.Vec) {
	ab := b.Sub(a)
	den := r2.Norm2(ab)
	t := -a.Dot(ab)
	if den < gjkEps || t <= 0 {
		return a, []r2.Vec{a}
	}
	if t >= den {
		return b, []r2.Vec{b}
	}
	p := a.Add(ab.Scale(t / den))
	return p, []r2.Vec{a, b}
}

func closestOnTriangle(a, b, c r2.Vec) (r2.Vec, []r2.Vec) {
	if originInTriangle(a, b, c) {
		return r2.Vec{}, []r2.Vec{a, b, c}
	}

	best, feature := closestOnSegment(a, b)
	if p, f := closestOnSegment(b, c); r2.Norm2(p) < r2.Norm2(best) {
		best, feature = p, f
	}
	if p, f := closestOnSegment(a, c); r2.Norm2(p) < r2.Norm2(best) {
		best, feature = p, f
	}
	return best, feature
}

// originInTriangle reports whether the origin lies inside triangle abc,
// boundary included. The origin is inside when it falls on the same side of
// every edge.
func originInTriangle(a, b, c r2.Vec) bool {
	s1 := b.Sub(a).Cross(a.Scale(-1))
	s2 := c.Sub(b).Cross(b.Scale(-1))
	s3 := a.Sub(c).Cross(c.Scale(-1))
	return (s1 >= 0 && s2 >= 0 && s3 >= 0) || (s1 <= 0 && s2 <= 0 && s3 <= 0)
}
