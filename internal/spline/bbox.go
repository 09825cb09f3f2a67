package spline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// coeffEps is the threshold below which a polynomial coefficient is treated
// as zero when classifying the derivative's degree.
const coeffEps = 1e-12

// Box is an axis-aligned bounding box.
type Box struct {
	Min r2.Vec
	Max r2.Vec
}

// Overlaps reports whether the two boxes intersect on both axes.
func (b Box) Overlaps(o Box) bool {
	if b.Max.X < o.Min.X || o.Max.X < b.Min.X {
		return false
	}
	if b.Max.Y < o.Min.Y || o.Max.Y < b.Min.Y {
		return false
	}
	return true
}

// BoundingBox returns an axis-aligned box that conservatively contains the
// segment's swept shape: the extrema of the reference path on each axis,
// inflated on every side by the shape's characteristic length.
func BoundingBox(s Spline, inflate float64) Box {
	xMin, xMax := localExtrema(s.coeffs[0])
	yMin, yMax := localExtrema(s.coeffs[1])
	return Box{
		Min: r2.Vec{X: xMin - inflate, Y: yMin - inflate},
		Max: r2.Vec{X: xMax + inflate, Y: yMax + inflate},
	}
}

// localExtrema returns the minimum and maximum of the cubic over [0,1]. The
// endpoints are always candidates; interior critical points are added by
// solving the derivative, whose degree depends on which coefficients are
// present.
func localExtrema(c [4]float64) (min, max float64) {
	candidates := []float64{evaluate(c, 0), evaluate(c, 1)}

	add := func(t float64) {
		if 0 < t && t < 1 {
			candidates = append(candidates, evaluate(c, t))
		}
	}

	if math.Abs(c[3]) < coeffEps {
		// Derivative is at most linear.
		if math.Abs(c[2]) >= coeffEps {
			add(-c[1] / (2 * c[2]))
		}
	} else {
		d := 4*c[2]*c[2] - 12*c[3]*c[1]
		switch {
		case math.Abs(d) < coeffEps:
			add(-2 * c[2] / (6 * c[3]))
		case d < 0:
			// The waypoint fitting in use guarantees real derivative roots
			// whenever a cubic term is present; a negative discriminant
			// means the coefficients are malformed, and a silently wrong
			// bounding box must not be returned.
			panic(fmt.Sprintf("spline: negative discriminant %g while solving motion extrema", d))
		default:
			sq := math.Sqrt(d)
			add((-2*c[2] + sq) / (6 * c[3]))
			add((-2*c[2] - sq) / (6 * c[3]))
		}
	}

	return floats.Min(candidates), floats.Max(candidates)
}
