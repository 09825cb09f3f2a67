package conflict

import (
	"github.com/roverline/traffic/internal/spline"
)

// Possible is the broad phase: it reports whether the two trajectories
// could conflict, using only swept bounding boxes. A false result is
// definitive; a true result still needs the narrow phase to confirm.
//
// Trajectories on different maps never conflict, nor do trajectories whose
// time spans do not overlap.
func Possible(a, b Trajectory) (bool, error) {
	if n := minLen(a, b); n < 2 {
		return false, errTooFewWaypoints(n)
	}

	if a.MapName() != b.MapName() {
		return false, nil
	}

	// No shared time window, no conflict.
	if b.FinishTime().Before(a.StartTime()) {
		return false, nil
	}
	if a.FinishTime().Before(b.StartTime()) {
		return false, nil
	}

	ai, bi := initialIndices(a, b)

	for ai < a.Len() && bi < b.Len() {
		// Skip segments that end before the other trajectory's current
		// segment begins; no box is built for them.
		if a.At(ai).Time.Before(b.At(bi - 1).Time) {
			ai++
			continue
		}
		if b.At(bi).Time.Before(a.At(ai - 1).Time) {
			bi++
			continue
		}

		shapeA, err := segmentShape(a, ai)
		if err != nil {
			return false, err
		}
		shapeB, err := segmentShape(b, bi)
		if err != nil {
			return false, err
		}

		splineA := segmentSpline(a, ai)
		splineB := segmentSpline(b, bi)

		boxA := spline.BoundingBox(splineA, shapeA.CharacteristicLength())
		boxB := spline.BoundingBox(splineB, shapeB.CharacteristicLength())
		if boxA.Overlaps(boxB) {
			return true, nil
		}

		ai, bi = advance(splineA, splineB, ai, bi)
	}

	return false, nil
}

// initialIndices positions both walks at the later of the two start times,
// seeking by time lookup rather than scanning over the non-overlapping
// prefix. Both trajectories are known to have at least two waypoints and
// overlapping spans.
func initialIndices(a, b Trajectory) (int, int) {
	ta0 := a.StartTime()
	tb0 := b.StartTime()
	switch {
	case ta0.Before(tb0):
		// a starts first: begin evaluating it where b begins.
		return a.Find(tb0), 1
	case tb0.Before(ta0):
		return 1, b.Find(ta0)
	default:
		return 1, 1
	}
}

// advance steps past whichever segment finishes first, or both on a tie.
func advance(splineA, splineB spline.Spline, ai, bi int) (int, int) {
	af := splineA.FinishTime()
	bf := splineB.FinishTime()
	switch {
	case af.Before(bf):
		return ai + 1, bi
	case bf.Before(af):
		return ai, bi + 1
	default:
		return ai + 1, bi + 1
	}
}

func minLen(a, b Trajectory) int {
	if a.Len() < b.Len() {
		return a.Len()
	}
	return b.Len()
}
