package conflict

import (
	"time"

	"github.com/roverline/traffic/internal/ccd"
)

// narrowPhase walks the two trajectories in the same temporal lock-step as
// the broad phase, but submits every time-overlapping segment pair to the
// continuous-collision solver over the pair's exact intersection window.
// Preconditions (validated sizes, overlapping spans) are guaranteed by the
// broad phase having returned true.
func narrowPhase(a, b Trajectory, quitAfterOne bool) ([]Data, error) {
	ai, bi := initialIndices(a, b)
	req := ccd.DefaultRequest()

	var conflicts []Data
	for ai < a.Len() && bi < b.Len() {
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
			return nil, err
		}
		shapeB, err := segmentShape(b, bi)
		if err != nil {
			return nil, err
		}

		splineA := segmentSpline(a, ai)
		splineB := segmentSpline(b, bi)

		start := laterOf(splineA.StartTime(), splineB.StartTime())
		finish := earlierOf(splineA.FinishTime(), splineB.FinishTime())

		objA := ccd.Object{Geometry: shapeA.Collision(), Motion: splineA.Motion(start, finish)}
		objB := ccd.Object{Geometry: shapeB.Collision(), Motion: splineB.Motion(start, finish)}

		result, err := ccd.Collide(objA, objB, req)
		if err != nil {
			return nil, err
		}
		if result.Hit {
			window := finish.Sub(start)
			at := start.Add(time.Duration(result.TimeOfContact * float64(window)))
			conflicts = append(conflicts, newData(at, ai, bi))
			if quitAfterOne {
				return conflicts, nil
			}
		}

		ai, bi = advance(splineA, splineB, ai, bi)
	}

	return conflicts, nil
}
