package conflict

import (
	"log"
	"time"

	"github.com/roverline/traffic/geometry"
	"github.com/roverline/traffic/internal/ccd"
)

// Spacetime is a static spatial region paired with an optional validity
// window: a no-go zone, for example. A nil bound leaves that side of the
// window open. The shape may be composed of several convex primitives; all
// of them are checked.
type Spacetime struct {
	LowerBound *time.Time
	UpperBound *time.Time
	Pose       geometry.Pose
	Shape      geometry.Shape
}

// InRegion reports whether the trajectory's swept shape enters the region
// within the region's validity window.
//
// With a nil collector it returns true as soon as one segment collides.
// With a collector it visits every segment in the window, appends the index
// of each colliding segment, and reports whether any were found.
func InRegion(t Trajectory, region Spacetime, found *[]int) (bool, error) {
	if t.Len() < 2 {
		// Callers are expected to have validated their trajectories well
		// before a region query; reaching this branch is a bug upstream.
		log.Printf("conflict: InRegion called with a %d-waypoint trajectory", t.Len())
		return false, errTooFewWaypoints(t.Len())
	}

	trajStart := t.StartTime()
	trajFinish := t.FinishTime()

	// Clip the comparison window to the intersection of the trajectory's
	// span and the region's bounds.
	start := trajStart
	if region.LowerBound != nil && region.LowerBound.After(start) {
		start = *region.LowerBound
	}
	finish := trajFinish
	if region.UpperBound != nil && region.UpperBound.Before(finish) {
		finish = *region.UpperBound
	}
	if finish.Before(start) {
		return false, nil
	}

	// Seek to the first segment inside the window rather than scanning the
	// prefix, and stop after the segment containing the window's end.
	begin := 1
	if trajStart.Before(start) {
		begin = t.Find(start)
	}
	end := t.Len()
	if finish.Before(trajFinish) {
		end = t.Find(finish) + 1
	}

	req := ccd.DefaultRequest()
	regionMotion := ccd.StaticMotion(region.Pose)
	primitives := region.Shape.Collisions()

	detected := false
	for i := begin; i < end && i < t.Len(); i++ {
		shape, err := segmentShape(t, i)
		if err != nil {
			return false, err
		}

		s := segmentSpline(t, i)
		motion := s.Motion(laterOf(s.StartTime(), start), earlierOf(s.FinishTime(), finish))
		obj := ccd.Object{Geometry: shape.Collision(), Motion: motion}

		for _, primitive := range primitives {
			result, err := ccd.Collide(obj, ccd.Object{Geometry: primitive, Motion: regionMotion}, req)
			if err != nil {
				return false, err
			}
			if result.Hit {
				if found == nil {
					return true, nil
				}
				*found = append(*found, i)
				detected = true
				break
			}
		}
	}

	return detected, nil
}
