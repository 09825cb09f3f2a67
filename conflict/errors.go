package conflict

import (
	"fmt"
	"time"
)

// Reason classifies an InvalidTrajectoryError.
type Reason int

const (
	// TooFewWaypoints means a trajectory with fewer than two waypoints was
	// passed to an entry point that needs motion segments.
	TooFewWaypoints Reason = iota

	// MissingProfile means a segment scheduled for a collision check has no
	// shape profile at its waypoint.
	MissingProfile
)

// InvalidTrajectoryError reports a trajectory that cannot be checked for
// conflicts. Both variants are caller-fixable input defects: the detector
// never recovers from them, and they are always distinct from a
// "no conflict" result. The message is finalized at construction and the
// value is immutable afterwards.
type InvalidTrajectoryError struct {
	reason Reason
	msg    string
}

func (e *InvalidTrajectoryError) Error() string { return e.msg }

// Reason returns which validation failed.
func (e *InvalidTrajectoryError) Reason() Reason { return e.reason }

func errTooFewWaypoints(n int) error {
	return &InvalidTrajectoryError{
		reason: TooFewWaypoints,
		msg: fmt.Sprintf(
			"conflict: cannot check a trajectory with %d waypoints; at least 2 are required", n),
	}
}

func errMissingProfile(at time.Time) error {
	return &InvalidTrajectoryError{
		reason: MissingProfile,
		msg: fmt.Sprintf(
			"conflict: trajectory has no shape profile for its segment at %s", at.Format(time.RFC3339Nano)),
	}
}
