package plan

import "errors"

// --- Error Definitions ---
// All three are terminal for a single generation call: they stem from
// invalid input, never from transient conditions, so nothing retries
// them. The API layer maps each to an actionable message.
var (
	// ErrInvalidInput covers malformed pace/distance inputs: a
	// non-positive goal time, an unknown race, or dates out of order.
	ErrInvalidInput = errors.New("invalid plan input")

	// ErrInsufficientTime means the window between start date and race
	// date is too short for any meaningful periodization (< 2 weeks).
	ErrInsufficientTime = errors.New("insufficient time before race date")

	// ErrInvalidScheduleConstraint means training days per week is
	// outside the supported 3..7 range.
	ErrInvalidScheduleConstraint = errors.New("training days per week must be between 3 and 7")
)
