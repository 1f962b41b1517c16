package pen

import "errors"

var (
	// ErrMinimumPoints is returned when removing a point would leave a
	// curve with fewer than two anchors. Callers treat it as a no-op;
	// it is never a user-facing failure.
	ErrMinimumPoints = errors.New("pen: curve must keep at least two points")

	// ErrInvalidSegment is returned when a segment index is outside the
	// curve's segment range (including the closing segment of a closed
	// curve). With correct hit-testing upstream it should not occur; the
	// state machines absorb it silently.
	ErrInvalidSegment = errors.New("pen: segment index out of range")

	// ErrUnknownHandle is returned by ApplyHandleMove for a handle id
	// that does not decode to an anchor or control point of the curve.
	ErrUnknownHandle = errors.New("pen: unknown handle id")
)
