package contour

import "errors"

// The kernel reports failures by wrapping one of these sentinel errors; use
// [errors.Is] to classify them. All failures are local and recoverable, and
// no operation leaves a polyline partially mutated.
var (
	// ErrDegenerateInput indicates a polyline with fewer vertices than the
	// requested operation needs, such as the bounding box of an empty
	// polyline or rotating the start of an open one.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrOutOfRange indicates a vertex index outside the polyline or a path
	// length outside [0, total length).
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidParameter indicates a parameter outside its accepted range,
	// such as a non-finite coordinate, a bulge beyond a half turn where the
	// caller asked for validation, or a non-positive error distance.
	ErrInvalidParameter = errors.New("invalid parameter")
)
