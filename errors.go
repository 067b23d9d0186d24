package byteseek

import "errors"

var (
	// ErrNotFound reports that the pattern does not occur in the remaining
	// unsearched region for the requested direction. Once returned for a
	// direction it is returned permanently for that direction, without
	// stream access, until Reset.
	ErrNotFound = errors.New("byteseek: pattern not found")

	// ErrUnsupportedLength reports a pattern that is empty or longer than
	// the Seeker's capacity. It is detected before any stream access and
	// never changes cursor state.
	ErrUnsupportedLength = errors.New("byteseek: pattern is empty or exceeds capacity")
)
