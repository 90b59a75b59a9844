package services

import "errors"

// Sentinel errors for the rejection taxonomy. Handlers map these to HTTP
// statuses with errors.Is; wrapped variants carry the offending values.
var (
	// ErrUnknownAlgorithm rejects an algorithm selector outside the
	// supported set.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrUnknownStart rejects a starting-location id that matches no
	// supplied location. An unresolvable start is never silently treated
	// as "no starting location".
	ErrUnknownStart = errors.New("starting location not found")

	// ErrTooManyLocations marks the bitmask DP state table exceeding its
	// practical memory ceiling. This is a capacity limit for that solver
	// only, not an input validation failure.
	ErrTooManyLocations = errors.New("too many locations for the dp state table")
)
