package domain

import "time"

// An ordered visiting sequence over the input Locations. A Route is a
// permutation of the request's Location set: every input Location appears
// exactly once. It is transient output data and is never persisted.
type Route []Location

// The outcome of one solver invocation. TotalDistanceKm is the physical
// Haversine distance summed over consecutive Route edges; the priority
// penalty steers optimization but is excluded from the reported distance.
// Elapsed is wall-clock time measured by the solver's caller, not the
// solver itself.
type SolverResult struct {
	Algorithm       string
	Route           Route
	TotalDistanceKm float64
	Elapsed         time.Duration
	Start           Location
}
