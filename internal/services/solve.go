package services

import (
	"fmt"
	"sort"
	"time"

	"priority-route-service/internal/domain"
)

// Algorithm selects one of the three interchangeable solver strategies.
type Algorithm string

const (
	AlgorithmExactSearch     Algorithm = "exact-search"
	AlgorithmBitmaskDP       Algorithm = "bitmask-dp"
	AlgorithmNearestNeighbor Algorithm = "nearest-neighbor"
)

// Asymptotic time-complexity labels, reported for display in comparisons.
var complexityLabels = map[Algorithm]string{
	AlgorithmExactSearch:     "O(n!)",
	AlgorithmBitmaskDP:       "O(n²·2ⁿ)",
	AlgorithmNearestNeighbor: "O(n²)",
}

// Complexity returns the display label for an algorithm's time complexity.
func Complexity(a Algorithm) string { return complexityLabels[a] }

// A solver takes a prepared problem and returns the visiting order over
// problem indices together with its total optimization cost. Solvers own
// all of their working state; nothing is shared or memoized across calls.
type solverFunc func(p *problem) ([]int, float64, error)

var solvers = map[Algorithm]solverFunc{
	AlgorithmExactSearch:     exactSearch,
	AlgorithmBitmaskDP:       bitmaskDP,
	AlgorithmNearestNeighbor: nearestNeighbor,
}

// problem is one solve call's normalized, read-only input: the start fixed
// at index 0, the remaining locations pre-sorted by ascending priority
// (stable on input position), and the shared cost model over that order.
// origIdx maps problem indices back to input positions for tie-breaking.
type problem struct {
	locs    []domain.Location
	origIdx []int
	cost    *costModel
}

func (p *problem) size() int { return len(p.locs) }

// SolveRequest is the single-route operation's input. StartID, when set,
// must match one of the supplied locations.
type SolveRequest struct {
	Locations []domain.Location
	Algorithm Algorithm
	StartID   *int
}

// Solve runs one solver over the supplied locations and returns the
// ordered route, its physical distance, and the wall-clock solve time.
func Solve(req SolveRequest) (*domain.SolverResult, error) {
	solver, ok := solvers[req.Algorithm]
	if !ok {
		return nil, fmt.Errorf("solve route: algorithm %q: %w", req.Algorithm, ErrUnknownAlgorithm)
	}

	p, err := prepare(req.Locations, req.StartID)
	if err != nil {
		return nil, fmt.Errorf("solve route: %w", err)
	}

	return run(req.Algorithm, solver, p)
}

// run times one solver invocation and shapes its result. Elapsed time is
// measured here, by the caller, so every solver is timed uniformly.
func run(alg Algorithm, solver solverFunc, p *problem) (*domain.SolverResult, error) {
	started := time.Now()
	order, _, err := solver(p)
	elapsed := time.Since(started)

	if err != nil {
		return nil, fmt.Errorf("solve route: %s: %w", alg, err)
	}

	route := make(domain.Route, len(order))
	for i, idx := range order {
		route[i] = p.locs[idx]
	}

	return &domain.SolverResult{
		Algorithm: string(alg),
		Route:     route,
		// Reported distance is physical: penalty excluded.
		TotalDistanceKm: p.cost.dist.PathDistance(order),
		Elapsed:         elapsed,
		Start:           route[0],
	}, nil
}

// prepare validates the input set, resolves the starting location, and
// normalizes the ordering every solver receives. With the start fixed at
// position 0, the free locations are sorted by ascending priority (stable
// on input index) so tie-breaking is deterministic across runs.
func prepare(locations []domain.Location, startID *int) (*problem, error) {
	if err := domain.ValidateLocations(locations); err != nil {
		return nil, err
	}

	startIdx := -1
	if startID != nil {
		for i, l := range locations {
			if l.ID == *startID {
				startIdx = i
				break
			}
		}
		if startIdx < 0 {
			return nil, fmt.Errorf("starting location id %d: %w", *startID, ErrUnknownStart)
		}
	} else {
		// Default start: the most urgent location, lowest input index on ties.
		for i, l := range locations {
			if startIdx < 0 || l.Priority < locations[startIdx].Priority {
				startIdx = i
			}
		}
	}

	free := make([]int, 0, len(locations)-1)
	for i := range locations {
		if i != startIdx {
			free = append(free, i)
		}
	}
	sort.SliceStable(free, func(a, b int) bool {
		return locations[free[a]].Priority < locations[free[b]].Priority
	})

	ordered := make([]domain.Location, 0, len(locations))
	origIdx := make([]int, 0, len(locations))
	ordered = append(ordered, locations[startIdx])
	origIdx = append(origIdx, startIdx)
	for _, i := range free {
		ordered = append(ordered, locations[i])
		origIdx = append(origIdx, i)
	}

	return &problem{
		locs:    ordered,
		origIdx: origIdx,
		cost:    newCostModel(ordered),
	}, nil
}
