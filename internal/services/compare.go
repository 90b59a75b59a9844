package services

import (
	"fmt"

	"priority-route-service/internal/domain"
)

// comparisonOrder fixes the order results are reported in.
var comparisonOrder = []Algorithm{
	AlgorithmExactSearch,
	AlgorithmBitmaskDP,
	AlgorithmNearestNeighbor,
}

// ComparisonEntry is one algorithm's outcome within a comparison run.
// Exactly one of Result and Err is set: a solver-level failure (such as
// the DP capacity ceiling) is carried here instead of aborting the whole
// comparison.
type ComparisonEntry struct {
	Algorithm  Algorithm
	Complexity string
	Result     *domain.SolverResult
	Err        error
}

// Compare runs all three solvers over the identical prepared input and
// returns one entry per algorithm, each timed independently. Input-level
// rejections (too few locations, unknown start id) fail the whole call;
// per-solver failures are reported alongside the other solvers' results.
//
// The prepared problem is read-only and every solver allocates its own
// working tables, so no state leaks between runs to bias timing.
func Compare(locations []domain.Location, startID *int) ([]ComparisonEntry, error) {
	p, err := prepare(locations, startID)
	if err != nil {
		return nil, fmt.Errorf("compare routes: %w", err)
	}

	entries := make([]ComparisonEntry, 0, len(comparisonOrder))
	for _, alg := range comparisonOrder {
		entry := ComparisonEntry{Algorithm: alg, Complexity: Complexity(alg)}
		entry.Result, entry.Err = run(alg, solvers[alg], p)
		entries = append(entries, entry)
	}

	return entries, nil
}
