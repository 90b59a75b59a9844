package services

import (
	"fmt"
	"math"
	"math/bits"

	"priority-route-service/internal/domain"
)

// MaxBitmaskLocations caps the bitmask DP state table. Beyond ~20
// locations the O(n·2ⁿ) cost and predecessor tables stop fitting in
// commodity memory; requests over the cap are rejected up front instead
// of degrading into swap.
const MaxBitmaskLocations = 20

// bitmaskDP solves the prepared problem exactly with Held-Karp style
// dynamic programming over (visited mask, last index) states. The value
// of a state is the minimum cost of reaching it from the fixed start;
// the answer is the cheapest full-mask state, reconstructed backward
// through stored predecessors.
//
// Tables are flat slices indexed (mask << indexBits) | last for cache
// friendliness, allocated fresh per call and released when it returns.
// O(n²·2ⁿ) time, O(n·2ⁿ) space.
func bitmaskDP(p *problem) ([]int, float64, error) {
	n := p.size()
	if n < 2 {
		return nil, 0, domain.ErrTooFewLocations
	}
	if n > MaxBitmaskLocations {
		return nil, 0, fmt.Errorf("%d locations exceed the %d-location ceiling: %w", n, MaxBitmaskLocations, ErrTooManyLocations)
	}

	indexBits := bits.Len(uint(n - 1))
	states := (1 << n) << indexBits
	idx := func(mask, last int) int { return mask<<indexBits | last }

	cost := make([]float64, states)
	for i := range cost {
		cost[i] = math.Inf(1)
	}
	parent := make([]int32, states)
	for i := range parent {
		parent[i] = -1
	}

	full := 1<<n - 1
	cost[idx(1, 0)] = 0

	// Masks are visited in ascending order; every transition strictly grows
	// the mask, so each state is final before it is expanded. The start bit
	// is always set in any reachable mask.
	for mask := 1; mask <= full; mask += 2 {
		for last := 0; last < n; last++ {
			if mask&(1<<last) == 0 {
				continue
			}
			cur := cost[idx(mask, last)]
			if math.IsInf(cur, 1) {
				continue
			}
			for next := 1; next < n; next++ {
				if mask&(1<<next) != 0 {
					continue
				}
				nextMask := mask | 1<<next
				cand := cur + p.cost.Edge(last, next)
				if cand < cost[idx(nextMask, next)] {
					cost[idx(nextMask, next)] = cand
					parent[idx(nextMask, next)] = int32(last)
				}
			}
		}
	}

	bestLast := -1
	bestCost := math.Inf(1)
	for last := 0; last < n; last++ {
		if c := cost[idx(full, last)]; c < bestCost {
			bestCost = c
			bestLast = last
		}
	}
	if bestLast < 0 {
		return nil, 0, fmt.Errorf("no complete route for %d locations", n)
	}

	order := make([]int, n)
	mask, last := full, bestLast
	for i := n - 1; i >= 0; i-- {
		order[i] = last
		prev := parent[idx(mask, last)]
		mask &^= 1 << last
		last = int(prev)
	}

	return order, bestCost, nil
}
