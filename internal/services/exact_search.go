package services

import (
	"math"

	"priority-route-service/internal/domain"
)

// exactSearch enumerates every permutation of the free locations with the
// start fixed at position 0 and keeps the cheapest. Generation is
// recursive and lexicographic over problem indices, so on cost ties the
// first permutation encountered in that fixed order wins; there is no
// secondary tie-break criterion.
//
// O(n!) time, O(n) auxiliary space. Intended for small n (≤ 10); algorithm
// selection for larger inputs is the caller's responsibility.
func exactSearch(p *problem) ([]int, float64, error) {
	n := p.size()
	if n < 2 {
		return nil, 0, domain.ErrTooFewLocations
	}

	perm := make([]int, n)
	used := make([]bool, n)
	perm[0] = 0
	used[0] = true

	best := make([]int, n)
	bestCost := math.Inf(1)

	var permute func(pos int, cost float64)
	permute = func(pos int, cost float64) {
		if pos == n {
			if cost < bestCost {
				bestCost = cost
				copy(best, perm)
			}
			return
		}
		for next := 1; next < n; next++ {
			if used[next] {
				continue
			}
			used[next] = true
			perm[pos] = next
			permute(pos+1, cost+p.cost.Edge(perm[pos-1], next))
			used[next] = false
		}
	}
	permute(1, 0)

	return best, bestCost, nil
}
