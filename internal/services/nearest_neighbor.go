package services

import (
	"math"

	"priority-route-service/internal/domain"
)

// nearestNeighbor builds a route greedily: from the current location it
// appends the unvisited candidate with the cheapest edge cost and repeats
// until every location is visited. No backtracking, no re-evaluation of
// earlier choices; the result is always a complete route for valid input.
//
// Cost ties prefer the more urgent candidate (lower priority number), then
// the lower original input index, keeping the result deterministic.
// O(n²) time, O(n) space.
func nearestNeighbor(p *problem) ([]int, float64, error) {
	n := p.size()
	if n < 2 {
		return nil, 0, domain.ErrTooFewLocations
	}

	visited := make([]bool, n)
	visited[0] = true
	order := make([]int, 1, n)

	current := 0
	total := 0.0

	for len(order) < n {
		best := -1
		bestCost := math.Inf(1)

		for cand := 1; cand < n; cand++ {
			if visited[cand] {
				continue
			}
			c := p.cost.Edge(current, cand)
			if c < bestCost || (c == bestCost && p.beats(cand, best)) {
				bestCost = c
				best = cand
			}
		}

		visited[best] = true
		order = append(order, best)
		total += bestCost
		current = best
	}

	return order, total, nil
}

// beats reports whether candidate a wins a cost tie against b: more urgent
// first, then the earlier input position.
func (p *problem) beats(a, b int) bool {
	if b < 0 {
		return true
	}
	if p.locs[a].Priority != p.locs[b].Priority {
		return p.locs[a].Priority < p.locs[b].Priority
	}
	return p.origIdx[a] < p.origIdx[b]
}
