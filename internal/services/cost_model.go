package services

import (
	"priority-route-service/internal/domain"
	"priority-route-service/internal/geo"
)

// PriorityPenaltyWeight scales one level of priority violation. At 1000 km
// per level a single violation dominates any realistic intercity distance,
// so urgency ordering outweighs geometry whenever the two conflict.
const PriorityPenaltyWeight = 1000.0

// PriorityPenalty prices the edge from a location of priority `from` to one
// of priority `to`. Moving toward equal or less urgent work (from <= to) is
// free; moving from a less urgent location to a more urgent one is charged
// per skipped level, because it means the more urgent stop was postponed
// behind the less urgent one. The net effect is that lower priority numbers
// are pulled toward the front of optimal routes.
func PriorityPenalty(from, to int) float64 {
	if from <= to {
		return 0
	}
	return float64(from-to) * PriorityPenaltyWeight
}

// costModel combines the precomputed distance matrix with the priority
// penalty into the single scalar edge cost every solver minimizes.
type costModel struct {
	dist     *geo.Matrix
	priority []int
}

func newCostModel(locs []domain.Location) *costModel {
	pr := make([]int, len(locs))
	for i, l := range locs {
		pr[i] = l.Priority
	}
	return &costModel{dist: geo.NewMatrix(locs), priority: pr}
}

// Edge returns distance plus priority penalty for traveling i -> j.
func (c *costModel) Edge(i, j int) float64 {
	return c.dist.At(i, j) + PriorityPenalty(c.priority[i], c.priority[j])
}

// RouteCost sums Edge over consecutive pairs of an open path.
func (c *costModel) RouteCost(order []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		total += c.Edge(order[i], order[i+1])
	}
	return total
}
