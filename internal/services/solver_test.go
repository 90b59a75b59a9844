package services

import (
	"errors"
	"math"
	"testing"

	"priority-route-service/internal/domain"
)

// Triangle fixture from the hand-checked scenario: three locations with
// priorities 1, 3, 5 whose Haversine legs are known. With the start fixed
// there are exactly two free permutations.
func triangleLocations() []domain.Location {
	return []domain.Location{
		{ID: 1, Name: "Alpha", Lat: 0, Lon: 0, Priority: 1},
		{ID: 2, Name: "Bravo", Lat: 0, Lon: 1, Priority: 3},
		{ID: 3, Name: "Charlie", Lat: 1, Lon: 0, Priority: 5},
	}
}

func mustPrepare(t *testing.T, locs []domain.Location, startID *int) *problem {
	t.Helper()
	p, err := prepare(locs, startID)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	return p
}

func assertPermutation(t *testing.T, p *problem, order []int) {
	t.Helper()
	if len(order) != p.size() {
		t.Fatalf("order length = %d, want %d", len(order), p.size())
	}
	seen := make(map[int]bool, len(order))
	for _, idx := range order {
		if idx < 0 || idx >= p.size() {
			t.Fatalf("index %d out of range", idx)
		}
		if seen[idx] {
			t.Fatalf("index %d repeated in %v", idx, order)
		}
		seen[idx] = true
	}
	if order[0] != 0 {
		t.Fatalf("order %v does not begin at the start", order)
	}
}

func TestExactSearchPicksCheaperPermutation(t *testing.T) {
	start := 1
	p := mustPrepare(t, triangleLocations(), &start)

	order, cost, err := exactSearch(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPermutation(t, p, order)

	// Of the two free permutations, Alpha->Bravo->Charlie follows urgency
	// order and is penalty-free; Alpha->Charlie->Bravo pays 2000 for the
	// 5 -> 3 edge. The cheaper one must win.
	wantCost := p.cost.Edge(0, 1) + p.cost.Edge(1, 2)
	if math.Abs(cost-wantCost) > 1e-9 {
		t.Fatalf("cost = %v, want %v", cost, wantCost)
	}
	if p.locs[order[1]].ID != 2 || p.locs[order[2]].ID != 3 {
		t.Fatalf("route ids = [%d %d %d], want [1 2 3]",
			p.locs[order[0]].ID, p.locs[order[1]].ID, p.locs[order[2]].ID)
	}
}

func TestSolversRejectFewerThanTwoLocations(t *testing.T) {
	p := &problem{
		locs:    []domain.Location{{ID: 1, Priority: 1}},
		origIdx: []int{0},
		cost:    newCostModel([]domain.Location{{ID: 1, Priority: 1}}),
	}

	for name, solver := range solvers {
		if _, _, err := solver(p); !errors.Is(err, domain.ErrTooFewLocations) {
			t.Errorf("%s: err = %v, want ErrTooFewLocations", name, err)
		}
	}
}

func TestSolversHandleMinimumInput(t *testing.T) {
	locs := []domain.Location{
		{ID: 1, Lat: 0, Lon: 0, Priority: 2},
		{ID: 2, Lat: 1, Lon: 1, Priority: 1},
	}
	start := 1
	p := mustPrepare(t, locs, &start)

	for name, solver := range solvers {
		order, _, err := solver(p)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		assertPermutation(t, p, order)
	}
}

func TestBitmaskDPAgreesWithExactSearch(t *testing.T) {
	fixtures := [][]domain.Location{
		triangleLocations(),
		{
			{ID: 10, Lat: 33.4484, Lon: -112.0740, Priority: 2},
			{ID: 11, Lat: 32.2226, Lon: -110.9747, Priority: 4},
			{ID: 12, Lat: 35.1983, Lon: -111.6513, Priority: 1},
			{ID: 13, Lat: 34.5400, Lon: -112.4685, Priority: 3},
			{ID: 14, Lat: 31.3445, Lon: -109.5453, Priority: 5},
		},
		{
			{ID: 1, Lat: 52.5200, Lon: 13.4050, Priority: 3},
			{ID: 2, Lat: 48.1351, Lon: 11.5820, Priority: 3},
			{ID: 3, Lat: 50.1109, Lon: 8.6821, Priority: 1},
			{ID: 4, Lat: 53.5511, Lon: 9.9937, Priority: 5},
			{ID: 5, Lat: 51.2277, Lon: 6.7735, Priority: 2},
			{ID: 6, Lat: 49.4521, Lon: 11.0767, Priority: 4},
			{ID: 7, Lat: 51.0504, Lon: 13.7373, Priority: 2},
		},
	}

	for _, locs := range fixtures {
		p := mustPrepare(t, locs, nil)

		exactOrder, exactCost, err := exactSearch(p)
		if err != nil {
			t.Fatalf("exact: %v", err)
		}
		dpOrder, dpCost, err := bitmaskDP(p)
		if err != nil {
			t.Fatalf("dp: %v", err)
		}

		assertPermutation(t, p, exactOrder)
		assertPermutation(t, p, dpOrder)

		// Both are exact: the optimal cost must agree even if tied routes differ.
		if math.Abs(exactCost-dpCost) > 1e-6 {
			t.Errorf("n=%d: exact cost %v != dp cost %v", len(locs), exactCost, dpCost)
		}
	}
}

func TestBitmaskDPCapacityCeiling(t *testing.T) {
	locs := make([]domain.Location, MaxBitmaskLocations+1)
	for i := range locs {
		locs[i] = domain.Location{ID: i + 1, Lat: float64(i) / 100, Lon: 0, Priority: 1 + i%5}
	}

	p := mustPrepare(t, locs, nil)
	if _, _, err := bitmaskDP(p); !errors.Is(err, ErrTooManyLocations) {
		t.Fatalf("err = %v, want ErrTooManyLocations", err)
	}
}

func TestNearestNeighborGreedySteps(t *testing.T) {
	start := 1
	p := mustPrepare(t, triangleLocations(), &start)

	order, _, err := nearestNeighbor(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPermutation(t, p, order)

	// From Alpha both legs measure one degree of arc, so the costs tie
	// exactly; the more urgent Bravo (priority 3) must win over Charlie
	// (priority 5).
	if p.cost.Edge(0, 1) != p.cost.Edge(0, 2) {
		t.Fatalf("fixture expectation broken: legs differ (%v vs %v)", p.cost.Edge(0, 1), p.cost.Edge(0, 2))
	}
	if p.locs[order[1]].ID != 2 {
		t.Fatalf("greedy tie-break picked id %d, want 2", p.locs[order[1]].ID)
	}
	if p.locs[order[2]].ID != 3 {
		t.Fatalf("final stop id = %d, want 3", p.locs[order[2]].ID)
	}
}

func TestNearestNeighborMatchesManualChoice(t *testing.T) {
	// Distinct distances: the greedy step must equal the manually computed
	// minimum-edge-cost candidate at every hop.
	locs := []domain.Location{
		{ID: 1, Lat: 40.7128, Lon: -74.0060, Priority: 1},
		{ID: 2, Lat: 39.9526, Lon: -75.1652, Priority: 2},
		{ID: 3, Lat: 42.3601, Lon: -71.0589, Priority: 2},
		{ID: 4, Lat: 38.9072, Lon: -77.0369, Priority: 4},
	}
	start := 1
	p := mustPrepare(t, locs, &start)

	order, _, err := nearestNeighbor(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	visited := map[int]bool{0: true}
	current := 0
	for hop := 1; hop < p.size(); hop++ {
		want := -1
		wantCost := math.Inf(1)
		for cand := 1; cand < p.size(); cand++ {
			if visited[cand] {
				continue
			}
			if c := p.cost.Edge(current, cand); c < wantCost {
				wantCost = c
				want = cand
			}
		}
		if order[hop] != want {
			t.Fatalf("hop %d: picked %d, manual minimum is %d", hop, order[hop], want)
		}
		visited[want] = true
		current = want
	}
}

func TestExactSolversNeverCostMoreThanGreedy(t *testing.T) {
	locs := []domain.Location{
		{ID: 1, Lat: 33.4484, Lon: -112.0740, Priority: 1},
		{ID: 2, Lat: 36.1699, Lon: -115.1398, Priority: 5},
		{ID: 3, Lat: 34.0522, Lon: -118.2437, Priority: 2},
		{ID: 4, Lat: 32.7157, Lon: -117.1611, Priority: 4},
		{ID: 5, Lat: 37.7749, Lon: -122.4194, Priority: 3},
		{ID: 6, Lat: 35.0844, Lon: -106.6504, Priority: 2},
	}
	p := mustPrepare(t, locs, nil)

	_, exactCost, err := exactSearch(p)
	if err != nil {
		t.Fatalf("exact: %v", err)
	}
	_, dpCost, err := bitmaskDP(p)
	if err != nil {
		t.Fatalf("dp: %v", err)
	}
	greedyOrder, _, err := nearestNeighbor(p)
	if err != nil {
		t.Fatalf("greedy: %v", err)
	}

	greedyCost := p.cost.RouteCost(greedyOrder)
	if exactCost > greedyCost+1e-9 {
		t.Errorf("exact cost %v exceeds greedy cost %v", exactCost, greedyCost)
	}
	if dpCost > greedyCost+1e-9 {
		t.Errorf("dp cost %v exceeds greedy cost %v", dpCost, greedyCost)
	}
}

func TestExactSolversOrderByUrgencyWhenDistancesAreSmall(t *testing.T) {
	// Clustered coordinates: every leg is far below one penalty unit, so
	// optimal routes must visit strictly by ascending priority.
	locs := []domain.Location{
		{ID: 1, Lat: 47.6062, Lon: -122.3321, Priority: 5},
		{ID: 2, Lat: 47.6072, Lon: -122.3331, Priority: 1},
		{ID: 3, Lat: 47.6052, Lon: -122.3311, Priority: 3},
		{ID: 4, Lat: 47.6082, Lon: -122.3301, Priority: 2},
		{ID: 5, Lat: 47.6042, Lon: -122.3341, Priority: 4},
	}

	p := mustPrepare(t, locs, nil)

	for _, solver := range []struct {
		name string
		fn   solverFunc
	}{
		{"exact", exactSearch},
		{"dp", bitmaskDP},
	} {
		order, _, err := solver.fn(p)
		if err != nil {
			t.Fatalf("%s: %v", solver.name, err)
		}
		for i := 0; i+1 < len(order); i++ {
			a := p.locs[order[i]].Priority
			b := p.locs[order[i+1]].Priority
			if a > b {
				t.Errorf("%s: priority %d visited before %d in %v", solver.name, a, b, order)
			}
		}
	}
}
