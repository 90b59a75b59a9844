package geo

import (
	"math"
	"testing"

	"priority-route-service/internal/domain"
)

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of longitude along the equator.
	got := Haversine(0, 0, 0, 1)
	want := EarthRadiusKm * math.Pi / 180

	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Haversine(0,0 -> 0,1) = %v, want %v", got, want)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{33.4484, -112.0740, 32.2226, -110.9747},
		{51.5074, -0.1278, 48.8566, 2.3522},
		{-33.8688, 151.2093, 35.6762, 139.6503},
		{89.9, 179.9, -89.9, -179.9},
	}

	for _, p := range pairs {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])
		if ab != ba {
			t.Errorf("asymmetric: %v vs %v for %v", ab, ba, p)
		}
		if ab < 0 {
			t.Errorf("negative distance %v for %v", ab, p)
		}
	}
}

func TestHaversineZeroForIdenticalCoordinates(t *testing.T) {
	if d := Haversine(40.7128, -74.0060, 40.7128, -74.0060); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestMatrix(t *testing.T) {
	locs := []domain.Location{
		{ID: 1, Lat: 0, Lon: 0, Priority: 1},
		{ID: 2, Lat: 0, Lon: 1, Priority: 2},
		{ID: 3, Lat: 1, Lon: 0, Priority: 3},
	}

	m := NewMatrix(locs)
	if m.Len() != 3 {
		t.Fatalf("Len = %d, want 3", m.Len())
	}

	for i := 0; i < 3; i++ {
		if m.At(i, i) != 0 {
			t.Errorf("At(%d,%d) = %v, want 0", i, i, m.At(i, i))
		}
		for j := 0; j < 3; j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("At(%d,%d) != At(%d,%d)", i, j, j, i)
			}
			if want := Distance(locs[i], locs[j]); m.At(i, j) != want {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, m.At(i, j), want)
			}
		}
	}

	path := m.At(0, 1) + m.At(1, 2)
	if got := m.PathDistance([]int{0, 1, 2}); math.Abs(got-path) > 1e-12 {
		t.Errorf("PathDistance = %v, want %v", got, path)
	}
	if got := m.PathDistance([]int{0}); got != 0 {
		t.Errorf("PathDistance single = %v, want 0", got)
	}
}
