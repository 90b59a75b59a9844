package geo

import (
	"math"

	"priority-route-service/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used by the great-circle formula.
const EarthRadiusKm = 6371.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Haversine computes the great-circle distance in kilometers between two
// coordinate pairs. It is symmetric, non-negative, and zero for identical
// coordinates.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)

	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Distance returns the Haversine distance between two locations.
func Distance(a, b domain.Location) float64 {
	return Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
}

// Matrix holds pairwise Haversine distances for one request's locations,
// stored as a flat row-major slice. Built once per solve so every solver
// shares the same precomputed values without recomputing trigonometry.
type Matrix struct {
	n int
	d []float64
}

// NewMatrix precomputes all pairwise distances for the given locations.
func NewMatrix(locs []domain.Location) *Matrix {
	n := len(locs)
	m := &Matrix{n: n, d: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(locs[i], locs[j])
			m.d[i*n+j] = d
			m.d[j*n+i] = d
		}
	}
	return m
}

// Len returns the number of locations the matrix covers.
func (m *Matrix) Len() int { return m.n }

// At returns the distance in kilometers between locations i and j.
func (m *Matrix) At(i, j int) float64 { return m.d[i*m.n+j] }

// PathDistance sums the physical distance over consecutive pairs of the
// given index order. The order is an open path; no return leg is added.
func (m *Matrix) PathDistance(order []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		total += m.At(order[i], order[i+1])
	}
	return total
}
