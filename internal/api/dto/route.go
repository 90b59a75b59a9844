package dto

type SolveRouteRequest struct {
	Locations []LocationPayload `json:"locations"`
	Algorithm string            `json:"algorithm"`
	StartID   *int              `json:"start_id"`
}

type SolveRouteResponse struct {
	Route            []LocationPayload `json:"route"`
	TotalDistanceKm  float64           `json:"total_distance_km"`
	ElapsedMs        float64           `json:"elapsed_ms"`
	StartingLocation LocationPayload   `json:"starting_location"`
}

type CompareRequest struct {
	Locations []LocationPayload `json:"locations"`
	StartID   *int              `json:"start_id"`
}

// One algorithm's outcome within a comparison. Result and Error are
// mutually exclusive: a failed solver still appears, carrying its error
// next to the other solvers' results.
type CompareEntryResponse struct {
	Algorithm  string              `json:"algorithm"`
	Complexity string              `json:"complexity"`
	Result     *SolveRouteResponse `json:"result,omitempty"`
	Error      string              `json:"error,omitempty"`
}

type CompareResponse struct {
	Results []CompareEntryResponse `json:"results"`
}
