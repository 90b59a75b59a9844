package dto

type LocationPayload struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Priority int     `json:"priority"`
}

type ListLocationsResponse struct {
	Locations []LocationPayload `json:"locations"`
}
