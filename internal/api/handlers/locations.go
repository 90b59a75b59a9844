package handlers

import (
	"log"
	"net/http"

	"priority-route-service/internal/api/dto"
	"priority-route-service/internal/ports"
)

// LocationHandler exposes the read-only preset location catalog.
type LocationHandler struct {
	Repo ports.LocationRepository
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	locs, err := h.Repo.ListLocations(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationPayload, 0, len(locs)),
	}
	for _, l := range locs {
		res.Locations = append(res.Locations, toLocationPayload(l))
	}

	writeJSON(w, r, http.StatusOK, res)
}
