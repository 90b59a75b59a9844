package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"priority-route-service/internal/api/dto"
	"priority-route-service/internal/domain"
	"priority-route-service/internal/platform/metrics"
	"priority-route-service/internal/platform/obs"
	"priority-route-service/internal/ports"
	"priority-route-service/internal/services"
)

// RouteHandler exposes the two optimization operations. Cache is optional;
// when nil every request is computed fresh.
type RouteHandler struct {
	Cache ports.ResultCache
}

// Solve computes a single route with the selected algorithm.
func (h *RouteHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var err error
	defer obs.Time(r.Context(), "solve_route")(&err)

	var req dto.SolveRouteRequest
	if err = decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	key := requestDigest("solve", req)
	if h.Cache != nil {
		if payload, hit, cacheErr := h.Cache.Get(r.Context(), key); cacheErr != nil {
			log.Printf("result cache get failed: %v", cacheErr)
		} else if hit {
			writeRawJSON(w, r, http.StatusOK, payload)
			return
		}
	}

	result, solveErr := services.Solve(services.SolveRequest{
		Locations: toDomainLocations(req.Locations),
		Algorithm: services.Algorithm(req.Algorithm),
		StartID:   req.StartID,
	})
	recordSolve(req.Algorithm, result, solveErr)
	if solveErr != nil {
		err = solveErr
		writeSolveError(w, r, solveErr)
		return
	}

	res := toSolveResponse(result)
	payload, marshalErr := json.Marshal(res)
	if marshalErr != nil {
		writeJSON(w, r, http.StatusOK, res)
		return
	}

	if h.Cache != nil {
		if cacheErr := h.Cache.Set(r.Context(), key, payload); cacheErr != nil {
			log.Printf("result cache set failed: %v", cacheErr)
		}
	}

	// Serve the same bytes that were cached so hits and misses are identical.
	writeRawJSON(w, r, http.StatusOK, payload)
}

// Compare runs every algorithm over the same input and reports one result
// (or failure) per algorithm.
func (h *RouteHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var err error
	defer obs.Time(r.Context(), "compare_routes")(&err)

	var req dto.CompareRequest
	if err = decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	entries, compareErr := services.Compare(toDomainLocations(req.Locations), req.StartID)
	if compareErr != nil {
		err = compareErr
		writeSolveError(w, r, compareErr)
		return
	}

	res := dto.CompareResponse{Results: make([]dto.CompareEntryResponse, 0, len(entries))}
	for _, e := range entries {
		entry := dto.CompareEntryResponse{
			Algorithm:  string(e.Algorithm),
			Complexity: e.Complexity,
		}
		recordSolve(string(e.Algorithm), e.Result, e.Err)
		if e.Err != nil {
			entry.Error = e.Err.Error()
		} else {
			solveRes := toSolveResponse(e.Result)
			entry.Result = &solveRes
		}
		res.Results = append(res.Results, entry)
	}

	writeJSON(w, r, http.StatusOK, res)
}

// decodeStrict enforces a single JSON object with no unknown fields.
func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

// writeSolveError maps the engine's rejection taxonomy to HTTP statuses:
// invalid input is a 400, the DP capacity ceiling a 422, everything else
// an opaque 500.
func writeSolveError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrTooFewLocations),
		errors.Is(err, domain.ErrInvalidLocation),
		errors.Is(err, services.ErrUnknownAlgorithm),
		errors.Is(err, services.ErrUnknownStart):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrTooManyLocations):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("solve failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func recordSolve(algorithm string, result *domain.SolverResult, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.SolveRuns.WithLabelValues(algorithm, outcome).Inc()
	if result != nil {
		metrics.SolveDuration.WithLabelValues(algorithm).Observe(result.Elapsed.Seconds())
	}
}

// requestDigest builds a stable cache key from the serialized request.
func requestDigest(prefix string, v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

func toDomainLocations(payloads []dto.LocationPayload) []domain.Location {
	locs := make([]domain.Location, 0, len(payloads))
	for _, p := range payloads {
		locs = append(locs, domain.Location{
			ID:       p.ID,
			Name:     p.Name,
			Lat:      p.Lat,
			Lon:      p.Lon,
			Priority: p.Priority,
		})
	}
	return locs
}

func toLocationPayload(l domain.Location) dto.LocationPayload {
	return dto.LocationPayload{ID: l.ID, Name: l.Name, Lat: l.Lat, Lon: l.Lon, Priority: l.Priority}
}

func toSolveResponse(res *domain.SolverResult) dto.SolveRouteResponse {
	route := make([]dto.LocationPayload, 0, len(res.Route))
	for _, l := range res.Route {
		route = append(route, toLocationPayload(l))
	}
	return dto.SolveRouteResponse{
		Route:            route,
		TotalDistanceKm:  res.TotalDistanceKm,
		ElapsedMs:        float64(res.Elapsed.Microseconds()) / 1000.0,
		StartingLocation: toLocationPayload(res.Start),
	}
}
