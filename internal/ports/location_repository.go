package ports

import (
	"context"

	"priority-route-service/internal/domain"
)

// Port: a boundary for retrieving the preset Location catalog from a data
// source. The catalog is demo/reference data; solve requests always carry
// their own locations.
type LocationRepository interface {
	// Retrieve every location in the catalog, ordered by id.
	ListLocations(ctx context.Context) ([]domain.Location, error)
}
