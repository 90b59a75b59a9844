package domain

import (
	"errors"
	"fmt"
)

// Priority levels span 1 (most urgent) through 5 (least urgent).
const (
	MinPriority = 1
	MaxPriority = 5
)

var (
	ErrTooFewLocations = errors.New("at least 2 locations are required")
	ErrInvalidLocation = errors.New("invalid location")
)

// A named geographic point with an urgency level, the unit the engine
// routes between. Coordinates and priority are never mutated by the
// engine; solvers only reorder references to Locations.
type Location struct {
	ID       int
	Name     string
	Lat      float64
	Lon      float64
	Priority int
}

// Validate a single location's coordinate ranges and priority level.
func (l Location) Validate() error {
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("location %d: latitude %v out of range [-90, 90]: %w", l.ID, l.Lat, ErrInvalidLocation)
	}
	if l.Lon < -180 || l.Lon > 180 {
		return fmt.Errorf("location %d: longitude %v out of range [-180, 180]: %w", l.ID, l.Lon, ErrInvalidLocation)
	}
	if l.Priority < MinPriority || l.Priority > MaxPriority {
		return fmt.Errorf("location %d: priority %d out of range [%d, %d]: %w", l.ID, l.Priority, MinPriority, MaxPriority, ErrInvalidLocation)
	}
	return nil
}

// ValidateLocations checks the whole input set for one optimization request:
// minimum size, per-location ranges, and id uniqueness.
func ValidateLocations(locs []Location) error {
	if len(locs) < 2 {
		return ErrTooFewLocations
	}

	seen := make(map[int]struct{}, len(locs))
	for _, l := range locs {
		if err := l.Validate(); err != nil {
			return err
		}
		if _, ok := seen[l.ID]; ok {
			return fmt.Errorf("duplicate location id %d: %w", l.ID, ErrInvalidLocation)
		}
		seen[l.ID] = struct{}{}
	}

	return nil
}
