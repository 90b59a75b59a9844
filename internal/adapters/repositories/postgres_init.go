package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"priority-route-service/internal/domain"
)

// Postgres variant of the catalog schema, used by the dbtool against a
// managed database. Same shape as the SQLite schema; only the dialect
// (placeholders, upsert clause) differs.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS locations (
		location_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		priority INTEGER NOT NULL
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init postgres schema: create locations table: %w", err)
	}

	indexQuery := `
	CREATE INDEX IF NOT EXISTS idx_locations_priority
	ON locations(priority);
	`
	if _, err := db.Exec(indexQuery); err != nil {
		return fmt.Errorf("init postgres schema: create priority index: %w", err)
	}

	return nil
}

// Populate the Postgres catalog with location data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed postgres locations: read %q: %w", jsonPath, err)
	}

	var data []LocationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed postgres locations: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed postgres locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO locations (location_id, name, lat, lon, priority)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (location_id) DO UPDATE SET
		name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		priority = EXCLUDED.priority;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed postgres locations: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		loc := domain.Location{ID: item.LocationID, Name: name, Lat: item.Lat, Lon: item.Lon, Priority: item.Priority}
		if item.LocationID <= 0 || name == "" {
			return fmt.Errorf("seed postgres locations: invalid item at index %d", i+1)
		}
		if err := loc.Validate(); err != nil {
			return fmt.Errorf("seed postgres locations: item at index %d: %w", i+1, err)
		}

		if _, err := stmt.Exec(item.LocationID, name, item.Lat, item.Lon, item.Priority); err != nil {
			return fmt.Errorf("seed postgres locations: upsert location_id=%d: %w", item.LocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres locations: commit tx: %w", err)
	}

	return nil
}
