package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "locations.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestSeedAndListLocations(t *testing.T) {
	db := openTestDB(t)
	seed := writeSeedFile(t, `[
		{"location_id": 2, "name": "Tucson", "lat": 32.2226, "lon": -110.9747, "priority": 3},
		{"location_id": 1, "name": "Phoenix", "lat": 33.4484, "lon": -112.0740, "priority": 1}
	]`)

	if err := SeedFromJSON(db, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSqliteLocationRepository(db)
	locs, err := repo.ListLocations(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(locs) != 2 {
		t.Fatalf("got %d locations, want 2", len(locs))
	}
	// Ordered by id regardless of seed order.
	if locs[0].ID != 1 || locs[0].Name != "Phoenix" {
		t.Errorf("first location = %+v, want Phoenix (id 1)", locs[0])
	}
	if locs[1].ID != 2 || locs[1].Priority != 3 {
		t.Errorf("second location = %+v, want Tucson (priority 3)", locs[1])
	}
}

func TestSeedReplacesExistingRows(t *testing.T) {
	db := openTestDB(t)

	first := writeSeedFile(t, `[{"location_id": 1, "name": "Phoenix", "lat": 33.4, "lon": -112.0, "priority": 1}]`)
	if err := SeedFromJSON(db, first); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	second := writeSeedFile(t, `[{"location_id": 1, "name": "Phoenix Sky Harbor", "lat": 33.4342, "lon": -112.0116, "priority": 2}]`)
	if err := SeedFromJSON(db, second); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	repo := NewSqliteLocationRepository(db)
	locs, err := repo.ListLocations(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(locs) != 1 {
		t.Fatalf("got %d locations, want 1", len(locs))
	}
	if locs[0].Name != "Phoenix Sky Harbor" || locs[0].Priority != 2 {
		t.Errorf("row not replaced: %+v", locs[0])
	}
}

func TestSeedRejectsInvalidEntries(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		name string
		json string
	}{
		{"bad id", `[{"location_id": 0, "name": "X", "lat": 0, "lon": 0, "priority": 1}]`},
		{"empty name", `[{"location_id": 1, "name": " ", "lat": 0, "lon": 0, "priority": 1}]`},
		{"bad priority", `[{"location_id": 1, "name": "X", "lat": 0, "lon": 0, "priority": 9}]`},
		{"bad latitude", `[{"location_id": 1, "name": "X", "lat": 95, "lon": 0, "priority": 1}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seed := writeSeedFile(t, tc.json)
			if err := SeedFromJSON(db, seed); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
