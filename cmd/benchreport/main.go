package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite"

	"priority-route-service/internal/adapters/repositories"
	"priority-route-service/internal/config"
	"priority-route-service/internal/domain"
	"priority-route-service/internal/services"
)

// benchreport runs the comparison harness over the seeded location catalog
// and writes one row per algorithm to an Excel workbook.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		dbPath   string
		seedPath string
		outPath  string
		startID  int
		limit    int
	)
	flag.StringVar(&dbPath, "db", config.Get("DB_PATH", "data/app.db"), "SQLite database path")
	flag.StringVar(&seedPath, "seed", config.Get("SEED_PATH", "data/seeds/locations.json"), "seed JSON path")
	flag.StringVar(&outPath, "out", "comparison.xlsx", "output workbook path")
	flag.IntVar(&startID, "start", 0, "starting location id (0 = most urgent)")
	flag.IntVar(&limit, "n", 9, "number of catalog locations to route")
	flag.Parse()

	locations, err := loadCatalog(dbPath, seedPath, limit)
	if err != nil {
		log.Fatal(err)
	}

	var start *int
	if startID != 0 {
		start = &startID
	}

	entries, err := services.Compare(locations, start)
	if err != nil {
		log.Fatalf("comparison failed: %v", err)
	}

	if err := writeReport(outPath, entries); err != nil {
		log.Fatalf("write report: %v", err)
	}
	log.Printf("Report written path=%s locations=%d", outPath, len(locations))
}

func loadCatalog(dbPath, seedPath string, limit int) ([]domain.Location, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: open sqlite database %q: %w", dbPath, err)
	}
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	repo := repositories.NewSqliteLocationRepository(db)
	locations, err := repo.ListLocations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if limit > 0 && len(locations) > limit {
		locations = locations[:limit]
	}
	return locations, nil
}

func writeReport(path string, entries []services.ComparisonEntry) error {
	const sheetName = "Comparison"

	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	headers := []interface{}{
		"Algorithm", "Complexity", "Route", "Distance (km)", "Elapsed (ms)", "Error",
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return err
	}

	for i, e := range entries {
		row := []interface{}{string(e.Algorithm), e.Complexity, "", "", "", ""}
		if e.Err != nil {
			row[5] = e.Err.Error()
		} else {
			stops := make([]string, 0, len(e.Result.Route))
			for _, l := range e.Result.Route {
				stops = append(stops, l.Name)
			}
			row[2] = strings.Join(stops, " -> ")
			row[3] = e.Result.TotalDistanceKm
			row[4] = float64(e.Result.Elapsed.Microseconds()) / 1000.0
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(path)
}
