package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"priority-route-service/internal/adapters/cache"
	"priority-route-service/internal/adapters/repositories"
	"priority-route-service/internal/api"
	"priority-route-service/internal/config"
	"priority-route-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite catalog, Redis cache) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/locations.json")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed the demo catalog on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteLocationRepository(db)

	// The result cache is optional; without REDIS_ADDR every solve is
	// computed fresh.
	var resultCache ports.ResultCache
	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		ttl, err := time.ParseDuration(config.Get("CACHE_TTL", "5m"))
		if err != nil {
			log.Fatalf("invalid CACHE_TTL: %v", err)
		}
		redisCache := cache.NewRedisResultCache(addr, ttl)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Fatal(err)
		}
		resultCache = redisCache
		log.Printf("Result cache enabled addr=%s ttl=%s", addr, ttl)
	}

	router := api.NewRouter(repo, resultCache)

	// Write timeout leaves room for exact solvers on larger inputs.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
