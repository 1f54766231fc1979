package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/velarium/scriptorium/internal/artgen"
	"github.com/velarium/scriptorium/internal/config"
	"github.com/velarium/scriptorium/internal/database"
	"github.com/velarium/scriptorium/internal/event"
	"github.com/velarium/scriptorium/internal/handler"
	"github.com/velarium/scriptorium/internal/loot"
	"github.com/velarium/scriptorium/internal/metrics"
	"github.com/velarium/scriptorium/internal/progression"
	"github.com/velarium/scriptorium/internal/quote"
	"github.com/velarium/scriptorium/internal/server"
	"github.com/velarium/scriptorium/internal/session"
	"github.com/velarium/scriptorium/internal/snapshot"
)

const (
	poolMaxIdleTime  = 5 * time.Minute
	poolMaxLifetime  = 30 * time.Minute
	shutdownDeadline = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	handler.InitValidator()

	ctx := context.Background()

	// Snapshot persistence backend
	var (
		store  snapshot.Store
		dbPool database.Pool
	)
	switch cfg.SnapshotBackend {
	case "postgres":
		pool, err := database.NewPool(cfg.GetDBConnString(), database.DefaultMaxConnections, poolMaxIdleTime, poolMaxLifetime)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		pgStore, err := snapshot.NewPostgresStore(ctx, pool)
		if err != nil {
			log.Fatalf("Failed to initialize snapshot store: %v", err)
		}
		store = pgStore
		dbPool = pool
	default:
		store = snapshot.NewMemoryStore()
	}
	defer store.Close()

	// Quote catalog with the bundled fallback packs
	catalog := quote.NewCatalog()
	packPath := filepath.Join(cfg.DataDir, "quote_packs.json")
	if err := catalog.LoadPacks(packPath); err != nil {
		slog.Warn("Using built-in fallback quotes", "path", packPath, "error", err)
	}

	// Art generation collaborator
	var gen artgen.Generator = artgen.PlaceholderGenerator{}
	if cfg.ArtServiceURL != "" {
		gen = artgen.NewHTTPGenerator(cfg.ArtServiceURL)
	}

	// Event bus with metrics collection
	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		log.Fatalf("Failed to register event metrics: %v", err)
	}

	svc, err := progression.NewService(ctx, store, catalog, loot.NewRoller(), artgen.NewService(gen), bus)
	if err != nil {
		log.Fatalf("Failed to initialize progression service: %v", err)
	}

	// Reading-session tracker credits minutes into the aggregate as they accrue
	tracker := session.NewTracker()
	trackerCtx, stopTracker := context.WithCancel(ctx)
	defer stopTracker()
	go tracker.Run(trackerCtx, func(minutes int) {
		if err := svc.AddSessionMinutes(context.Background(), minutes); err != nil {
			slog.Error("Failed to credit session minutes", "minutes", minutes, "error", err)
		}
	})

	srv := server.NewServer(cfg.Port, dbPool, svc, tracker)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatalf("Server failed to start: %v", err)
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	}

	stopTracker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownDeadline)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
}
