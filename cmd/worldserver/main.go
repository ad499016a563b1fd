package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hyperscape/hyperscape/internal/config"
	"github.com/hyperscape/hyperscape/internal/data"
	"github.com/hyperscape/hyperscape/internal/db"
	"github.com/hyperscape/hyperscape/internal/events"
	"github.com/hyperscape/hyperscape/internal/spawn"
	"github.com/hyperscape/hyperscape/internal/world"
)

const ConfigPath = "config/worldserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil && err != context.Canceled {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("HYPERSCAPE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadWorldServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("hyperscape world server starting", "log_level", cfg.LogLevel)

	// Load static content tables
	if err := data.LoadMobDefs(); err != nil {
		return fmt.Errorf("loading mob definitions: %w", err)
	}
	if cfg.AreaFile != "" {
		if err := data.LoadWorldAreasFromFile(cfg.AreaFile); err != nil {
			return fmt.Errorf("loading area file: %w", err)
		}
	} else if err := data.LoadWorldAreas(); err != nil {
		return fmt.Errorf("loading world areas: %w", err)
	}

	// Content repositories: built-in tables or Postgres
	var (
		mobRepo  spawn.MobRepository
		areaRepo spawn.AreaRepository
	)
	switch cfg.ContentSource {
	case config.ContentSourceDatabase:
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		mobRepo = db.NewMobRepository(database.Pool())
		areaRepo = db.NewAreaRepository(database.Pool())
	default:
		mobRepo = spawn.NewDataMobRepo()
		areaRepo = spawn.NewDataAreaRepo()
	}

	// Wire the simulation: event bus, entity manager, mob spawner
	bus := events.NewBus()
	entityMgr := world.NewEntityManager(bus)
	spawner := spawn.NewManager(bus, mobRepo, areaRepo, data.DifficultyTiers,
		spawn.WithTemplateCache(cfg.CacheMaxSize, time.Duration(cfg.CacheTTL)*time.Second))

	respawner := spawn.NewRespawnTaskManager(spawner)
	respawner.SetDefaultDelay(time.Duration(cfg.DefaultRespawnDelay) * time.Second)
	if cfg.RespawnEnabled {
		spawner.SetRespawner(respawner)
	}

	if err := spawner.SpawnWorldAreas(ctx); err != nil {
		return fmt.Errorf("spawning world areas: %w", err)
	}
	slog.Info("world populated",
		"mobs", spawner.MobCount(),
		"entities", entityMgr.EntityCount())

	g, gctx := errgroup.WithContext(ctx)

	if cfg.RespawnEnabled {
		g.Go(func() error {
			return respawner.Start(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return gctx.Err()
	})

	return g.Wait()
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
