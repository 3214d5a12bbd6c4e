package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/transmog/internal/config"
	"github.com/udisondev/transmog/internal/data"
	"github.com/udisondev/transmog/internal/db"
	"github.com/udisondev/transmog/internal/game/transmog"
)

const ConfigPath = "config/server.yaml"

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

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("TRANSMOG_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("looksweep starting", "log_level", cfg.LogLevel)

	if err := data.LoadItemTemplates(); err != nil {
		return fmt.Errorf("loading item templates: %w", err)
	}

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("migrations applied")

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	repo := transmog.NewPgRepository(database.Pool())

	// The two orphan classes are independent, sweep them concurrently
	var lookCount, presetCount int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := repo.SweepOrphanLooks(gctx)
		if err != nil {
			return fmt.Errorf("sweeping orphan looks: %w", err)
		}
		lookCount = n
		return nil
	})
	g.Go(func() error {
		n, err := repo.SweepOrphanPresets(gctx)
		if err != nil {
			return fmt.Errorf("sweeping orphan presets: %w", err)
		}
		presetCount = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("sweep complete", "orphan_looks", lookCount, "orphan_presets", presetCount)
	return nil
}

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
