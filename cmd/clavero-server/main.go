package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/nsaralegui/clavero/internal/config"
	"github.com/nsaralegui/clavero/internal/logger"
	"github.com/nsaralegui/clavero/internal/server"
	"github.com/nsaralegui/clavero/internal/stats"
	"github.com/nsaralegui/clavero/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file")
	listen := flag.String("listen", "", "listen address (overrides config)")
	backend := flag.String("backend", "", "store backend: file, memory, badger, gcs (overrides config)")
	dataDir := flag.String("data_dir", "", "storage root for file/badger backends (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := buildStore(ctx, cfg)
	if err != nil {
		zl.Fatal("open store", zap.String("backend", cfg.Backend), zap.Error(err))
	}
	defer st.Close()

	sts := stats.New()
	srv := server.New(cfg.Listen, st, sts, zl, cfg.ReadTimeout())

	zl.Info("starting", zap.String("backend", cfg.Backend), zap.String("listen", cfg.Listen))
	if err := srv.ListenAndServe(ctx); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}

	snap := sts.Snapshot()
	zl.Info("stopped",
		zap.Int64("conns", snap["conns"]),
		zap.Int64("gets", snap["gets"]),
		zap.Int64("sets", snap["sets"]),
		zap.Int64("dels", snap["dels"]),
		zap.Int64("errors", snap["errors"]),
	)
}

func buildStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Backend {
	case config.BackendMemory:
		st = store.NewMemStore()
	case config.BackendBadger:
		st, err = store.NewBadgerStore(cfg.DataDir)
	case config.BackendGCS:
		st, err = store.NewGCSStore(ctx, cfg.Bucket, cfg.Prefix)
	default:
		st, err = store.NewFileStore(cfg.DataDir)
	}
	if err != nil {
		return nil, err
	}
	if cfg.CacheSize > 0 {
		st = store.NewCachedStore(st, cfg.CacheSize)
	}
	return st, nil
}
