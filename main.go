package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/config"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/database"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/router"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	store, err := newStorage(cfg, logger)
	if err != nil {
		logger.Fatal("init storage", zap.Error(err))
	}

	if err := storage.Seed(store); err != nil {
		logger.Fatal("seed storage", zap.Error(err))
	}

	r := router.SetupRouter(cfg, store, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr), zap.String("backend", cfg.Storage.Backend))
	if err := r.Run(addr); err != nil {
		logger.Fatal("run server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func newStorage(cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case "memory":
		logger.Warn("using in-memory storage, data will not survive restarts")
		return storage.NewMemStorage(), nil
	case "", "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		db, err := database.Init(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		return storage.NewDBStorage(db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
