package main

import (
	"context"

	"tecstore/internal/config"
	"tecstore/internal/logging"
	"tecstore/internal/seed"
	"tecstore/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.New("seed", cfg.Env)

	ctx := context.Background()
	st, closeStore, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer closeStore()

	if err := seed.Apply(ctx, st, logger); err != nil {
		logger.Fatalf("seed: %v", err)
	}

	logger.Info("seed data applied")
}
