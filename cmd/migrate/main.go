package main

import (
	"context"

	"tecstore/internal/config"
	"tecstore/internal/logging"
	"tecstore/internal/migrate"
	"tecstore/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.New("migrate", cfg.Env)

	ctx := context.Background()
	pg, err := store.NewPostgres(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pg.Close()

	if err := migrate.Apply(ctx, pg.Pool()); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Info("migrations applied")
}
