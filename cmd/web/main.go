package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"tecstore/internal/auth"
	cartsvc "tecstore/internal/cart"
	"tecstore/internal/config"
	"tecstore/internal/httpserver"
	"tecstore/internal/logging"
	"tecstore/internal/money"
	"tecstore/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.New(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	st, closeStore, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer closeStore()

	cartService, err := cartsvc.New(ctx, st, logger)
	if err != nil {
		logger.Fatalf("init cart: %v", err)
	}
	authService := auth.New(st, logger)
	formatter := money.NewFormatter()
	view := cartsvc.NewView(formatter)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, st, httpserver.Deps{
		CartSvc:   cartService,
		AuthSvc:   authService,
		View:      view,
		Formatter: formatter,
	}, cfg.CORSAllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("starting http server on %s (store backend: %s)", cfg.HTTPAddr, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Infof("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Errorf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	} else {
		logger.Info("server stopped")
	}
}
