package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"reel/cmd/app"
	"reel/internal/config"
	handlers "reel/internal/handler"
	"reel/internal/logging"
	"reel/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Caller: cfg.Log.Caller,
	})

	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, repo, services, err := app.App(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to start application")
	}
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)
	router := handlers.NewRouter(handler)

	handlerChain := middleware.Chain(
		router,
		middleware.Recover,
		middleware.RequestID,
		middleware.CORS(cfg.HTTP),
		middleware.RateLimit(cfg.HTTP),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handlerChain,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Starting the server
	go func() {
		logging.Info().
			Str("addr", server.Addr).
			Str("driver", cfg.DB.Driver).
			Str("database", cfg.DB.DbNAME).
			Msg("reel api listening")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}
