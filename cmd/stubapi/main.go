// Package main runs the stub flight API: an in-memory stand-in for the
// remote REST API that travelctl talks to during development.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	flighthttp "github.com/flight-search/travel-booking-client/internal/adapter/http"
	"github.com/flight-search/travel-booking-client/internal/catalog"
	"github.com/flight-search/travel-booking-client/internal/config"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "stubapi",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Stub.Port).
		Bool("seed", cfg.Stub.Seed).
		Msg("Configuration loaded")

	cat := catalog.New(catalog.WithLogger(log))
	accounts := catalog.NewAccounts()
	if cfg.Stub.Seed {
		if err := catalog.Seed(cat, accounts, time.Now()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed catalog")
		}
		log.Info().Int("flights", cat.Len()).Msg("Catalog seeded")
	}

	validator, err := domain.NewValidator(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build validator")
	}

	e := flighthttp.Server{
		Catalog:   cat,
		Accounts:  accounts,
		Validator: validator,
		Log:       log,
	}.NewEcho()

	e.Server.ReadTimeout = cfg.Stub.ReadTimeout
	e.Server.WriteTimeout = cfg.Stub.WriteTimeout

	addr := fmt.Sprintf(":%d", cfg.Stub.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// gracefulShutdown blocks until SIGINT or SIGTERM, then drains the server.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
