/*
main.go - Application entry point

PURPOSE:
  Starts the order book HTTP server: loads configuration, sets up zerolog,
  picks the ledger backend, and wires the client and router together.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load configuration (TOML file + ORDERBOOK_* env overrides)
  3. Initialize the ledger store (memory or sqlite)
  4. Create the order book client and HTTP handler
  5. Start the server with graceful shutdown

COMMAND-LINE FLAGS:
  -config  Path to a TOML configuration file (optional)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM, stop accepting new connections, wait up to 30s for
  active requests, then close the store.
*/
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/warp/order-book/api"
	"github.com/warp/order-book/config"
	"github.com/warp/order-book/orderbook"
	memstore "github.com/warp/order-book/orderbook/store"
	"github.com/warp/order-book/store/sqlite"
)

func main() {
	configPath := flag.String("config", "", "path to TOML configuration file")
	flag.Parse()

	bootLogger := zerolog.New(os.Stderr)
	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := newLogger(cfg.Logging)

	store, cleanup, err := newStore(cfg.Store)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer cleanup()

	client := orderbook.NewClient(store, logger)
	handler := api.NewHandler(client, logger)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Str("backend", cfg.Store.Backend).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}
	logger.Info().Msg("server stopped")
}

func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func newStore(cfg config.StoreConfig) (orderbook.Store, func(), error) {
	if cfg.Backend == "sqlite" {
		st, err := sqlite.New(cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { st.Close() }, nil
	}
	return memstore.NewMemory(), func() {}, nil
}
