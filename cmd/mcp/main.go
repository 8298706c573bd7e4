package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"reinfolib-api/internal/config"
	"reinfolib-api/internal/mcp"
	"reinfolib-api/internal/reinfolib"
	"reinfolib-api/internal/repository"
	"reinfolib-api/internal/service"
	"reinfolib-api/internal/tools"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// stdout carries protocol messages only; all logging goes to stderr.
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	config.SetupLogging(cfg.LogLevel, os.Stderr, false)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := reinfolib.NewClient(
		reinfolib.NewHTTPTransport(cfg.BaseURL, cfg.RequestTimeout),
		cfg.APIKey,
		cfg.UserAgent,
	)

	var (
		resolver service.StationResolver
		searcher tools.StationSearcher
	)
	if cfg.DBSource != "" {
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		stationService := service.NewStationService(repository.NewRepository(conn))
		resolver, searcher = stationService, stationService
	}

	registry, err := tools.NewRealEstateRegistry(service.NewRealEstateService(client, resolver), searcher)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot register tools")
	}

	if err := mcp.NewServer(registry).Serve(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("mcp server stopped")
		os.Exit(1)
	}
}
