package main

import (
	"context"
	"net/http"
	"os"

	_ "reinfolib-api/docs"
	"reinfolib-api/internal/config"
	"reinfolib-api/internal/handler"
	"reinfolib-api/internal/reinfolib"
	"reinfolib-api/internal/repository"
	"reinfolib-api/internal/service"
	"reinfolib-api/internal/tools"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Real Estate Information API
//	@version		1.0
//	@description	Transaction prices, land appraisals and price points from the MLIT Real Estate Information Library.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	configureLogging(config.LogLevel)

	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	client := reinfolib.NewClient(
		reinfolib.NewHTTPTransport(config.BaseURL, config.RequestTimeout),
		config.APIKey,
		config.UserAgent,
	)

	r := gin.Default()
	v1 := r.Group("/api/v1")

	// The station database is optional; without it station names are not resolved.
	var (
		resolver service.StationResolver
		searcher tools.StationSearcher
	)
	if config.DBSource != "" {
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		stationService := service.NewStationService(repository.NewRepository(conn))
		resolver, searcher = stationService, stationService
		handler.NewStationHandler(stationService).Register(v1)
	} else {
		log.Info().Msg("DB_SOURCE not set, station lookups disabled")
	}

	realEstateService := service.NewRealEstateService(client, resolver)
	registry, err := tools.NewRealEstateRegistry(realEstateService, searcher)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot register tools")
	}

	handler.NewRealEstateHandler(realEstateService).Register(v1)

	toolsHandler := handler.NewToolsHandler(registry)
	r.GET("/tools", toolsHandler.ListTools)
	r.POST("/tools/:name", toolsHandler.CallTool)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("addr", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func configureLogging(level string) {
	config.SetupLogging(level, os.Stderr, isTerminal(os.Stderr))
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
