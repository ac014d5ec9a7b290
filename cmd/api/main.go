package main

import (
	"context"
	"os"
	"strings"

	_ "localmarket-api/docs"
	"localmarket-api/internal/auth"
	"localmarket-api/internal/config"
	"localmarket-api/internal/handler"
	"localmarket-api/internal/hexgrid"
	"localmarket-api/internal/kv"
	"localmarket-api/internal/metrics"
	"localmarket-api/internal/proximity"
	"localmarket-api/internal/repository"
	"localmarket-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title                       Local Market API
// @version                     1.0
// @description                 Neighborhood marketplace for local services, tools and skills.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot prepare schema")
	}

	// Session store and listing cache
	store, err := kv.NewStore(kv.Config{
		Addrs:    strings.Split(config.RedisAddress, ","),
		Password: config.RedisPassword,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to redis")
	}
	defer store.Close()

	// Proximity
	indexer, err := hexgrid.NewIndexer(config.CellResolution)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid cell resolution")
	}
	rings, err := proximity.ParseRadiusRings(config.RadiusRings)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid radius table")
	}
	policy, err := proximity.NewRadiusPolicy(rings)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid radius table")
	}
	finder := proximity.NewFinder(policy)

	// Initialize layers
	neighborhoodService := service.NewNeighborhoodService(repo, indexer)
	userService := service.NewUserService(repo)
	catalogService := service.NewCatalogService(repo, store, config.ServicesCacheTTL)
	nearbyService := service.NewNearbyService(repo, finder)
	bookingService := service.NewBookingService(repo)

	gate := auth.NewGate(auth.NewKVSessions(store), repo)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(), metrics.Middleware())

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler.RegisterRoutes(r, gate, handler.Handlers{
		Neighborhoods: handler.NewNeighborhoodHandler(neighborhoodService),
		Users:         handler.NewUserHandler(userService),
		Services:      handler.NewServiceHandler(catalogService, nearbyService),
		Bookings:      handler.NewBookingHandler(bookingService),
	})

	log.Info().
		Str("addr", config.ServerAddress).
		Int("resolution", indexer.Resolution()).
		Floats64("radii_km", policy.Allowed()).
		Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
