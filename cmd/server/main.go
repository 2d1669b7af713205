package main

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/deboragomesrs/kidsafe-browser/internal/config"
	"github.com/deboragomesrs/kidsafe-browser/internal/db"
	"github.com/deboragomesrs/kidsafe-browser/internal/handler"
	"github.com/deboragomesrs/kidsafe-browser/internal/middleware"
	"github.com/deboragomesrs/kidsafe-browser/internal/repository"
	"github.com/deboragomesrs/kidsafe-browser/internal/router"
	"github.com/deboragomesrs/kidsafe-browser/internal/service"
	"github.com/deboragomesrs/kidsafe-browser/internal/youtube"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "kidsafe-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	allowedRepo := repository.NewAllowedRepo(pool)
	parentRepo := repository.NewParentRepo(pool)
	if err := allowedRepo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure allowed_content schema")
	}
	if err := parentRepo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure parent_profile schema")
	}

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	cache.SetObservers(
		func() { handler.Metrics.CacheHits.Inc() },
		func() { handler.Metrics.CacheMisses.Inc() },
	)
	defer cache.Close()

	// The YouTube client is nil when no key is configured; the proxy
	// services then answer every request with a configuration error while
	// the rest of the app stays up.
	var api youtube.Platform
	if cfg.YouTubeAPIKey != "" {
		client, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey, func(endpoint string) {
			handler.Metrics.YouTubeCalls.WithLabelValues(endpoint).Inc()
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build YouTube client")
		}
		api = client
	} else {
		log.Warn().Msg("YOUTUBE_API_KEY not set; proxy endpoints will fail")
	}

	allowedSvc := service.NewAllowedService(allowedRepo, cache)

	h := &router.Handlers{
		Channel: handler.NewChannelHandler(service.NewChannelService(api)),
		Video:   handler.NewVideoHandler(service.NewVideoService(api)),
		Search:  handler.NewSearchHandler(service.NewSearchService(api)),
		Allowed: handler.NewAllowedHandler(allowedSvc),
		Export:  handler.NewExportHandler(allowedSvc),
		Parent:  handler.NewParentHandler(service.NewParentService(parentRepo)),
		Health:  handler.NewHealthHandler(pool, cache.Client(), cfg.YouTubeAPIKey != ""),
	}

	// Keep allowed-channel names and thumbnails current in the background.
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	refresh := service.NewRefreshWorker(allowedRepo, api, cache, cfg.RefreshInterval)
	go refresh.Start(workerCtx)

	app := fiber.New(fiber.Config{
		AppName:      "Kidsafe API",
		ServerHeader: "Kidsafe",
	})

	router.Setup(app, h, cfg.CORSOrigins)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("kidsafe backend starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
