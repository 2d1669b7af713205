package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/deboragomesrs/kidsafe-browser/internal/handler"
	"github.com/deboragomesrs/kidsafe-browser/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Channel *handler.ChannelHandler
	Video   *handler.VideoHandler
	Search  *handler.SearchHandler
	Allowed *handler.AllowedHandler
	Export  *handler.ExportHandler
	Parent  *handler.ParentHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks and metrics (no rate limit, no auth)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// YouTube proxy routes (child + parent views)
	api.Post("/channel/videos", h.Channel.FetchVideos,
		middleware.NewChannelPageRateLimiter().Handler())
	api.Post("/video/details", h.Video.Details,
		middleware.NewVideoDetailsRateLimiter().Handler())
	api.Post("/channels/search", h.Search.Channels,
		middleware.NewSearchRateLimiter().Handler())

	// Allowed-content routes (parent mode)
	mutate := middleware.NewAllowedMutationRateLimiter()
	api.Get("/allowed", h.Allowed.List)
	api.Get("/allowed/export", h.Export.Export)
	api.Post("/allowed", h.Allowed.Add, mutate.Handler())
	api.Delete("/allowed/:id", h.Allowed.Delete, mutate.Handler())
	api.Patch("/allowed/:id/shorts", h.Allowed.ToggleShorts, mutate.Handler())

	// Parent PIN routes
	api.Post("/parent/pin", h.Parent.SetPIN)
	api.Post("/parent/pin/verify", h.Parent.VerifyPIN,
		middleware.NewPINVerifyRateLimiter().Handler())
}
