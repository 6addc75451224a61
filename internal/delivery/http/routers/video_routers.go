package routers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"video-service/internal/delivery/http/handlers"
	"video-service/internal/delivery/http/middleware"
)

func SetupVideoRoutes(app *fiber.App, handler *handlers.VideoHandler, logger *zap.Logger) {
	api := app.Group("/api/v1", middleware.OwnerIdentity(logger))

	api.Post("/videos", handler.Upload)
	api.Get("/videos", handler.List)
	api.Get("/videos/:id", handler.Get)
	api.Get("/videos/:id/status", handler.Status)
	api.Post("/videos/:id/transcode", handler.RequestTranscode)
	api.Delete("/videos/:id", handler.Delete)
	api.Get("/videos/:id/stream", handler.Stream)
	api.Get("/videos/:id/thumbnail", handler.Thumbnail)
}
