package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/deboragomesrs/kidsafe-browser/internal/middleware"
	"github.com/deboragomesrs/kidsafe-browser/internal/service"
	"github.com/deboragomesrs/kidsafe-browser/internal/youtube"
)

// respondError maps a pipeline error to the uniform {"error": message}
// envelope. First failure wins: whatever stage failed, its message is
// surfaced verbatim and nothing else is returned.
func respondError(c fiber.Ctx, err error) error {
	var notFound *youtube.NotFoundError
	var fetch *youtube.FetchError

	switch {
	case errors.Is(err, youtube.ErrMissingAPIKey):
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	case errors.Is(err, youtube.ErrInvalidURL),
		errors.Is(err, youtube.ErrUnsupportedURLFormat),
		errors.Is(err, youtube.ErrInvalidQuery),
		errors.Is(err, youtube.ErrMissingChannelReference),
		errors.Is(err, youtube.ErrMissingVideoID),
		errors.Is(err, service.ErrInvalidContentType),
		errors.Is(err, service.ErrMissingContentID),
		errors.Is(err, service.ErrMissingName),
		errors.Is(err, service.ErrInvalidPIN):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoPINSet):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.As(err, &notFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.As(err, &fetch):
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, err.Error())
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
