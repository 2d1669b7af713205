package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/deboragomesrs/kidsafe-browser/internal/middleware"
	"github.com/deboragomesrs/kidsafe-browser/internal/model"
	"github.com/deboragomesrs/kidsafe-browser/internal/service"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Channels handles POST /api/channels/search. The response body is a bare
// array, matching what the parent-mode add-channel dialog consumes.
func (h *SearchHandler) Channels(c fiber.Ctx) error {
	var req model.ChannelSearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	results, err := h.svc.Search(c.Context(), middleware.TruncateQuery(req.Query))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(results)
}
