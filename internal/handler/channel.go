package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/deboragomesrs/kidsafe-browser/internal/middleware"
	"github.com/deboragomesrs/kidsafe-browser/internal/model"
	"github.com/deboragomesrs/kidsafe-browser/internal/service"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// FetchVideos handles POST /api/channel/videos: resolve the channel
// reference, fetch one page of uploads and return the classified payload.
func (h *ChannelHandler) FetchVideos(c fiber.Ctx) error {
	var req model.ChannelPageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.ChannelID != "" {
		id, errMsg := middleware.ValidateChannelID(req.ChannelID)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
		}
		req.ChannelID = id
	}

	resp, err := h.svc.FetchPage(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
