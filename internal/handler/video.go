package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/deboragomesrs/kidsafe-browser/internal/middleware"
	"github.com/deboragomesrs/kidsafe-browser/internal/model"
	"github.com/deboragomesrs/kidsafe-browser/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// Details handles POST /api/video/details.
func (h *VideoHandler) Details(c fiber.Ctx) error {
	var req model.VideoDetailsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	videoID, errMsg := middleware.ValidateVideoID(req.VideoID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	resp, err := h.svc.Details(c.Context(), videoID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
