package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/deboragomesrs/kidsafe-browser/internal/middleware"
	"github.com/deboragomesrs/kidsafe-browser/internal/service"
)

type ParentHandler struct {
	svc *service.ParentService
}

func NewParentHandler(svc *service.ParentService) *ParentHandler {
	return &ParentHandler{svc: svc}
}

type pinRequest struct {
	PIN string `json:"pin"`
}

// SetPIN handles POST /api/parent/pin.
func (h *ParentHandler) SetPIN(c fiber.Ctx) error {
	var req pinRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.SetPIN(c.Context(), req.PIN); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// VerifyPIN handles POST /api/parent/pin/verify. A wrong PIN is a valid
// response ({"valid": false}), not an error.
func (h *ParentHandler) VerifyPIN(c fiber.Ctx) error {
	var req pinRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	valid, err := h.svc.VerifyPIN(c.Context(), req.PIN)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"valid": valid})
}
