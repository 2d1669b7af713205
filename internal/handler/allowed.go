package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/deboragomesrs/kidsafe-browser/internal/middleware"
	"github.com/deboragomesrs/kidsafe-browser/internal/model"
	"github.com/deboragomesrs/kidsafe-browser/internal/service"
)

type AllowedHandler struct {
	svc *service.AllowedService
}

func NewAllowedHandler(svc *service.AllowedService) *AllowedHandler {
	return &AllowedHandler{svc: svc}
}

// List handles GET /api/allowed.
func (h *AllowedHandler) List(c fiber.Ctx) error {
	entries, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list allowed content")
	}
	return c.JSON(entries)
}

// Add handles POST /api/allowed.
func (h *AllowedHandler) Add(c fiber.Ctx) error {
	var req model.AddAllowedRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := h.svc.Add(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// Delete handles DELETE /api/allowed/:id.
func (h *AllowedHandler) Delete(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateEntryID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	removed, err := h.svc.Remove(c.Context(), id)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete entry")
	}
	if !removed {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Entry not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleShorts handles PATCH /api/allowed/:id/shorts.
func (h *AllowedHandler) ToggleShorts(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateEntryID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	enabled, err := h.svc.ToggleShorts(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Entry not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to toggle shorts")
	}
	return c.JSON(fiber.Map{"shortsEnabled": enabled})
}
