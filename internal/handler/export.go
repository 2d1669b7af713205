package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/deboragomesrs/kidsafe-browser/internal/middleware"
	"github.com/deboragomesrs/kidsafe-browser/internal/model"
	"github.com/deboragomesrs/kidsafe-browser/internal/service"
)

type ExportHandler struct {
	svc *service.AllowedService
}

func NewExportHandler(svc *service.AllowedService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

type exportDocument struct {
	ExportedAt time.Time              `json:"exportedAt"`
	Entries    []model.AllowedContent `json:"entries"`
}

// Export handles GET /api/allowed/export
// Serves the full allowed-content list as a downloadable JSON backup.
func (h *ExportHandler) Export(c fiber.Ctx) error {
	entries, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export allowed content")
	}

	now := time.Now().UTC()
	filename := "kidsafe-allowed-" + now.Format("20060102") + ".json"
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.JSON(exportDocument{ExportedAt: now, Entries: entries})
}
