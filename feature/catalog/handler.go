package catalog

import (
	"errors"

	"econ-cdn/core/catalog"
	"econ-cdn/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleStatus)
	group.Post("/refresh", h.HandleRefresh)
}

// HandleStatus returns the published snapshot summary.
// @Summary Catalog Status
// @Description Returns the version, load time and section sizes of the published catalog snapshot.
// @Tags catalog
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} catalog.Status "Catalog Status"
// @Router /catalog [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleRefresh reloads the catalog.
// @Summary Refresh Catalog
// @Description Reloads the catalog sources from storage. Unchanged sources keep the current snapshot.
// @Tags catalog
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} catalog.Stats "Published Snapshot"
// @Failure 422 {object} map[string]string "Catalog integrity failure"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Catalog refresh requested")

	stats, err := h.service.Refresh(c.Context())
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, catalog.ErrCatalogIntegrity) {
			status = fiber.StatusUnprocessableEntity
		}
		l.Error("Catalog refresh failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(stats)
}
