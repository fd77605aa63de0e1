package integrity

import (
	"errors"

	"econ-cdn/core/catalog"
	"econ-cdn/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/catalog", h.HandleCatalogCheck)
	group.Get("/coverage", h.HandleCoverageCheck)
	group.Get("/server", h.HandleServerCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Catalog, Coverage, Server). The coverage check reads every sticker, patch and music kit asset and may take a long time.
// @Tags integrity
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = errorEntry(err)
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if catReport, err := h.service.CheckCatalog(ctx); err != nil {
		report["catalog"] = errorEntry(err)
	} else {
		report["catalog"] = catReport
	}

	if covReport, err := h.service.CheckCoverage(ctx); err != nil {
		report["coverage"] = errorEntry(err)
	} else {
		report["coverage"] = covReport
	}

	if srvReport, err := h.service.CheckServer(); err != nil {
		report["server"] = errorEntry(err)
	} else {
		report["server"] = srvReport
	}

	return c.JSON(report)
}

func errorEntry(err error) map[string]interface{} {
	return map[string]interface{}{"status": "error", "error": err.Error()}
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks if the required folder structure exists in the storage bucket. Optionally fixes missing folders.
// @Tags integrity
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix")

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleCatalogCheck checks the catalog objects.
// @Summary Check Catalog
// @Description Verifies that the items catalog, localization and CDN manifest exist and normalize into a snapshot.
// @Tags integrity
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Success 200 {object} checks.CatalogReport "Catalog Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/catalog [get]
func (h *Handler) HandleCatalogCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckCatalog(c.Context())
	if err != nil {
		l.Error("Catalog check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Valid {
		l.Warn("Catalog is not valid",
			zap.Strings("missing_objects", report.MissingObjects),
			zap.String("error", report.Error))
	}

	return c.JSON(report)
}

// HandleCoverageCheck checks asset coverage of the catalog.
// @Summary Check Asset Coverage
// @Description Lists sticker kits, patches and music kits whose art is missing from storage.
// @Tags integrity
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Success 200 {object} checks.CoverageReport "Coverage Report"
// @Failure 422 {object} map[string]string "Catalog Integrity Failure"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/coverage [get]
func (h *Handler) HandleCoverageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting asset coverage check")

	report, err := h.service.CheckCoverage(c.Context())
	if err != nil {
		l.Error("Coverage check failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, catalog.ErrCatalogIntegrity) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Coverage check completed",
		zap.Int("checked", report.Checked),
		zap.Int("missing_stickers", len(report.MissingStickers)),
		zap.Int("missing_patches", len(report.MissingPatches)),
		zap.Int("missing_music_kits", len(report.MissingMusicKits)))

	return c.JSON(report)
}

// HandleServerCheck checks server schema integrity.
// @Summary Check Server Schema
// @Description Checks if the database schema matches the expected models.
// @Tags integrity
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Success 200 {object} checks.ServerReport "Server Check Report"
// @Failure 503 {object} map[string]string "Database Not Connected"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting server schema check")

	report, err := h.service.CheckServer()
	if err != nil {
		l.Error("Server schema check failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, ErrNoDatabase) {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
