package items

import (
	"errors"

	"econ-cdn/core/catalog"
	"econ-cdn/core/logger"
	"econ-cdn/core/resolve"
	"econ-cdn/feature/items/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for item images.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: newValidator()}
}

// RegisterRoutes registers the item routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Get("/image", h.HandleResolveImage)
	group.Get("/unresolved", h.HandleUnresolved)

	app.Get("/stickers/*", h.materialHandler(MaterialSticker))
	app.Get("/patches/*", h.materialHandler(MaterialPatch))
	app.Get("/status-icons/*", h.materialHandler(MaterialStatusIcon))
	app.Get("/weapons/:defindex/:paintindex", h.HandleWeapon)
}

// HandleResolveImage resolves a display name to a CDN URL.
// @Summary Resolve Item Image
// @Description Resolves a market display name such as "AWP | Redline (Field-Tested)" to its content-addressed CDN URL.
// @Tags items
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param name query string true "Display name"
// @Param phase query string false "Doppler phase (ruby, sapphire, blackpearl, emerald, phase1-4)"
// @Success 200 {object} models.ImageResponse "Resolved URL"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not resolvable"
// @Failure 503 {object} map[string]string "Catalog not loaded"
// @Router /items/image [get]
func (h *Handler) HandleResolveImage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.ImageRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(formatValidationError(err))
	}
	phase, _ := resolve.ParsePhase(req.Phase)

	resp, err := h.service.ResolveImage(c.Context(), req.Name, phase)
	if err != nil {
		return h.respondError(c, l, err)
	}
	return c.JSON(resp)
}

// materialHandler serves sticker, patch and status icon lookups.
// @Summary Material Image
// @Description Returns the CDN URL of a sticker, patch or status icon by material name, e.g. "cologne2016/nv".
// @Tags items
// @Security ApiKeyAuth
// @Produce json
// @Param material path string true "Material name"
// @Param large query boolean false "Large variant"
// @Success 200 {object} models.ImageResponse "Resolved URL"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not resolvable"
// @Failure 503 {object} map[string]string "Catalog not loaded"
// @Router /stickers/{material} [get]
// @Router /patches/{material} [get]
// @Router /status-icons/{material} [get]
func (h *Handler) materialHandler(kind MaterialKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(h.service.logger, c)

		req := models.MaterialRequest{Material: c.Params("*")}
		if err := c.QueryParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
		}
		if err := h.validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(formatValidationError(err))
		}

		resp, err := h.service.MaterialImage(kind, req.Material, req.Large)
		if err != nil {
			return h.respondError(c, l, err)
		}
		return c.JSON(resp)
	}
}

// HandleWeapon resolves a weapon by definition index and paint kit index.
// @Summary Weapon Image
// @Description Returns the CDN URL of a weapon definition painted with a paint kit. Paint index 0 is the vanilla weapon.
// @Tags items
// @Security ApiKeyAuth
// @Produce json
// @Param defindex path int true "Item definition index"
// @Param paintindex path int true "Paint kit index"
// @Success 200 {object} models.ImageResponse "Resolved URL"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not resolvable"
// @Failure 503 {object} map[string]string "Catalog not loaded"
// @Router /weapons/{defindex}/{paintindex} [get]
func (h *Handler) HandleWeapon(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.WeaponRequest
	if err := c.ParamsParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(formatValidationError(err))
	}

	resp, err := h.service.WeaponImage(req.DefIndex, req.PaintIndex)
	if err != nil {
		return h.respondError(c, l, err)
	}
	return c.JSON(resp)
}

// HandleUnresolved lists display names that could not be resolved.
// @Summary Unresolved Items
// @Description Lists the most frequent unresolved display names recorded in the database.
// @Tags items
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Maximum rows (default 100, max 1000)"
// @Success 200 {array} models.UnresolvedItem "Unresolved items"
// @Failure 503 {object} map[string]string "Database not connected"
// @Router /items/unresolved [get]
func (h *Handler) HandleUnresolved(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := c.QueryInt("limit", 100)
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	rows, err := h.service.Unresolved(c.Context(), limit)
	if err != nil {
		return h.respondError(c, l, err)
	}
	return c.JSON(rows)
}

func (h *Handler) respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	switch {
	case errors.Is(err, ErrUnresolved):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, catalog.ErrNoSnapshot), errors.Is(err, ErrNoDatabase):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Item lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
