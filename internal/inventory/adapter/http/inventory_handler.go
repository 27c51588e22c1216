// Package http exposes the inventory records over the protected REST surface
// and the stock watch websocket.
package http

import (
	stderrors "errors"

	"ot-inventory/internal/inventory/domain/repository"
	"ot-inventory/internal/inventory/usecase"
	"ot-inventory/internal/shared/errors"
	"ot-inventory/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// InventoryHTTPHandler serves the item endpoints.
type InventoryHTTPHandler struct {
	usecase usecase.InventoryUsecaseInterface
	logger  logger.Logger
}

// NewInventoryHTTPHandler creates the item handler.
func NewInventoryHTTPHandler(uc usecase.InventoryUsecaseInterface, log logger.Logger) *InventoryHTTPHandler {
	return &InventoryHTTPHandler{
		usecase: uc,
		logger:  log.WithComponent("inventory_http"),
	}
}

// RegisterRoutes mounts the item routes on router. Every route assumes the
// auth middleware already ran.
func (h *InventoryHTTPHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/items", h.CreateItem)
	router.Get("/items", h.ListItems)
	router.Get("/items/:id", h.GetItem)
	router.Put("/items/:id", h.UpdateItem)
	router.Delete("/items/:id", h.DeleteItem)
	router.Post("/items/:id/adjust", h.AdjustStock)
	router.Get("/events", h.RecentStockEvents)
}

// CreateItem handles POST /items.
func (h *InventoryHTTPHandler) CreateItem(c *fiber.Ctx) error {
	var req usecase.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	item, err := h.usecase.CreateItem(c.UserContext(), req)
	if err != nil {
		return h.renderError(c, err, "Failed to create item")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetItem handles GET /items/:id.
func (h *InventoryHTTPHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.usecase.GetItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err, "Failed to get item")
	}
	return c.JSON(item)
}

// ListItems handles GET /items with optional type, status, and low_stock
// query filters.
func (h *InventoryHTTPHandler) ListItems(c *fiber.Ctx) error {
	filter := repository.ItemFilter{
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		LowStock: c.QueryBool("low_stock"),
	}

	items, err := h.usecase.ListItems(c.UserContext(), filter)
	if err != nil {
		return h.renderError(c, err, "Failed to list items")
	}
	return c.JSON(fiber.Map{"items": items, "count": len(items)})
}

// UpdateItem handles PUT /items/:id.
func (h *InventoryHTTPHandler) UpdateItem(c *fiber.Ctx) error {
	var req usecase.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	item, err := h.usecase.UpdateItem(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return h.renderError(c, err, "Failed to update item")
	}
	return c.JSON(item)
}

// DeleteItem handles DELETE /items/:id.
func (h *InventoryHTTPHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.usecase.DeleteItem(c.UserContext(), c.Params("id")); err != nil {
		return h.renderError(c, err, "Failed to delete item")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustStock handles POST /items/:id/adjust.
func (h *InventoryHTTPHandler) AdjustStock(c *fiber.Ctx) error {
	var req usecase.AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	item, err := h.usecase.AdjustStock(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return h.renderError(c, err, "Failed to adjust stock")
	}
	return c.JSON(item)
}

// RecentStockEvents handles GET /events.
func (h *InventoryHTTPHandler) RecentStockEvents(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 100))

	events, err := h.usecase.RecentStockEvents(c.UserContext(), limit)
	if err != nil {
		return h.renderError(c, err, "Failed to read stock events")
	}
	return c.JSON(fiber.Map{"events": events, "count": len(events)})
}

// renderError maps domain errors to status codes; anything unexpected becomes
// a generic 500 so store detail never reaches clients.
func (h *InventoryHTTPHandler) renderError(c *fiber.Ctx, err error, generic string) error {
	switch {
	case errors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case stderrors.Is(err, errors.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case stderrors.Is(err, errors.ErrInvalidAdjustment):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		h.logger.WithContext(c.UserContext()).Errorf("%s: %v", generic, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": generic})
	}
}
