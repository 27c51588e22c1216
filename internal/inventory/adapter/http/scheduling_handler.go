package http

import (
	"ot-inventory/internal/inventory/usecase"
	"ot-inventory/internal/shared/errors"
	"ot-inventory/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// SchedulingHTTPHandler serves the operation, patient, and provider endpoints.
type SchedulingHTTPHandler struct {
	usecase usecase.SchedulingUsecaseInterface
	logger  logger.Logger
}

// NewSchedulingHTTPHandler creates the scheduling handler.
func NewSchedulingHTTPHandler(uc usecase.SchedulingUsecaseInterface, log logger.Logger) *SchedulingHTTPHandler {
	return &SchedulingHTTPHandler{
		usecase: uc,
		logger:  log.WithComponent("scheduling_http"),
	}
}

// RegisterRoutes mounts the scheduling routes on router behind the auth
// middleware.
func (h *SchedulingHTTPHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/operations", h.ScheduleOperation)
	router.Get("/operations", h.ListOperations)
	router.Get("/operations/:id", h.GetOperation)
	router.Patch("/operations/:id/status", h.UpdateOperationStatus)

	router.Post("/patients", h.CreatePatient)
	router.Get("/patients", h.ListPatients)
	router.Get("/patients/:id", h.GetPatient)

	router.Post("/providers", h.CreateProvider)
	router.Get("/providers", h.ListProviders)
	router.Get("/providers/:id", h.GetProvider)
}

// ScheduleOperation handles POST /operations.
func (h *SchedulingHTTPHandler) ScheduleOperation(c *fiber.Ctx) error {
	var req usecase.ScheduleOperationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	op, err := h.usecase.ScheduleOperation(c.UserContext(), req)
	if err != nil {
		return h.renderError(c, err, "Failed to schedule operation")
	}
	return c.Status(fiber.StatusCreated).JSON(op)
}

// GetOperation handles GET /operations/:id.
func (h *SchedulingHTTPHandler) GetOperation(c *fiber.Ctx) error {
	op, err := h.usecase.GetOperation(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err, "Failed to get operation")
	}
	return c.JSON(op)
}

// ListOperations handles GET /operations.
func (h *SchedulingHTTPHandler) ListOperations(c *fiber.Ctx) error {
	ops, err := h.usecase.ListOperations(c.UserContext())
	if err != nil {
		return h.renderError(c, err, "Failed to list operations")
	}
	return c.JSON(fiber.Map{"operations": ops, "count": len(ops)})
}

// UpdateOperationStatus handles PATCH /operations/:id/status.
func (h *SchedulingHTTPHandler) UpdateOperationStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.usecase.UpdateOperationStatus(c.UserContext(), c.Params("id"), body.Status); err != nil {
		return h.renderError(c, err, "Failed to update operation status")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePatient handles POST /patients.
func (h *SchedulingHTTPHandler) CreatePatient(c *fiber.Ctx) error {
	var req usecase.CreatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	p, err := h.usecase.CreatePatient(c.UserContext(), req)
	if err != nil {
		return h.renderError(c, err, "Failed to create patient")
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// GetPatient handles GET /patients/:id.
func (h *SchedulingHTTPHandler) GetPatient(c *fiber.Ctx) error {
	p, err := h.usecase.GetPatient(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err, "Failed to get patient")
	}
	return c.JSON(p)
}

// ListPatients handles GET /patients.
func (h *SchedulingHTTPHandler) ListPatients(c *fiber.Ctx) error {
	patients, err := h.usecase.ListPatients(c.UserContext())
	if err != nil {
		return h.renderError(c, err, "Failed to list patients")
	}
	return c.JSON(fiber.Map{"patients": patients, "count": len(patients)})
}

// CreateProvider handles POST /providers.
func (h *SchedulingHTTPHandler) CreateProvider(c *fiber.Ctx) error {
	var req usecase.CreateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	p, err := h.usecase.CreateProvider(c.UserContext(), req)
	if err != nil {
		return h.renderError(c, err, "Failed to create provider")
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// GetProvider handles GET /providers/:id.
func (h *SchedulingHTTPHandler) GetProvider(c *fiber.Ctx) error {
	p, err := h.usecase.GetProvider(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err, "Failed to get provider")
	}
	return c.JSON(p)
}

// ListProviders handles GET /providers.
func (h *SchedulingHTTPHandler) ListProviders(c *fiber.Ctx) error {
	providers, err := h.usecase.ListProviders(c.UserContext())
	if err != nil {
		return h.renderError(c, err, "Failed to list providers")
	}
	return c.JSON(fiber.Map{"providers": providers, "count": len(providers)})
}

func (h *SchedulingHTTPHandler) renderError(c *fiber.Ctx, err error, generic string) error {
	switch {
	case errors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		h.logger.WithContext(c.UserContext()).Errorf("%s: %v", generic, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": generic})
	}
}
