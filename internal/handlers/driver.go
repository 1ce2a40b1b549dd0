package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/littlejoes/internal/models"
	"github.com/example/littlejoes/internal/services"
	"github.com/example/littlejoes/internal/store"
)

// DriverHandler manages driver endpoints.
type DriverHandler struct {
	docs *store.DocumentStore
}

// NewDriverHandler constructs DriverHandler.
func NewDriverHandler(docs *store.DocumentStore) *DriverHandler {
	return &DriverHandler{docs: docs}
}

// ListDrivers returns all drivers.
func (h *DriverHandler) ListDrivers(c *fiber.Ctx) error {
	drivers, err := h.docs.Drivers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": drivers})
}

type saveDriverRequest struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Suburbs        []string `json:"suburbs"`
	CommissionRate *float64 `json:"commission_rate"`
}

// SaveDriver creates or updates a driver. Rate changes affect only future
// orders; placed orders keep the rate they were created with.
func (h *DriverHandler) SaveDriver(c *fiber.Ctx) error {
	var req saveDriverRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	rate := services.DefaultCommissionRate
	if req.CommissionRate != nil {
		rate = *req.CommissionRate
	}
	if rate < 0 || rate > 1 {
		return fiber.NewError(fiber.StatusBadRequest, "commission_rate must be between 0 and 1")
	}

	driver := models.Driver{
		ID:             strings.TrimSpace(req.ID),
		Name:           strings.TrimSpace(req.Name),
		Suburbs:        req.Suburbs,
		CommissionRate: rate,
	}
	if driver.ID == "" {
		driver.ID = "drv_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}

	if err := h.docs.SaveDriver(c.Context(), &driver); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": driver})
}
