package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/littlejoes/internal/models"
	"github.com/example/littlejoes/internal/store"
)

// CustomerHandler manages customer endpoints.
type CustomerHandler struct {
	docs *store.DocumentStore
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(docs *store.DocumentStore) *CustomerHandler {
	return &CustomerHandler{docs: docs}
}

// ListCustomers returns all customers.
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	customers, err := h.docs.Customers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": customers})
}

type saveCustomerRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Suburb string `json:"suburb"`
}

// SaveCustomer creates or updates a customer.
func (h *CustomerHandler) SaveCustomer(c *fiber.Ctx) error {
	var req saveCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Suburb) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, email and suburb are required")
	}

	customer := models.Customer{
		ID:     strings.TrimSpace(req.ID),
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Phone:  strings.TrimSpace(req.Phone),
		Suburb: strings.TrimSpace(req.Suburb),
	}
	if customer.ID == "" {
		customer.ID = "cus_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}

	if err := h.docs.SaveCustomer(c.Context(), &customer); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": customer})
}
