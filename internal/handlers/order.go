package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/littlejoes/internal/models"
	"github.com/example/littlejoes/internal/services"
	"github.com/example/littlejoes/internal/store"
	"github.com/example/littlejoes/internal/utils"
)

// OrderHandler manages order and docket endpoints.
type OrderHandler struct {
	orders *services.OrderService
	docs   *store.DocumentStore
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(orders *services.OrderService, docs *store.DocumentStore) *OrderHandler {
	return &OrderHandler{orders: orders, docs: docs}
}

type createOrderRequest struct {
	CustomerID string            `json:"customer_id"`
	Items      []models.LineItem `json:"items"`
}

// CreateOrder places an order and writes its docket.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	order, docket, err := h.orders.CreateOrder(c.Context(), req.CustomerID, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrder):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, store.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		default:
			return err
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"order": order, "docket": docket},
	})
}

// ListOrders returns the most recent orders.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	limit := utils.ParseLimit(c, 20, 100)
	orders, err := h.docs.RecentOrders(c.Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": orders})
}

// GetDocket returns the docket rendered for an order.
func (h *OrderHandler) GetDocket(c *fiber.Ctx) error {
	docket, err := h.docs.DocketByOrder(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "no docket for that order")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": docket})
}
