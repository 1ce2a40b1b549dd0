package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/littlejoes/internal/report"
	"github.com/example/littlejoes/internal/services"
	"github.com/example/littlejoes/internal/utils"
)

// SummaryHandler manages daily summary endpoints.
type SummaryHandler struct {
	service *services.SummaryService
	gateway *report.SummaryGateway
}

// NewSummaryHandler constructs SummaryHandler.
func NewSummaryHandler(service *services.SummaryService, gateway *report.SummaryGateway) *SummaryHandler {
	return &SummaryHandler{service: service, gateway: gateway}
}

// Generate recomputes the summary for a date and upserts it into the
// reporting store. A date with no orders succeeds with a zero summary.
func (h *SummaryHandler) Generate(c *fiber.Ctx) error {
	summary, err := h.service.Generate(c.Context(), c.Params("date"))
	if err != nil {
		return summaryError(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": summary})
}

// GetByDate returns the persisted summary row for one date.
func (h *SummaryHandler) GetByDate(c *fiber.Ctx) error {
	date, err := report.ParseDate(c.Params("date"))
	if err != nil {
		return summaryError(err)
	}

	summary, err := h.gateway.ByDate(c.Context(), date)
	if err != nil {
		return summaryError(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": summary})
}

// List returns persisted summaries, newest first.
func (h *SummaryHandler) List(c *fiber.Ctx) error {
	limit := utils.ParseLimit(c, 30, 365)
	summaries, err := h.gateway.Recent(c.Context(), limit)
	if err != nil {
		return summaryError(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": summaries})
}

// summaryError maps reporting errors onto HTTP statuses so clients can tell
// "no data" from "system error".
func summaryError(err error) error {
	switch {
	case errors.Is(err, report.ErrInvalidDate):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, report.ErrSummaryNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, report.ErrStoreUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	default:
		return err
	}
}
