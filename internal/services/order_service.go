package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/littlejoes/internal/models"
)

// ErrInvalidOrder marks a create-order request that fails validation.
var ErrInvalidOrder = errors.New("invalid order")

// DefaultCommissionRate applies to drivers created without an explicit rate.
const DefaultCommissionRate = 0.10

// OrderDirectory is what order placement needs from the document store.
type OrderDirectory interface {
	CustomerByID(ctx context.Context, id string) (*models.Customer, error)
	Drivers(ctx context.Context) ([]models.Driver, error)
	InsertOrder(ctx context.Context, order *models.Order) error
	InsertDocket(ctx context.Context, docket *models.Docket) error
}

// OrderService places orders and writes their dockets. The assigned driver's
// current commission rate is copied onto the order at creation, so later
// rate edits never change what historical summaries pay out.
type OrderService struct {
	docs    OrderDirectory
	storeID string
}

// NewOrderService constructs OrderService.
func NewOrderService(docs OrderDirectory, storeID string) *OrderService {
	return &OrderService{docs: docs, storeID: storeID}
}

// CreateOrder validates the line items, assigns a driver, persists the order
// and then its docket. The order total is computed from the items here, so
// the stored total always equals the sum of qty times unit price.
func (s *OrderService) CreateOrder(ctx context.Context, customerID string, items []models.LineItem) (*models.Order, *models.Docket, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, nil, fmt.Errorf("%w: customer id is required", ErrInvalidOrder)
	}
	if err := validateItems(items); err != nil {
		return nil, nil, err
	}

	customer, err := s.docs.CustomerByID(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}

	drivers, err := s.docs.Drivers(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(drivers) == 0 {
		return nil, nil, fmt.Errorf("%w: no drivers available", ErrInvalidOrder)
	}
	driver := chooseDriver(drivers, customer.Suburb)

	now := time.Now().UTC()
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	order := &models.Order{
		ID:                   "ord_" + suffix,
		OrderDate:            now.Format("2006-01-02"),
		CreatedAt:            now,
		CustomerID:           customer.ID,
		Items:                items,
		Total:                CalcTotal(items),
		DriverID:             driver.ID,
		DriverCommissionRate: driver.CommissionRate,
		StoreID:              s.storeID,
	}

	if err := s.docs.InsertOrder(ctx, order); err != nil {
		return nil, nil, err
	}

	docket := &models.Docket{
		ID:        "dkt_" + suffix,
		OrderID:   order.ID,
		Rendered:  RenderDocket(order, customer, &driver),
		CreatedAt: now,
		StoreID:   s.storeID,
	}
	if err := s.docs.InsertDocket(ctx, docket); err != nil {
		return nil, nil, err
	}

	return order, docket, nil
}

// CalcTotal sums qty times unit price over the items, rounded to cents.
func CalcTotal(items []models.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Qty) * item.UnitPrice
	}
	return math.Round(total*100) / 100
}

// RenderDocket builds the textual delivery docket stored alongside an order.
func RenderDocket(order *models.Order, customer *models.Customer, driver *models.Driver) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Little Joe's Delivery Docket\n")
	fmt.Fprintf(&b, "----------------------------\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&b, "Date: %s\n", order.OrderDate)
	fmt.Fprintf(&b, "Customer: %s (%s)\n", customer.Name, customer.Suburb)
	fmt.Fprintf(&b, "Driver: %s\n\n", driver.Name)
	fmt.Fprintf(&b, "Items:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  - %dx %s ($%.2f)\n", item.Qty, item.Name, item.UnitPrice)
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f", order.Total)
	return b.String()
}

func validateItems(items []models.LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one line item is required", ErrInvalidOrder)
	}
	for _, item := range items {
		if item.Name == "" {
			return fmt.Errorf("%w: line item name is required", ErrInvalidOrder)
		}
		if item.Qty <= 0 {
			return fmt.Errorf("%w: qty for %q must be a positive integer", ErrInvalidOrder, item.Name)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: unit price for %q must not be negative", ErrInvalidOrder, item.Name)
		}
	}
	return nil
}

// chooseDriver prefers drivers servicing the customer's suburb and falls
// back to any driver when none do.
func chooseDriver(drivers []models.Driver, suburb string) models.Driver {
	if suburb != "" {
		pool := []models.Driver{}
		for _, driver := range drivers {
			for _, serviced := range driver.Suburbs {
				if serviced == suburb {
					pool = append(pool, driver)
					break
				}
			}
		}
		if len(pool) > 0 {
			return pool[rand.Intn(len(pool))]
		}
	}
	return drivers[rand.Intn(len(drivers))]
}
