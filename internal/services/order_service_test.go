package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/littlejoes/internal/models"
)

type fakeDirectory struct {
	customers map[string]models.Customer
	drivers   []models.Driver
	orders    []models.Order
	dockets   []models.Docket
}

func (f *fakeDirectory) CustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, assert.AnError
	}
	return &c, nil
}

func (f *fakeDirectory) Drivers(ctx context.Context) ([]models.Driver, error) {
	return f.drivers, nil
}

func (f *fakeDirectory) InsertOrder(ctx context.Context, order *models.Order) error {
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeDirectory) InsertDocket(ctx context.Context, docket *models.Docket) error {
	f.dockets = append(f.dockets, *docket)
	return nil
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		customers: map[string]models.Customer{
			"cus_01": {ID: "cus_01", Name: "Ava Thompson", Suburb: "Richmond"},
		},
		drivers: []models.Driver{
			{ID: "drv_01", Name: "Tony Moretti", Suburbs: []string{"Richmond"}, CommissionRate: 0.12},
		},
	}
}

func TestCreateOrderSnapshotsCommissionRate(t *testing.T) {
	docs := newFakeDirectory()
	svc := NewOrderService(docs, "little-joes")

	order, docket, err := svc.CreateOrder(context.Background(), "cus_01", []models.LineItem{
		{SKU: "MARG", Name: "Margherita", Qty: 2, UnitPrice: 14.00},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.12, order.DriverCommissionRate)
	assert.Equal(t, 28.00, order.Total)
	assert.Equal(t, "little-joes", order.StoreID)
	assert.Equal(t, order.ID, docket.OrderID)

	// The persisted order keeps the snapshot even if the driver's rate
	// changes afterwards.
	docs.drivers[0].CommissionRate = 0.20
	require.Len(t, docs.orders, 1)
	assert.Equal(t, 0.12, docs.orders[0].DriverCommissionRate)
}

func TestCreateOrderWritesDocketAfterOrder(t *testing.T) {
	docs := newFakeDirectory()
	svc := NewOrderService(docs, "little-joes")

	order, docket, err := svc.CreateOrder(context.Background(), "cus_01", []models.LineItem{
		{SKU: "PEPP", Name: "Pepperoni", Qty: 1, UnitPrice: 17.00},
	})
	require.NoError(t, err)

	require.Len(t, docs.dockets, 1)
	assert.Equal(t, order.ID, docs.dockets[0].OrderID)
	assert.Contains(t, docket.Rendered, "Pepperoni")
	assert.Contains(t, docket.Rendered, "Ava Thompson")
	assert.Contains(t, docket.Rendered, "Total: $17.00")
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		items      []models.LineItem
	}{
		{"missing customer", "", []models.LineItem{{Name: "Margherita", Qty: 1, UnitPrice: 14}}},
		{"no items", "cus_01", nil},
		{"zero qty", "cus_01", []models.LineItem{{Name: "Margherita", Qty: 0, UnitPrice: 14}}},
		{"negative qty", "cus_01", []models.LineItem{{Name: "Margherita", Qty: -1, UnitPrice: 14}}},
		{"negative price", "cus_01", []models.LineItem{{Name: "Margherita", Qty: 1, UnitPrice: -14}}},
		{"unnamed item", "cus_01", []models.LineItem{{Name: "", Qty: 1, UnitPrice: 14}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := newFakeDirectory()
			svc := NewOrderService(docs, "little-joes")

			_, _, err := svc.CreateOrder(context.Background(), tt.customerID, tt.items)
			assert.ErrorIs(t, err, ErrInvalidOrder)
			assert.Empty(t, docs.orders, "nothing persisted on a rejected order")
		})
	}
}

func TestCalcTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.LineItem
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []models.LineItem{{Qty: 2, UnitPrice: 14.00}}, 28.00},
		{"mixed", []models.LineItem{{Qty: 2, UnitPrice: 14.00}, {Qty: 1, UnitPrice: 19.50}}, 47.50},
		{"rounds to cents", []models.LineItem{{Qty: 3, UnitPrice: 0.10}}, 0.30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalcTotal(tt.items))
		})
	}
}

func TestChooseDriverPrefersServicedSuburb(t *testing.T) {
	drivers := []models.Driver{
		{ID: "drv_01", Suburbs: []string{"Fitzroy"}},
		{ID: "drv_02", Suburbs: []string{"Richmond"}},
		{ID: "drv_03", Suburbs: []string{"Carlton"}},
	}

	for i := 0; i < 20; i++ {
		picked := chooseDriver(drivers, "Richmond")
		assert.Equal(t, "drv_02", picked.ID)
	}
}

func TestChooseDriverFallsBackWhenNoSuburbMatch(t *testing.T) {
	drivers := []models.Driver{
		{ID: "drv_01", Suburbs: []string{"Fitzroy"}},
		{ID: "drv_02", Suburbs: []string{"Carlton"}},
	}

	picked := chooseDriver(drivers, "Nowhere")
	assert.True(t, strings.HasPrefix(picked.ID, "drv_"))
}

func TestRenderDocketLayout(t *testing.T) {
	order := &models.Order{
		ID:        "ord_1001",
		OrderDate: "2026-08-24",
		Items: []models.LineItem{
			{Name: "Margherita", Qty: 2, UnitPrice: 14.00},
		},
		Total: 28.00,
	}
	customer := &models.Customer{Name: "Ava Thompson", Suburb: "Richmond"}
	driver := &models.Driver{Name: "Tony Moretti"}

	rendered := RenderDocket(order, customer, driver)

	assert.True(t, strings.HasPrefix(rendered, "Little Joe's Delivery Docket"))
	assert.Contains(t, rendered, "Order ID: ord_1001")
	assert.Contains(t, rendered, "Customer: Ava Thompson (Richmond)")
	assert.Contains(t, rendered, "Driver: Tony Moretti")
	assert.Contains(t, rendered, "  - 2x Margherita ($14.00)")
	assert.Contains(t, rendered, "Total: $28.00")
}
