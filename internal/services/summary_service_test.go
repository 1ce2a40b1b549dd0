package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/littlejoes/internal/models"
	"github.com/example/littlejoes/internal/report"
)

type fakeOrderReader struct {
	orders []models.Order
	err    error
	calls  int
}

func (f *fakeOrderReader) OrdersForDate(ctx context.Context, date string) ([]models.Order, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

// fakeSummaryWriter keeps one row per date, like the relational upsert does.
type fakeSummaryWriter struct {
	rows  map[string]models.DailySummary
	err   error
	calls int
}

func (f *fakeSummaryWriter) Upsert(ctx context.Context, summary *models.DailySummary) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if f.rows == nil {
		f.rows = map[string]models.DailySummary{}
	}
	f.rows[summary.SummaryDate] = *summary
	return nil
}

func testOrder(id string, total, rate float64, itemName string, qty int) models.Order {
	return models.Order{
		ID:                   id,
		OrderDate:            "2026-08-24",
		Total:                total,
		DriverCommissionRate: rate,
		Items:                []models.LineItem{{SKU: "SKU", Name: itemName, Qty: qty, UnitPrice: total}},
	}
}

func TestGeneratePersistsAndReturnsSummary(t *testing.T) {
	reader := &fakeOrderReader{orders: []models.Order{
		testOrder("ord_1", 28.00, 0.10, "Margherita", 2),
		testOrder("ord_2", 15.50, 0.10, "Pepperoni", 1),
	}}
	writer := &fakeSummaryWriter{}
	svc := NewSummaryService(reader, writer)

	summary, err := svc.Generate(context.Background(), "2026-08-24")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 43.50, summary.TotalRevenue)

	row, ok := writer.rows["2026-08-24"]
	require.True(t, ok, "summary must be persisted")
	assert.Equal(t, *summary, row)
}

func TestGenerateRerunKeepsOneRow(t *testing.T) {
	reader := &fakeOrderReader{orders: []models.Order{
		testOrder("ord_1", 28.00, 0.10, "Margherita", 2),
	}}
	writer := &fakeSummaryWriter{}
	svc := NewSummaryService(reader, writer)

	first, err := svc.Generate(context.Background(), "2026-08-24")
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), "2026-08-24")
	require.NoError(t, err)

	assert.Equal(t, 2, writer.calls)
	require.Len(t, writer.rows, 1)
	assert.Equal(t, first.TotalOrders, second.TotalOrders)
	assert.Equal(t, first.TotalRevenue, second.TotalRevenue)
}

func TestGenerateRerunPicksUpNewOrders(t *testing.T) {
	reader := &fakeOrderReader{orders: []models.Order{
		testOrder("ord_1", 28.00, 0.10, "Margherita", 2),
	}}
	writer := &fakeSummaryWriter{}
	svc := NewSummaryService(reader, writer)

	_, err := svc.Generate(context.Background(), "2026-08-24")
	require.NoError(t, err)

	reader.orders = append(reader.orders, testOrder("ord_2", 15.50, 0.10, "Pepperoni", 1))

	summary, err := svc.Generate(context.Background(), "2026-08-24")
	require.NoError(t, err)

	require.Len(t, writer.rows, 1)
	row := writer.rows["2026-08-24"]
	assert.Equal(t, 2, row.TotalOrders)
	assert.Equal(t, 43.50, row.TotalRevenue)
	assert.Equal(t, summary.TotalRevenue, row.TotalRevenue)
}

func TestGenerateEmptyDayPersistsZeroSummary(t *testing.T) {
	reader := &fakeOrderReader{}
	writer := &fakeSummaryWriter{}
	svc := NewSummaryService(reader, writer)

	summary, err := svc.Generate(context.Background(), "2026-08-24")
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalOrders)
	assert.Nil(t, summary.MostPopularItem)

	row, ok := writer.rows["2026-08-24"]
	require.True(t, ok, "an empty day is still persisted")
	assert.Equal(t, 0, row.TotalOrders)
}

func TestGenerateInvalidDate(t *testing.T) {
	reader := &fakeOrderReader{}
	writer := &fakeSummaryWriter{}
	svc := NewSummaryService(reader, writer)

	_, err := svc.Generate(context.Background(), "24/08/2026")
	assert.ErrorIs(t, err, report.ErrInvalidDate)
	assert.Zero(t, reader.calls, "no store calls on a bad date")
	assert.Zero(t, writer.calls)
}

func TestGenerateReadFailureSkipsWrite(t *testing.T) {
	reader := &fakeOrderReader{err: errors.New("connection refused")}
	writer := &fakeSummaryWriter{}
	svc := NewSummaryService(reader, writer)

	_, err := svc.Generate(context.Background(), "2026-08-24")
	assert.ErrorIs(t, err, report.ErrStoreUnavailable)
	assert.Zero(t, writer.calls, "a failed read must not reach the upsert")
}

func TestGenerateWriteFailurePropagates(t *testing.T) {
	reader := &fakeOrderReader{orders: []models.Order{
		testOrder("ord_1", 28.00, 0.10, "Margherita", 2),
	}}
	writer := &fakeSummaryWriter{err: report.ErrStoreUnavailable}
	svc := NewSummaryService(reader, writer)

	_, err := svc.Generate(context.Background(), "2026-08-24")
	assert.ErrorIs(t, err, report.ErrStoreUnavailable)
	assert.Empty(t, writer.rows, "nothing committed on a failed upsert")
}
