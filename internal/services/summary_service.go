package services

import (
	"context"
	"fmt"

	"github.com/example/littlejoes/internal/models"
	"github.com/example/littlejoes/internal/report"
)

// OrderReader is the read capability the orchestrator needs from the
// operational document store.
type OrderReader interface {
	OrdersForDate(ctx context.Context, date string) ([]models.Order, error)
}

// SummaryWriter is the upsert capability it needs from the reporting store.
type SummaryWriter interface {
	Upsert(ctx context.Context, summary *models.DailySummary) error
}

// SummaryService recomputes and persists the business summary for one
// calendar day. Each call is a stateless pass over the two stores, so
// re-running a date after new orders arrive corrects the persisted row
// instead of duplicating it. The two stores share no transaction: a summary
// computed from a stale read can lose the race to a newer write, and the
// gateway's atomic upsert is the only serialization point.
type SummaryService struct {
	orders  OrderReader
	gateway SummaryWriter
}

// NewSummaryService constructs SummaryService.
func NewSummaryService(orders OrderReader, gateway SummaryWriter) *SummaryService {
	return &SummaryService{orders: orders, gateway: gateway}
}

// Generate reads the date's orders, aggregates them and upserts the result.
// A day with zero orders is not an error: the zero summary is persisted and
// returned. A failed upsert means no summary was committed, even though the
// read succeeded.
func (s *SummaryService) Generate(ctx context.Context, date string) (*models.DailySummary, error) {
	normalized, err := report.ParseDate(date)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.OrdersForDate(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: read orders for %s: %v", report.ErrStoreUnavailable, normalized, err)
	}

	summary := report.Summarize(normalized, orders)
	if err := s.gateway.Upsert(ctx, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}
