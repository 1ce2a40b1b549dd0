package report

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/littlejoes/internal/models"
)

// SummaryGateway is the write and read path to the relational reporting
// table.
type SummaryGateway struct {
	db *gorm.DB
}

// NewSummaryGateway constructs SummaryGateway.
func NewSummaryGateway(db *gorm.DB) *SummaryGateway {
	return &SummaryGateway{db: db}
}

// Upsert writes the summary as a single conditional insert-or-update keyed
// on summary_date. Repeated calls for the same date leave exactly one row
// holding the last caller's values; concurrent writers for one date race
// safely because the statement is atomic per key.
func (g *SummaryGateway) Upsert(ctx context.Context, summary *models.DailySummary) error {
	if summary == nil || summary.SummaryDate == "" {
		return fmt.Errorf("%w: summary date is required", ErrInvalidDate)
	}

	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "summary_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_orders",
			"total_revenue",
			"most_popular_item",
			"total_driver_commission",
			"computed_at",
		}),
	}).Create(summary).Error
	if err != nil {
		return fmt.Errorf("%w: upsert summary for %s: %v", ErrStoreUnavailable, summary.SummaryDate, err)
	}
	return nil
}

// ByDate returns the persisted row for one date, or ErrSummaryNotFound when
// the date has never been summarized.
func (g *SummaryGateway) ByDate(ctx context.Context, date string) (*models.DailySummary, error) {
	var summary models.DailySummary
	err := g.db.WithContext(ctx).First(&summary, "summary_date = ?", date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSummaryNotFound, date)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load summary for %s: %v", ErrStoreUnavailable, date, err)
	}
	return &summary, nil
}

// Recent lists persisted summaries newest first, up to limit.
func (g *SummaryGateway) Recent(ctx context.Context, limit int) ([]models.DailySummary, error) {
	summaries := []models.DailySummary{}
	err := g.db.WithContext(ctx).
		Order("summary_date DESC").
		Limit(limit).
		Find(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list summaries: %v", ErrStoreUnavailable, err)
	}
	return summaries, nil
}
