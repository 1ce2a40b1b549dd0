package models

import "time"

// DailySummary is the reporting row for one calendar day, keyed by date.
// At most one row exists per date; recomputing a day replaces the whole row.
type DailySummary struct {
	SummaryDate           string    `gorm:"primaryKey;size:10" json:"summary_date"`
	TotalOrders           int       `gorm:"not null;default:0" json:"total_orders"`
	TotalRevenue          float64   `gorm:"not null;default:0" json:"total_revenue"`
	MostPopularItem       *string   `json:"most_popular_item"`
	TotalDriverCommission float64   `gorm:"not null;default:0" json:"total_driver_commission"`
	ComputedAt            time.Time `json:"computed_at"`
}

// TableName keeps the table name singular to match the reporting schema.
func (DailySummary) TableName() string {
	return "daily_summary"
}
