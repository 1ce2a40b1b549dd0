package report

import (
	"log"
	"math"
	"time"

	"github.com/example/littlejoes/internal/models"
)

// Summarize folds one day's orders into a DailySummary. It runs in two
// passes: a scan accumulating order count, revenue, commission and per-item
// quantity totals, then a selection over those totals for the most popular
// item. The document store cannot order aggregates across partitions, so the
// selection never leans on store-side sorting; ties go to the
// lexicographically smallest name, which keeps the result identical however
// the input happens to be ordered.
//
// A malformed order is skipped with a warning rather than failing the whole
// day. An empty day yields a zero summary with no most-popular item.
func Summarize(date string, orders []models.Order) models.DailySummary {
	summary := models.DailySummary{
		SummaryDate: date,
		ComputedAt:  time.Now().UTC(),
	}

	quantities := make(map[string]int)
	for _, order := range orders {
		if !usableOrder(order) {
			log.Printf("summarize %s: skipping malformed order %q", date, order.ID)
			continue
		}

		summary.TotalOrders++
		summary.TotalRevenue += order.Total
		summary.TotalDriverCommission += order.Total * order.DriverCommissionRate

		for _, item := range order.Items {
			if item.Name == "" || item.Qty <= 0 {
				log.Printf("summarize %s: skipping malformed line item on order %q", date, order.ID)
				continue
			}
			quantities[item.Name] += item.Qty
		}
	}

	summary.TotalRevenue = roundCents(summary.TotalRevenue)
	summary.TotalDriverCommission = roundCents(summary.TotalDriverCommission)

	if name, ok := mostPopular(quantities); ok {
		summary.MostPopularItem = &name
	}

	return summary
}

// usableOrder rejects documents missing the fields aggregation depends on.
func usableOrder(order models.Order) bool {
	return order.ID != "" &&
		order.OrderDate != "" &&
		order.Total >= 0 &&
		order.DriverCommissionRate >= 0 &&
		order.DriverCommissionRate <= 1
}

// mostPopular picks the name with the highest summed quantity. On a tie the
// lexicographically smallest name wins.
func mostPopular(quantities map[string]int) (string, bool) {
	best := ""
	bestQty := -1
	for name, qty := range quantities {
		if qty > bestQty || (qty == bestQty && name < best) {
			best, bestQty = name, qty
		}
	}
	return best, bestQty >= 0
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
