package database

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/example/littlejoes/internal/models"
	"github.com/example/littlejoes/internal/services"
	"github.com/example/littlejoes/internal/store"
)

var seedDrivers = []models.Driver{
	{ID: "drv_01", Name: "Tony Moretti", Suburbs: []string{"Richmond", "Abbotsford"}, CommissionRate: 0.10},
	{ID: "drv_02", Name: "Leila Haddad", Suburbs: []string{"Fitzroy", "Carlton"}, CommissionRate: 0.12},
	{ID: "drv_03", Name: "Sam Nguyen", Suburbs: []string{"Richmond", "Hawthorn"}, CommissionRate: 0.08},
	{ID: "drv_04", Name: "Grace Okafor", Suburbs: []string{"Brunswick"}, CommissionRate: 0.10},
	{ID: "drv_05", Name: "Marco Silva", Suburbs: []string{"Carlton", "Parkville"}, CommissionRate: 0.15},
}

var seedCustomers = []models.Customer{
	{ID: "cus_01", Name: "Ava Thompson", Email: "ava@example.com", Suburb: "Richmond"},
	{ID: "cus_02", Name: "Ben Carter", Email: "ben@example.com", Suburb: "Fitzroy"},
	{ID: "cus_03", Name: "Chloe Martin", Email: "chloe@example.com", Suburb: "Carlton"},
	{ID: "cus_04", Name: "Daniel Kim", Email: "daniel@example.com", Suburb: "Brunswick"},
	{ID: "cus_05", Name: "Ella Rossi", Email: "ella@example.com", Suburb: "Hawthorn"},
	{ID: "cus_06", Name: "Finn Walsh", Email: "finn@example.com", Suburb: "Parkville"},
}

var seedMenu = []models.LineItem{
	{SKU: "MARG", Name: "Margherita", UnitPrice: 14.00},
	{SKU: "PEPP", Name: "Pepperoni", UnitPrice: 17.00},
	{SKU: "SUPR", Name: "Super Supreme", UnitPrice: 19.50},
}

// SeedDemoData loads base drivers and customers and places a batch of orders
// for today, so the summary pipeline can be exercised end to end on a fresh
// environment.
func SeedDemoData(ctx context.Context, docs *store.DocumentStore, orders *services.OrderService) error {
	for i := range seedDrivers {
		if err := docs.SaveDriver(ctx, &seedDrivers[i]); err != nil {
			return fmt.Errorf("seed drivers: %w", err)
		}
	}

	for i := range seedCustomers {
		if err := docs.SaveCustomer(ctx, &seedCustomers[i]); err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
	}

	const orderCount = 25
	for i := 0; i < orderCount; i++ {
		customer := seedCustomers[rand.Intn(len(seedCustomers))]
		items := randomItems()
		if _, _, err := orders.CreateOrder(ctx, customer.ID, items); err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}
	}

	log.Printf("seeded %d drivers, %d customers, %d orders for today",
		len(seedDrivers), len(seedCustomers), orderCount)
	return nil
}

func randomItems() []models.LineItem {
	count := 1 + rand.Intn(3)
	items := make([]models.LineItem, 0, count)
	for i := 0; i < count; i++ {
		item := seedMenu[rand.Intn(len(seedMenu))]
		item.Qty = 1 + rand.Intn(3)
		items = append(items, item)
	}
	return items
}
