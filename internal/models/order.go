package models

import "time"

// LineItem is a single menu entry on an order. It is embedded in the order
// document and has no lifecycle of its own.
type LineItem struct {
	SKU       string  `bson:"sku" json:"sku"`
	Name      string  `bson:"name" json:"name"`
	Qty       int     `bson:"qty" json:"qty"`
	UnitPrice float64 `bson:"unitPrice" json:"unit_price"`
}

// Order is the persisted order document. Orders are append-only: once
// written they are never mutated. DriverCommissionRate is the driver's rate
// at the moment the order was placed, copied onto the order so later rate
// changes never alter historical reports.
type Order struct {
	ID                   string     `bson:"_id" json:"id"`
	OrderDate            string     `bson:"orderDate" json:"order_date"`
	CreatedAt            time.Time  `bson:"createdAt" json:"created_at"`
	CustomerID           string     `bson:"customerId" json:"customer_id"`
	Items                []LineItem `bson:"items" json:"items"`
	Total                float64    `bson:"total" json:"total"`
	DriverID             string     `bson:"driverId" json:"driver_id"`
	DriverCommissionRate float64    `bson:"driverCommissionRate" json:"driver_commission_rate"`
	StoreID              string     `bson:"storeId" json:"store_id"`
}

// Docket is the rendered delivery docket. It lives as its own document
// linked to the order by OrderID, so re-rendering or alternate output
// formats never touch the order itself.
type Docket struct {
	ID        string    `bson:"_id" json:"id"`
	OrderID   string    `bson:"orderId" json:"order_id"`
	Rendered  string    `bson:"rendered" json:"rendered"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	StoreID   string    `bson:"storeId" json:"store_id"`
}
