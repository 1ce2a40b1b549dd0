package models

// Driver delivers orders. CommissionRate is the driver's current rate and
// may change over time; orders carry their own snapshot of it.
type Driver struct {
	ID             string   `bson:"_id" json:"id"`
	Name           string   `bson:"name" json:"name"`
	Suburbs        []string `bson:"suburbs" json:"suburbs"`
	CommissionRate float64  `bson:"commissionRate" json:"commission_rate"`
}

// Customer places orders.
type Customer struct {
	ID     string `bson:"_id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	Phone  string `bson:"phone,omitempty" json:"phone,omitempty"`
	Suburb string `bson:"suburb" json:"suburb"`
}
