package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/example/littlejoes/internal/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// DocumentStore wraps the operational document collections. Every order and
// docket read is a plain filter query scoped to one store identifier; the
// store is never asked to combine an aggregate with ordering across
// partitions, so aggregation always happens on the caller's side.
type DocumentStore struct {
	orders    *mongo.Collection
	dockets   *mongo.Collection
	drivers   *mongo.Collection
	customers *mongo.Collection
	storeID   string
}

// NewDocumentStore constructs a DocumentStore scoped to storeID.
func NewDocumentStore(db *mongo.Database, storeID string) *DocumentStore {
	return &DocumentStore{
		orders:    db.Collection("orders"),
		dockets:   db.Collection("dockets"),
		drivers:   db.Collection("drivers"),
		customers: db.Collection("customers"),
		storeID:   storeID,
	}
}

// OrdersForDate returns every order placed on the given calendar date.
// A day with no orders yields an empty slice, not an error.
func (s *DocumentStore) OrdersForDate(ctx context.Context, date string) ([]models.Order, error) {
	cur, err := s.orders.Find(ctx, bson.M{"orderDate": date, "storeId": s.storeID})
	if err != nil {
		return nil, fmt.Errorf("query orders for %s: %w", date, err)
	}

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders for %s: %w", date, err)
	}
	return orders, nil
}

// RecentOrders returns the newest orders first, up to limit.
func (s *DocumentStore) RecentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.orders.Find(ctx, bson.M{"storeId": s.storeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("query recent orders: %w", err)
	}

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode recent orders: %w", err)
	}
	return orders, nil
}

// InsertOrder persists a new order document. Orders are append-only, so this
// is an insert rather than an upsert.
func (s *DocumentStore) InsertOrder(ctx context.Context, order *models.Order) error {
	if _, err := s.orders.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order %s: %w", order.ID, err)
	}
	return nil
}

// InsertDocket persists the docket rendered for an order.
func (s *DocumentStore) InsertDocket(ctx context.Context, docket *models.Docket) error {
	if _, err := s.dockets.InsertOne(ctx, docket); err != nil {
		return fmt.Errorf("insert docket %s: %w", docket.ID, err)
	}
	return nil
}

// DocketByOrder finds the docket linked to an order.
func (s *DocumentStore) DocketByOrder(ctx context.Context, orderID string) (*models.Docket, error) {
	var docket models.Docket
	err := s.dockets.FindOne(ctx, bson.M{"orderId": orderID, "storeId": s.storeID}).Decode(&docket)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: docket for order %s", ErrNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("query docket for order %s: %w", orderID, err)
	}
	return &docket, nil
}

// Drivers lists all drivers.
func (s *DocumentStore) Drivers(ctx context.Context) ([]models.Driver, error) {
	cur, err := s.drivers.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query drivers: %w", err)
	}

	drivers := []models.Driver{}
	if err := cur.All(ctx, &drivers); err != nil {
		return nil, fmt.Errorf("decode drivers: %w", err)
	}
	return drivers, nil
}

// SaveDriver inserts or replaces a driver. Drivers are mutable; a changed
// commission rate applies only to orders placed afterwards, because each
// order keeps its own rate snapshot.
func (s *DocumentStore) SaveDriver(ctx context.Context, driver *models.Driver) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.drivers.ReplaceOne(ctx, bson.M{"_id": driver.ID}, driver, opts); err != nil {
		return fmt.Errorf("save driver %s: %w", driver.ID, err)
	}
	return nil
}

// Customers lists all customers.
func (s *DocumentStore) Customers(ctx context.Context) ([]models.Customer, error) {
	cur, err := s.customers.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}

	customers := []models.Customer{}
	if err := cur.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return customers, nil
}

// CustomerByID fetches one customer.
func (s *DocumentStore) CustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := s.customers.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: customer %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("query customer %s: %w", id, err)
	}
	return &customer, nil
}

// SaveCustomer inserts or replaces a customer.
func (s *DocumentStore) SaveCustomer(ctx context.Context, customer *models.Customer) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.customers.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer, opts); err != nil {
		return fmt.Errorf("save customer %s: %w", customer.ID, err)
	}
	return nil
}
