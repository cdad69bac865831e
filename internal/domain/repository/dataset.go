package repository

import (
	"context"

	"shopdata/internal/domain/catalog"
	"shopdata/internal/domain/order"
	"shopdata/internal/domain/review"
)

// Table names double as CSV file stems and relational table names.
const (
	TableCustomers  = "customers"
	TableProducts   = "products"
	TableOrders     = "orders"
	TableOrderItems = "order_items"
	TableReviews    = "reviews"
)

// Tables is in foreign-key dependency order: parents before children.
var Tables = []string{TableCustomers, TableProducts, TableOrders, TableOrderItems, TableReviews}

// Dataset is the full set of records a run produces or a loader imports.
type Dataset struct {
	Customers  []catalog.Customer
	Products   []catalog.Product
	Orders     []order.Order
	OrderItems []order.OrderItem
	Reviews    []review.Review
}

// DatasetReader supplies record sets from a row store.
type DatasetReader interface {
	ReadCustomers(ctx context.Context) ([]catalog.Customer, error)
	ReadProducts(ctx context.Context) ([]catalog.Product, error)
	ReadOrders(ctx context.Context) ([]order.Order, error)
	ReadOrderItems(ctx context.Context) ([]order.OrderItem, error)
	ReadReviews(ctx context.Context) ([]review.Review, error)
}

// BaseWriter persists the seeded customers, products and orders.
type BaseWriter interface {
	WriteBase(ctx context.Context, customers []catalog.Customer, products []catalog.Product, orders []order.Order) error
}

// GeneratedWriter replaces orders, order items and reviews as one unit:
// either all three are replaced or none is.
type GeneratedWriter interface {
	WriteGenerated(ctx context.Context, orders []order.Order, items []order.OrderItem, reviews []review.Review) error
}
