package repository

import (
	"context"
	"fmt"
)

// Loader drops and recreates the relational schema, then imports ds.
type Loader interface {
	Load(ctx context.Context, ds *Dataset) error
}

// Verifier inspects a loaded database.
type Verifier interface {
	Verify(ctx context.Context) (*Verification, error)
}

// Orphans counts child rows whose foreign key has no parent.
type Orphans struct {
	OrdersCustomers    int64 `json:"orders_customers"`
	OrderItemsOrders   int64 `json:"order_items_orders"`
	OrderItemsProducts int64 `json:"order_items_products"`
	ReviewsProducts    int64 `json:"reviews_products"`
	ReviewsCustomers   int64 `json:"reviews_customers"`
}

func (o Orphans) Total() int64 {
	return o.OrdersCustomers + o.OrderItemsOrders + o.OrderItemsProducts + o.ReviewsProducts + o.ReviewsCustomers
}

type Stats struct {
	ActiveCustomers     int64   `json:"active_customers"`
	AverageOrderValue   float64 `json:"average_order_value"`
	DeliveredRevenue    float64 `json:"delivered_revenue"`
	AverageRating       float64 `json:"average_rating"`
	TopCategory         string  `json:"top_category"`
	TopCategoryProducts int64   `json:"top_category_products"`
}

type Verification struct {
	RowCounts map[string]int64 `json:"row_counts"`
	Orphans   Orphans          `json:"orphans"`
	// UnreconciledOrders counts orders whose total differs from the sum of their items.
	UnreconciledOrders int64 `json:"unreconciled_orders"`
	Stats              Stats `json:"stats"`
}

func (v *Verification) OK() bool {
	return v.Orphans.Total() == 0 && v.UnreconciledOrders == 0
}

// LoadError pinpoints the record that failed to import.
type LoadError struct {
	Table string
	Row   int
	Err   error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("load %s row %d: %v", e.Table, e.Row, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Table, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
