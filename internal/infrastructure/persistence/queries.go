// Package persistence holds the SQL every relational backend shares.
package persistence

import (
	"context"
	"fmt"

	"shopdata/internal/domain/repository"
)

// RowQuerier runs a single-row query and scans it into dest.
type RowQuerier interface {
	QueryRowScan(ctx context.Context, query string, dest ...any) error
}

// UnreconciledOrdersQuery counts orders whose total is off from the sum of
// their items by at least half a cent.
const UnreconciledOrdersQuery = `
	SELECT COUNT(*) FROM orders o
	LEFT JOIN (
		SELECT order_id, SUM(subtotal) AS items_total
		FROM order_items
		GROUP BY order_id
	) t ON t.order_id = o.order_id
	WHERE ABS(o.total_amount - COALESCE(t.items_total, 0)) >= 0.005`

const (
	activeCustomersQuery   = `SELECT COUNT(DISTINCT customer_id) FROM orders`
	averageOrderValueQuery = `SELECT AVG(total_amount) FROM orders WHERE order_status <> 'Cancelled'`
	deliveredRevenueQuery  = `SELECT SUM(total_amount) FROM orders WHERE order_status = 'Delivered'`
	averageRatingQuery     = `SELECT AVG(rating) FROM reviews`
	topCategoryQuery       = `
		SELECT category, COUNT(*) AS cnt FROM products
		GROUP BY category
		ORDER BY cnt DESC, category
		LIMIT 1`
)

// DropOrder drops children before parents.
var DropOrder = []string{"reviews", "order_items", "orders", "products", "customers"}

// Indexes are created after the import.
var Indexes = []string{
	`CREATE INDEX idx_orders_customer ON orders(customer_id)`,
	`CREATE INDEX idx_order_items_order ON order_items(order_id)`,
	`CREATE INDEX idx_order_items_product ON order_items(product_id)`,
	`CREATE INDEX idx_reviews_product ON reviews(product_id)`,
	`CREATE INDEX idx_reviews_customer ON reviews(customer_id)`,
	`CREATE INDEX idx_orders_status ON orders(order_status)`,
	`CREATE INDEX idx_products_category ON products(category)`,
}

type countQuery struct {
	name  string
	query string
	dest  *int64
}

func orphanQueries(o *repository.Orphans) []countQuery {
	return []countQuery{
		{"orders.customer_id", `
			SELECT COUNT(*) FROM orders o
			WHERE NOT EXISTS (SELECT 1 FROM customers c WHERE c.customer_id = o.customer_id)`, &o.OrdersCustomers},
		{"order_items.order_id", `
			SELECT COUNT(*) FROM order_items oi
			WHERE NOT EXISTS (SELECT 1 FROM orders o WHERE o.order_id = oi.order_id)`, &o.OrderItemsOrders},
		{"order_items.product_id", `
			SELECT COUNT(*) FROM order_items oi
			WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.product_id = oi.product_id)`, &o.OrderItemsProducts},
		{"reviews.product_id", `
			SELECT COUNT(*) FROM reviews r
			WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.product_id = r.product_id)`, &o.ReviewsProducts},
		{"reviews.customer_id", `
			SELECT COUNT(*) FROM reviews r
			WHERE NOT EXISTS (SELECT 1 FROM customers c WHERE c.customer_id = r.customer_id)`, &o.ReviewsCustomers},
	}
}

// Verify collects row counts, orphan counts, the reconciliation check and
// business statistics.
func Verify(ctx context.Context, q RowQuerier) (*repository.Verification, error) {
	v := &repository.Verification{RowCounts: make(map[string]int64, len(repository.Tables))}

	for _, table := range repository.Tables {
		var n int64
		if err := q.QueryRowScan(ctx, "SELECT COUNT(*) FROM "+table, &n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		v.RowCounts[table] = n
	}

	for _, c := range orphanQueries(&v.Orphans) {
		if err := q.QueryRowScan(ctx, c.query, c.dest); err != nil {
			return nil, fmt.Errorf("check %s: %w", c.name, err)
		}
	}

	if err := q.QueryRowScan(ctx, UnreconciledOrdersQuery, &v.UnreconciledOrders); err != nil {
		return nil, fmt.Errorf("check order totals: %w", err)
	}

	if err := stats(ctx, q, &v.Stats); err != nil {
		return nil, err
	}
	return v, nil
}

func stats(ctx context.Context, q RowQuerier, s *repository.Stats) error {
	if err := q.QueryRowScan(ctx, activeCustomersQuery, &s.ActiveCustomers); err != nil {
		return fmt.Errorf("active customers: %w", err)
	}

	floats := []struct {
		name  string
		query string
		dest  *float64
	}{
		{"average order value", averageOrderValueQuery, &s.AverageOrderValue},
		{"delivered revenue", deliveredRevenueQuery, &s.DeliveredRevenue},
		{"average rating", averageRatingQuery, &s.AverageRating},
	}
	for _, f := range floats {
		// aggregates over no rows are NULL
		var v *float64
		if err := q.QueryRowScan(ctx, f.query, &v); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		if v != nil {
			*f.dest = *v
		}
	}

	var (
		category *string
		count    *int64
	)
	if err := q.QueryRowScan(ctx, topCategoryQuery, &category, &count); err != nil {
		if IsNoRows(err) {
			return nil
		}
		return fmt.Errorf("top category: %w", err)
	}
	if category != nil && count != nil {
		s.TopCategory, s.TopCategoryProducts = *category, *count
	}
	return nil
}
