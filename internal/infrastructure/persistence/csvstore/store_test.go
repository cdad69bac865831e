package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdata/internal/domain/catalog"
	"shopdata/internal/domain/order"
	"shopdata/internal/domain/review"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestStore_ReadOrders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "orders.csv", "order_id,customer_id,order_date,order_status,total_amount,shipping_address,payment_method\n"+
		"2001,7,2025-03-04,Delivered,0.00,\"1 Main St, Springfield\",PayPal\n")

	orders, err := NewStore(dir).ReadOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	o := orders[0]
	assert.Equal(t, 2001, o.ID)
	assert.Equal(t, 7, o.CustomerID)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), o.OrderDate)
	assert.Equal(t, order.StatusDelivered, o.Status)
	assert.Equal(t, "1 Main St, Springfield", o.ShippingAddress)
}

func TestStore_ReadColumnOrderIndependent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "products.csv", "price,product_id,product_name,category,brand,stock_quantity,supplier_id,extra\n"+
		"19.9,1001,Lamp,Home & Kitchen,Acme,,3,x\n")

	products, err := NewStore(dir).ReadProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 1001, products[0].ID)
	assert.Equal(t, "19.90", products[0].Price.String())
	assert.Equal(t, 0, products[0].StockQuantity)
}

func TestStore_ReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		line    int
		column  string
	}{
		{name: "empty file", content: "", wantErr: ErrEmptyFile},
		{name: "missing column", content: "order_id,customer_id\n", wantErr: ErrMissingColumn, line: 1, column: "order_date"},
		{
			name: "bad status",
			content: "order_id,customer_id,order_date,order_status,total_amount,shipping_address,payment_method\n" +
				"1,1,2025-01-01,Delivered,0,,\n" +
				"2,1,2025-01-01,Lost,0,,\n",
			wantErr: order.ErrInvalidStatus, line: 3, column: "order_status",
		},
		{
			name: "bad date",
			content: "order_id,customer_id,order_date,order_status,total_amount,shipping_address,payment_method\n" +
				"1,1,01/01/2025,Delivered,0,,\n",
			line: 2, column: "order_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "orders.csv", tt.content)

			_, err := NewStore(dir).ReadOrders(context.Background())

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.line > 0 {
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, tt.line, pe.Line)
				assert.Equal(t, tt.column, pe.Column)
			}
		})
	}
}

func TestStore_ReadMissingFile(t *testing.T) {
	_, err := NewStore(t.TempDir()).ReadCustomers(context.Background())
	assert.ErrorIs(t, err, ErrMissingFile)
}

func TestStore_WriteGeneratedThenReadAll(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	ctx := context.Background()
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	customers := []catalog.Customer{{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", RegistrationDate: day}}
	products := []catalog.Product{{ID: 1001, Name: "Pen", Category: "Books", Price: order.MustMoney("2.50"), StockQuantity: 10, SupplierID: 2}}
	orders := []order.Order{{ID: 2001, CustomerID: 1, OrderDate: day, Status: order.StatusShipped, TotalAmount: order.Zero}}
	require.NoError(t, store.WriteBase(ctx, customers, products, orders))

	orders[0].TotalAmount = order.MustMoney("5.00")
	items := []order.OrderItem{{ID: 5001, OrderID: 2001, ProductID: 1001, Quantity: 2, UnitPrice: order.MustMoney("2.50"), Subtotal: order.MustMoney("5.00")}}
	reviews := []review.Review{{ID: 6001, ProductID: 1001, CustomerID: 1, Rating: 4, Text: "Solid product, would buy again.", ReviewDate: day.AddDate(0, 0, 3)}}
	require.NoError(t, store.WriteGenerated(ctx, orders, items, reviews))

	ds, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, customers, ds.Customers)
	assert.Equal(t, "5.00", ds.Orders[0].TotalAmount.String())
	require.Len(t, ds.OrderItems, 1)
	assert.Equal(t, 2, ds.OrderItems[0].Quantity)
	assert.Equal(t, "5.00", ds.OrderItems[0].Subtotal.String())
	assert.Equal(t, reviews, ds.Reviews)

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStore_WriteGeneratedCancelledLeavesFilesUntouched(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "orders.csv", "original")
	store := NewStore(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.WriteGenerated(ctx, nil, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)

	data, err := os.ReadFile(filepath.Join(dir, "orders.csv"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
	assert.False(t, store.Exists("order_items"))
}

func TestStore_Dir(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, NewStore(dir).Dir())
}

func TestStore_InterruptedReplaceBlocksReads(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	ctx := context.Background()
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	orders := []order.Order{{ID: 2001, CustomerID: 1, OrderDate: day, Status: order.StatusShipped, TotalAmount: order.Zero}}

	// A directory in place of reviews.csv makes the last rename fail.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "reviews.csv", "keep"), 0o755))

	err := store.WriteGenerated(ctx, orders, nil, nil)
	require.Error(t, err)
	assert.FileExists(t, filepath.Join(dir, pendingMarker))

	tests := []struct {
		name string
		read func() error
	}{
		{"orders", func() error { _, err := store.ReadOrders(ctx); return err }},
		{"order items", func() error { _, err := store.ReadOrderItems(ctx); return err }},
		{"all", func() error { _, err := store.ReadAll(ctx); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read()
			assert.ErrorIs(t, err, ErrIncompleteReplace)
			assert.Contains(t, err.Error(), "reviews")
		})
	}

	require.NoError(t, os.RemoveAll(filepath.Join(dir, "reviews.csv")))
	require.NoError(t, store.WriteGenerated(ctx, orders, nil, nil))
	assert.NoFileExists(t, filepath.Join(dir, pendingMarker))

	got, err := store.ReadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2001, got[0].ID)
}

func TestStore_FirstRenameFailureClearsMarker(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "order_items.csv", "original")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "orders.csv", "keep"), 0o755))
	store := NewStore(dir)

	err := store.WriteGenerated(context.Background(), nil, nil, nil)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, pendingMarker))

	data, err := os.ReadFile(filepath.Join(dir, "order_items.csv"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	leftovers, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}
