package csvstore

import (
	"strconv"
	"time"

	"shopdata/internal/domain/catalog"
	"shopdata/internal/domain/order"
	"shopdata/internal/domain/review"
)

const DateLayout = "2006-01-02"

var (
	customerColumns  = []string{"customer_id", "first_name", "last_name", "email", "phone", "registration_date", "country", "city", "postal_code"}
	productColumns   = []string{"product_id", "product_name", "category", "brand", "price", "stock_quantity", "supplier_id"}
	orderColumns     = []string{"order_id", "customer_id", "order_date", "order_status", "total_amount", "shipping_address", "payment_method"}
	orderItemColumns = []string{"order_item_id", "order_id", "product_id", "quantity", "unit_price", "subtotal"}
	reviewColumns    = []string{"review_id", "product_id", "customer_id", "rating", "review_text", "review_date"}
)

// Columns returns the header of a table's CSV file.
func Columns(table string) []string {
	switch table {
	case "customers":
		return customerColumns
	case "products":
		return productColumns
	case "orders":
		return orderColumns
	case "order_items":
		return orderItemColumns
	case "reviews":
		return reviewColumns
	}
	return nil
}

// row reads typed values out of one record and remembers the first failure.
type row struct {
	file   string
	line   int
	index  map[string]int
	record []string
	err    error
}

func (r *row) fail(col string, err error) {
	if r.err == nil {
		r.err = &ParseError{File: r.file, Line: r.line, Column: col, Err: err}
	}
}

func (r *row) str(col string) string {
	return r.record[r.index[col]]
}

func (r *row) num(col string) int {
	v, err := strconv.Atoi(r.str(col))
	if err != nil {
		r.fail(col, err)
	}
	return v
}

// optInt treats an empty cell as zero.
func (r *row) optInt(col string) int {
	if r.str(col) == "" {
		return 0
	}
	return r.num(col)
}

func (r *row) date(col string) time.Time {
	v, err := time.Parse(DateLayout, r.str(col))
	if err != nil {
		r.fail(col, err)
	}
	return v
}

func (r *row) money(col string) order.Money {
	v, err := order.ParseMoney(r.str(col))
	if err != nil {
		r.fail(col, err)
	}
	return v
}

func (r *row) status(col string) order.Status {
	v, err := order.ParseStatus(r.str(col))
	if err != nil {
		r.fail(col, err)
	}
	return v
}

func decodeCustomer(r *row) catalog.Customer {
	return catalog.Customer{
		ID:               r.num("customer_id"),
		FirstName:        r.str("first_name"),
		LastName:         r.str("last_name"),
		Email:            r.str("email"),
		Phone:            r.str("phone"),
		RegistrationDate: r.date("registration_date"),
		Country:          r.str("country"),
		City:             r.str("city"),
		PostalCode:       r.str("postal_code"),
	}
}

func encodeCustomer(c catalog.Customer) []string {
	return []string{
		strconv.Itoa(c.ID), c.FirstName, c.LastName, c.Email, c.Phone,
		c.RegistrationDate.Format(DateLayout), c.Country, c.City, c.PostalCode,
	}
}

func decodeProduct(r *row) catalog.Product {
	return catalog.Product{
		ID:            r.num("product_id"),
		Name:          r.str("product_name"),
		Category:      r.str("category"),
		Brand:         r.str("brand"),
		Price:         r.money("price"),
		StockQuantity: r.optInt("stock_quantity"),
		SupplierID:    r.optInt("supplier_id"),
	}
}

func encodeProduct(p catalog.Product) []string {
	return []string{
		strconv.Itoa(p.ID), p.Name, p.Category, p.Brand, p.Price.String(),
		strconv.Itoa(p.StockQuantity), strconv.Itoa(p.SupplierID),
	}
}

func decodeOrder(r *row) order.Order {
	return order.Order{
		ID:              r.num("order_id"),
		CustomerID:      r.num("customer_id"),
		OrderDate:       r.date("order_date"),
		Status:          r.status("order_status"),
		TotalAmount:     r.money("total_amount"),
		ShippingAddress: r.str("shipping_address"),
		PaymentMethod:   r.str("payment_method"),
	}
}

func encodeOrder(o order.Order) []string {
	return []string{
		strconv.Itoa(o.ID), strconv.Itoa(o.CustomerID), o.OrderDate.Format(DateLayout),
		string(o.Status), o.TotalAmount.String(), o.ShippingAddress, o.PaymentMethod,
	}
}

func decodeOrderItem(r *row) order.OrderItem {
	return order.OrderItem{
		ID:        r.num("order_item_id"),
		OrderID:   r.num("order_id"),
		ProductID: r.num("product_id"),
		Quantity:  r.num("quantity"),
		UnitPrice: r.money("unit_price"),
		Subtotal:  r.money("subtotal"),
	}
}

func encodeOrderItem(it order.OrderItem) []string {
	return []string{
		strconv.Itoa(it.ID), strconv.Itoa(it.OrderID), strconv.Itoa(it.ProductID),
		strconv.Itoa(it.Quantity), it.UnitPrice.String(), it.Subtotal.String(),
	}
}

func decodeReview(r *row) review.Review {
	return review.Review{
		ID:         r.num("review_id"),
		ProductID:  r.num("product_id"),
		CustomerID: r.num("customer_id"),
		Rating:     r.num("rating"),
		Text:       r.str("review_text"),
		ReviewDate: r.date("review_date"),
	}
}

func encodeReview(rv review.Review) []string {
	return []string{
		strconv.Itoa(rv.ID), strconv.Itoa(rv.ProductID), strconv.Itoa(rv.CustomerID),
		strconv.Itoa(rv.Rating), rv.Text, rv.ReviewDate.Format(DateLayout),
	}
}
