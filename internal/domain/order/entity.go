package order

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// Statuses lists every value the orders.order_status check constraint accepts.
var Statuses = []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

func ParseStatus(raw string) (Status, error) {
	for _, s := range Statuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

// Fulfilled reports whether the order was shipped or delivered, the only
// statuses whose items may be reviewed.
func (s Status) Fulfilled() bool {
	return s == StatusShipped || s == StatusDelivered
}

type Order struct {
	ID              int
	CustomerID      int
	OrderDate       time.Time
	Status          Status
	TotalAmount     Money
	ShippingAddress string
	PaymentMethod   string
}

type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	UnitPrice Money
	Subtotal  Money
}

// NewOrderItem prices a line: the subtotal is quantity times the cent-rounded
// unit price, rounded again to cents.
func NewOrderItem(id, orderID, productID, quantity int, unitPrice Money) (*OrderItem, error) {
	if id <= 0 || orderID <= 0 || productID <= 0 {
		return nil, ErrMissingField
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	price, err := NewPrice(unitPrice)
	if err != nil {
		return nil, err
	}

	return &OrderItem{
		ID:        id,
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: price,
		Subtotal:  price.Times(quantity),
	}, nil
}

// Reconcile overwrites TotalAmount with the sum of the items' subtotals.
func (o *Order) Reconcile(items []OrderItem) error {
	total := Zero
	for _, it := range items {
		if it.OrderID != o.ID {
			return fmt.Errorf("%w: item %d references order %d, not %d", ErrOrderMismatch, it.ID, it.OrderID, o.ID)
		}
		total = total.Add(it.Subtotal)
	}
	o.TotalAmount = total
	return nil
}
