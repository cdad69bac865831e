package catalog

import (
	"errors"
	"time"

	"shopdata/internal/domain/order"
)

var ErrEmptyCatalog = errors.New("product catalog is empty")

type Customer struct {
	ID               int
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	RegistrationDate time.Time
	Country          string
	City             string
	PostalCode       string
}

type Product struct {
	ID            int
	Name          string
	Category      string
	Brand         string
	Price         order.Money
	StockQuantity int
	SupplierID    int
}

// Categories is the fixed category list products are seeded from.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Home & Kitchen",
	"Books",
	"Sports",
	"Beauty",
	"Toys",
}
