package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"shopdata/internal/domain/catalog"
	"shopdata/internal/domain/order"
)

const (
	CustomerBaseID = 1
	ProductBaseID  = 1001
	OrderBaseID    = 2001

	minPriceCents = 500
	maxPriceCents = 99999
	maxStock      = 500
	maxSupplierID = 20
)

var (
	registrationStart = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	registrationEnd   = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	lastOrderDate     = time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC)

	PaymentMethods = []string{"Credit Card", "PayPal", "Debit Card", "Bank Transfer"}
)

var statusWeights = []struct {
	status order.Status
	weight float32
}{
	{order.StatusDelivered, 50},
	{order.StatusShipped, 20},
	{order.StatusProcessing, 10},
	{order.StatusPending, 10},
	{order.StatusCancelled, 10},
}

type Sizes struct {
	Customers int
	Products  int
	Orders    int
}

type Base struct {
	Customers []catalog.Customer
	Products  []catalog.Product
	Orders    []order.Order
}

type Seeder struct {
	faker *gofakeit.Faker
}

func NewSeeder(faker *gofakeit.Faker) *Seeder {
	return &Seeder{faker: faker}
}

// Build synthesizes the base record sets. Orders carry a zero total until
// the generator reconciles them against their items.
func (s *Seeder) Build(sizes Sizes) (*Base, error) {
	customers := s.customers(sizes.Customers)
	products := s.products(sizes.Products)
	orders, err := s.orders(sizes.Orders, customers)
	if err != nil {
		return nil, err
	}
	return &Base{Customers: customers, Products: products, Orders: orders}, nil
}

func (s *Seeder) customers(n int) []catalog.Customer {
	out := make([]catalog.Customer, 0, n)
	for i := 0; i < n; i++ {
		id := CustomerBaseID + i
		first, last := s.faker.FirstName(), s.faker.LastName()
		addr := s.faker.Address()
		out = append(out, catalog.Customer{
			ID:               id,
			FirstName:        first,
			LastName:         last,
			Email:            email(first, last, id),
			Phone:            s.faker.Phone(),
			RegistrationDate: day(s.faker.DateRange(registrationStart, registrationEnd)),
			Country:          addr.Country,
			City:             addr.City,
			PostalCode:       addr.Zip,
		})
	}
	return out
}

func (s *Seeder) products(n int) []catalog.Product {
	out := make([]catalog.Product, 0, n)
	for i := 0; i < n; i++ {
		cents := s.faker.Number(minPriceCents, maxPriceCents)
		out = append(out, catalog.Product{
			ID:            ProductBaseID + i,
			Name:          s.faker.ProductName(),
			Category:      s.faker.RandomString(catalog.Categories),
			Brand:         s.faker.Company(),
			Price:         order.NewMoney(decimal.New(int64(cents), -order.CurrencyPlaces)),
			StockQuantity: s.faker.Number(0, maxStock),
			SupplierID:    s.faker.Number(1, maxSupplierID),
		})
	}
	return out
}

func (s *Seeder) orders(n int, customers []catalog.Customer) ([]order.Order, error) {
	if n > 0 && len(customers) == 0 {
		return nil, fmt.Errorf("seed orders: %w", errNoCustomers)
	}

	options := make([]any, len(statusWeights))
	weights := make([]float32, len(statusWeights))
	for i, sw := range statusWeights {
		options[i] = sw.status
		weights[i] = sw.weight
	}

	out := make([]order.Order, 0, n)
	for i := 0; i < n; i++ {
		c := customers[s.faker.Number(0, len(customers)-1)]
		picked, err := s.faker.Weighted(options, weights)
		if err != nil {
			return nil, fmt.Errorf("draw order status: %w", err)
		}
		addr := s.faker.Address()
		out = append(out, order.Order{
			ID:              OrderBaseID + i,
			CustomerID:      c.ID,
			OrderDate:       day(s.faker.DateRange(c.RegistrationDate.AddDate(0, 0, 1), lastOrderDate)),
			Status:          picked.(order.Status),
			TotalAmount:     order.Zero,
			ShippingAddress: strings.Join([]string{addr.Street, addr.City, addr.State, addr.Zip}, ", "),
			PaymentMethod:   s.faker.RandomString(PaymentMethods),
		})
	}
	return out, nil
}

// email embeds the id, keeping addresses unique.
func email(first, last string, id int) string {
	local := strings.ToLower(first + "." + last)
	local = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\'' {
			return -1
		}
		return r
	}, local)
	return fmt.Sprintf("%s%d@example.com", local, id)
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
