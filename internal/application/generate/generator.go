package generate

import (
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"shopdata/internal/domain/catalog"
	"shopdata/internal/domain/order"
	"shopdata/internal/domain/review"
)

const (
	DefaultOrderItemBaseID = 5001
	DefaultReviewBaseID    = 6001
	DefaultReviewCap       = 200

	maxItemsCancelled = 3
	maxItemsOpen      = 5
	maxQuantity       = 3

	minReviewShare = 0.2
	maxReviewShare = 0.4
)

var ErrUnknownOrder = errors.New("order item references an unknown order")

type Options struct {
	OrderItemBaseID int
	ReviewBaseID    int
	// ReviewCap bounds the reviews emitted per run; zero disables reviews.
	ReviewCap int
}

func DefaultOptions() Options {
	return Options{
		OrderItemBaseID: DefaultOrderItemBaseID,
		ReviewBaseID:    DefaultReviewBaseID,
		ReviewCap:       DefaultReviewCap,
	}
}

// Generator carries the id counters and random source of a single run.
// It is not safe for concurrent use.
type Generator struct {
	faker        *gofakeit.Faker
	opts         Options
	nextItemID   int
	nextReviewID int
}

func NewGenerator(faker *gofakeit.Faker, opts Options) *Generator {
	return &Generator{
		faker:        faker,
		opts:         opts,
		nextItemID:   opts.OrderItemBaseID,
		nextReviewID: opts.ReviewBaseID,
	}
}

// Result holds the derived record sets. Orders are copies of the input with
// TotalAmount reconciled.
type Result struct {
	Orders  []order.Order
	Items   []order.OrderItem
	Reviews []review.Review
}

// Run derives line items for every order, reconciles totals and then derives reviews.
func (g *Generator) Run(orders []order.Order, products []catalog.Product) (*Result, error) {
	res := &Result{Orders: make([]order.Order, len(orders))}
	copy(res.Orders, orders)

	for i := range res.Orders {
		items, err := g.GenerateItems(&res.Orders[i], products)
		if err != nil {
			return nil, err
		}
		res.Items = append(res.Items, items...)
	}

	reviews, err := g.GenerateReviews(res.Orders, res.Items)
	if err != nil {
		return nil, err
	}
	res.Reviews = reviews
	return res, nil
}

// ItemCount draws how many distinct products an order holds.
func (g *Generator) ItemCount(status order.Status) int {
	if status == order.StatusCancelled {
		return g.faker.Number(1, maxItemsCancelled)
	}
	return g.faker.Number(1, maxItemsOpen)
}

// GenerateItems picks distinct products for o, prices them and overwrites
// o.TotalAmount with the sum of the subtotals.
func (g *Generator) GenerateItems(o *order.Order, products []catalog.Product) ([]order.OrderItem, error) {
	if len(products) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	n := min(g.ItemCount(o.Status), len(products))
	picks := g.faker.Rand.Perm(len(products))[:n]

	items := make([]order.OrderItem, 0, n)
	for _, idx := range picks {
		p := products[idx]
		it, err := order.NewOrderItem(g.nextItemID, o.ID, p.ID, g.faker.Number(1, maxQuantity), p.Price)
		if err != nil {
			return nil, fmt.Errorf("order %d product %d: %w", o.ID, p.ID, err)
		}
		items = append(items, *it)
		g.nextItemID++
	}

	if err := o.Reconcile(items); err != nil {
		return nil, err
	}
	return items, nil
}

type purchase struct {
	productID int
	orderDate time.Time
}

// purchases groups fulfilled line items by customer. The returned key slice
// preserves the order in which customers first appear in items.
func purchases(orders []order.Order, items []order.OrderItem) ([]int, map[int][]purchase, error) {
	byID := make(map[int]*order.Order, len(orders))
	for i := range orders {
		byID[orders[i].ID] = &orders[i]
	}

	var customers []int
	grouped := make(map[int][]purchase)
	for _, it := range items {
		o, ok := byID[it.OrderID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: item %d, order %d", ErrUnknownOrder, it.ID, it.OrderID)
		}
		if !o.Status.Fulfilled() {
			continue
		}
		if _, seen := grouped[o.CustomerID]; !seen {
			customers = append(customers, o.CustomerID)
		}
		grouped[o.CustomerID] = append(grouped[o.CustomerID], purchase{productID: it.ProductID, orderDate: o.OrderDate})
	}
	return customers, grouped, nil
}

// GenerateReviews emits reviews for a share of each customer's fulfilled
// purchases, stopping as soon as the cap is reached.
func (g *Generator) GenerateReviews(orders []order.Order, items []order.OrderItem) ([]review.Review, error) {
	customers, grouped, err := purchases(orders, items)
	if err != nil {
		return nil, err
	}

	var out []review.Review
	for _, customerID := range customers {
		if len(out) >= g.opts.ReviewCap {
			break
		}

		bought := grouped[customerID]
		n := max(1, int(float64(len(bought))*g.faker.Float64Range(minReviewShare, maxReviewShare)))
		n = min(n, len(bought))

		for _, idx := range g.faker.Rand.Perm(len(bought))[:n] {
			if len(out) >= g.opts.ReviewCap {
				break
			}
			r, err := g.review(customerID, bought[idx])
			if err != nil {
				return nil, err
			}
			out = append(out, *r)
		}
	}
	return out, nil
}

func (g *Generator) review(customerID int, p purchase) (*review.Review, error) {
	rating, err := g.Rating()
	if err != nil {
		return nil, err
	}
	pool, err := review.Texts(rating)
	if err != nil {
		return nil, err
	}
	date := p.orderDate.AddDate(0, 0, g.faker.Number(review.MinDelayDays, review.MaxDelayDays))

	r, err := review.NewReview(g.nextReviewID, p.productID, customerID, rating, g.faker.RandomString(pool), p.orderDate, date)
	if err != nil {
		return nil, err
	}
	g.nextReviewID++
	return r, nil
}

// Rating draws a star value using review.RatingWeights.
func (g *Generator) Rating() (int, error) {
	options := make([]any, len(review.RatingWeights))
	weights := make([]float32, len(review.RatingWeights))
	for i, w := range review.RatingWeights {
		options[i] = w.Rating
		weights[i] = w.Weight
	}

	picked, err := g.faker.Weighted(options, weights)
	if err != nil {
		return 0, fmt.Errorf("draw rating: %w", err)
	}
	return picked.(int), nil
}
