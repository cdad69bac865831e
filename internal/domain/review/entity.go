package review

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrReviewDate    = errors.New("review date must fall 1 to 30 days after the order date")
)

const (
	MinRating = 1
	MaxRating = 5

	// MinDelayDays and MaxDelayDays bound how long after the order a review is written.
	MinDelayDays = 1
	MaxDelayDays = 30
)

type Review struct {
	ID         int
	ProductID  int
	CustomerID int
	Rating     int
	Text       string
	ReviewDate time.Time
}

// RatingWeight pairs a star value with its relative draw weight.
type RatingWeight struct {
	Rating int
	Weight float32
}

// RatingWeights sum to 100, so each weight reads as a percentage.
var RatingWeights = []RatingWeight{
	{Rating: 5, Weight: 40},
	{Rating: 4, Weight: 30},
	{Rating: 3, Weight: 15},
	{Rating: 2, Weight: 10},
	{Rating: 1, Weight: 5},
}

var texts = map[int][]string{
	5: {
		"Excellent product! Exceeded my expectations.",
		"Perfect! Exactly what I needed.",
		"Outstanding quality and fast delivery.",
		"Absolutely love it! Highly recommend.",
		"Best purchase ever! Five stars!",
	},
	4: {
		"Very good product, happy with purchase.",
		"Good quality, works as expected.",
		"Great product, minor issues but overall satisfied.",
		"Solid product, would buy again.",
		"Nice item, good value for money.",
	},
	3: {
		"Decent product, meets basic needs.",
		"Average quality, nothing special.",
		"It's okay, works fine but not amazing.",
		"Fair product for the price.",
		"Acceptable, does what it says.",
	},
	2: {
		"Disappointed, expected better quality.",
		"Not great, has some issues.",
		"Below expectations, wouldn't recommend.",
		"Poor quality, not worth the price.",
		"Unsatisfied, had problems with it.",
	},
	1: {
		"Terrible product, waste of money.",
		"Very disappointed, does not work.",
		"Awful quality, returned immediately.",
		"Complete disaster, do not buy.",
		"Worst purchase, totally unusable.",
	},
}

// Texts returns the canned phrases for a rating. The slice is shared; do not modify it.
func Texts(rating int) ([]string, error) {
	pool, ok := texts[rating]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, rating)
	}
	return pool, nil
}

// TextMatchesRating reports whether text belongs to the pool of rating.
func TextMatchesRating(rating int, text string) bool {
	for _, t := range texts[rating] {
		if t == text {
			return true
		}
	}
	return false
}

func NewReview(id, productID, customerID, rating int, text string, orderDate, reviewDate time.Time) (*Review, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, rating)
	}
	delay := int(reviewDate.Sub(orderDate).Hours() / 24)
	if !reviewDate.After(orderDate) || delay < MinDelayDays || delay > MaxDelayDays {
		return nil, fmt.Errorf("%w: order %s, review %s", ErrReviewDate,
			orderDate.Format("2006-01-02"), reviewDate.Format("2006-01-02"))
	}

	return &Review{
		ID:         id,
		ProductID:  productID,
		CustomerID: customerID,
		Rating:     rating,
		Text:       text,
		ReviewDate: reviewDate,
	}, nil
}
