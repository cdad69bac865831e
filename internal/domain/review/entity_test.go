package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingWeights_SumToHundred(t *testing.T) {
	var total float32
	for _, w := range RatingWeights {
		total += w.Weight
	}
	assert.Equal(t, float32(100), total)
}

func TestTexts_PoolsAreDistinct(t *testing.T) {
	seen := map[string]int{}
	for rating := MinRating; rating <= MaxRating; rating++ {
		pool, err := Texts(rating)
		require.NoError(t, err)
		assert.Len(t, pool, 5)
		for _, text := range pool {
			_, dup := seen[text]
			assert.False(t, dup, "text %q appears in more than one pool", text)
			seen[text] = rating
			assert.True(t, TextMatchesRating(rating, text))
		}
	}

	_, err := Texts(6)
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestNewReview(t *testing.T) {
	orderDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rating  int
		delay   int
		wantErr error
	}{
		{name: "next day", rating: 5, delay: 1},
		{name: "last allowed day", rating: 1, delay: 30},
		{name: "same day", rating: 4, delay: 0, wantErr: ErrReviewDate},
		{name: "too late", rating: 4, delay: 31, wantErr: ErrReviewDate},
		{name: "zero stars", rating: 0, delay: 3, wantErr: ErrInvalidRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReview(6001, 1, 1, tt.rating, "x", orderDate, orderDate.AddDate(0, 0, tt.delay))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rating, r.Rating)
		})
	}
}
