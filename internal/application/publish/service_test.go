package publish

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"shopdata/internal/domain/order"
	"shopdata/internal/domain/review"
	"shopdata/internal/infrastructure/encoding/avro"
	"shopdata/internal/infrastructure/messaging/kafka"
	"shopdata/pkg/logger"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) ReadOrderItems(ctx context.Context) ([]order.OrderItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.OrderItem), args.Error(1)
}

func (m *MockSource) ReadReviews(ctx context.Context) ([]review.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]review.Review), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, msgs []kafka.Message) error {
	return m.Called(ctx, topic, msgs).Error(0)
}

var topics = Topics{OrderItems: "shop.order_items", Reviews: "shop.reviews"}

func items(n int) []order.OrderItem {
	out := make([]order.OrderItem, n)
	for i := range out {
		out[i] = order.OrderItem{
			ID: 5001 + i, OrderID: 2001, ProductID: 1001, Quantity: 1,
			UnitPrice: order.MustMoney("9.99"), Subtotal: order.MustMoney("9.99"),
		}
	}
	return out
}

func TestService_Publish(t *testing.T) {
	src := new(MockSource)
	pub := new(MockPublisher)
	reviews := []review.Review{{ID: 6001, ProductID: 1001, CustomerID: 1, Rating: 5, Text: "Excellent", ReviewDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}}

	src.On("ReadOrderItems", mock.Anything).Return(items(2), nil)
	src.On("ReadReviews", mock.Anything).Return(reviews, nil)

	var sentReviews []kafka.Message
	pub.On("Publish", mock.Anything, topics.OrderItems, mock.MatchedBy(func(m []kafka.Message) bool { return len(m) == 2 })).Return(nil).Once()
	pub.On("Publish", mock.Anything, topics.Reviews, mock.Anything).
		Run(func(args mock.Arguments) { sentReviews = args.Get(2).([]kafka.Message) }).
		Return(nil).Once()

	s, err := NewService(src, pub, topics, logger.NewNop())
	require.NoError(t, err)

	sum, err := s.Publish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Summary{OrderItems: 2, Reviews: 1}, sum)
	pub.AssertExpectations(t)

	require.Len(t, sentReviews, 1)
	assert.Equal(t, "6001", string(sentReviews[0].Key))
	dec, err := avro.NewEncoder(avro.ReviewSchema)
	require.NoError(t, err)
	rec, err := dec.DecodeNative(sentReviews[0].Value)
	require.NoError(t, err)
	assert.Equal(t, int64(6001), rec["review_id"])
}

func TestService_PublishBatches(t *testing.T) {
	src := new(MockSource)
	pub := new(MockPublisher)
	src.On("ReadOrderItems", mock.Anything).Return(items(batchSize+1), nil)
	src.On("ReadReviews", mock.Anything).Return([]review.Review{}, nil)
	pub.On("Publish", mock.Anything, topics.OrderItems, mock.Anything).Return(nil).Twice()

	s, err := NewService(src, pub, topics, logger.NewNop())
	require.NoError(t, err)

	sum, err := s.Publish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, batchSize+1, sum.OrderItems)
	pub.AssertNumberOfCalls(t, "Publish", 2)
}

func TestService_PublishErrors(t *testing.T) {
	t.Run("nothing generated", func(t *testing.T) {
		src := new(MockSource)
		src.On("ReadOrderItems", mock.Anything).Return([]order.OrderItem{}, nil)
		src.On("ReadReviews", mock.Anything).Return([]review.Review{}, nil)

		s, err := NewService(src, new(MockPublisher), topics, logger.NewNop())
		require.NoError(t, err)
		_, err = s.Publish(context.Background())
		assert.ErrorIs(t, err, ErrNothingToPublish)
	})

	t.Run("broker failure reports progress", func(t *testing.T) {
		src := new(MockSource)
		pub := new(MockPublisher)
		src.On("ReadOrderItems", mock.Anything).Return(items(batchSize+1), nil)
		src.On("ReadReviews", mock.Anything).Return([]review.Review{}, nil)
		pub.On("Publish", mock.Anything, topics.OrderItems, mock.Anything).Return(nil).Once()
		pub.On("Publish", mock.Anything, topics.OrderItems, mock.Anything).Return(errors.New("leader not available")).Once()

		s, err := NewService(src, pub, topics, logger.NewNop())
		require.NoError(t, err)
		sum, err := s.Publish(context.Background())
		require.Error(t, err)
		assert.Equal(t, batchSize, sum.OrderItems)
	})

	t.Run("read failure", func(t *testing.T) {
		src := new(MockSource)
		src.On("ReadOrderItems", mock.Anything).Return(nil, errors.New("missing order_items.csv"))

		s, err := NewService(src, new(MockPublisher), topics, logger.NewNop())
		require.NoError(t, err)
		_, err = s.Publish(context.Background())
		assert.ErrorContains(t, err, "read order items")
	})
}

func TestNewService_LogsSchemas(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := NewService(new(MockSource), new(MockPublisher), Topics{}, logger.NewZapFromCore(core))
	require.NoError(t, err)

	entries := logs.FilterMessage("avro codecs ready").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Contains(t, fields["order_item_schema"], "shopdata.order.OrderItem")
	assert.Contains(t, fields["review_schema"], "shopdata.review.Review")
}
