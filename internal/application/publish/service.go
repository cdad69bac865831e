package publish

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"shopdata/internal/domain/order"
	"shopdata/internal/domain/review"
	"shopdata/internal/infrastructure/encoding/avro"
	"shopdata/internal/infrastructure/messaging/kafka"
	"shopdata/pkg/logger"
)

const batchSize = 500

var ErrNothingToPublish = errors.New("no generated records to publish")

type RecordSource interface {
	ReadOrderItems(ctx context.Context) ([]order.OrderItem, error)
	ReadReviews(ctx context.Context) ([]review.Review, error)
}

type Publisher interface {
	Publish(ctx context.Context, topic string, msgs []kafka.Message) error
}

type Topics struct {
	OrderItems string
	Reviews    string
}

type Summary struct {
	OrderItems int `json:"order_items"`
	Reviews    int `json:"reviews"`
}

type Service struct {
	source    RecordSource
	publisher Publisher
	topics    Topics
	items     *avro.Encoder
	reviews   *avro.Encoder
	log       logger.Logger
}

func NewService(source RecordSource, publisher Publisher, topics Topics, log logger.Logger) (*Service, error) {
	items, err := avro.NewEncoder(avro.OrderItemSchema)
	if err != nil {
		return nil, fmt.Errorf("order item codec: %w", err)
	}
	reviews, err := avro.NewEncoder(avro.ReviewSchema)
	if err != nil {
		return nil, fmt.Errorf("review codec: %w", err)
	}
	log.Debug("avro codecs ready",
		logger.String("order_item_schema", items.Schema()),
		logger.String("review_schema", reviews.Schema()))
	return &Service{
		source:    source,
		publisher: publisher,
		topics:    topics,
		items:     items,
		reviews:   reviews,
		log:       log,
	}, nil
}

// Publish streams every generated order item and review as Avro records,
// keyed by record id. Order items go first.
func (s *Service) Publish(ctx context.Context) (*Summary, error) {
	items, err := s.source.ReadOrderItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("read order items: %w", err)
	}
	reviews, err := s.source.ReadReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("read reviews: %w", err)
	}
	if len(items) == 0 && len(reviews) == 0 {
		return nil, ErrNothingToPublish
	}

	itemMsgs := make([]kafka.Message, 0, len(items))
	for _, it := range items {
		value, err := s.items.EncodeNative(avro.OrderItemNative(it))
		if err != nil {
			return nil, fmt.Errorf("encode order item %d: %w", it.ID, err)
		}
		itemMsgs = append(itemMsgs, kafka.Message{Key: []byte(strconv.Itoa(it.ID)), Value: value})
	}

	reviewMsgs := make([]kafka.Message, 0, len(reviews))
	for _, r := range reviews {
		value, err := s.reviews.EncodeNative(avro.ReviewNative(r))
		if err != nil {
			return nil, fmt.Errorf("encode review %d: %w", r.ID, err)
		}
		reviewMsgs = append(reviewMsgs, kafka.Message{Key: []byte(strconv.Itoa(r.ID)), Value: value})
	}

	sum := &Summary{}
	if sum.OrderItems, err = s.send(ctx, s.topics.OrderItems, itemMsgs); err != nil {
		return sum, err
	}
	if sum.Reviews, err = s.send(ctx, s.topics.Reviews, reviewMsgs); err != nil {
		return sum, err
	}

	s.log.WithContext(ctx).Info("records published",
		logger.Int("order_items", sum.OrderItems),
		logger.Int("reviews", sum.Reviews),
	)
	return sum, nil
}

// send publishes in batches and returns how many records were acknowledged.
func (s *Service) send(ctx context.Context, topic string, msgs []kafka.Message) (int, error) {
	sent := 0
	for start := 0; start < len(msgs); start += batchSize {
		end := min(start+batchSize, len(msgs))
		if err := s.publisher.Publish(ctx, topic, msgs[start:end]); err != nil {
			return sent, fmt.Errorf("publish batch at #%d: %w", start, err)
		}
		sent = end
	}
	return sent, nil
}
