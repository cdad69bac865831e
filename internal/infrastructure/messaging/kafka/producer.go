package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"shopdata/internal/config"
	"shopdata/pkg/logger"
)

const RunIDHeader = "run_id"

var (
	ErrNoBrokers    = errors.New("no kafka brokers configured")
	ErrEmptyTopic   = errors.New("topic is empty")
	ErrEmptyPayload = errors.New("payload is empty")
)

type Message struct {
	Key   []byte
	Value []byte
}

// RecordProducer publishes keyed records synchronously. The run id found in
// the context is attached to every record as a header.
type RecordProducer struct {
	client *kgo.Client
	log    logger.Logger
}

func NewRecordProducer(cfg config.KafkaConfig, log logger.Logger) (*RecordProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(10*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer created", logger.Any("brokers", cfg.Brokers))
	return &RecordProducer{
		client: client,
		log:    log,
	}, nil
}

// Publish sends msgs to topic and waits for every acknowledgement. The first
// failed record's error is returned.
func (p *RecordProducer) Publish(ctx context.Context, topic string, msgs []Message) error {
	records, err := buildRecords(ctx, topic, msgs)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	results := p.client.ProduceSync(ctx, records...)
	if err := results.FirstErr(); err != nil {
		p.log.WithContext(ctx).Error("kafka publish failed",
			logger.String("topic", topic),
			logger.Int("records", len(records)),
			logger.Error(err),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", topic, err)
	}
	return nil
}

func (p *RecordProducer) Close() {
	p.log.Info("closing kafka producer")
	p.client.Close()
}

func buildRecords(ctx context.Context, topic string, msgs []Message) ([]*kgo.Record, error) {
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	var headers []kgo.RecordHeader
	if runID, ok := logger.RunIDFromContext(ctx); ok {
		headers = []kgo.RecordHeader{{Key: RunIDHeader, Value: []byte(runID)}}
	}

	now := time.Now().UTC()
	records := make([]*kgo.Record, 0, len(msgs))
	for i, m := range msgs {
		if len(m.Value) == 0 {
			return nil, fmt.Errorf("message %d: %w", i, ErrEmptyPayload)
		}
		records = append(records, &kgo.Record{
			Topic:     topic,
			Key:       m.Key,
			Value:     m.Value,
			Headers:   headers,
			Timestamp: now,
		})
	}
	return records, nil
}
