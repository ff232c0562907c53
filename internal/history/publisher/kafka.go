// Package publisher streams committed history records to Kafka so
// downstream consumers can follow changes without polling the table.
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/briclabs/evcoordinator-sub000/internal/history/models"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/circuit"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/sentinel"
)

// Kafka publishes history records keyed by source table, so every change to
// one table lands on the same partition in commit order.
type Kafka struct {
	client          *kgo.Client
	topic           string
	deliveryTimeout time.Duration
	breaker         *circuit.Breaker
	logger          *slog.Logger
}

// DefaultDeliveryTimeout bounds how long one Publish waits on the broker.
// The history row is already committed by then, so callers should not hang
// on a stalled stream.
const DefaultDeliveryTimeout = 3 * time.Second

type Option func(*Kafka)

// WithDeliveryTimeout overrides DefaultDeliveryTimeout.
func WithDeliveryTimeout(d time.Duration) Option {
	return func(k *Kafka) {
		if d > 0 {
			k.deliveryTimeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(k *Kafka) {
		if logger != nil {
			k.logger = logger
		}
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(k *Kafka) {
		if b != nil {
			k.breaker = b
		}
	}
}

// NewKafka connects a producer to brokers. Extra client options are passed
// through to franz-go.
func NewKafka(brokers []string, topic string, clientOpts []kgo.Opt, opts ...Option) (*Kafka, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka publisher: no brokers configured")
	}
	k := &Kafka{
		topic:           topic,
		deliveryTimeout: DefaultDeliveryTimeout,
		breaker:         circuit.New("history-kafka"),
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(k)
	}
	base := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.RecordDeliveryTimeout(k.deliveryTimeout),
	}
	client, err := kgo.NewClient(append(base, clientOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("kafka publisher: %w", err)
	}
	k.client = client
	return k, nil
}

// EnsureTopic creates the topic when missing.
func (k *Kafka) EnsureTopic(ctx context.Context, partitions int32, replicas int16) error {
	adm := kadm.NewClient(k.client)
	resp, err := adm.CreateTopics(ctx, partitions, replicas, nil, k.topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", k.topic, err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

// Publish writes record synchronously, waiting at most the delivery timeout.
// While the broker keeps failing the breaker opens and records are skipped
// until a probe succeeds.
func (k *Kafka) Publish(ctx context.Context, record models.Record) error {
	if !k.breaker.Allow() {
		return fmt.Errorf("publish %s: %w", record.EventID, sentinel.ErrUnavailable)
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode history record: %w", err)
	}
	rec := &kgo.Record{
		Topic: k.topic,
		Key:   []byte(record.SourceTable),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: "action", Value: []byte(record.Action)},
			{Key: "event_id", Value: []byte(record.EventID)},
		},
	}
	ctx, cancel := context.WithTimeout(ctx, k.deliveryTimeout)
	defer cancel()
	if err := k.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		if _, change := k.breaker.RecordFailure(); change.Opened {
			k.logger.WarnContext(ctx, "history stream unavailable, pausing publishes", "topic", k.topic)
		}
		return fmt.Errorf("publish %s: %w", record.EventID, err)
	}
	if _, change := k.breaker.RecordSuccess(); change.Closed {
		k.logger.InfoContext(ctx, "history stream recovered", "topic", k.topic)
	}
	return nil
}

func (k *Kafka) Close() {
	k.client.Close()
}
