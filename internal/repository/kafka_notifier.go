package repository

import (
	"context"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	pkgkafka "TrendMatrix/pkg/kafka"
)

// KafkaNotifier publishes generated signals to a Kafka topic, keyed by asset
// so per-asset ordering is preserved.
type KafkaNotifier struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaNotifier creates a Kafka-backed signal notifier.
func NewKafkaNotifier(producer *pkgkafka.Producer, topic string) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, topic: topic}
}

func (n *KafkaNotifier) Notify(ctx context.Context, s models.Signal) error {
	return n.producer.Publish(ctx, n.topic, []byte(s.Asset), s)
}

func (n *KafkaNotifier) Close() error {
	return n.producer.Close()
}

// NopNotifier discards signals. Used when Kafka is disabled.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, models.Signal) error { return nil }
func (NopNotifier) Close() error                                { return nil }

var (
	_ repository.SignalNotifier = (*KafkaNotifier)(nil)
	_ repository.SignalNotifier = NopNotifier{}
)
