package kafka

import (
	"github.com/IBM/sarama"
)

// IProducer defines the interface for Kafka producer.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(msg Message) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a new Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	sp, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, err
	}
	return NewProducerFromSync(sp), nil
}

// NewProducerFromSync wraps an existing sarama producer.
func NewProducerFromSync(sp sarama.SyncProducer) IProducer {
	return &producerImpl{producer: sp}
}
