package kafka

import (
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

var (
	ErrNoBrokers  = errors.New("kafka: at least one broker is required")
	ErrNoTopic    = errors.New("kafka: topic is required")
	ErrNotReady   = errors.New("kafka: producer is not initialized")
	ErrEmptyValue = errors.New("kafka: message value is required")
)

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return ErrNoBrokers
	}
	return nil
}

func newSaramaConfig(cfg Config) *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = cfg.ClientID
	if config.ClientID == "" {
		config.ClientID = DefaultClientID
	}
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = ProducerRetryMax
	config.Producer.Timeout = ProducerTimeout
	config.Version = KafkaVersion
	return config
}

// Publish sends msg to its topic.
func (p *producerImpl) Publish(msg Message) error {
	if p.producer == nil {
		return ErrNotReady
	}
	if msg.Topic == "" {
		return ErrNoTopic
	}
	if len(msg.Value) == 0 {
		return ErrEmptyValue
	}

	pm := &sarama.ProducerMessage{
		Topic: msg.Topic,
		Value: sarama.ByteEncoder(msg.Value),
	}
	if len(msg.Key) > 0 {
		pm.Key = sarama.ByteEncoder(msg.Key)
	}

	if _, _, err := p.producer.SendMessage(pm); err != nil {
		return fmt.Errorf("failed to publish message to Kafka: %w", err)
	}
	return nil
}

// Close closes the producer.
func (p *producerImpl) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// HealthCheck verifies the producer is initialized.
func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return ErrNotReady
	}
	return nil
}
