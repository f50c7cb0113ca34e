package kafka

import (
	"fmt"
	"sync"

	"crawler-console/config"
	"crawler-console/pkg/kafka"
)

var (
	producerInstance kafka.IProducer
	producerMu       sync.RWMutex
)

// ConnectProducer creates the Kafka producer once.
// Safe for concurrent use. Returns existing instance if already initialized.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance != nil {
		return producerInstance, nil
	}

	client, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		ClientID: cfg.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producerInstance = client
	return producerInstance, nil
}

// ProducerHealthCheck checks if Kafka producer is initialized and healthy.
func ProducerHealthCheck() error {
	producerMu.RLock()
	defer producerMu.RUnlock()

	if producerInstance == nil {
		return fmt.Errorf("Kafka producer not initialized")
	}
	return producerInstance.HealthCheck()
}

// DisconnectProducer closes the Kafka producer and resets the singleton.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance == nil {
		return nil
	}
	if err := producerInstance.Close(); err != nil {
		return err
	}
	producerInstance = nil
	return nil
}
