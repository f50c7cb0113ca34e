package kafka

import "github.com/IBM/sarama"

// Config holds configuration for Kafka producer.
type Config struct {
	Brokers  []string
	ClientID string
}

// Message is one record to publish.
type Message struct {
	Topic string
	Key   []byte
	Value []byte
}

// producerImpl implements IProducer.
type producerImpl struct {
	producer sarama.SyncProducer
}
