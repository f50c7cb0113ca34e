package producer

import (
	"crawler-console/internal/transform"
	pkgKafka "crawler-console/pkg/kafka"
	"crawler-console/pkg/log"
)

// Producer interface for transform domain
type Producer interface {
	transform.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new transform producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
