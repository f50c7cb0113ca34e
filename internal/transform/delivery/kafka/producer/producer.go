package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"crawler-console/internal/transform"
	kafkaDelivery "crawler-console/internal/transform/delivery/kafka"
	pkgKafka "crawler-console/pkg/kafka"
)

// PublishProgress publishes a transform progress event
func (p *implProducer) PublishProgress(ctx context.Context, progress transform.Progress) error {
	msg := kafkaDelivery.TransformProgressMessage{
		JobID:       progress.JobID,
		Completed:   progress.Completed,
		Total:       progress.Total,
		Percent:     progress.Percent,
		CurrentFile: progress.CurrentFile,
		Status:      progress.Status,
		Error:       progress.Error,
		UpdatedAt:   progress.UpdatedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal transform progress: %w", err)
	}

	if err := p.producer.Publish(pkgKafka.Message{
		Topic: kafkaDelivery.TopicTransformProgress,
		Key:   []byte(progress.JobID),
		Value: body,
	}); err != nil {
		return fmt.Errorf("failed to publish transform progress: %w", err)
	}

	p.l.Debugf(ctx, "Published transform progress for job %s: %d/%d", progress.JobID, progress.Completed, progress.Total)
	return nil
}

// PublishResult publishes a transform result event
func (p *implProducer) PublishResult(ctx context.Context, result transform.JobResult) error {
	msg := kafkaDelivery.TransformResultMessage{
		JobID:       result.JobID,
		Status:      result.Status,
		Format:      string(result.Format),
		ArchiveName: result.ArchiveName,
		FileCount:   result.FileCount,
		RecordCount: result.RecordCount,
		Error:       result.Error,
		CompletedAt: result.CompletedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal transform result: %w", err)
	}

	if err := p.producer.Publish(pkgKafka.Message{
		Topic: kafkaDelivery.TopicTransformResults,
		Key:   []byte(result.JobID),
		Value: body,
	}); err != nil {
		return fmt.Errorf("failed to publish transform result: %w", err)
	}

	p.l.Infof(ctx, "Published transform result for job %s: %s", result.JobID, result.Status)
	return nil
}
