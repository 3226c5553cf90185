package services

import (
	"context"
	"fmt"

	"cashflow/internal/events"
	"cashflow/internal/models"
)

// LoggingObserver writes an audit line for every lifecycle event
type LoggingObserver struct {
	audit AuditLoggerInterface
}

func NewLoggingObserver(audit AuditLoggerInterface) *LoggingObserver {
	return &LoggingObserver{audit: audit}
}

func (o *LoggingObserver) Name() string { return "logging" }

func (o *LoggingObserver) OnTransactionCreated(ctx context.Context, tx *models.Transaction) error {
	o.audit.LogTransactionEvent(ctx, events.EventCreated, tx)
	return nil
}

func (o *LoggingObserver) OnTransactionDeleted(ctx context.Context, tx *models.Transaction) error {
	o.audit.LogTransactionEvent(ctx, events.EventDeleted, tx)
	return nil
}

// EventPublisherObserver forwards lifecycle events to the message broker
type EventPublisherObserver struct {
	publisher EventPublisherInterface
}

func NewEventPublisherObserver(publisher EventPublisherInterface) *EventPublisherObserver {
	return &EventPublisherObserver{publisher: publisher}
}

func (o *EventPublisherObserver) Name() string { return "event_publisher" }

func (o *EventPublisherObserver) publish(ctx context.Context, event string, tx *models.Transaction) error {
	if err := o.publisher.Publish(ctx, events.NewTransactionEvent(event, tx)); err != nil {
		return fmt.Errorf("failed to publish transaction %s event: %w", event, err)
	}
	return nil
}

func (o *EventPublisherObserver) OnTransactionCreated(ctx context.Context, tx *models.Transaction) error {
	return o.publish(ctx, events.EventCreated, tx)
}

func (o *EventPublisherObserver) OnTransactionDeleted(ctx context.Context, tx *models.Transaction) error {
	return o.publish(ctx, events.EventDeleted, tx)
}

// MetricsObserver counts lifecycle events by event and transaction type
type MetricsObserver struct {
	metrics MetricsRecorderInterface
}

func NewMetricsObserver(metrics MetricsRecorderInterface) *MetricsObserver {
	return &MetricsObserver{metrics: metrics}
}

func (o *MetricsObserver) Name() string { return "metrics" }

func (o *MetricsObserver) count(event string, tx *models.Transaction) error {
	o.metrics.IncrementCounter(MetricTransactionEvent, map[string]string{
		"event": event,
		"type":  string(tx.Type),
	})
	return nil
}

func (o *MetricsObserver) OnTransactionCreated(_ context.Context, tx *models.Transaction) error {
	return o.count(events.EventCreated, tx)
}

func (o *MetricsObserver) OnTransactionDeleted(_ context.Context, tx *models.Transaction) error {
	return o.count(events.EventDeleted, tx)
}
