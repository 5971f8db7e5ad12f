// Package service publishes domain events to RabbitMQ.  Errors are logged
// and returned so callers can ignore failures without interrupting the
// main request flow.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/ruva-app/ruva-backend/internal/diagnostic"
	"github.com/ruva-app/ruva-backend/internal/queue"
)

// QueuePublisher dials the broker per publish; events are rare (one per
// diagnostic request) so no connection is held open.
type QueuePublisher struct {
	url string
	log *zap.Logger
}

// NewQueuePublisher returns a publisher for the given AMQP URL.
func NewQueuePublisher(url string, log *zap.Logger) *QueuePublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &QueuePublisher{url: url, log: log}
}

// DiagnosticEvent builds the event for one probe outcome.
func DiagnosticEvent(serviceName string, o diagnostic.Outcome, at time.Time) queue.DiagnosticCheckedEvent {
	return queue.DiagnosticCheckedEvent{
		Service:     serviceName,
		Status:      o.Status.String(),
		Error:       o.Excerpt,
		Database:    o.Name,
		Collections: len(o.Collections),
		CheckedAt:   at.UTC().Format(time.RFC3339),
	}
}

// PublishDiagnosticChecked publishes an event to the "diagnostic.checked"
// queue.  Messages are marked as persistent.
func (p *QueuePublisher) PublishDiagnosticChecked(ctx context.Context, event queue.DiagnosticCheckedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("rabbitmq: dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("rabbitmq: channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		queue.DiagnosticQueueName, // name
		true,                      // durable
		false,                     // autoDelete
		false,                     // exclusive
		false,                     // noWait
		nil,                       // args
	); err != nil {
		p.log.Warn("rabbitmq: queue declare failed", zap.Error(err))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("rabbitmq: marshal event failed", zap.Error(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",                        // default exchange
		queue.DiagnosticQueueName, // routing key = queue name
		false,                     // mandatory
		false,                     // immediate
		pub,
	); err != nil {
		p.log.Warn("rabbitmq: publish failed", zap.Error(err))
		return err
	}
	return nil
}
