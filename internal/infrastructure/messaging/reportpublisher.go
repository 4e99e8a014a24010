// Package messaging forwards report domain events to a RabbitMQ topic exchange.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

const publishTimeout = 5 * time.Second

type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// dialFunc opens a channel and returns a closer for the underlying connection.
type dialFunc func(url string) (amqpChannel, func() error, error)

func dialAMQP(url string) (amqpChannel, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial failed: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel open failed: %w", err)
	}
	return ch, conn.Close, nil
}

// ReportEventPublisher is an event handler that republishes report events as
// persistent JSON messages routed by event type.
type ReportEventPublisher struct {
	url      string
	exchange string
	dial     dialFunc
	logger   logger.Interface

	mu        sync.Mutex
	channel   amqpChannel
	closeConn func() error
}

func NewReportEventPublisher(url, exchange string, log logger.Interface) *ReportEventPublisher {
	return &ReportEventPublisher{
		url:      url,
		exchange: exchange,
		dial:     dialAMQP,
		logger:   log,
	}
}

func (p *ReportEventPublisher) EventTypes() []string {
	return []string{
		report.EventReportCreated,
		report.EventReportAssigned,
		report.EventReportProgressUpdated,
		report.EventReportResolved,
		report.EventReportUpdated,
		report.EventReportDeleted,
	}
}

func (p *ReportEventPublisher) CanHandle(eventType string) bool {
	for _, t := range p.EventTypes() {
		if t == eventType {
			return true
		}
	}
	return false
}

func (p *ReportEventPublisher) Handle(event events.DomainEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.ensureChannel()
	if err != nil {
		return err
	}

	if err := ch.PublishWithContext(ctx, p.exchange, event.GetEventType(), false, false, msg); err != nil {
		p.resetLocked()
		p.logger.Warnw("failed to publish report event",
			"event_type", event.GetEventType(),
			"aggregate_id", event.GetAggregateID(),
			"error", err,
		)
		return fmt.Errorf("rabbitmq publish failed: %w", err)
	}

	p.logger.Debugw("report event published", "event_type", event.GetEventType(), "aggregate_id", event.GetAggregateID())
	return nil
}

func (p *ReportEventPublisher) ensureChannel() (amqpChannel, error) {
	if p.channel != nil {
		return p.channel, nil
	}

	ch, closeConn, err := p.dial(p.url)
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = closeConn()
		return nil, fmt.Errorf("rabbitmq exchange declare failed: %w", err)
	}

	p.channel = ch
	p.closeConn = closeConn
	return ch, nil
}

func (p *ReportEventPublisher) resetLocked() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.closeConn != nil {
		_ = p.closeConn()
	}
	p.channel = nil
	p.closeConn = nil
}

// Close releases the broker connection.
func (p *ReportEventPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
}

func encodeEvent(event events.DomainEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.GetOccurredAt(),
		Type:         event.GetEventType(),
		MessageId:    fmt.Sprintf("%s:%s:%d", event.GetEventType(), event.GetAggregateID(), event.GetOccurredAt().UnixNano()),
		Body:         body,
	}, nil
}
