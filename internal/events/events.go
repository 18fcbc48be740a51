// Package events publishes user activity (completed interviews, analysed CVs) to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/Susmita-Codes/Pravartak-AI/internal/config"
	"github.com/Susmita-Codes/Pravartak-AI/internal/logger"
)

const (
	InterviewCompleted = "interview.completed"
	CVAnalyzed         = "cv.analyzed"
)

type Event struct {
	Type       string         `json:"type"`
	UserID     string         `json:"userId"`
	OccurredAt time.Time      `json:"occurredAt"`
	Data       map[string]any `json:"data,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }

// New dials RabbitMQ, or returns Noop when no URL is configured.
func New(cfg config.EventsConfig) (Publisher, error) {
	if cfg.AMQPURL == "" {
		return Noop{}, nil
	}
	return NewAMQP(cfg.AMQPURL, cfg.Exchange)
}

type AMQP struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	exchange string
}

func NewAMQP(url, exchange string) (*AMQP, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("declaring exchange %s: %w", exchange, err)
	}

	logger.L().Info("event publisher connected", zap.String("exchange", exchange))
	return &AMQP{conn: conn, exchange: exchange}, nil
}

// Publish sends ev with its type as the routing key.
func (p *AMQP) Publish(_ context.Context, ev Event) error {
	msg, err := newPublishing(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("opening channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Publish(p.exchange, ev.Type, false, false, msg); err != nil {
		return fmt.Errorf("publishing %s: %w", ev.Type, err)
	}
	return nil
}

func (p *AMQP) Close() error {
	return p.conn.Close()
}

func newPublishing(ev Event) (amqp.Publishing, error) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encoding event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		Type:         ev.Type,
		Body:         body,
	}, nil
}
