package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/metinatakli/seat-reservation-engine/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 3 * time.Second

var bookingQueues = []domain.BookingEventType{
	domain.BookingEventCreated,
	domain.BookingEventCancelled,
}

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type connection interface {
	IsClosed() bool
	Close() error
}

// RabbitPublisher sends booking events to one durable queue per event type
// through the default exchange. amqp channels are not safe for concurrent
// publishing, so every publish holds mu.
type RabbitPublisher struct {
	mu      sync.Mutex
	url     string
	conn    connection
	ch      channel
	logger  *slog.Logger
	openFn  func() (channel, error)
	nowFunc func() time.Time
}

func NewRabbitPublisher(url string, logger *slog.Logger) (*RabbitPublisher, error) {
	p := &RabbitPublisher{
		url:     url,
		logger:  logger,
		nowFunc: time.Now,
	}
	p.openFn = p.dial

	if err := p.connect(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *RabbitPublisher) dial() (channel, error) {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel open failed: %w", err)
	}

	p.conn = conn

	return ch, nil
}

func (p *RabbitPublisher) connect() error {
	ch, err := p.openFn()
	if err != nil {
		return err
	}

	p.ch = ch

	for _, queue := range bookingQueues {
		if _, err := ch.QueueDeclare(string(queue), true, false, false, false, nil); err != nil {
			_ = p.closeLocked()
			return fmt.Errorf("rabbitmq queue declare %s failed: %w", queue, err)
		}
	}

	return nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, event domain.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		p.logger.Info("reconnecting to rabbitmq")
		p.closeLocked()

		if err := p.connect(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.nowFunc().UTC(),
		MessageId:    event.BookingID + ":" + string(event.Type),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, "", string(event.Type), false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq publish failed: %w", err)
	}

	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closeLocked()
}

func (p *RabbitPublisher) closeLocked() error {
	var err error

	if p.ch != nil && !p.ch.IsClosed() {
		err = p.ch.Close()
	}
	p.ch = nil

	if p.conn != nil && !p.conn.IsClosed() {
		if connErr := p.conn.Close(); connErr != nil && err == nil {
			err = connErr
		}
	}
	p.conn = nil

	return err
}
