package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

const (
	// Exchange is the topic exchange every inventory event goes to.
	Exchange = "inventory"
	// Queue collects all inventory events for the in-process consumer.
	Queue = "inventory_events"
	// BindingKey matches every inventory routing key.
	BindingKey = "inventory.*"
)

var ErrClosed = errors.New("rabbitmq channel is not available")

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex // guards channel for publishing
	log     *zap.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ and declares the inventory exchange, queue
// and binding.
func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declare(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.Info("rabbitmq connected", zap.String("exchange", Exchange), zap.String("queue", Queue))
	return &Client{conn: conn, channel: ch, log: log}, nil
}

func declare(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", Exchange, err)
	}
	if _, err := ch.QueueDeclare(Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", Queue, err)
	}
	if err := ch.QueueBind(Queue, BindingKey, Exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", Queue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Publish sends payload as a persistent JSON message with routingKey.
func (c *Client) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	if c.channel == nil {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := NewPublishing(payload, time.Now())
	if err != nil {
		return err
	}

	c.mu.Lock()
	err = c.channel.Publish(Exchange, routingKey, false, false, msg)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}
	c.log.Debug("event published", zap.String("routing_key", routingKey))
	return nil
}

// NewPublishing encodes payload as a persistent JSON message.
func NewPublishing(payload interface{}, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
	}, nil
}

// Consume delivers messages from Queue to handler until ctx is done or the
// channel closes. Messages the handler fails on are dropped, not requeued.
func (c *Client) Consume(ctx context.Context, handler func(routingKey string, body []byte) error) error {
	if c.channel == nil {
		return ErrClosed
	}
	msgs, err := c.channel.Consume(Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return ErrClosed
			}
			c.handle(msg, handler)
		}
	}
}

func (c *Client) handle(msg amqp.Delivery, handler func(string, []byte) error) {
	if err := handler(msg.RoutingKey, msg.Body); err != nil {
		c.log.Warn("event handling failed",
			zap.Uint64("delivery_tag", msg.DeliveryTag),
			zap.String("routing_key", msg.RoutingKey),
			zap.Error(err))
		if nackErr := msg.Nack(false, false); nackErr != nil {
			c.log.Error("nack failed", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(nackErr))
		}
		return
	}
	if ackErr := msg.Ack(false); ackErr != nil {
		c.log.Error("ack failed", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(ackErr))
	}
}
