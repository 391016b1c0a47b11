// Package kafka publishes integration events to Kafka so downstream
// services can react to orders placed in this service.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// orderCreatedEvent is the wire format of the order.created event.
type orderCreatedEvent struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderCreatedPublisher publishes order.created events to a Kafka topic.
// Messages are keyed by order ID so consumers see events for one order
// in publication order.
type OrderCreatedPublisher struct {
	writer *kafka.Writer
}

// NewOrderCreatedPublisher creates a publisher writing to the given topic
// on the given brokers.
func NewOrderCreatedPublisher(topic string, brokers ...string) *OrderCreatedPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	return &OrderCreatedPublisher{writer: w}
}

// PublishOrderCreated publishes an order.created event for the given order.
func (p *OrderCreatedPublisher) PublishOrderCreated(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	total, err := aggregate.Total()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(orderCreatedEvent{
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		TotalCents: total.Cents(),
		CreatedAt:  aggregate.CreatedAt(),
	})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(aggregate.ID().String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order.created")},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

// Close releases the underlying Kafka writer.
func (p *OrderCreatedPublisher) Close() error {
	return p.writer.Close()
}
