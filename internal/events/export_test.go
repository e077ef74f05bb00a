package events

import (
	"context"

	"github.com/rabbitmq/amqp091-go"
)

type PublishFunc func(ctx context.Context, exchange, key string, msg amqp091.Publishing) error

type funcChannel PublishFunc

func (f funcChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	return f(ctx, exchange, key, msg)
}

func (funcChannel) Close() error { return nil }

// NewTestPublisher returns a publisher sending through publish instead of
// a broker connection.
func NewTestPublisher(exchange, queue string, publish PublishFunc) *Publisher {
	return &Publisher{channel: funcChannel(publish), exchange: exchange, queue: queue}
}
