package mq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ClientInterface defines the message queue operations used by the
// aquamon services. It exists so consumers and producers can be tested
// against a mock.
type ClientInterface interface {
	// Push publishes data to the queue and waits for a broker confirmation.
	// The context is used for cancellation and timeout.
	Push(ctx context.Context, data []byte) error

	// UnsafePush publishes without waiting for a confirmation.
	// No delivery guarantee is provided.
	UnsafePush(ctx context.Context, data []byte) error

	// Consume returns a channel of deliveries. Each delivery must be
	// Acked after successful processing or Nacked on failure.
	Consume() (<-chan amqp.Delivery, error)

	// Close cleanly shuts down the channel and connection.
	Close() error
}

// Ensure Client implements ClientInterface.
var _ ClientInterface = (*Client)(nil)
