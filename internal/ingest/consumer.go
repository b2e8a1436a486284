// Package ingest provides the telemetry ingestion service: it consumes
// water-quality readings from RabbitMQ and persists them to PostgreSQL.
// This is the only write path for sensor data; the HTTP API never inserts
// readings.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"google.golang.org/protobuf/proto"
	"gorm.io/gorm"

	"aquamon.dev/aquamon/internal/store"
	"aquamon.dev/aquamon/pkg/metrics"
	"aquamon.dev/aquamon/pkg/mq"
	"aquamon.dev/aquamon/pkg/telemetry"
)

// Consumer consumes telemetry messages from RabbitMQ and persists them.
type Consumer struct {
	logger    *slog.Logger
	db        *gorm.DB
	mqClient  mq.ClientInterface
	queueName string
	metrics   *metrics.IngestMetrics // Optional metrics
	done      chan struct{}
}

// ConsumerConfig holds the configuration for the Consumer.
type ConsumerConfig struct {
	Logger      *slog.Logger
	DB          *gorm.DB
	RabbitMQURL string
	QueueName   string
	// Metrics is the optional Prometheus collector.
	Metrics *metrics.IngestMetrics
	// Client overrides the MQ client, used by tests. When nil a real
	// client is created from RabbitMQURL and QueueName.
	Client mq.ClientInterface
}

// NewConsumer creates a new Consumer instance.
func NewConsumer(cfg *ConsumerConfig) (*Consumer, error) {
	if cfg == nil {
		return nil, errors.New("consumer config cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	client := cfg.Client
	if client == nil {
		if cfg.RabbitMQURL == "" {
			return nil, errors.New("rabbitmq URL cannot be empty")
		}

		if cfg.QueueName == "" {
			return nil, errors.New("queue name cannot be empty")
		}

		client = mq.New(cfg.QueueName, cfg.RabbitMQURL, cfg.Logger)
	}

	return &Consumer{
		logger:    cfg.Logger,
		db:        cfg.DB,
		mqClient:  client,
		queueName: cfg.QueueName,
		metrics:   cfg.Metrics,
		done:      make(chan struct{}),
	}, nil
}

// Start begins consuming telemetry messages.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info("starting consumer")

	// Give the MQ client time to finish its initial connection.
	time.Sleep(2 * time.Second)

	deliveries, err := c.mqClient.Consume()
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.logger.Info("consumer started, waiting for telemetry")

	if c.metrics != nil {
		c.metrics.ActiveConsumers.Inc()
	}

	go c.processMessages(ctx, deliveries)

	return nil
}

// processMessages drains the deliveries channel until the context is
// canceled or the channel closes.
func (c *Consumer) processMessages(ctx context.Context, deliveries <-chan amqp.Delivery) {
	defer func() {
		if c.metrics != nil {
			c.metrics.ActiveConsumers.Dec()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("context canceled, stopping message processing")
			close(c.done)
			return

		case delivery, ok := <-deliveries:
			if !ok {
				c.logger.Warn("deliveries channel closed")
				close(c.done)
				return
			}

			c.handleDelivery(ctx, delivery)
		}
	}
}

// handleDelivery processes a single telemetry message. Undecodable
// messages are acked and dropped; database failures nack with requeue so
// the reading is not lost.
func (c *Consumer) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	var timer *prometheus.Timer
	if c.metrics != nil {
		timer = prometheus.NewTimer(c.metrics.ProcessingDuration.WithLabelValues(c.queueName))
		defer timer.ObserveDuration()
	}

	reading := &telemetry.WaterReading{}
	if err := proto.Unmarshal(delivery.Body, reading); err != nil {
		c.logger.Error("failed to unmarshal water reading", "error", err)

		if c.metrics != nil {
			c.metrics.ConsumerErrors.WithLabelValues(c.queueName, "decode").Inc()
			c.metrics.ConsumerMessagesTotal.WithLabelValues(c.queueName, "error").Inc()
		}

		// A malformed message will never decode; requeueing it would loop.
		if ackErr := delivery.Ack(false); ackErr != nil {
			c.logger.Error("failed to ack message", "error", ackErr)
		}
		return
	}

	c.logger.Debug("received water reading",
		"aquarium_id", reading.GetAquariumId(),
		"user_id", reading.GetUserId(),
		"ph", reading.GetPh(),
		"temperature", reading.GetTemperature(),
	)

	if err := c.saveReading(ctx, reading); err != nil {
		c.logger.Error("failed to save water reading",
			"aquarium_id", reading.GetAquariumId(),
			"error", err,
		)

		if c.metrics != nil {
			c.metrics.ConsumerErrors.WithLabelValues(c.queueName, "db").Inc()
			c.metrics.ConsumerMessagesTotal.WithLabelValues(c.queueName, "error").Inc()
		}

		// Nack with requeue so the reading can be reprocessed.
		if nackErr := delivery.Nack(false, true); nackErr != nil {
			c.logger.Error("failed to nack message", "error", nackErr)
		}
		return
	}

	if err := delivery.Ack(false); err != nil {
		c.logger.Error("failed to ack message", "error", err)
		return
	}

	if c.metrics != nil {
		c.metrics.ConsumerMessagesTotal.WithLabelValues(c.queueName, "success").Inc()
		c.metrics.ReadingsPersisted.Inc()
	}
}

// saveReading persists a water reading to the database.
func (c *Consumer) saveReading(ctx context.Context, reading *telemetry.WaterReading) error {
	row := ReadingToModel(reading)

	if err := c.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create sensor reading: %w", err)
	}

	return nil
}

// ReadingToModel converts a wire-format reading into its database row.
func ReadingToModel(reading *telemetry.WaterReading) *store.SensorReading {
	return &store.SensorReading{
		PH:          reading.GetPh(),
		Temperature: reading.GetTemperature(),
		Luminosity:  reading.GetLuminosity(),
		Turbidity:   reading.GetTurbidity(),
		Moment:      time.Unix(reading.GetTimestamp(), 0).UTC(),
		AquariumID:  uint(reading.GetAquariumId()),
		UserID:      uint(reading.GetUserId()),
	}
}

// Stop stops the consumer and closes the MQ client.
func (c *Consumer) Stop() error {
	c.logger.Info("stopping consumer")

	if err := c.mqClient.Close(); err != nil {
		return fmt.Errorf("failed to close mq client: %w", err)
	}

	<-c.done

	c.logger.Info("consumer stopped")
	return nil
}
