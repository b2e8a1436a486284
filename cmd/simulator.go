package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aquamon.dev/aquamon/internal/simulator"
	"aquamon.dev/aquamon/pkg/metrics"
)

var simulatorCmd = &cobra.Command{
	Use:   "simulator",
	Short: "Run the telemetry simulator",
	Long: `Run the simulator that:
- Generates synthetic water-quality readings
- Publishes readings to RabbitMQ
- Supports multiple concurrent producers`,
	RunE: runSimulator,
}

func init() {
	rootCmd.AddCommand(simulatorCmd)

	// Simulator-specific flags
	simulatorCmd.Flags().String("rabbitmq-url", "amqp://localhost:5672", "RabbitMQ URL")
	simulatorCmd.Flags().String("queue-name", "water-readings", "RabbitMQ queue name for water readings")
	simulatorCmd.Flags().Int("producer-count", 3, "Number of concurrent producers")
	simulatorCmd.Flags().Duration("interval", 5*time.Second, "Interval between readings")
	simulatorCmd.Flags().Int64("base-aquarium-id", 1, "First aquarium id the probes report for")
	simulatorCmd.Flags().Int64("base-user-id", 1, "First user id the probes report for")

	// Bind flags to viper
	_ = viper.BindPFlag("simulator.rabbitmq.url", simulatorCmd.Flags().Lookup("rabbitmq-url"))
	_ = viper.BindPFlag("simulator.rabbitmq.queue_name", simulatorCmd.Flags().Lookup("queue-name"))
	_ = viper.BindPFlag("simulator.producer_count", simulatorCmd.Flags().Lookup("producer-count"))
	_ = viper.BindPFlag("simulator.interval", simulatorCmd.Flags().Lookup("interval"))
	_ = viper.BindPFlag("simulator.base_aquarium_id", simulatorCmd.Flags().Lookup("base-aquarium-id"))
	_ = viper.BindPFlag("simulator.base_user_id", simulatorCmd.Flags().Lookup("base-user-id"))
}

func runSimulator(_ *cobra.Command, _ []string) error {
	logger := GetLogger()
	logger.Info("starting simulator service")

	// Create simulator configuration from viper
	config := &simulator.ServerConfig{
		Logger:         logger,
		RabbitMQURL:    viper.GetString("simulator.rabbitmq.url"),
		QueueName:      viper.GetString("simulator.rabbitmq.queue_name"),
		ProducerCount:  viper.GetInt("simulator.producer_count"),
		Interval:       viper.GetDuration("simulator.interval"),
		BaseAquariumID: viper.GetInt64("simulator.base_aquarium_id"),
		BaseUserID:     viper.GetInt64("simulator.base_user_id"),
		Metrics:        metrics.NewSimulatorMetrics("aquamon"),
		MQMetrics:      metrics.NewMQMetrics("aquamon"),
	}

	// Create and run server
	server, err := simulator.NewServer(config)
	if err != nil {
		logger.Error("failed to create simulator server", "error", err)
		return err
	}

	logger.Info("simulator server configuration",
		"rabbitmq_url", config.RabbitMQURL,
		"queue", config.QueueName,
		"producer_count", config.ProducerCount,
		"interval", config.Interval,
	)

	if err := server.Run(context.Background()); err != nil {
		logger.Error("simulator server error", "error", err)
		return err
	}

	logger.Info("simulator server stopped")
	return nil
}
