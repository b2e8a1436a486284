package simulator_test

import (
	"context"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aquamon.dev/aquamon/internal/simulator"
)

var _ = Describe("Simulator Server", func() {
	var logger *slog.Logger

	BeforeEach(func() {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
	})

	Describe("NewServer", func() {
		Context("with valid configuration", func() {
			It("should create a server", func() {
				config := &simulator.ServerConfig{
					Logger:        logger,
					RabbitMQURL:   "amqp://localhost:5672",
					QueueName:     "water-readings",
					ProducerCount: 3,
					Interval:      5 * time.Second,
				}

				server, err := simulator.NewServer(config)
				Expect(err).NotTo(HaveOccurred())
				Expect(server).NotTo(BeNil())
			})
		})

		Context("with invalid configuration", func() {
			It("should return error when producer count is not positive", func() {
				config := &simulator.ServerConfig{
					Logger:        logger,
					RabbitMQURL:   "amqp://localhost:5672",
					QueueName:     "water-readings",
					ProducerCount: 0,
					Interval:      5 * time.Second,
				}

				server, err := simulator.NewServer(config)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("producer count"))
				Expect(server).To(BeNil())
			})

			It("should return error when interval is not positive", func() {
				config := &simulator.ServerConfig{
					Logger:        logger,
					RabbitMQURL:   "amqp://localhost:5672",
					QueueName:     "water-readings",
					ProducerCount: 3,
					Interval:      0,
				}

				server, err := simulator.NewServer(config)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("interval"))
				Expect(server).To(BeNil())
			})

			It("should return error when logger is nil", func() {
				config := &simulator.ServerConfig{
					RabbitMQURL:   "amqp://localhost:5672",
					QueueName:     "water-readings",
					ProducerCount: 3,
					Interval:      5 * time.Second,
				}

				server, err := simulator.NewServer(config)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("logger"))
				Expect(server).To(BeNil())
			})
		})
	})

	Describe("Run", func() {
		It("should shut down when the context is canceled", func() {
			config := &simulator.ServerConfig{
				Logger:        logger,
				RabbitMQURL:   "amqp://invalid:5672", // Invalid to prevent actual connection
				QueueName:     "water-readings",
				ProducerCount: 2,
				Interval:      100 * time.Millisecond,
			}

			server, err := simulator.NewServer(config)
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				done <- server.Run(ctx)
			}()

			Eventually(done, 2*time.Second).Should(Receive(BeNil()))
		})

		It("should shut down immediately with a pre-canceled context", func() {
			config := &simulator.ServerConfig{
				Logger:        logger,
				RabbitMQURL:   "amqp://invalid:5672",
				QueueName:     "water-readings",
				ProducerCount: 1,
				Interval:      1 * time.Second,
			}

			server, err := simulator.NewServer(config)
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			done := make(chan error, 1)
			go func() {
				done <- server.Run(ctx)
			}()

			Eventually(done, 1*time.Second).Should(Receive(BeNil()))
		})
	})

	Describe("Shutdown", func() {
		It("should shut down cleanly without a run", func() {
			config := &simulator.ServerConfig{
				Logger:        logger,
				RabbitMQURL:   "amqp://invalid:5672",
				QueueName:     "water-readings",
				ProducerCount: 2,
				Interval:      1 * time.Second,
			}

			server, err := simulator.NewServer(config)
			Expect(err).NotTo(HaveOccurred())

			Expect(server.Shutdown()).To(Succeed())
		})
	})
})
