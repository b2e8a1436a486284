package ingest_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	amqp "github.com/rabbitmq/amqp091-go"
	"google.golang.org/protobuf/proto"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"aquamon.dev/aquamon/internal/ingest"
	"aquamon.dev/aquamon/internal/store"
	"aquamon.dev/aquamon/pkg/mq/mock"
	"aquamon.dev/aquamon/pkg/telemetry"
)

// fakeAcknowledger records ack/nack outcomes for assertions.
type fakeAcknowledger struct {
	mu    sync.Mutex
	acks  int
	nacks int
}

func (f *fakeAcknowledger) Ack(_ uint64, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks++
	return nil
}

func (f *fakeAcknowledger) Nack(_ uint64, _ bool, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nacks++
	return nil
}

func (f *fakeAcknowledger) Reject(_ uint64, _ bool) error {
	return f.Nack(0, false, false)
}

func (f *fakeAcknowledger) ackCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.acks
}

func (f *fakeAcknowledger) nackCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nacks
}

var _ = Describe("Consumer", func() {
	var (
		logger *slog.Logger
		db     *gorm.DB
	)

	newTestDB := func() *gorm.DB {
		dsn := fmt.Sprintf("file:ingesttest%d?mode=memory&cache=shared", time.Now().UnixNano())
		testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(store.Migrate(testDB)).To(Succeed())
		return testDB
	}

	BeforeEach(func() {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
		db = newTestDB()
	})

	Describe("NewConsumer", func() {
		Context("with invalid configuration", func() {
			It("should return error when config is nil", func() {
				consumer, err := ingest.NewConsumer(nil)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("config cannot be nil"))
				Expect(consumer).To(BeNil())
			})

			It("should return error when logger is nil", func() {
				consumer, err := ingest.NewConsumer(&ingest.ConsumerConfig{
					DB:          db,
					RabbitMQURL: "amqp://localhost:5672",
					QueueName:   "test-queue",
				})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("logger"))
				Expect(consumer).To(BeNil())
			})

			It("should return error when database is nil", func() {
				consumer, err := ingest.NewConsumer(&ingest.ConsumerConfig{
					Logger:      logger,
					RabbitMQURL: "amqp://localhost:5672",
					QueueName:   "test-queue",
				})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("database"))
				Expect(consumer).To(BeNil())
			})

			It("should return error when the URL is empty and no client is injected", func() {
				consumer, err := ingest.NewConsumer(&ingest.ConsumerConfig{
					Logger:    logger,
					DB:        db,
					QueueName: "test-queue",
				})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("rabbitmq URL"))
				Expect(consumer).To(BeNil())
			})
		})

		Context("with an injected client", func() {
			It("should not require a URL or queue name", func() {
				consumer, err := ingest.NewConsumer(&ingest.ConsumerConfig{
					Logger: logger,
					DB:     db,
					Client: mock.NewMockClient(),
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(consumer).NotTo(BeNil())
			})
		})
	})

	Describe("ReadingToModel", func() {
		It("should map every field and convert the timestamp to UTC", func() {
			moment := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
			reading := &telemetry.WaterReading{
				AquariumId:  3,
				UserId:      9,
				Ph:          7.2,
				Temperature: 24.5,
				Luminosity:  540,
				Turbidity:   3.1,
				Timestamp:   moment.Unix(),
			}

			row := ingest.ReadingToModel(reading)
			Expect(row.AquariumID).To(Equal(uint(3)))
			Expect(row.UserID).To(Equal(uint(9)))
			Expect(row.PH).To(Equal(7.2))
			Expect(row.Temperature).To(Equal(24.5))
			Expect(row.Luminosity).To(Equal(540.0))
			Expect(row.Turbidity).To(Equal(3.1))
			Expect(row.Moment).To(Equal(moment))
			Expect(row.Moment.Location()).To(Equal(time.UTC))
		})
	})

	Describe("message processing", func() {
		var (
			deliveries chan amqp.Delivery
			client     *mock.MockClient
			consumer   *ingest.Consumer
			cancel     context.CancelFunc
		)

		BeforeEach(func() {
			deliveries = make(chan amqp.Delivery, 10)
			client = mock.NewMockClient()
			client.ConsumeChannel = deliveries

			var err error
			consumer, err = ingest.NewConsumer(&ingest.ConsumerConfig{
				Logger:    logger,
				DB:        db,
				QueueName: "test-queue",
				Client:    client,
			})
			Expect(err).NotTo(HaveOccurred())

			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			Expect(consumer.Start(ctx)).To(Succeed())
		})

		AfterEach(func() {
			cancel()
			Expect(consumer.Stop()).To(Succeed())
		})

		It("should persist a valid reading and ack it", func() {
			ack := &fakeAcknowledger{}
			reading := &telemetry.WaterReading{
				AquariumId:  1,
				UserId:      1,
				Ph:          7.3,
				Temperature: 25.1,
				Luminosity:  600,
				Turbidity:   2.4,
				Timestamp:   time.Now().Unix(),
			}
			body, err := proto.Marshal(reading)
			Expect(err).NotTo(HaveOccurred())

			deliveries <- amqp.Delivery{Acknowledger: ack, Body: body}

			Eventually(func() int64 {
				var count int64
				db.Model(&store.SensorReading{}).Count(&count)
				return count
			}, 5*time.Second).Should(Equal(int64(1)))

			Eventually(ack.ackCount, 5*time.Second).Should(Equal(1))
			Expect(ack.nackCount()).To(BeZero())

			var row store.SensorReading
			Expect(db.First(&row).Error).To(Succeed())
			Expect(row.PH).To(Equal(7.3))
			Expect(row.UserID).To(Equal(uint(1)))
		})

		It("should ack and drop an undecodable message", func() {
			ack := &fakeAcknowledger{}

			deliveries <- amqp.Delivery{Acknowledger: ack, Body: []byte("not protobuf at all, definitely not")}

			Eventually(ack.ackCount, 5*time.Second).Should(Equal(1))

			var count int64
			Expect(db.Model(&store.SensorReading{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})

		It("should process multiple readings in order", func() {
			ack := &fakeAcknowledger{}

			for i := 1; i <= 3; i++ {
				body, err := proto.Marshal(&telemetry.WaterReading{
					AquariumId: int64(i),
					UserId:     1,
					Ph:         7.0,
					Timestamp:  time.Now().Unix(),
				})
				Expect(err).NotTo(HaveOccurred())
				deliveries <- amqp.Delivery{Acknowledger: ack, Body: body}
			}

			Eventually(func() int64 {
				var count int64
				db.Model(&store.SensorReading{}).Count(&count)
				return count
			}, 5*time.Second).Should(Equal(int64(3)))

			Eventually(ack.ackCount, 5*time.Second).Should(Equal(3))
		})
	})
})
