package simulator_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/protobuf/proto"

	"aquamon.dev/aquamon/internal/simulator"
	"aquamon.dev/aquamon/pkg/mq/mock"
	"aquamon.dev/aquamon/pkg/telemetry"
)

var _ = Describe("Producer", func() {
	Describe("NewProducer", func() {
		It("should create a producer with at least one probe", func() {
			prod := simulator.NewProducer(mock.NewMockClient(), 1, 1)
			Expect(prod).NotTo(BeNil())
			Expect(prod.Probes).NotTo(BeEmpty())
			Expect(len(prod.Probes)).To(BeNumerically("<=", 3))
		})

		It("should assign probes ids from the given base", func() {
			prod := simulator.NewProducer(mock.NewMockClient(), 100, 200)
			for i, probe := range prod.Probes {
				Expect(probe.AquariumID).To(Equal(int64(100 + i)))
				Expect(probe.UserID).To(Equal(int64(200 + i)))
			}
		})

		It("should keep the provided MQ client", func() {
			client := mock.NewMockClient()
			prod := simulator.NewProducer(client, 1, 1)
			Expect(prod.MQClient).To(Equal(client))
		})
	})

	Describe("PublishReading", func() {
		var (
			client *mock.MockClient
			prod   *simulator.Producer
		)

		BeforeEach(func() {
			client = mock.NewMockClient()
			prod = simulator.NewProducer(client, 1, 1)
		})

		It("should publish a decodable water reading", func() {
			ctx := context.Background()
			Expect(prod.PublishReading(ctx)).To(Succeed())
			Expect(client.PushCalls).To(HaveLen(1))

			reading := &telemetry.WaterReading{}
			Expect(proto.Unmarshal(client.PushCalls[0].Data, reading)).To(Succeed())
			Expect(reading.GetAquariumId()).To(BeNumerically(">=", 1))
			Expect(reading.GetPh()).To(BeNumerically(">", 0))
			Expect(reading.GetTimestamp()).NotTo(BeZero())
		})

		It("should pass the context through to the client", func() {
			ctx := context.Background()
			Expect(prod.PublishReading(ctx)).To(Succeed())
			Expect(client.PushCalls[0].Ctx).To(Equal(ctx))
		})

		It("should surface push errors", func() {
			client.PushError = context.DeadlineExceeded

			err := prod.PublishReading(context.Background())
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})

		It("should keep publishing over repeated calls", func() {
			ctx := context.Background()
			for i := 0; i < 5; i++ {
				Expect(prod.PublishReading(ctx)).To(Succeed())
			}
			Expect(client.PushCount()).To(Equal(5))
		})
	})
})
