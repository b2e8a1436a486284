package generator_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aquamon.dev/aquamon/pkg/generator"
)

var _ = Describe("Generator", func() {
	Describe("NewProbe", func() {
		It("should create a probe bound to the given ids", func() {
			probe := generator.NewProbe(42, 7)
			Expect(probe).NotTo(BeNil())
			Expect(probe.AquariumID).To(Equal(int64(42)))
			Expect(probe.UserID).To(Equal(int64(7)))
		})

		It("should populate fake metadata", func() {
			probe := generator.NewProbe(1, 1)
			Expect(probe).NotTo(BeNil())
			Expect(probe.Label).NotTo(BeEmpty())
			Expect(probe.Firmware).NotTo(BeEmpty())
			Expect(probe.Registered).NotTo(BeZero())
		})
	})

	Describe("WaterDataGenerator", func() {
		var gen *generator.WaterDataGenerator

		BeforeEach(func() {
			gen = generator.NewWaterDataGenerator(1, 1)
		})

		Describe("GenerateTemperature", func() {
			It("should stay within a heated tank range", func() {
				for i := 0; i < 200; i++ {
					temp := gen.GenerateTemperature(time.Now())
					Expect(temp).To(BeNumerically(">", 15.0))
					Expect(temp).To(BeNumerically("<", 35.0))
				}
			})
		})

		Describe("GeneratePH", func() {
			It("should stay within plausible aquarium bounds", func() {
				for i := 0; i < 200; i++ {
					ph := gen.GeneratePH(time.Now())
					Expect(ph).To(BeNumerically(">=", 5.5))
					Expect(ph).To(BeNumerically("<=", 9.0))
				}
			})

			It("should drift gradually between consecutive readings", func() {
				prev := gen.GeneratePH(time.Now())
				for i := 0; i < 50; i++ {
					ph := gen.GeneratePH(time.Now())
					Expect(ph - prev).To(BeNumerically("<", 1.0))
					Expect(prev - ph).To(BeNumerically("<", 1.0))
					prev = ph
				}
			})
		})

		Describe("GenerateLuminosity", func() {
			It("should be near dark outside lighting hours", func() {
				night := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)
				for i := 0; i < 50; i++ {
					lux := gen.GenerateLuminosity(night)
					Expect(lux).To(BeNumerically("<", 10.0))
					Expect(lux).To(BeNumerically(">=", 0.0))
				}
			})

			It("should be bright during lighting hours", func() {
				midday := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
				for i := 0; i < 50; i++ {
					lux := gen.GenerateLuminosity(midday)
					Expect(lux).To(BeNumerically(">", 100.0))
				}
			})
		})

		Describe("GenerateTurbidity", func() {
			It("should stay within sensor bounds", func() {
				for i := 0; i < 200; i++ {
					turbidity := gen.GenerateTurbidity()
					Expect(turbidity).To(BeNumerically(">=", 0.1))
					Expect(turbidity).To(BeNumerically("<=", 50.0))
				}
			})
		})

		Describe("GenerateReading", func() {
			It("should produce a fully populated reading", func() {
				now := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
				reading := gen.GenerateReading(now)

				Expect(reading.GetAquariumId()).To(Equal(int64(1)))
				Expect(reading.GetUserId()).To(Equal(int64(1)))
				Expect(reading.GetTimestamp()).To(Equal(now.Unix()))
				Expect(reading.GetPh()).To(BeNumerically(">", 0))
				Expect(reading.GetTemperature()).To(BeNumerically(">", 0))
				Expect(reading.GetTurbidity()).To(BeNumerically(">", 0))
			})

			It("should vary between generators", func() {
				other := generator.NewWaterDataGenerator(2, 2)
				now := time.Now()

				r1 := gen.GenerateReading(now)
				r2 := other.GenerateReading(now)

				// Baselines are randomized per generator, identical series
				// would mean the randomization is broken.
				same := r1.GetPh() == r2.GetPh() &&
					r1.GetTemperature() == r2.GetTemperature() &&
					r1.GetTurbidity() == r2.GetTurbidity()
				Expect(same).To(BeFalse())
			})
		})
	})
})
