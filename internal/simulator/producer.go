// Package simulator generates synthetic aquarium telemetry and publishes
// it to RabbitMQ, standing in for a real probe fleet during development.
package simulator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/protobuf/proto"

	"aquamon.dev/aquamon/pkg/generator"
	"aquamon.dev/aquamon/pkg/metrics"
	"aquamon.dev/aquamon/pkg/mq"
)

// Producer owns a set of simulated probes and publishes their readings.
type Producer struct {
	MQClient mq.ClientInterface
	Probes   []*generator.Probe
	gens     map[int64]*generator.WaterDataGenerator
	metrics  *metrics.SimulatorMetrics // Optional metrics
}

// NewProducer creates a producer simulating probes for the given
// aquarium/user id range. Each producer gets a random probe count so
// concurrent producers do not mirror each other.
// Note: math/rand is acceptable for simulation data.
func NewProducer(mqClient mq.ClientInterface, baseAquariumID, baseUserID int64) *Producer {
	probeCount := rand.Intn(3) + 1 // #nosec G404 - weak random is acceptable for test data generation
	probes := make([]*generator.Probe, 0, probeCount)
	gens := make(map[int64]*generator.WaterDataGenerator, probeCount)

	for i := 0; i < probeCount; i++ {
		aquariumID := baseAquariumID + int64(i)
		userID := baseUserID + int64(i)
		probe := generator.NewProbe(aquariumID, userID)
		if probe == nil {
			continue
		}
		probes = append(probes, probe)
		gens[aquariumID] = generator.NewWaterDataGenerator(aquariumID, userID)
	}

	return &Producer{
		MQClient: mqClient,
		Probes:   probes,
		gens:     gens,
	}
}

// SetMetrics sets the metrics collector for this producer.
func (p *Producer) SetMetrics(m *metrics.SimulatorMetrics) {
	p.metrics = m
	if m != nil {
		m.ProbesSimulated.Add(float64(len(p.Probes)))
	}
}

// PublishReading generates one reading from a random probe and publishes
// it to the telemetry queue.
func (p *Producer) PublishReading(ctx context.Context) error {
	if len(p.Probes) == 0 {
		return errors.New("producer has no probes")
	}

	var timer *prometheus.Timer
	if p.metrics != nil {
		timer = prometheus.NewTimer(p.metrics.GenerationDuration.WithLabelValues("water_reading"))
		defer timer.ObserveDuration()
	}

	probe := p.Probes[rand.Intn(len(p.Probes))] // #nosec G404 - weak random is acceptable for simulation
	reading := p.gens[probe.AquariumID].GenerateReading(time.Now())

	message, err := proto.Marshal(reading)
	if err != nil {
		if p.metrics != nil {
			p.metrics.GenerationFailures.WithLabelValues("water_reading", "marshal_error").Inc()
		}
		return err
	}

	if err := p.MQClient.Push(ctx, message); err != nil {
		if p.metrics != nil {
			p.metrics.GenerationFailures.WithLabelValues("water_reading", "push_error").Inc()
		}
		return err
	}

	if p.metrics != nil {
		p.metrics.MessagesGenerated.WithLabelValues("water_reading").Inc()
	}

	return nil
}
