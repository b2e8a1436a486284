// Package generator produces synthetic aquarium water telemetry for the
// simulator service.
package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"aquamon.dev/aquamon/pkg/telemetry"
)

// Probe describes a simulated water-quality probe attached to an aquarium.
type Probe struct {
	Registered time.Time
	Label      string `fake:"{petname}"`
	Firmware   string `fake:"{appversion}"`
	AquariumID int64
	UserID     int64
}

// WaterDataGenerator produces correlated water-quality readings for a
// single probe. Baselines are randomized per probe so concurrent
// simulators do not emit identical series.
type WaterDataGenerator struct {
	aquariumID    int64
	userID        int64
	baselinePH    float64
	baselineTemp  float64
	baselineLux   float64
	noise         float64
	phDrift       float64 // Simulates slow water chemistry drift
	lastPH        float64
	lastTurbidity float64
}

// NewProbe creates a probe with fake metadata bound to the given
// aquarium and owner.
func NewProbe(aquariumID, userID int64) *Probe {
	var probe Probe
	if err := gofakeit.Struct(&probe); err != nil {
		return nil
	}
	probe.AquariumID = aquariumID
	probe.UserID = userID
	probe.Registered = time.Now()
	return &probe
}

// NewWaterDataGenerator creates a generator for the given aquarium and owner.
func NewWaterDataGenerator(aquariumID, userID int64) *WaterDataGenerator {
	basePH := 6.8 + rand.Float64()*1.2 // 6.8-8.0
	return &WaterDataGenerator{
		aquariumID:    aquariumID,
		userID:        userID,
		baselinePH:    basePH,
		baselineTemp:  23.0 + rand.Float64()*4,  // 23-27°C, tropical tank range
		baselineLux:   400 + rand.Float64()*400, // 400-800 lux under lighting
		noise:         rand.Float64() * 0.4,
		phDrift:       (rand.Float64() - 0.5) * 0.02,
		lastPH:        basePH,
		lastTurbidity: 2 + rand.Float64()*3, // NTU
	}
}

// GenerateTemperature produces a temperature with a mild daily cycle.
// Heated tanks vary far less than open-air sensors.
func (g *WaterDataGenerator) GenerateTemperature(t time.Time) float64 {
	hour := float64(t.Hour())

	// Daily cycle, peak mid-afternoon when room and lighting warm the tank
	dailyCycle := 0.8 * math.Sin((hour-6)*math.Pi/12)

	noise := (rand.Float64() - 0.5) * g.noise

	// Occasional heater misbehavior (2% chance)
	anomaly := 0.0
	if rand.Float64() < 0.02 {
		anomaly = (rand.Float64() - 0.5) * 3
	}

	return g.baselineTemp + dailyCycle + noise + anomaly
}

// GeneratePH produces a pH value following a slow random walk around the
// probe baseline. CO2 uptake by plants pushes pH slightly up during
// lighting hours.
func (g *WaterDataGenerator) GeneratePH(t time.Time) float64 {
	hour := float64(t.Hour())

	photoCycle := 0.1 * math.Sin((hour-8)*math.Pi/12)

	walk := (rand.Float64() - 0.5) * 0.05

	// Occasionally reverse the drift (10% chance)
	if rand.Float64() < 0.1 {
		g.phDrift = -g.phDrift + (rand.Float64()-0.5)*0.01
	}

	ph := g.lastPH + walk + g.phDrift
	ph = g.baselinePH + (ph-g.baselinePH)*0.8 + photoCycle

	// Clamp to plausible aquarium water bounds
	ph = math.Max(5.5, math.Min(9.0, ph))

	g.lastPH = ph
	return ph
}

// GenerateLuminosity follows the tank lighting schedule: bright during
// the day window, near dark outside it.
func (g *WaterDataGenerator) GenerateLuminosity(t time.Time) float64 {
	hour := t.Hour()

	if hour < 8 || hour >= 20 {
		// Lights off; only ambient room light remains
		return rand.Float64() * 10
	}

	noise := (rand.Float64() - 0.5) * 50
	return math.Max(0, g.baselineLux+noise)
}

// GenerateTurbidity follows a random walk with occasional feeding spikes.
func (g *WaterDataGenerator) GenerateTurbidity() float64 {
	walk := (rand.Float64() - 0.5) * 0.3

	// Feeding stirs up particulates (4% chance)
	spike := 0.0
	if rand.Float64() < 0.04 {
		spike = rand.Float64() * 5
	}

	turbidity := g.lastTurbidity + walk + spike
	turbidity = math.Max(0.1, math.Min(50, turbidity))

	g.lastTurbidity = turbidity
	return turbidity
}

// GenerateReading produces a full correlated water reading at time t.
func (g *WaterDataGenerator) GenerateReading(t time.Time) *telemetry.WaterReading {
	temperature := g.GenerateTemperature(t)
	ph := g.GeneratePH(t)
	luminosity := g.GenerateLuminosity(t)
	turbidity := g.GenerateTurbidity()

	return &telemetry.WaterReading{
		AquariumId:  g.aquariumID,
		UserId:      g.userID,
		Timestamp:   t.Unix(),
		Ph:          math.Round(ph*100) / 100,
		Temperature: math.Round(temperature*100) / 100,
		Luminosity:  math.Round(luminosity*10) / 10,
		Turbidity:   math.Round(turbidity*100) / 100,
	}
}
