package api

import (
	"sort"
	"time"

	"aquamon.dev/aquamon/internal/store"
)

const (
	chartLabelFormat = "02/01"
	cardDateFormat   = "02/01/2006"
)

// ChartSeries holds the day-bucketed values the chart endpoint emits.
// Labels and both value slices are aligned and sorted by day ascending.
type ChartSeries struct {
	Labels     []string
	PHValues   []float64
	TempValues []float64
}

// BuildChartSeries groups readings by calendar day and keeps one
// representative reading per day: the latest by timestamp within the day.
// Readings must be ordered by Moment ascending, which makes the last
// reading seen for a day its latest.
func BuildChartSeries(readings []store.SensorReading) ChartSeries {
	type dayValue struct {
		ph   float64
		temp float64
	}

	byDay := make(map[string]dayValue, len(readings))
	for _, r := range readings {
		key := r.Moment.Format("2006-01-02")
		byDay[key] = dayValue{ph: r.PH, temp: r.Temperature}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	series := ChartSeries{
		Labels:     make([]string, 0, len(days)),
		PHValues:   make([]float64, 0, len(days)),
		TempValues: make([]float64, 0, len(days)),
	}
	for _, day := range days {
		t, _ := time.Parse("2006-01-02", day)
		series.Labels = append(series.Labels, t.Format(chartLabelFormat))
		series.PHValues = append(series.PHValues, byDay[day].ph)
		series.TempValues = append(series.TempValues, byDay[day].temp)
	}
	return series
}

// PercentChange returns the percentage change from prior to latest,
// guarding division by zero with 0.0.
func PercentChange(latest, prior float64) float64 {
	if prior == 0 {
		return 0.0
	}
	return (latest - prior) / prior * 100
}
