package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aquamon.dev/aquamon/internal/store"
)

// handleChartData serves the day-bucketed pH and temperature series for
// the trailing window, shaped for direct consumption by a charting
// library. With no readings in the window the response is an empty
// object, which existing clients rely on.
func (h *Handlers) handleChartData(c *gin.Context) {
	user, err := h.currentUser(c)
	if err != nil {
		h.abortUnknownUser(c, err)
		return
	}

	cutoff := time.Now().AddDate(0, 0, -h.chartWindowDays)

	var readings []store.SensorReading
	if err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ? AND moment >= ?", user.ID, cutoff).
		Order("moment asc").
		Find(&readings).Error; err != nil {
		h.logger.Error("failed to fetch readings", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	if len(readings) == 0 {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	series := BuildChartSeries(readings)

	c.JSON(http.StatusOK, gin.H{
		"data_ph": gin.H{
			"labels":   series.Labels,
			"datasets": []gin.H{{"data": series.PHValues}},
		},
		"data_temperature": gin.H{
			"labels":   series.Labels,
			"datasets": []gin.H{{"data": series.TempValues}},
		},
	})
}

// handleCardData serves the latest value, its date, and the day-over-day
// percentage change for each metric. Fewer than two readings yields an
// empty object.
func (h *Handlers) handleCardData(c *gin.Context) {
	user, err := h.currentUser(c)
	if err != nil {
		h.abortUnknownUser(c, err)
		return
	}

	var readings []store.SensorReading
	if err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", user.ID).
		Order("moment desc").
		Limit(2).
		Find(&readings).Error; err != nil {
		h.logger.Error("failed to fetch readings", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	if len(readings) < 2 {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	latest, prior := readings[0], readings[1]

	c.JSON(http.StatusOK, gin.H{
		"ph": gin.H{
			"last_value":    latest.PH,
			"update_date":   latest.Moment.Format(cardDateFormat),
			"difference_j1": PercentChange(latest.PH, prior.PH),
		},
		"temperature": gin.H{
			"last_value":    latest.Temperature,
			"update_date":   latest.Moment.Format(cardDateFormat),
			"difference_j1": PercentChange(latest.Temperature, prior.Temperature),
		},
	})
}
