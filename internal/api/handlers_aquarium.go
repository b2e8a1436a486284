package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"aquamon.dev/aquamon/internal/store"
)

type fishEntry struct {
	CategoryID uint `json:"id_cat"`
}

type aquariumCreationRequest struct {
	AquariumName string      `json:"aquarium_name"`
	FishData     []fishEntry `json:"fish_data"`
}

// handleAquariumCreation creates one aquarium and its fish in a single
// transaction: either all rows exist afterwards, or none do. The
// aquarium's acceptable ranges are the intersection of the tolerances of
// the selected categories.
func (h *Handlers) handleAquariumCreation(c *gin.Context) {
	var req aquariumCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing JSON in request"})
		return
	}

	if req.AquariumName == "" || len(req.FishData) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing aquarium name or fish data"})
		return
	}

	user, err := h.currentUser(c)
	if err != nil {
		h.abortUnknownUser(c, err)
		return
	}

	ctx := c.Request.Context()

	catIDs := make([]uint, 0, len(req.FishData))
	for _, entry := range req.FishData {
		catIDs = append(catIDs, entry.CategoryID)
	}

	var cats []store.Category
	if err := h.db.WithContext(ctx).Where("id_cat IN ?", catIDs).Find(&cats).Error; err != nil {
		h.logger.Error("failed to load categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	if len(cats) != len(uniqueIDs(catIDs)) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Unknown fish category"})
		return
	}

	aquarium := store.Aquarium{
		Name:      req.AquariumName,
		State:     "active",
		FishCount: len(req.FishData),
		UserID:    user.ID,
	}
	aquarium.MinPH, aquarium.MaxPH, aquarium.MinTemp, aquarium.MaxTemp = toleranceIntersection(cats)

	err = h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&aquarium).Error; err != nil {
			return err
		}

		fishes := make([]store.Fish, 0, len(req.FishData))
		for _, entry := range req.FishData {
			fishes = append(fishes, store.Fish{
				CategoryID: entry.CategoryID,
				UserID:     user.ID,
			})
		}
		return tx.Create(&fishes).Error
	})
	if err != nil {
		h.logger.Error("failed to create aquarium", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	if h.metrics != nil {
		h.metrics.AquariumsCreated.Inc()
	}

	h.logger.Info("aquarium created",
		"aquarium_id", aquarium.ID,
		"user_id", user.ID,
		"fish_count", len(req.FishData),
	)

	c.JSON(http.StatusCreated, gin.H{"msg": "Aquarium created successfully"})
}

// handleAquariumGet returns the first aquarium owned by the authenticated
// user, or JSON null when there is none. Ownership comes from the token,
// never from the request body.
func (h *Handlers) handleAquariumGet(c *gin.Context) {
	user, err := h.currentUser(c)
	if err != nil {
		h.abortUnknownUser(c, err)
		return
	}

	var aquarium store.Aquarium
	err = h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", user.ID).
		First(&aquarium).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		h.logger.Error("failed to fetch aquarium", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"aquarium_id": aquarium.ID,
		"name":        aquarium.Name,
		"state":       aquarium.State,
		"min_ph":      aquarium.MinPH,
		"max_ph":      aquarium.MaxPH,
		"min_temp":    aquarium.MinTemp,
		"max_temp":    aquarium.MaxTemp,
		"nb_fish":     aquarium.FishCount,
	})
}

// uniqueIDs deduplicates category ids so repeated fish of one species
// validate against a single category row.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// toleranceIntersection narrows the acceptable ranges to values every
// selected category tolerates.
func toleranceIntersection(cats []store.Category) (minPH, maxPH, minTemp, maxTemp int) {
	for i, cat := range cats {
		if i == 0 {
			minPH, maxPH, minTemp, maxTemp = cat.MinPH, cat.MaxPH, cat.MinTemp, cat.MaxTemp
			continue
		}
		if cat.MinPH > minPH {
			minPH = cat.MinPH
		}
		if cat.MaxPH < maxPH {
			maxPH = cat.MaxPH
		}
		if cat.MinTemp > minTemp {
			minTemp = cat.MinTemp
		}
		if cat.MaxTemp < maxTemp {
			maxTemp = cat.MaxTemp
		}
	}
	return minPH, maxPH, minTemp, maxTemp
}
