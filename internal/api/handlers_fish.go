package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aquamon.dev/aquamon/internal/store"
)

// handleFishAll lists the authenticated user's fish.
func (h *Handlers) handleFishAll(c *gin.Context) {
	user, err := h.currentUser(c)
	if err != nil {
		h.abortUnknownUser(c, err)
		return
	}

	var fishes []store.Fish
	if err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", user.ID).
		Find(&fishes).Error; err != nil {
		h.logger.Error("failed to fetch fish", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	out := make([]gin.H, 0, len(fishes))
	for _, fish := range fishes {
		out = append(out, gin.H{
			"id_fish": fish.ID,
			"name":    fish.Name,
		})
	}

	c.JSON(http.StatusOK, out)
}

// handleCategoriesAll lists the reference categories, unfiltered.
func (h *Handlers) handleCategoriesAll(c *gin.Context) {
	var cats []store.Category
	if err := h.db.WithContext(c.Request.Context()).Find(&cats).Error; err != nil {
		h.logger.Error("failed to fetch categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	out := make([]gin.H, 0, len(cats))
	for _, cat := range cats {
		out = append(out, gin.H{
			"id_cat":    cat.ID,
			"categorie": cat.Name,
		})
	}

	c.JSON(http.StatusOK, out)
}
