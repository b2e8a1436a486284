package store

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// DefaultCategories is the reference species data the API reads but never
// writes. Ranges are pH and °C.
var DefaultCategories = []Category{
	{Name: "Tropical freshwater", MinPH: 6, MaxPH: 8, MinTemp: 23, MaxTemp: 28},
	{Name: "Coldwater", MinPH: 6, MaxPH: 8, MinTemp: 15, MaxTemp: 22},
	{Name: "Cichlid", MinPH: 7, MaxPH: 9, MinTemp: 24, MaxTemp: 28},
	{Name: "Marine reef", MinPH: 8, MaxPH: 9, MinTemp: 24, MaxTemp: 27},
	{Name: "Shrimp and invertebrates", MinPH: 6, MaxPH: 8, MinTemp: 20, MaxTemp: 25},
}

// SeedCategories inserts the default reference categories, skipping rows
// that already exist. Safe to run repeatedly.
func SeedCategories(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	for _, cat := range DefaultCategories {
		result := db.WithContext(ctx).
			Where("categorie = ?", cat.Name).
			FirstOrCreate(&Category{}, cat)
		if result.Error != nil {
			return fmt.Errorf("failed to seed category %q: %w", cat.Name, result.Error)
		}
		if result.RowsAffected > 0 {
			logger.Info("seeded category", "categorie", cat.Name)
		}
	}
	return nil
}
