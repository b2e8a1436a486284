package store_test

import (
	"context"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aquamon.dev/aquamon/internal/store"
)

var _ = Describe("SeedCategories", func() {
	var logger *slog.Logger

	BeforeEach(func() {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
	})

	It("should insert the default categories", func() {
		db := newTestDB()

		Expect(store.SeedCategories(context.Background(), db, logger)).To(Succeed())

		var count int64
		Expect(db.Model(&store.Category{}).Count(&count).Error).To(Succeed())
		Expect(count).To(Equal(int64(len(store.DefaultCategories))))
	})

	It("should be idempotent", func() {
		db := newTestDB()

		Expect(store.SeedCategories(context.Background(), db, logger)).To(Succeed())
		Expect(store.SeedCategories(context.Background(), db, logger)).To(Succeed())

		var count int64
		Expect(db.Model(&store.Category{}).Count(&count).Error).To(Succeed())
		Expect(count).To(Equal(int64(len(store.DefaultCategories))))
	})

	It("should keep sensible tolerance ranges", func() {
		for _, cat := range store.DefaultCategories {
			Expect(cat.MinPH).To(BeNumerically("<", cat.MaxPH), cat.Name)
			Expect(cat.MinTemp).To(BeNumerically("<", cat.MaxTemp), cat.Name)
		}
	})
})
