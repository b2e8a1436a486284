package store_test

import (
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"aquamon.dev/aquamon/internal/store"
)

func newTestDB() *gorm.DB {
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	Expect(err).NotTo(HaveOccurred())
	Expect(store.Migrate(db)).To(Succeed())
	return db
}

var _ = Describe("Models", func() {
	Describe("table names", func() {
		It("should map to the legacy schema", func() {
			Expect(store.User{}.TableName()).To(Equal("utilisateur"))
			Expect(store.Category{}.TableName()).To(Equal("ref_categorie"))
			Expect(store.Aquarium{}.TableName()).To(Equal("aquarium"))
			Expect(store.Fish{}.TableName()).To(Equal("fish"))
			Expect(store.SensorReading{}.TableName()).To(Equal("aquadata"))
		})
	})

	Describe("Migrate", func() {
		It("should create all tables", func() {
			db := newTestDB()

			for _, table := range []string{"utilisateur", "ref_categorie", "aquarium", "fish", "aquadata"} {
				Expect(db.Migrator().HasTable(table)).To(BeTrue(), "missing table %s", table)
			}
		})

		It("should enforce the unique email index", func() {
			db := newTestDB()

			Expect(db.Create(&store.User{Username: "alice", Email: "a@example.com", PasswordHash: "x"}).Error).To(Succeed())
			err := db.Create(&store.User{Username: "alice2", Email: "a@example.com", PasswordHash: "y"}).Error
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SensorReading", func() {
		It("should round-trip through the database", func() {
			db := newTestDB()

			moment := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
			reading := store.SensorReading{
				PH:          7.2,
				Temperature: 24.5,
				Luminosity:  540,
				Turbidity:   3.1,
				Moment:      moment,
				AquariumID:  1,
				UserID:      1,
			}
			Expect(db.Create(&reading).Error).To(Succeed())
			Expect(reading.ID).NotTo(BeZero())

			var loaded store.SensorReading
			Expect(db.First(&loaded, reading.ID).Error).To(Succeed())
			Expect(loaded.PH).To(Equal(7.2))
			Expect(loaded.Moment.UTC()).To(Equal(moment))
		})
	})
})
