// Package store provides the GORM models and database access shared by
// the aquamon API and ingest services. Table and column names follow the
// schema the hardware fleet already writes to.
package store

import (
	"time"
)

// User is an account that owns aquariums, fish, and sensor readings.
type User struct {
	ID           uint   `gorm:"primaryKey;column:user_id"`
	Username     string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null;column:password"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "utilisateur"
}

// Category is reference data describing a fish species group and its
// acceptable water-quality ranges. Rows are seeded, not created by the API.
type Category struct {
	ID      uint   `gorm:"primaryKey;column:id_cat"`
	Name    string `gorm:"size:255;column:categorie"`
	MinPH   int    `gorm:"column:min_ph"`
	MaxPH   int    `gorm:"column:max_ph"`
	MinTemp int    `gorm:"column:min_temp"`
	MaxTemp int    `gorm:"column:max_temp"`
}

// TableName specifies the table name for the Category model.
func (Category) TableName() string {
	return "ref_categorie"
}

// Aquarium is a tank owned by a user.
type Aquarium struct {
	ID        uint   `gorm:"primaryKey;column:aquarium_id"`
	Name      string `gorm:"size:100"`
	State     string `gorm:"size:100"`
	MinPH     int    `gorm:"column:min_ph"`
	MaxPH     int    `gorm:"column:max_ph"`
	MinTemp   int    `gorm:"column:min_temp"`
	MaxTemp   int    `gorm:"column:max_temp"`
	FishCount int    `gorm:"column:nb_fish"`
	UserID    uint   `gorm:"index;not null"`
}

// TableName specifies the table name for the Aquarium model.
func (Aquarium) TableName() string {
	return "aquarium"
}

// Fish is a fish owned by a user. The schema ties fish to a category and
// an owner but not to a specific aquarium.
type Fish struct {
	ID         uint   `gorm:"primaryKey;column:id_fish"`
	Name       string `gorm:"size:255"`
	CategoryID uint   `gorm:"column:id_cat"`
	UserID     uint   `gorm:"index;not null"`
}

// TableName specifies the table name for the Fish model.
func (Fish) TableName() string {
	return "fish"
}

// SensorReading is a water-quality measurement persisted by the ingest
// service. Moment is the probe-side measurement time.
type SensorReading struct {
	ID          uint      `gorm:"primaryKey"`
	PH          float64   `gorm:"column:ph"`
	Temperature float64   `gorm:"column:temperature"`
	Luminosity  float64   `gorm:"column:luminosity"`
	Turbidity   float64   `gorm:"column:turbidity"`
	Moment      time.Time `gorm:"index:idx_user_moment;not null"`
	AquariumID  uint      `gorm:"index"`
	UserID      uint      `gorm:"index:idx_user_moment;not null"`
}

// TableName specifies the table name for the SensorReading model.
func (SensorReading) TableName() string {
	return "aquadata"
}
