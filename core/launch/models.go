package launch

import (
	"time"

	"gorm.io/gorm"
)

// Record is one row of the launch catalog.
type Record struct {
	ID uint `gorm:"primaryKey"`

	// PayloadID is the unique, stable payload identifier records are
	// addressed by.
	PayloadID string `gorm:"column:payload_id;uniqueIndex;size:191"`

	// FlightNumber is the strictly increasing sequence number across
	// historical and upcoming launches.
	FlightNumber int `gorm:"column:flight_number"`

	LaunchYear      string    `gorm:"column:launch_year;size:4"`
	LaunchDateUnix  int64     `gorm:"column:launch_date_unix"`
	LaunchDateUTC   time.Time `gorm:"column:launch_date_utc"`
	LaunchDateLocal string    `gorm:"column:launch_date_local;size:32"`

	// IsTentative and TBD carry the resolved date's certainty flags;
	// TentativeMaxPrecision is the precision tier.
	IsTentative           bool   `gorm:"column:is_tentative"`
	TentativeMaxPrecision string `gorm:"column:tentative_max_precision;size:16"`
	TBD                   bool   `gorm:"column:tbd"`

	// Upcoming reports whether the launch has not yet flown.
	Upcoming bool `gorm:"column:upcoming;index"`

	SiteID       string `gorm:"column:site_id;size:32"`
	SiteName     string `gorm:"column:site_name;size:64"`
	SiteNameLong string `gorm:"column:site_name_long;size:191"`
}

// TableName pins the catalog table name.
func (Record) TableName() string { return "launches" }

// AutoMigrate creates or updates the catalog schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Record{})
}
