package launch

import (
	"context"
	"database/sql"
	"fmt"

	"launchsync/core/reconcile"

	"gorm.io/gorm"
)

// Store is the gorm-backed launch catalog. It implements reconcile.Store.
type Store struct {
	db *gorm.DB
}

// NewStore creates a catalog store over an established connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Upcoming returns the upcoming records ordered by flight number, projected
// to the slice the pipeline reads.
func (s *Store) Upcoming(ctx context.Context) ([]reconcile.InternalRecord, error) {
	var records []Record
	err := s.db.WithContext(ctx).
		Where("upcoming = ?", true).
		Order("flight_number asc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming launches: %w", err)
	}

	out := make([]reconcile.InternalRecord, len(records))
	for i, r := range records {
		out[i] = reconcile.InternalRecord{
			PayloadID:    r.PayloadID,
			SiteID:       r.SiteID,
			FlightNumber: r.FlightNumber,
			Upcoming:     true,
		}
	}
	return out, nil
}

// BaseFlightNumber returns one greater than the highest flight number among
// already-flown launches. An empty catalog yields 1.
func (s *Store) BaseFlightNumber(ctx context.Context) (int, error) {
	var maxFlight sql.NullInt64
	err := s.db.WithContext(ctx).
		Model(&Record{}).
		Where("upcoming = ?", false).
		Select("MAX(flight_number)").
		Scan(&maxFlight).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute base flight number: %w", err)
	}
	return int(maxFlight.Int64) + 1, nil
}

// Apply merges the update's field set into the record addressed by payload
// id. It reports false with no error when no record carries that id.
func (s *Store) Apply(ctx context.Context, payloadID string, u reconcile.UpdateRecord) (bool, error) {
	fields := map[string]any{
		"flight_number":           u.FlightNumber,
		"launch_year":             u.LaunchYear,
		"launch_date_unix":        u.DateUnix,
		"launch_date_utc":         u.DateUTC,
		"launch_date_local":       u.DateLocal,
		"is_tentative":            u.Tentative,
		"tentative_max_precision": string(u.Precision),
		"tbd":                     u.TBD,
	}

	// An unrecognized launchpad clears the site fields rather than keeping
	// a stale assignment.
	if u.Site != nil {
		fields["site_id"] = u.Site.ID
		fields["site_name"] = u.Site.ShortName
		fields["site_name_long"] = u.Site.LongName
	} else {
		fields["site_id"] = ""
		fields["site_name"] = ""
		fields["site_name_long"] = ""
	}

	res := s.db.WithContext(ctx).
		Model(&Record{}).
		Where("payload_id = ?", payloadID).
		Updates(fields)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update launch %q: %w", payloadID, res.Error)
	}
	return res.RowsAffected > 0, nil
}
