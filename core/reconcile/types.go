package reconcile

import "time"

// Precision identifies the coarsest known unit of a partially-specified
// launch date. Hour is the most precise tier, year the least.
type Precision string

const (
	PrecisionHour    Precision = "hour"
	PrecisionDay     Precision = "day"
	PrecisionMonth   Precision = "month"
	PrecisionQuarter Precision = "quarter"
	PrecisionHalf    Precision = "half"
	PrecisionYear    Precision = "year"
)

// ManifestRow is one external manifest entry in source order. Position is
// the row's index in the original manifest and is significant: it determines
// the flight-number offset for a match.
type ManifestRow struct {
	// Position is the zero-based index of the row in the manifest.
	Position int `json:"position"`

	// RawDate is the unparsed date text, of varying precision.
	RawDate string `json:"raw_date"`

	// Payload is the free-text payload label.
	Payload string `json:"payload"`

	// Launchpad is the free-text launchpad label.
	Launchpad string `json:"launchpad"`
}

// InternalRecord is the slice of a catalog record the pipeline reads.
type InternalRecord struct {
	// PayloadID is the unique, stable payload identifier.
	PayloadID string

	// SiteID is the record's current canonical site identifier. It drives
	// the local-time computation at match time.
	SiteID string

	// FlightNumber is the record's current sequence number.
	FlightNumber int

	// Upcoming reports whether the launch has not yet flown.
	Upcoming bool
}

// Match pairs an internal payload id with the manifest row that scored the
// maximum partial ratio against it.
type Match struct {
	// PayloadID identifies the matched internal record.
	PayloadID string

	// SiteID is the internal record's current site id, carried along because
	// it, not the freshly resolved external site, is canonical for the
	// time-zone of the local display time.
	SiteID string

	// Row is the matched manifest row.
	Row ManifestRow
}

// ResolvedDate is the normalized form of a raw manifest date.
type ResolvedDate struct {
	// Precision is the tier assigned by the pattern cascade.
	Precision Precision

	// UTC is the first instant consistent with the stated precision.
	UTC time.Time

	// Year is the four-digit year string from the raw token.
	Year string

	// Tentative reports that the date is not a firm hour-level commitment.
	Tentative bool

	// TBD reports that no month or day granularity is known at all.
	TBD bool
}

// Unix returns the resolved instant as epoch seconds.
func (d ResolvedDate) Unix() int64 { return d.UTC.Unix() }

// ISO returns the resolved instant as an ISO-8601 string.
func (d ResolvedDate) ISO() string { return d.UTC.Format("2006-01-02T15:04:05Z07:00") }

// SiteInfo describes one canonical launch site. The table of sites is
// static and never mutated.
type SiteInfo struct {
	// ID is the canonical site identifier, e.g. "ccafs_slc_40".
	ID string

	// ShortName is the compact display name, e.g. "CCAFS SLC 40".
	ShortName string

	// LongName is the full display name.
	LongName string
}

// UpdateRecord is the field set written back for one match. It is built
// once per match, submitted once, and never reused.
type UpdateRecord struct {
	// PayloadID addresses the internal record to merge into.
	PayloadID string

	// FlightNumber is the assigned sequence number.
	FlightNumber int

	// LaunchYear is the four-digit year string.
	LaunchYear string

	// DateUnix is the resolved instant as epoch seconds.
	DateUnix int64

	// DateUTC is the resolved instant.
	DateUTC time.Time

	// DateLocal is the instant rendered in the internal record's site-local
	// time zone, as an ISO-8601 string with offset.
	DateLocal string

	// Precision is the date's precision tier.
	Precision Precision

	// Tentative and TBD carry the date's certainty flags.
	Tentative bool
	TBD       bool

	// Site is the resolved external site, or nil when the launchpad label
	// was not recognized (the update still proceeds with empty site fields).
	Site *SiteInfo
}

// RowResult is the per-match submission outcome.
type RowResult struct {
	// PayloadID identifies the updated record.
	PayloadID string `json:"payload_id"`

	// Updated reports whether the store found and changed the record.
	Updated bool `json:"updated"`

	// Err is the submission failure, if any.
	Err error `json:"-"`
}

// Outcome is the terminal result of one pipeline run.
type Outcome struct {
	// Aborted reports a fatal validation failure; no updates were submitted.
	Aborted bool

	// Err is the abort reason.
	Err error

	// Updates are the field sets computed for this run, in match order.
	// On a dry run they are planned but not submitted.
	Updates []UpdateRecord

	// Rows are the per-match submission results. Empty when Aborted.
	Rows []RowResult

	// Skipped counts matches dropped because their date failed to resolve.
	Skipped int
}

// Failed reports whether the run aborted or any submission failed.
func (o Outcome) Failed() bool {
	if o.Aborted {
		return true
	}
	for _, r := range o.Rows {
		if r.Err != nil {
			return true
		}
	}
	return false
}
