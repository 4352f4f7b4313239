package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveDate_Cascade(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		precision Precision
		utc       string
		tentative bool
		tbd       bool
	}{
		{
			name:      "quarter substitutes the digit for the month",
			raw:       "2020 Q3",
			precision: PrecisionQuarter,
			utc:       "2020-03-01T00:00:00Z",
			tentative: true,
			tbd:       true,
		},
		{
			name:      "first half lands on January",
			raw:       "2020 H1",
			precision: PrecisionHalf,
			utc:       "2020-01-01T00:00:00Z",
			tentative: true,
			tbd:       true,
		},
		{
			name:      "second half lands on March",
			raw:       "2020 H2",
			precision: PrecisionHalf,
			utc:       "2020-03-01T00:00:00Z",
			tentative: true,
			tbd:       true,
		},
		{
			name:      "year TBD",
			raw:       "2020 TBD",
			precision: PrecisionYear,
			utc:       "2020-01-01T00:00:00Z",
			tentative: true,
			tbd:       true,
		},
		{
			name:      "bare year",
			raw:       "2020",
			precision: PrecisionYear,
			utc:       "2020-01-01T00:00:00Z",
			tentative: true,
			tbd:       true,
		},
		{
			name:      "month TBD wins over plain month",
			raw:       "2020 Nov TBD",
			precision: PrecisionMonth,
			utc:       "2020-11-01T00:00:00Z",
			tentative: true,
			tbd:       true,
		},
		{
			name:      "vague qualifier is stripped",
			raw:       "2020 Late Nov",
			precision: PrecisionMonth,
			utc:       "2020-11-01T00:00:00Z",
			tentative: true,
			tbd:       true,
		},
		{
			name:      "plain month",
			raw:       "2020 Nov",
			precision: PrecisionMonth,
			utc:       "2020-11-01T00:00:00Z",
			tentative: true,
			tbd:       true,
		},
		{
			name:      "full month name",
			raw:       "2020 November",
			precision: PrecisionMonth,
			utc:       "2020-11-01T00:00:00Z",
			tentative: true,
			tbd:       true,
		},
		{
			name:      "day stays tentative",
			raw:       "2020 Nov 4",
			precision: PrecisionDay,
			utc:       "2020-11-04T00:00:00Z",
			tentative: true,
			tbd:       false,
		},
		{
			name:      "hour with bracketed time is firm",
			raw:       "2020 Nov 4 [14:10]",
			precision: PrecisionHour,
			utc:       "2020-11-04T14:10:00Z",
			tentative: false,
			tbd:       false,
		},
		{
			name:      "hour without brackets",
			raw:       "2020 November 4 14:10",
			precision: PrecisionHour,
			utc:       "2020-11-04T14:10:00Z",
			tentative: false,
			tbd:       false,
		},
		{
			name:      "case insensitive months",
			raw:       "2020 nov 4",
			precision: PrecisionDay,
			utc:       "2020-11-04T00:00:00Z",
			tentative: true,
			tbd:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ResolveDate(tt.raw)
			assert.NoError(t, err)

			want, err := time.Parse(time.RFC3339, tt.utc)
			assert.NoError(t, err)

			assert.Equal(t, tt.precision, resolved.Precision)
			assert.True(t, resolved.UTC.Equal(want), "got %s, want %s", resolved.UTC, want)
			assert.Equal(t, tt.tentative, resolved.Tentative)
			assert.Equal(t, tt.tbd, resolved.TBD)
			assert.Equal(t, "2020", resolved.Year)
		})
	}
}

// Adjacent cascade entries that could shadow each other: the earlier pattern
// must win.
func TestResolveDate_CascadePriority(t *testing.T) {
	tests := []struct {
		raw  string
		want Precision
	}{
		{"2020 Q2", PrecisionQuarter},
		{"2020 H2", PrecisionHalf},
		{"2020 TBD", PrecisionYear},
		{"2020 Nov TBD", PrecisionMonth},
		{"2020 Mid Nov", PrecisionMonth},
		{"2020 Nov 4", PrecisionDay},
		{"2020 Nov 4 [14:10]", PrecisionHour},
	}

	for _, tt := range tests {
		resolved, err := ResolveDate(tt.raw)
		assert.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, resolved.Precision, tt.raw)
	}
}

func TestResolveDate_Accessors(t *testing.T) {
	resolved, err := ResolveDate("2020 Nov 4 [14:10]")
	assert.NoError(t, err)

	assert.Equal(t, int64(1604499000), resolved.Unix())
	assert.Equal(t, "2020-11-04T14:10:00Z", resolved.ISO())
}

func TestResolveDate_UnknownFormat(t *testing.T) {
	for _, raw := range []string{"", "Soon", "Q3 2020", "2020 13", "November 2020"} {
		_, err := ResolveDate(raw)
		assert.ErrorIs(t, err, ErrUnknownDateFormat, raw)
	}
}

func TestResolveDate_WhitespaceTolerant(t *testing.T) {
	resolved, err := ResolveDate("  2020   Nov   4  ")
	assert.NoError(t, err)
	assert.Equal(t, PrecisionDay, resolved.Precision)
}
