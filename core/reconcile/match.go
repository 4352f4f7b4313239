package reconcile

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// maxPartialRatio is the only score at which a pairing is accepted. Matching
// strictly at the maximum — exact substring equivalence under case folding —
// is the disambiguation rule for payload ids that differ only by a suffix;
// a near-threshold score is never good enough.
const maxPartialRatio = 100

// MatchPayloads pairs each internal record with the manifest rows whose
// payload label scores the maximum partial ratio against its payload id.
//
// A record with no qualifying row produces no match and is left untouched.
// A row matching no record is ignored. If several rows tie at the maximum
// against one record, each tie becomes its own match; the caller decides
// how to report that.
//
// The scan is O(records x rows); manifests are tens of rows, so the
// threshold's correctness matters, not the complexity.
func MatchPayloads(records []InternalRecord, rows []ManifestRow) []Match {
	matches := make([]Match, 0, len(records))

	for _, rec := range records {
		id := strings.ToLower(rec.PayloadID)
		for _, row := range rows {
			if fuzzy.PartialRatio(id, strings.ToLower(row.Payload)) == maxPartialRatio {
				matches = append(matches, Match{
					PayloadID: rec.PayloadID,
					SiteID:    rec.SiteID,
					Row:       row,
				})
			}
		}
	}

	return matches
}
