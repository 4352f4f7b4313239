package reconcile

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Store is the slice of the launch catalog the pipeline writes through.
type Store interface {
	// Apply merges one update's field set into the record addressed by
	// payload id. It reports whether a record was found and changed.
	Apply(ctx context.Context, payloadID string, update UpdateRecord) (bool, error)
}

// Options control pipeline behavior.
type Options struct {
	// DryRun computes and validates all updates but submits none.
	DryRun bool
}

// Pipeline orchestrates matching, resolution, numbering, validation and
// submission over one manifest snapshot.
type Pipeline struct {
	store Store
	log   *zap.Logger
}

// NewPipeline creates a pipeline writing through the given store.
func NewPipeline(store Store, log *zap.Logger) *Pipeline {
	return &Pipeline{store: store, log: log}
}

// Run executes one reconciliation over the upcoming records and the manifest
// rows. baseOrdinal is one greater than the highest flight number among
// already-flown records.
//
// Steps 1-6 (match, resolve, number, validate) are synchronous; only the
// final submission phase runs concurrently, one goroutine per update, and
// Run waits for all of them before reporting. A flight-number collision
// aborts the run before any write.
func (p *Pipeline) Run(ctx context.Context, upcoming []InternalRecord, baseOrdinal int, rows []ManifestRow, opts Options) Outcome {
	matches := MatchPayloads(upcoming, rows)
	p.warnOnTies(matches)

	kept := make([]Match, 0, len(matches))
	updates := make([]UpdateRecord, 0, len(matches))
	skipped := 0

	for _, m := range matches {
		resolved, err := ResolveDate(m.Row.RawDate)
		if err != nil {
			skipped++
			p.log.Warn("skipping manifest row",
				zap.String("payload_id", m.PayloadID),
				zap.String("raw_date", m.Row.RawDate),
				zap.Error(err))
			continue
		}

		site, ok := ResolveLaunchpad(m.Row.Launchpad)
		if !ok {
			p.log.Warn("unknown launchpad, proceeding without site fields",
				zap.String("payload_id", m.PayloadID),
				zap.String("launchpad", m.Row.Launchpad))
		}

		update := buildUpdate(m, resolved)
		if ok {
			update.Site = &site
		}

		kept = append(kept, m)
		updates = append(updates, update)
	}

	ordinals, err := AssignOrdinals(baseOrdinal, kept)
	if err != nil {
		p.log.Error("aborting run before any write", zap.Error(err))
		return Outcome{Aborted: true, Err: err, Skipped: skipped}
	}
	for i := range updates {
		updates[i].FlightNumber = ordinals[i]
	}

	outcome := Outcome{Updates: updates, Skipped: skipped}
	outcome.Rows = make([]RowResult, len(updates))

	if opts.DryRun {
		for i, u := range updates {
			outcome.Rows[i] = RowResult{PayloadID: u.PayloadID}
		}
		return outcome
	}

	// Submissions are independent (distinct record addresses) and carry no
	// ordering guarantee between their completions.
	var wg sync.WaitGroup
	for i, u := range updates {
		wg.Add(1)
		go func(i int, u UpdateRecord) {
			defer wg.Done()
			updated, err := p.store.Apply(ctx, u.PayloadID, u)
			outcome.Rows[i] = RowResult{PayloadID: u.PayloadID, Updated: updated, Err: err}
		}(i, u)
	}
	wg.Wait()

	return outcome
}

// buildUpdate derives the date and site field set for one match. The
// internal record's current site, not the freshly resolved external one,
// picks the local display time zone.
func buildUpdate(m Match, resolved ResolvedDate) UpdateRecord {
	local := resolved.UTC.In(SiteLocation(m.SiteID))

	return UpdateRecord{
		PayloadID:  m.PayloadID,
		LaunchYear: resolved.Year,
		DateUnix:   resolved.Unix(),
		DateUTC:    resolved.UTC,
		DateLocal:  local.Format(localLayout),
		Precision:  resolved.Precision,
		Tentative:  resolved.Tentative,
		TBD:        resolved.TBD,
	}
}

const localLayout = "2006-01-02T15:04:05-07:00"

// warnOnTies reports payload ids matched by more than one manifest row. The
// ties still produce separate submissions to the same record, last write
// winning; the warning makes the condition observable.
func (p *Pipeline) warnOnTies(matches []Match) {
	count := make(map[string]int, len(matches))
	for _, m := range matches {
		count[m.PayloadID]++
	}
	for id, n := range count {
		if n > 1 {
			p.log.Warn("payload matched multiple manifest rows, last write wins",
				zap.String("payload_id", id),
				zap.Int("rows", n))
		}
	}
}
