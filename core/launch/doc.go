// Package launch owns the internal launch catalog: the table of historical
// and upcoming launches keyed by payload id.
//
// The reconcile pipeline reads two slices of the catalog — the upcoming
// records (match candidates) and the highest flight number among
// already-flown records (the numbering base) — and writes back one field-set
// merge per matched record through Store.Apply.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	store := launch.NewStore(db)
//
//	upcoming, err := store.Upcoming(ctx)
//	base, err := store.BaseFlightNumber(ctx)
package launch
