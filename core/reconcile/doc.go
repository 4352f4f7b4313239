// Package reconcile implements the matching-and-date-normalization pipeline
// that keeps the internal launch catalog aligned with the external launch
// manifest.
//
// # Architecture
//
// The pipeline is built from four pure components plus an orchestrator:
//
//  1. PayloadMatcher (MatchPayloads): pairs internal payload ids with manifest
//     rows by fuzzy partial-ratio scoring. A pair is accepted only at the
//     maximum possible score (exact substring equivalence under case folding),
//     never a near-threshold score — this is the disambiguation rule for
//     payloads that differ only by a suffix, not an approximation.
//
//  2. DateResolver (ResolveDate): classifies a raw manifest date token against
//     an ordered cascade of patterns, each carrying a precision tier and
//     certainty flags, and derives the first UTC instant consistent with the
//     stated precision.
//
//  3. SiteResolver (ResolveLaunchpad, SiteLocation): exact-lookup tables from
//     free-text launchpad labels to canonical site identifiers and from site
//     identifiers to IANA time zones.
//
//  4. SequenceAssigner (AssignOrdinals): derives one flight number per match
//     from the base ordinal plus the matched row's manifest position, and
//     detects collisions.
//
// The Pipeline runs them in order over one manifest snapshot, validates that
// all assigned flight numbers are pairwise distinct before any write, and
// submits one field-set update per match to the catalog store.
//
// # Failure semantics
//
// A date that matches no known pattern skips its row (logged, non-fatal). An
// unrecognized launchpad leaves the site fields empty (non-fatal). A flight
// number collision aborts the entire run before any write. Store failures
// surface per row in the Outcome; rows are submitted independently, so there
// is no cross-row rollback.
package reconcile
