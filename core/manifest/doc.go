// Package manifest is the upstream producer for the reconcile pipeline: it
// fetches the external launch-manifest page and extracts the launch table
// into ordered row tuples of (date text, payload label, launchpad label).
//
// Column positions are discovered from the table header, footnote markers
// are stripped from cell text, and malformed rows are skipped with a logged
// warning — there is no deeper recovery from malformed markup.
//
// The package can also archive the raw fetched HTML to object storage as an
// audit snapshot of what a given run saw.
package manifest
