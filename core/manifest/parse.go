package manifest

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"launchsync/core/reconcile"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// citationRe matches footnote markers like [123] appended to cell text.
// Bracketed times ([14:10]) are part of the date convention and must
// survive, so only pure-digit markers are stripped.
var citationRe = regexp.MustCompile(`\[\d+\]`)

// Parse extracts manifest rows from the first launch table in the document.
// Column indices are discovered from the header row; rows with too few cells
// are skipped with a warning. Row positions count only the rows kept, in
// source order.
func Parse(r io.Reader, log *zap.Logger) ([]reconcile.ManifestRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest document: %w", err)
	}

	table := doc.Find("table.wikitable").First()
	if table.Length() == 0 {
		return nil, errors.New("no manifest table found in document")
	}

	dateCol, payloadCol, padCol, err := headerColumns(table)
	if err != nil {
		return nil, err
	}
	lastCol := dateCol
	if payloadCol > lastCol {
		lastCol = payloadCol
	}
	if padCol > lastCol {
		lastCol = padCol
	}

	var rows []reconcile.ManifestRow
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			// Header row.
			return
		}
		if cells.Length() <= lastCol {
			log.Warn("skipping malformed manifest row",
				zap.Int("row", i),
				zap.Int("cells", cells.Length()))
			return
		}

		rows = append(rows, reconcile.ManifestRow{
			Position:  len(rows),
			RawDate:   cleanCell(cells.Eq(dateCol).Text()),
			Payload:   cleanCell(cells.Eq(payloadCol).Text()),
			Launchpad: cleanCell(cells.Eq(padCol).Text()),
		})
	})

	return rows, nil
}

// headerColumns locates the date, payload and launchpad columns by header
// text.
func headerColumns(table *goquery.Selection) (dateCol, payloadCol, padCol int, err error) {
	dateCol, payloadCol, padCol = -1, -1, -1

	table.Find("tr").First().Find("th").Each(func(i int, th *goquery.Selection) {
		header := strings.ToLower(strings.TrimSpace(th.Text()))
		switch {
		case dateCol < 0 && strings.Contains(header, "date"):
			dateCol = i
		case payloadCol < 0 && strings.Contains(header, "payload"):
			payloadCol = i
		case padCol < 0 && (strings.Contains(header, "launch site") || strings.Contains(header, "launchpad")):
			padCol = i
		}
	})

	if dateCol < 0 || payloadCol < 0 || padCol < 0 {
		return 0, 0, 0, errors.New("manifest table missing expected columns")
	}
	return dateCol, payloadCol, padCol, nil
}

// cleanCell strips citation markers and collapses whitespace.
func cleanCell(text string) string {
	return strings.Join(strings.Fields(citationRe.ReplaceAllString(text, "")), " ")
}
