package reconcile

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrUnknownDateFormat reports a raw date token matching none of the known
// patterns. The affected row is skipped; the error never aborts a run.
var ErrUnknownDateFormat = errors.New("unknown date format")

// monthExpr matches a month name in 3-letter or full form.
const monthExpr = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

// datePattern couples one recognizable date shape with the precision tier
// and certainty flags it implies, plus the rewrite that turns the matched
// groups into input for the layout parser.
type datePattern struct {
	name      string
	re        *regexp.Regexp
	precision Precision
	tentative bool
	tbd       bool
	rewrite   func(groups []string) string
}

// datePatterns is evaluated strictly in declaration order; the first match
// wins. The order is load-bearing: "2020 Nov TBD" must hit the month-TBD
// branch before the plain month branch could ever see it.
var datePatterns = []datePattern{
	{
		name:      "quarter",
		re:        regexp.MustCompile(`(?i)^(\d{4})\s+Q([1-4])$`),
		precision: PrecisionQuarter,
		tentative: true,
		tbd:       true,
		// Source convention: the quarter digit substitutes directly for
		// the month, so Q3 lands on March 1.
		rewrite: func(g []string) string { return g[1] + " " + g[2] },
	},
	{
		name:      "half",
		re:        regexp.MustCompile(`(?i)^(\d{4})\s+H([12])$`),
		precision: PrecisionHalf,
		tentative: true,
		tbd:       true,
		rewrite: func(g []string) string {
			if g[2] == "1" {
				return g[1] + " 1"
			}
			return g[1] + " 3"
		},
	},
	{
		name:      "year_tbd",
		re:        regexp.MustCompile(`(?i)^(\d{4})\s+TBD$`),
		precision: PrecisionYear,
		tentative: true,
		tbd:       true,
		rewrite:   func(g []string) string { return g[1] },
	},
	{
		name:      "year",
		re:        regexp.MustCompile(`^(\d{4})$`),
		precision: PrecisionYear,
		tentative: true,
		tbd:       true,
		rewrite:   func(g []string) string { return g[1] },
	},
	{
		name:      "month_tbd",
		re:        regexp.MustCompile(`(?i)^(\d{4})\s+` + monthExpr + `\s+TBD$`),
		precision: PrecisionMonth,
		tentative: true,
		tbd:       true,
		rewrite:   func(g []string) string { return g[1] + " " + canonicalMonth(g[2]) },
	},
	{
		name:      "month_vague",
		re:        regexp.MustCompile(`(?i)^(\d{4})\s+(?:early|mid|late)\s+` + monthExpr + `$`),
		precision: PrecisionMonth,
		tentative: true,
		tbd:       true,
		rewrite:   func(g []string) string { return g[1] + " " + canonicalMonth(g[2]) },
	},
	{
		name:      "month",
		re:        regexp.MustCompile(`(?i)^(\d{4})\s+` + monthExpr + `$`),
		precision: PrecisionMonth,
		tentative: true,
		tbd:       true,
		rewrite:   func(g []string) string { return g[1] + " " + canonicalMonth(g[2]) },
	},
	{
		name:      "day",
		re:        regexp.MustCompile(`(?i)^(\d{4})\s+` + monthExpr + `\s+(\d{1,2})$`),
		precision: PrecisionDay,
		tentative: true,
		tbd:       false,
		rewrite: func(g []string) string {
			return g[1] + " " + canonicalMonth(g[2]) + " " + g[3]
		},
	},
	{
		name:      "hour",
		re:        regexp.MustCompile(`(?i)^(\d{4})\s+` + monthExpr + `\s+(\d{1,2})\s+\[?(\d{1,2}:\d{2})\]?$`),
		precision: PrecisionHour,
		tentative: false,
		tbd:       false,
		rewrite: func(g []string) string {
			return g[1] + " " + canonicalMonth(g[2]) + " " + g[3] + " " + g[4]
		},
	},
}

// dateLayouts are tried in priority order against the rewritten token with
// the fixed +0000 offset appended, so every partially-specified date
// resolves to midnight UTC on the first instant consistent with its
// precision.
var dateLayouts = []string{
	"2006 January 2 15:04 -0700",
	"2006 Jan 2 15:04 -0700",
	"2006 January 2 -0700",
	"2006 Jan 2 -0700",
	"2006 January -0700",
	"2006 Jan -0700",
	"2006 1 -0700",
	"2006 -0700",
}

// canonicalMonth title-cases a month token so the time package accepts it.
func canonicalMonth(m string) string {
	return strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
}

// ResolveDate classifies a raw manifest date token into a precision tier and
// derives the matching UTC instant and certainty flags. Tokens matching no
// pattern fail with ErrUnknownDateFormat.
func ResolveDate(raw string) (ResolvedDate, error) {
	token := strings.Join(strings.Fields(raw), " ")

	for _, p := range datePatterns {
		groups := p.re.FindStringSubmatch(token)
		if groups == nil {
			continue
		}

		instant, err := parseFirstLayout(p.rewrite(groups) + " +0000")
		if err != nil {
			return ResolvedDate{}, fmt.Errorf("date %q matched pattern %s but did not parse: %w", raw, p.name, err)
		}

		return ResolvedDate{
			Precision: p.precision,
			UTC:       instant.UTC(),
			Year:      groups[1],
			Tentative: p.tentative,
			TBD:       p.tbd,
		}, nil
	}

	return ResolvedDate{}, fmt.Errorf("%w: %q", ErrUnknownDateFormat, raw)
}

// parseFirstLayout accepts the first layout that fully matches the value.
func parseFirstLayout(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
