package reconcile

import (
	"strings"
	"time"
)

// Canonical site identifiers for the active launch complexes.
const (
	SiteCCAFSSLC40 = "ccafs_slc_40"
	SiteKSCLC39A   = "ksc_lc_39a"
	SiteVAFBSLC4E  = "vafb_slc_4e"
	SiteSTLS       = "stls"
)

// siteInfos is the static table of canonical sites.
var siteInfos = map[string]SiteInfo{
	SiteCCAFSSLC40: {
		ID:        SiteCCAFSSLC40,
		ShortName: "CCAFS SLC 40",
		LongName:  "Cape Canaveral Air Force Station Space Launch Complex 40",
	},
	SiteKSCLC39A: {
		ID:        SiteKSCLC39A,
		ShortName: "KSC LC 39A",
		LongName:  "Kennedy Space Center Historic Launch Complex 39A",
	},
	SiteVAFBSLC4E: {
		ID:        SiteVAFBSLC4E,
		ShortName: "VAFB SLC 4E",
		LongName:  "Vandenberg Air Force Base Space Launch Complex 4E",
	},
	SiteSTLS: {
		ID:        SiteSTLS,
		ShortName: "STLS",
		LongName:  "SpaceX South Texas Launch Site",
	},
}

// launchpadSites maps the manifest's launchpad labels, including the
// compound "either pad" forms, to a canonical site. For compound labels the
// first-listed pad wins.
var launchpadSites = map[string]string{
	"SLC-40":          SiteCCAFSSLC40,
	"SLC-40 / LC-39A": SiteCCAFSSLC40,
	"SLC-40 / BC":     SiteCCAFSSLC40,
	"LC-39A":          SiteKSCLC39A,
	"LC-39A / BC":     SiteKSCLC39A,
	"LC-39A / SLC-40": SiteKSCLC39A,
	"SLC-4E":          SiteVAFBSLC4E,
	"BC":              SiteSTLS,
	"BC / LC-39A":     SiteSTLS,
	"BC / SLC-40":     SiteSTLS,
}

// ResolveLaunchpad maps a free-text launchpad label to its canonical site.
// An unrecognized label returns ok=false; that is not an error, the row
// proceeds without site fields.
func ResolveLaunchpad(label string) (SiteInfo, bool) {
	id, ok := launchpadSites[strings.TrimSpace(label)]
	if !ok {
		return SiteInfo{}, false
	}
	return siteInfos[id], true
}

// TimeZoneName maps a canonical site id to its IANA time-zone name. Unknown
// or empty ids fall back to America/Chicago.
func TimeZoneName(siteID string) string {
	switch siteID {
	case SiteCCAFSSLC40, SiteKSCLC39A, "ccafs_lc_13":
		return "America/New_York"
	case SiteVAFBSLC4E, "vafb_slc_3w":
		return "America/Los_Angeles"
	default:
		return "America/Chicago"
	}
}

// SiteLocation loads the site's time zone, falling back to UTC if the zone
// database lacks the entry.
func SiteLocation(siteID string) *time.Location {
	loc, err := time.LoadLocation(TimeZoneName(siteID))
	if err != nil {
		return time.UTC
	}
	return loc
}
