package manifest

// Config holds configuration for the external manifest source.
type Config struct {
	// URL is the address of the manifest page.
	URL string `mapstructure:"url" default:"https://en.wikipedia.org/wiki/List_of_Falcon_9_and_Falcon_Heavy_launches"`
	// TimeoutSeconds is the HTTP client timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ArchiveSnapshots enables archiving the raw fetched HTML to object
	// storage before parsing.
	ArchiveSnapshots bool `mapstructure:"archive_snapshots" default:"false"`
	// SnapshotPrefix is the object key prefix for archived snapshots.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"snapshots"`
}
