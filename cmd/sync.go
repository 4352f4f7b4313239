package cmd

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"launchsync/core/config"
	"launchsync/core/database"
	"launchsync/core/launch"
	"launchsync/core/logger"
	"launchsync/core/manifest"
	"launchsync/core/reconcile"
	"launchsync/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunSync bool

// syncCmd runs one full reconciliation of the manifest against the catalog.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the launch manifest against the catalog",
	Long: `Fetch the external launch manifest, match its rows against the upcoming
records in the launch catalog, and write one field-set update per match.

A flight-number collision aborts the whole run before any write and exits
non-zero. Rows whose date text matches no known pattern are skipped with a
warning.

Examples:
  # Full run
  launchsync sync

  # Compute and validate updates without writing any
  launchsync sync --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Compute and validate updates without writing any")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l, runID := logger.WithRunID(l)

	l.Info("Starting manifest reconciliation",
		zap.String("url", cfg.Manifest.URL),
		zap.Bool("dry_run", dryRunSync))

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	store := launch.NewStore(db)

	fetchedAt := time.Now()
	body, err := manifest.Fetch(ctx, cfg.Manifest)
	if err != nil {
		return fmt.Errorf("failed to fetch manifest: %w", err)
	}

	archiveSnapshot(ctx, l, cfg, fetchedAt, body)

	rows, err := manifest.Parse(bytes.NewReader(body), l)
	if err != nil {
		return fmt.Errorf("failed to parse manifest: %w", err)
	}
	l.Info("Parsed manifest", zap.Int("rows", len(rows)))

	upcoming, err := store.Upcoming(ctx)
	if err != nil {
		return err
	}
	base, err := store.BaseFlightNumber(ctx)
	if err != nil {
		return err
	}
	l.Info("Loaded catalog state",
		zap.Int("upcoming", len(upcoming)),
		zap.Int("base_flight_number", base))

	pipeline := reconcile.NewPipeline(store, l)
	outcome := pipeline.Run(ctx, upcoming, base, rows, reconcile.Options{DryRun: dryRunSync})

	if outcome.Aborted {
		return fmt.Errorf("reconciliation aborted (run %s): %w", runID, outcome.Err)
	}

	printOutcome(l, outcome)

	failures := 0
	for _, r := range outcome.Rows {
		if r.Err != nil {
			failures++
			l.Error("update failed", zap.String("payload_id", r.PayloadID), zap.Error(r.Err))
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d updates failed", failures, len(outcome.Rows))
	}

	if dryRunSync {
		l.Info("Dry-run mode: no changes were made.")
	}
	return nil
}

// archiveSnapshot stores the raw manifest for audit when enabled. Failures
// are reported but never abort the run.
func archiveSnapshot(ctx context.Context, l *zap.Logger, cfg *config.Config, fetchedAt time.Time, body []byte) {
	if !cfg.Manifest.ArchiveSnapshots {
		return
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		l.Warn("failed to connect to snapshot storage", zap.Error(err))
		return
	}

	name, err := manifest.Archive(ctx, client, cfg.Storage.Bucket, cfg.Manifest.SnapshotPrefix, fetchedAt, body)
	if err != nil {
		l.Warn("failed to archive manifest snapshot", zap.Error(err))
		return
	}
	l.Info("Archived manifest snapshot", zap.String("object", name))
}

// printOutcome renders the per-row results as a table and logs the summary.
func printOutcome(l *zap.Logger, outcome reconcile.Outcome) {
	updated := 0
	for _, r := range outcome.Rows {
		if r.Updated {
			updated++
		}
	}

	l.Info("Reconciliation report",
		zap.Int("matches", len(outcome.Updates)),
		zap.Int("updated", updated),
		zap.Int("skipped", outcome.Skipped))

	if len(outcome.Updates) == 0 {
		return
	}

	headers := []string{"flight", "payload", "date (utc)", "precision", "tentative", "tbd", "site", "updated"}
	rows := make([][]string, 0, len(outcome.Updates))
	for i, u := range outcome.Updates {
		site := ""
		if u.Site != nil {
			site = u.Site.ID
		}
		rows = append(rows, []string{
			strconv.Itoa(u.FlightNumber),
			u.PayloadID,
			u.DateUTC.Format("2006-01-02 15:04"),
			string(u.Precision),
			strconv.FormatBool(u.Tentative),
			strconv.FormatBool(u.TBD),
			site,
			strconv.FormatBool(outcome.Rows[i].Updated),
		})
	}

	fmt.Println(renderTable(headers, rows, []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft}))
}
