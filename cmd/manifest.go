package cmd

import (
	"bytes"
	"context"
	"fmt"

	"launchsync/core/config"
	"launchsync/core/logger"
	"launchsync/core/manifest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// manifestCmd fetches and prints the parsed manifest without touching the
// catalog, for inspecting what a sync run would see.
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Fetch and print the parsed launch manifest",
	RunE:  runManifest,
}

func init() {
	RootCmd.AddCommand(manifestCmd)
}

func runManifest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	body, err := manifest.Fetch(ctx, cfg.Manifest)
	if err != nil {
		return fmt.Errorf("failed to fetch manifest: %w", err)
	}

	rows, err := manifest.Parse(bytes.NewReader(body), l)
	if err != nil {
		return fmt.Errorf("failed to parse manifest: %w", err)
	}
	l.Info("Parsed manifest", zap.String("url", cfg.Manifest.URL), zap.Int("rows", len(rows)))

	headers := []string{"#", "date", "payload", "launchpad"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			fmt.Sprintf("%d", r.Position),
			r.RawDate,
			r.Payload,
			r.Launchpad,
		})
	}

	fmt.Println(renderTable(headers, out, []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}))
	return nil
}
