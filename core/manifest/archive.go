package manifest

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"launchsync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Archive stores the raw manifest HTML in object storage as an audit
// snapshot of what this run saw, and returns the object name. Failures here
// are the caller's to report; they never abort a run.
func Archive(ctx context.Context, client storage.Client, bucket, prefix string, fetchedAt time.Time, body []byte) (string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check snapshot bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create snapshot bucket: %w", err)
		}
	}

	name := SnapshotObjectName(prefix, fetchedAt)
	_, err = client.PutObject(ctx, bucket, name, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "text/html",
	})
	if err != nil {
		return "", fmt.Errorf("failed to store snapshot %q: %w", name, err)
	}
	return name, nil
}

// SnapshotObjectName derives the object key for a snapshot fetched at the
// given instant.
func SnapshotObjectName(prefix string, fetchedAt time.Time) string {
	return fmt.Sprintf("%s/%s.html", strings.TrimSuffix(prefix, "/"), fetchedAt.UTC().Format("20060102T150405Z"))
}
