package manifest

import (
	"context"
	"errors"
	"testing"
	"time"

	"launchsync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSnapshotObjectName(t *testing.T) {
	fetchedAt := time.Date(2020, time.November, 4, 14, 10, 0, 0, time.UTC)
	assert.Equal(t, "snapshots/20201104T141000Z.html", SnapshotObjectName("snapshots", fetchedAt))
	assert.Equal(t, "snapshots/20201104T141000Z.html", SnapshotObjectName("snapshots/", fetchedAt))
}

func TestArchive(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "manifests").Return(true, nil)
	client.On("PutObject", mock.Anything, "manifests", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	fetchedAt := time.Date(2020, time.November, 4, 14, 10, 0, 0, time.UTC)
	name, err := Archive(context.Background(), client, "manifests", "snapshots", fetchedAt, []byte("<html></html>"))

	assert.NoError(t, err)
	assert.Equal(t, "snapshots/20201104T141000Z.html", name)
	client.AssertExpectations(t)
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestArchive_CreatesMissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "manifests").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "manifests", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "manifests", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	_, err := Archive(context.Background(), client, "manifests", "snapshots", time.Now(), []byte("x"))
	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestArchive_PutFailure(t *testing.T) {
	boom := errors.New("storage down")
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "manifests").Return(true, nil)
	client.On("PutObject", mock.Anything, "manifests", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, boom)

	_, err := Archive(context.Background(), client, "manifests", "snapshots", time.Now(), []byte("x"))
	assert.ErrorIs(t, err, boom)
}
