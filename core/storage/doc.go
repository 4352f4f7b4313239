// Package storage provides the object storage client used to archive raw
// manifest snapshots for audit.
//
// The Client interface is the minimal slice of Minio operations the archiver
// needs; a testify mock lives under storage/mocks.
package storage
