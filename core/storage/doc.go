// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so manifests can be shared from a bucket
// instead of the local file system. Both AWS S3 and self-hosted MinIO work.
//
// # Client Interface
//
// The Client interface exposes only the read operations the manifest loader
// needs, which keeps the mock in core/storage/mocks small.
//
//   - BucketExists: Verifies access to the target bucket.
//   - ListObjects: Lists objects under a prefix.
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
