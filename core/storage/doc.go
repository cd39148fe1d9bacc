// Package storage wraps the MinIO Go client for publishing report files to
// an S3-compatible bucket (AWS S3 or self-hosted MinIO).
//
// Publishing is optional and off by default; when storage.enabled is false no
// client is created. The Client interface is kept to the three calls the
// publisher needs so it can be mocked in tests (see core/storage/mocks).
//
//	client, err := storage.NewClient(cfg)
//	err = storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region)
package storage
