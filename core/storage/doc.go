// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client. inventree-sync uses it to archive the product
// images it attaches to newly created parts, keeping a copy of the vendor image
// outside the catalog. Both AWS S3 and self-hosted MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
