// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "kmeans/")
//
//	blob, err := store.Open(ctx, "points.txt.zst")
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Managed uploads with CRC32C integrity checks
//   - Configurable prefix for multi-tenant isolation
package s3
