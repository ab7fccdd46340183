// Package blobstore provides storage abstraction for point inputs and
// report outputs.
//
// BlobStore is the interface for reading and writing whole blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap support
//   - MemoryStore: In-memory store for tests
//   - s3.Store: Amazon S3 with range reads and managed uploads
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Locations
//
// ParseLocation splits a URI into scheme, bucket and key:
//
//	loc, _ := blobstore.ParseLocation("s3://my-bucket/data/points.txt.zst")
//	// loc.Scheme == "s3", loc.Bucket == "my-bucket", loc.Key == "data/points.txt.zst"
//
// Anything without a scheme is a local path.
package blobstore
