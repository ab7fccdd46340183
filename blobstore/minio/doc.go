// Package minio provides a MinIO implementation of the blobstore.BlobStore
// interface. It works with any S3-compatible endpoint reachable through
// minio-go.
//
// # Usage
//
//	client, err := minio.NewClient(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	})
//	store := minio.NewStore(client, "points", "")
package minio
