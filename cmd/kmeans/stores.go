package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/racheljewell/kmeans/blobstore"
	"github.com/racheljewell/kmeans/blobstore/minio"
	"github.com/racheljewell/kmeans/blobstore/s3"
	"github.com/racheljewell/kmeans/config"
	"github.com/racheljewell/kmeans/runstore"
)

// openStore returns the blob store that serves loc. Keys passed to the
// store are loc.Key.
func openStore(ctx context.Context, loc blobstore.Location, cfg config.Config) (blobstore.BlobStore, error) {
	switch loc.Scheme {
	case blobstore.SchemeFile:
		return blobstore.NewLocalStore(loc.Bucket), nil
	case blobstore.SchemeS3:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		return s3.NewStore(awss3.NewFromConfig(awsCfg), loc.Bucket, ""), nil
	case blobstore.SchemeMinIO:
		client, err := minio.NewClient(minio.Config{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Secure:    cfg.MinIO.Secure,
		})
		if err != nil {
			return nil, err
		}
		return minio.NewStore(client, loc.Bucket, ""), nil
	default:
		return nil, fmt.Errorf("unsupported location %q", loc.String())
	}
}

func openRunStore(ctx context.Context, table string) (runstore.Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return runstore.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), table), nil
}
