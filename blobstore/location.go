package blobstore

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Location schemes understood by ParseLocation.
const (
	SchemeFile  = "file"
	SchemeS3    = "s3"
	SchemeMinIO = "minio"
)

// Location identifies a blob by scheme, bucket and key.
// For local files Bucket is the directory and Key the file name.
type Location struct {
	Scheme string
	Bucket string
	Key    string
}

// String returns the location as a URI (or a plain path for local files).
func (l Location) String() string {
	if l.Scheme == SchemeFile {
		return filepath.Join(l.Bucket, l.Key)
	}
	return l.Scheme + "://" + l.Bucket + "/" + l.Key
}

// ParseLocation parses "s3://bucket/key", "minio://bucket/key",
// "file:///path" or a plain path.
func ParseLocation(uri string) (Location, error) {
	if uri == "" {
		return Location{}, fmt.Errorf("blobstore: empty location")
	}

	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return localLocation(uri), nil
	}

	switch scheme {
	case SchemeFile:
		return localLocation(rest), nil
	case SchemeS3, SchemeMinIO:
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" {
			return Location{}, fmt.Errorf("blobstore: %q needs a bucket and a key", uri)
		}
		return Location{Scheme: scheme, Bucket: bucket, Key: key}, nil
	default:
		return Location{}, fmt.Errorf("blobstore: unsupported scheme %q", scheme)
	}
}

func localLocation(path string) Location {
	return Location{Scheme: SchemeFile, Bucket: filepath.Dir(path), Key: filepath.Base(path)}
}
