package pointfile

import (
	"context"
	"fmt"

	"github.com/racheljewell/kmeans/blobstore"
	"github.com/racheljewell/kmeans/model"
	"github.com/racheljewell/kmeans/resource"
)

// Load opens name in store and decodes it. Reads are throttled by the
// controller passed with WithResourceController, if any.
//
// Failures to open the blob match ErrOpen. The returned Decoder carries the
// stats and the memory reservation.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) ([]model.Point, *Decoder, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrOpen, name, err)
	}
	defer func() { _ = blob.Close() }()

	r, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = r.Close() }()

	d := NewDecoder(r, optFns...)
	d.r = resource.NewRateLimitedReader(ctx, r, d.rc)

	points, err := d.Decode(ctx)
	if err != nil {
		return nil, nil, err
	}
	return points, d, nil
}
